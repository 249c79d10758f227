package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"codesnap/pkg/config"
	"codesnap/pkg/logging"
	"codesnap/pkg/snapshot"
)

// render loads the config fresh so edits show up on reload.
func render(path string, scale int, log *logging.Logger) (*snapshot.ImageSnapshot, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if scale > 0 {
		cfg.ScaleFactor = scale
	}
	return snapshot.Render(cfg, log)
}

func main() {
	scale := flag.Int("scale", 1, "scale factor used for the preview (0 keeps the config's)")
	level := flag.String("log-level", "info", "log level")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: codesnap-view [flags] <config.yaml>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	log, err := logging.New(logging.Options{Level: *level, HumanReadable: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("codesnap - " + path)
	w.Resize(fyne.NewSize(1024, 768))

	img := canvas.NewImageFromImage(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	img.FillMode = canvas.ImageFillContain
	status := widget.NewLabel("Rendering " + path + "...")

	var current *snapshot.ImageSnapshot
	reload := func() {
		snap, err := render(path, *scale, log)
		if err != nil {
			log.Error(err, "render preview")
			status.SetText("Error: " + err.Error())
			return
		}
		current = snap
		img.Image = snap.Image()
		img.Refresh()
		width, height := snap.Size()
		status.SetText(fmt.Sprintf("%s (%dx%d)", path, width, height))
	}

	output := widget.NewEntry()
	output.SetPlaceHolder("output.png")
	save := widget.NewButton("Save", func() {
		if current == nil || output.Text == "" {
			return
		}
		saved, err := current.Save(output.Text)
		if err != nil {
			status.SetText("Save error: " + err.Error())
			return
		}
		status.SetText("Saved to " + saved)
	})
	toolbar := container.NewBorder(nil, nil, widget.NewButton("Reload", reload), save, output)

	w.SetContent(container.NewBorder(toolbar, status, nil, nil, img))
	w.Canvas().Focus(output)

	reload()
	w.ShowAndRun()
}
