package config

import "sort"

type presetStop struct {
	position float64
	color    string
}

var presetBackgrounds = map[string][]presetStop{
	"bamboo":  {{0.22, "#6bcba5"}, {0.95, "#caf4c2"}},
	"sea":     {{0, "#1fa2ff"}, {0.4, "#12d8fa"}, {0.95, "#a6ffcb"}},
	"classic": {{0, "#3a1c71"}, {0.5, "#d76d77"}, {0.95, "#ffb07c"}},
	"grape":   {{0.28, "#675af7"}, {0.95, "#bd65fa"}},
	"peach":   {{0.22, "#dd5e89"}, {0.95, "#f7bb97"}},
	"summer":  {{0.28, "#f8a5c2"}, {0.95, "#74b9ff"}},
	"dusk":    {{0.22, "#ff9a8b"}, {0.55, "#ff6a88"}, {0.95, "#ff99ac"}},
}

// DefaultPreset is the background used when none is configured.
const DefaultPreset = "bamboo"

// Preset returns the named horizontal gradient background.
func Preset(name string) (Background, bool) {
	stops, ok := presetBackgrounds[name]
	if !ok {
		return Background{}, false
	}

	g := &LinearGradient{
		Start: GradientPoint{X: Num(0), Y: Num(0)},
		End:   GradientPoint{X: MaxDimension(), Y: Num(0)},
	}
	for _, s := range stops {
		g.Stops = append(g.Stops, GradientStop{Position: s.position, Color: s.color})
	}
	return Background{Gradient: g}, true
}

// PresetNames lists the available preset backgrounds.
func PresetNames() []string {
	names := make([]string, 0, len(presetBackgrounds))
	for name := range presetBackgrounds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
