package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"codesnap/pkg/assets"
	"codesnap/pkg/config"
	snaperrors "codesnap/pkg/errors"
	"codesnap/pkg/logging"
	"codesnap/pkg/snapshot"
)

func newLogger(cmd *cobra.Command, opts *snapOptions) (*logging.Logger, error) {
	level := opts.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	return logging.New(logging.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
}

func defaultAssetsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "CodeSnap", "remote_themes"), nil
}

// resolveAssets downloads remote themes and font folders into the asset
// cache so rendering only sees local paths.
func resolveAssets(ctx context.Context, cfg *config.SnapshotConfig, dir string, log *logging.Logger) error {
	if dir == "" {
		var err error
		if dir, err = defaultAssetsDir(); err != nil {
			return err
		}
	}
	store := assets.NewStore(dir, nil, log)

	name, folder, err := store.ResolveTheme(ctx, cfg.Theme)
	if err != nil {
		return err
	}
	cfg.Theme = name
	if folder != "" {
		cfg.ThemesFolders = append(cfg.ThemesFolders, folder)
	}

	if cfg.ThemesFolders, err = store.ResolveFolders(ctx, cfg.ThemesFolders); err != nil {
		return err
	}
	cfg.FontsFolders, err = store.ResolveFolders(ctx, cfg.FontsFolders)
	return err
}

func runSnapshot(cmd *cobra.Command, opts *snapOptions, set flagSet) error {
	log, err := newLogger(cmd, opts)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := buildConfig(ctx, opts, set, cmd.InOrStdin())
	if err != nil {
		return err
	}

	switch opts.Type {
	case "ascii":
		return writeASCII(cmd, cfg, opts.Output, log)
	case "image":
	default:
		return snaperrors.NewValidationError("type", fmt.Sprintf("unknown snapshot type %q, want image or ascii", opts.Type), nil)
	}

	if opts.Output == "" {
		return snaperrors.NewValidationError("output", "--output is required for image snapshots", nil)
	}
	if err := resolveAssets(ctx, cfg, opts.AssetsDir, log); err != nil {
		return err
	}

	snap, err := snapshot.Render(cfg, log)
	if err != nil {
		return err
	}
	path, err := snap.Save(opts.Output)
	if err != nil {
		return err
	}

	w, h := snap.Size()
	log.WithFields(map[string]any{"path": path, "width": w, "height": h}).Info("snapshot saved")
	fmt.Fprintf(cmd.OutOrStdout(), "Snapshot saved to %s\n", path)
	return nil
}

func writeASCII(cmd *cobra.Command, cfg *config.SnapshotConfig, output string, log *logging.Logger) error {
	content, err := snapshot.ASCII(cfg)
	if err != nil {
		return err
	}
	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	}

	path, err := snapshot.SaveASCII(content, output)
	if err != nil {
		return err
	}
	log.With("path", path).Info("ascii snapshot saved")
	fmt.Fprintf(cmd.OutOrStdout(), "Snapshot saved to %s\n", path)
	return nil
}
