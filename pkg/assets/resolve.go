package assets

import (
	"context"
	"path/filepath"
	"strings"
)

// ResolveTheme downloads theme when it is a "name@url" reference and
// returns the theme name plus the folder holding it. Plain names are
// returned unchanged with an empty folder.
func (s *Store) ResolveTheme(ctx context.Context, theme string) (name, folder string, err error) {
	if !IsAssetURL(theme) {
		return theme, "", nil
	}
	p, err := s.Download(ctx, theme)
	if err != nil {
		return "", "", err
	}
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base)), filepath.Dir(p), nil
}

// ResolveFolders replaces every "name@url" entry by the folder it was
// downloaded into. Local folders pass through and duplicates are dropped.
func (s *Store) ResolveFolders(ctx context.Context, folders []string) ([]string, error) {
	seen := make(map[string]bool, len(folders))
	out := make([]string, 0, len(folders))
	for _, f := range folders {
		if IsAssetURL(f) {
			p, err := s.Download(ctx, f)
			if err != nil {
				return nil, err
			}
			f = filepath.Dir(p)
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}
