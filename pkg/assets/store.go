package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	snaperrors "codesnap/pkg/errors"
	"codesnap/pkg/logging"
)

const mapFile = "assets_map.json"

// AssetURL is a "name@url" reference to a remote asset.
type AssetURL struct {
	Name string
	URL  string
}

// ParseAssetURL splits "name@url".
func ParseAssetURL(raw string) (AssetURL, error) {
	name, rawURL, ok := strings.Cut(raw, "@")
	if !ok || name == "" || strings.Contains(rawURL, "@") || !IsNetworkURL(rawURL) {
		return AssetURL{}, snaperrors.NewValidationError("asset", fmt.Sprintf("invalid asset reference %q, want name@https://...", raw), nil)
	}
	return AssetURL{Name: name, URL: rawURL}, nil
}

// IsAssetURL reports whether raw is a "name@url" reference.
func IsAssetURL(raw string) bool {
	_, err := ParseAssetURL(raw)
	return err == nil
}

type mapEntry struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// Store caches downloaded assets in a folder indexed by assets_map.json.
type Store struct {
	dir     string
	fetcher Fetcher
	log     *logging.Logger
}

// NewStore returns a Store rooted at dir. log may be nil.
func NewStore(dir string, fetcher Fetcher, log *logging.Logger) *Store {
	if fetcher == nil {
		fetcher = NewHTTPFetcher()
	}
	return &Store{dir: dir, fetcher: fetcher, log: log.With("assets", dir)}
}

// Dir is the cache folder.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) mapPath() string {
	return filepath.Join(s.dir, mapFile)
}

func (s *Store) readMap() (map[string]mapEntry, error) {
	entries := make(map[string]mapEntry)
	data, err := os.ReadFile(s.mapPath())
	if errors.Is(err, fs.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.mapPath(), err)
	}
	return entries, nil
}

func (s *Store) writeMap(entries map[string]mapEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.mapPath(), data, 0o644)
}

// Download fetches the asset named by a "name@url" reference and returns
// its local path. A cached copy for the same URL is reused; a cached copy
// for a different URL is replaced.
func (s *Store) Download(ctx context.Context, ref string) (string, error) {
	asset, err := ParseAssetURL(ref)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", snaperrors.NewResourceError(snaperrors.ResourceAsset, s.dir, err)
	}

	entries, err := s.readMap()
	if err != nil {
		return "", snaperrors.NewResourceError(snaperrors.ResourceAsset, asset.Name, err)
	}
	if cached, ok := entries[asset.Name]; ok {
		if cached.URL == asset.URL {
			if _, err := os.Stat(cached.Path); err == nil {
				s.log.With("name", asset.Name).Debug("asset cache hit")
				return cached.Path, nil
			}
		}
		if err := os.Remove(cached.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", snaperrors.NewResourceError(snaperrors.ResourceAsset, asset.Name, err)
		}
	}

	body, contentType, err := s.fetcher.Fetch(ctx, asset.URL)
	if err != nil {
		return "", snaperrors.NewResourceError(snaperrors.ResourceAsset, asset.Name, err)
	}

	target := filepath.Join(s.dir, asset.Name+extension(asset.URL, contentType))
	if err := os.WriteFile(target, body, 0o644); err != nil {
		return "", snaperrors.NewResourceError(snaperrors.ResourceAsset, asset.Name, err)
	}
	entries[asset.Name] = mapEntry{URL: asset.URL, Path: target}
	if err := s.writeMap(entries); err != nil {
		return "", snaperrors.NewResourceError(snaperrors.ResourceAsset, asset.Name, err)
	}

	s.log.WithFields(map[string]any{"name": asset.Name, "url": asset.URL, "bytes": len(body)}).Info("asset downloaded")
	return target, nil
}

// extension takes the URL path's extension, falling back to the content type.
func extension(rawURL, contentType string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if ext := path.Ext(u.Path); ext != "" {
			return ext
		}
	}
	if contentType != "" {
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			return exts[0]
		}
	}
	return ""
}

// Clear removes every cached asset and the index.
func (s *Store) Clear() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return err
	}
	return os.MkdirAll(s.dir, 0o755)
}

// ClearCache forgets the index so every asset is downloaded again.
func (s *Store) ClearCache() error {
	err := os.Remove(s.mapPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
