package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"tempo/internal/modules/notifier/domain"
	notifierout "tempo/internal/modules/notifier/port/out"
)

// FileManifestStore reads plugins.json from the plugins directory.
// Relative binary paths resolve against that directory.
type FileManifestStore struct {
	basePath string
	path     string
}

func NewFileManifestStore(pluginsPath string) notifierout.ManifestStore {
	return &FileManifestStore{basePath: pluginsPath, path: filepath.Join(pluginsPath, "plugins.json")}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read plugin manifests: %w", err)
	}
	defer f.Close()

	var manifests []domain.Manifest
	decoder := json.NewDecoder(f)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode plugin manifests: %w", err)
	}
	for i := range manifests {
		if manifests[i].Binary != "" && !filepath.IsAbs(manifests[i].Binary) {
			manifests[i].Binary = filepath.Clean(filepath.Join(s.basePath, manifests[i].Binary))
		}
	}
	sort.Slice(manifests, func(a, b int) bool { return manifests[a].Name < manifests[b].Name })
	return manifests, nil
}
