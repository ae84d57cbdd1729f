package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/kodi-build-tools/internal/domain/build"
)

// Repository defines persistence operations for a scanned build manifest.
type Repository interface {
	Load(ctx context.Context) (*build.Manifest, error)
	Save(ctx context.Context, manifest *build.Manifest) error
}

// FileRepository persists a scanned manifest to a YAML file on disk, so an
// inventory taken on one machine can be inspected or diffed on another.
type FileRepository struct {
	// path is the filesystem location of the YAML manifest file.
	path string
	// mu protects concurrent access to the manifest file.
	mu sync.Mutex
}

// ErrNotFound is returned when the manifest file does not exist yet.
var ErrNotFound = errors.New("manifest not found")

// defaultFileMode is used for exported manifest files.
const defaultFileMode os.FileMode = 0o644

// NewFileRepository creates a repository that reads/writes YAML at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the manifest from disk.
func (r *FileRepository) Load(_ context.Context) (*build.Manifest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m build.Manifest
	if err := yaml.Unmarshal(contents, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest to disk.
func (r *FileRepository) Save(_ context.Context, manifest *build.Manifest) error {
	if manifest == nil {
		return errors.New("manifest is not set")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(r.path, contents, defaultFileMode); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}
