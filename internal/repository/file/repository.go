package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Repository caches raw Sleeper responses on disk, one JSON file per request.
type Repository struct {
	root string
}

func NewRepository(root string) *Repository {
	return &Repository{root: root}
}

func (r *Repository) Path(rel string) string {
	return filepath.Join(r.root, rel)
}

// Read returns the cached body for rel. ok is false when nothing is cached.
func (r *Repository) Read(rel string) (body []byte, ok bool, err error) {
	body, err = os.ReadFile(r.Path(rel))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache %s: %w", rel, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, false, nil
	}
	return body, true, nil
}

func (r *Repository) Write(rel string, body []byte) error {
	path := r.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err == nil {
		body = pretty.Bytes()
	}

	slog.Debug("Writing cache", "path", path)
	return os.WriteFile(path, body, 0o644)
}
