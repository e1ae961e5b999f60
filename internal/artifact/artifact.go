// Package artifact stores the per-song parse results as gzipped JSON files.
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

var ErrMissing = errors.New("artifact not found")

// Artifact holds everything computed for one song, one entry per stanza in
// each slice.
type Artifact struct {
	ID             string                 `json:"id"`
	Freqs          []map[string]int       `json:"freqs"`
	Rhymes         [][][2]string          `json:"rhymes"`
	RhymeStructure []string               `json:"rhyme_structure"`
	Sentiment      [][]map[string]float64 `json:"sentiment"`
}

// Cache is a directory of artifacts named <id>.json.gz. An artifact is
// written once and never replaced by the parser.
type Cache struct {
	Dir string
}

// NewCache opens the cache in dir, creating the directory if needed.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating artifact directory: %w", err)
	}
	return &Cache{Dir: dir}, nil
}

// Path returns where the artifact for id lives.
func (c *Cache) Path(id string) string {
	return filepath.Join(c.Dir, id+".json.gz")
}

// Exists reports whether id already has an artifact.
func (c *Cache) Exists(id string) bool {
	_, err := os.Stat(c.Path(id))
	return err == nil
}

// Load reads the artifact for id, returning ErrMissing if there is none.
func (c *Cache) Load(id string) (*Artifact, error) {
	f, err := os.Open(c.Path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrMissing
	}
	if err != nil {
		return nil, fmt.Errorf("opening artifact %s: %w", id, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decompressing artifact %s: %w", id, err)
	}
	defer zr.Close()

	var a Artifact
	if err := json.NewDecoder(zr).Decode(&a); err != nil {
		return nil, fmt.Errorf("decoding artifact %s: %w", id, err)
	}
	return &a, nil
}

// Save writes a to a temporary file next to its final path and renames it
// into place, so readers see either no artifact or a complete one.
func (c *Cache) Save(a *Artifact) (err error) {
	tmp, err := os.CreateTemp(c.Dir, "."+a.ID+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp artifact: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	zw := gzip.NewWriter(tmp)
	if err := json.NewEncoder(zw).Encode(a); err != nil {
		return fmt.Errorf("encoding artifact %s: %w", a.ID, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compressing artifact %s: %w", a.ID, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing artifact %s: %w", a.ID, err)
	}
	if err := os.Rename(tmp.Name(), c.Path(a.ID)); err != nil {
		return fmt.Errorf("renaming artifact %s: %w", a.ID, err)
	}
	return nil
}
