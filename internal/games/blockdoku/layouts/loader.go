package layouts

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader reads layouts from a file system rooted at Root.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Builtin returns a loader over the layouts compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	return &Loader{Root: "builtin", fsys: sub}
}

// LoadAll walks the tree and parses every YAML file.
// Invalid files are skipped. Layouts are sorted by ID.
func (l *Loader) LoadAll() ([]Layout, error) {
	var out []Layout
	err := fs.WalkDir(l.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(path) {
			return nil
		}
		layout, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		out = append(out, layout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile parses one file, relative to Root.
func (l *Loader) LoadFile(path string) (Layout, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading %s: %w", path, err)
	}
	layout, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	layout.FilePath = filepath.Join(l.Root, path)
	return layout, nil
}

// LoadByID finds a layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}
	for _, layout := range all {
		if layout.ID == id {
			return layout, nil
		}
	}
	return Layout{}, fmt.Errorf("layout not found: %s", id)
}

// ListIDs returns the IDs of all loadable layouts.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, layout := range all {
		ids[i] = layout.ID
	}
	return ids, nil
}

// Find looks up a layout ID, first in dir (if set) and then in the
// built-in set.
func Find(dir, id string) (Layout, error) {
	if dir != "" {
		if layout, err := NewLoader(dir).LoadByID(id); err == nil {
			return layout, nil
		}
	}
	return Builtin().LoadByID(id)
}

// Available returns the built-in layouts merged with those in dir, sorted
// by ID. A layout in dir replaces a built-in one with the same ID. An
// unreadable dir is reported along with the built-in set.
func Available(dir string) ([]Layout, error) {
	builtin, err := Builtin().LoadAll()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return builtin, nil
	}

	custom, err := NewLoader(dir).LoadAll()
	if err != nil {
		return builtin, err
	}
	byID := make(map[string]Layout, len(builtin)+len(custom))
	for _, l := range builtin {
		byID[l.ID] = l
	}
	for _, l := range custom {
		byID[l.ID] = l
	}

	out := make([]Layout, 0, len(byID))
	for _, l := range byID {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
