// Package registry holds the static department-folder registry: a fixed,
// ordered list of departments, each addressed by a slug derived from its
// display name. The registry is built once at startup and never mutated.
package registry

import (
	"fmt"
	"strings"
)

// Folder is a department-scoped partition of files. ID is a pure function
// of Name (see Slug) and is the key under which file records and blobs are
// stored.
type Folder struct {
	ID   string
	Name string
}

// Registry is an immutable, ordered collection of folders.
type Registry struct {
	folders []Folder
	byID    map[string]string
}

// Slug derives a folder id from a display name: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens stripped.
func Slug(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// New builds a registry from the given display names, preserving order.
// Two names that slugify identically are a configuration error.
func New(names []string) (*Registry, error) {
	r := &Registry{
		folders: make([]Folder, 0, len(names)),
		byID:    make(map[string]string, len(names)),
	}
	for _, name := range names {
		id := Slug(name)
		if _, ok := r.byID[id]; ok {
			return nil, fmt.Errorf("duplicate folder id %q (name %q)", id, name)
		}
		r.byID[id] = name
		r.folders = append(r.folders, Folder{ID: id, Name: name})
	}
	return r, nil
}

// Resolve returns the display name for id. Unknown ids resolve to
// themselves so that a stale folder id degrades gracefully instead of
// breaking the view.
func (r *Registry) Resolve(id string) string {
	if name, ok := r.byID[id]; ok {
		return name
	}
	return id
}

// All returns the folders in their configured order. The returned slice is
// shared; callers must not modify it.
func (r *Registry) All() []Folder {
	return r.folders
}

// Filter returns the folders whose name contains query, case-insensitively.
// An empty (or all-whitespace) query returns the full list.
func (r *Registry) Filter(query string) []Folder {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return r.folders
	}
	var out []Folder
	for _, f := range r.folders {
		if strings.Contains(strings.ToLower(f.Name), term) {
			out = append(out, f)
		}
	}
	return out
}

// Contains reports whether id belongs to the registry.
func (r *Registry) Contains(id string) bool {
	_, ok := r.byID[id]
	return ok
}
