// Package registry provides a global registry of grid file formats.
// Formats register themselves in init() functions, allowing the CLI and
// the HTTP server to decode and encode grids without hardcoded dependencies.
package registry

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/bombgrid/internal/maze"
)

// Format converts between a serialized grid and a maze.Grid.
// Formats contain pure logic and perform no file I/O.
type Format interface {
	// Name returns a unique identifier for this format (e.g., "text", "yaml").
	// Used for CLI flags and the HTTP format parameter.
	Name() string

	// Extensions returns the file extensions handled by this format,
	// lower case and including the leading dot.
	Extensions() []string

	// Decode parses data into a grid.
	Decode(data []byte) (*maze.Grid, error)

	// Encode serializes the grid.
	Encode(g *maze.Grid) ([]byte, error)
}

// FormatInfo contains metadata about a registered format.
type FormatInfo struct {
	Name       string
	Extensions []string
}

var (
	formats = make(map[string]Format)
	byExt   = make(map[string]string)
	mu      sync.RWMutex
)

// Register adds a format to the registry.
// Typically called from a format package's init() function.
// Panics if a format with the same name or extension is already registered.
func Register(f Format) {
	mu.Lock()
	defer mu.Unlock()

	name := f.Name()
	if _, exists := formats[name]; exists {
		panic(fmt.Sprintf("registry: format %q already registered", name))
	}
	for _, ext := range f.Extensions() {
		ext = strings.ToLower(ext)
		if owner, taken := byExt[ext]; taken {
			panic(fmt.Sprintf("registry: extension %q already registered by %q", ext, owner))
		}
		byExt[ext] = name
	}

	formats[name] = f
}

// List returns information about all registered formats, sorted by name.
func List() []FormatInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FormatInfo, 0, len(formats))
	for name, f := range formats {
		result = append(result, FormatInfo{
			Name:       name,
			Extensions: f.Extensions(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the format registered under name.
func Get(name string) (Format, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown format %q", name)
	}
	return f, nil
}

// ForPath returns the format that handles the extension of path.
func ForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))

	mu.RLock()
	defer mu.RUnlock()

	name, ok := byExt[ext]
	if !ok {
		return nil, fmt.Errorf("registry: no format for extension %q", ext)
	}
	return formats[name], nil
}

// Resolve picks a format by name when one is given, by path extension
// otherwise, falling back to fallback when the extension is unknown.
func Resolve(name, path, fallback string) (Format, error) {
	if name != "" {
		return Get(name)
	}
	if f, err := ForPath(path); err == nil {
		return f, nil
	}
	return Get(fallback)
}

// Exists checks if a format with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := formats[name]
	return ok
}
