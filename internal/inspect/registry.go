// Package inspect provides a global registry for level inspections.
// Inspections register themselves in init() functions, allowing the CLI
// to discover and run them without hardcoded dependencies.
package inspect

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/leveltools/levelscope/internal/level"
)

// Inspection is the interface every registered level inspection implements.
// Inspections are pure read-only passes over a parsed document; all output
// goes to the provided writer.
type Inspection interface {
	// ID returns a unique identifier for this inspection (e.g., "hotspots").
	// Used for CLI commands and scan history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run scans doc and writes the inspection's report to w. The path is
	// the document's source file, used only for display.
	Run(doc *level.Document, path string, w io.Writer) error
}

// Info contains metadata about a registered inspection.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of an inspection.
type Factory func() Inspection

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an inspection factory to the registry.
// Typically called from an inspection's init() function.
// Panics if an inspection with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("inspect: inspection %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered inspections, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new inspection by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Inspection, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("inspect: unknown inspection %q", id)
	}

	return f(), nil
}

// Exists checks if an inspection with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
