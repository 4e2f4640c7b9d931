// Package loader resolves the command line's module identifier to a
// set of task functions. Go has no dynamic import; a module identifier is
// resolved either against a filesystem path to a Go plugin (built with
// `go build -buildmode=plugin`) or against an in-process Registry that
// example and user workflows populate via init().
package loader

import (
	"os"
	"path/filepath"
	"plugin"
	"sync"

	"go.weft.dev/weft"
)

// TaskFunc is the shape every exported plugin symbol or registered task
// must have: a zero-argument constructor returning a declared root Node.
type TaskFunc func() *weft.Node

// Module is the result of resolving a module identifier: a named set of
// task constructors, plus the first line of each task's documentation for
// the -s/show flag.
type Module struct {
	Name  string
	Tasks map[string]TaskFunc
	Docs  map[string]string
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Module{}
)

// Register adds a module under name to the in-process registry. Example
// and user workflows call this from an init() function so the CLI can
// resolve a bare module identifier without touching the filesystem.
func Register(name string, m *Module) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = m
}

// Load resolves identifier to a Module. If identifier is an absolute path
// or names an existing filesystem path, its directory is added to the plugin search implicitly
// by opening the .so file directly; Go plugins resolve their own import
// paths at build time, so no search-path manipulation is needed beyond
// that. Otherwise identifier is looked up in the in-process registry.
func Load(identifier string) (*Module, error) {
	if isPath(identifier) {
		return loadPlugin(identifier)
	}

	registryMu.RLock()
	m, ok := registry[identifier]
	registryMu.RUnlock()
	if !ok {
		return nil, weft.ErrUnknownModule
	}
	return m, nil
}

func isPath(identifier string) bool {
	if filepath.IsAbs(identifier) {
		return true
	}
	_, err := os.Stat(identifier)
	return err == nil
}

// loadPlugin opens a compiled Go plugin and expects it to export a
// `Tasks map[string]func() *weft.Node` symbol and, optionally, a `Docs
// map[string]string` symbol.
func loadPlugin(path string) (*Module, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, weft.ErrUnknownModule
	}

	tasksSym, err := p.Lookup("Tasks")
	if err != nil {
		return nil, weft.ErrUnknownModule
	}
	tasks, ok := tasksSym.(*map[string]func() *weft.Node)
	if !ok {
		return nil, weft.ErrUnknownModule
	}

	docs := map[string]string{}
	if docsSym, err := p.Lookup("Docs"); err == nil {
		if d, ok := docsSym.(*map[string]string); ok {
			docs = *d
		}
	}

	taskFuncs := make(map[string]TaskFunc, len(*tasks))
	for name, fn := range *tasks {
		taskFuncs[name] = fn
	}

	return &Module{Name: filepath.Base(path), Tasks: taskFuncs, Docs: docs}, nil
}
