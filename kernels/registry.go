package kernels

import (
	"slices"

	"github.com/gomlir/gomlir/types/xslices"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Registry holds kernel and utility libraries by name and validates their dependency graph.
//
// The zero value is not usable, create one with NewRegistry. Package-level Register/Lookup/
// Resolve operate on the default registry that the kernel packages register with.
type Registry struct {
	libs map[string]Library
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{libs: make(map[string]Library)}
}

// Register a kernel or utility library.
//
// To be safe, call Register during initialization of a package.
// It panics on an invalid manifest entry or a duplicate name, both programming errors.
func (r *Registry) Register(lib Library) {
	if err := lib.validate(); err != nil {
		exceptions.Panicf("kernels.Register: %v", err)
	}
	if _, found := r.libs[lib.Name]; found {
		exceptions.Panicf("kernels.Register: library %q registered more than once", lib.Name)
	}
	r.libs[lib.Name] = lib
	klog.V(1).Infof("registered kernel library %q (deps=%v)", lib.Name, lib.Deps)
}

// Lookup returns the library registered under the given name.
func (r *Registry) Lookup(name string) (Library, bool) {
	lib, ok := r.libs[name]
	return lib, ok
}

// Registered returns the names of all registered libraries, sorted.
func (r *Registry) Registered() []string {
	names := make([]string, 0, len(r.libs))
	for name := range r.libs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DFS colors for cycle detection.
const (
	white = iota // not visited
	gray         // on the current path
	black        // fully resolved
)

// Resolve validates the dependency graph of the named library and returns its transitive
// dependencies in topological order, dependencies first and the library itself last.
//
// It fails if a declared dependency is not registered or if the graph has a cycle, naming
// the offending path.
func (r *Registry) Resolve(name string) ([]string, error) {
	if _, ok := r.libs[name]; !ok {
		return nil, errors.Errorf("kernels.Resolve: library %q is not registered", name)
	}

	colors := make(map[string]int, len(r.libs))
	var order []string
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch colors[name] {
		case black:
			return nil
		case gray:
			return errors.Errorf("kernels.Resolve: dependency cycle: %v -> %q", path, name)
		}
		colors[name] = gray
		path = append(path, name)
		deps := xslices.Copy(r.libs[name].Deps)
		slices.Sort(deps)
		for _, dep := range deps {
			if _, ok := r.libs[dep]; !ok {
				return errors.Errorf("kernels.Resolve: library %q depends on %q, which is not registered (path %v)",
					name, dep, path)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		colors[name] = black
		order = append(order, name)
		return nil
	}

	if err := visit(name); err != nil {
		return nil, err
	}
	return order, nil
}

// ResolveAll resolves every registered library, validating the whole manifest.
// The returned order contains each library once, dependencies always before dependents.
func (r *Registry) ResolveAll() ([]string, error) {
	seen := make(map[string]bool, len(r.libs))
	var order []string
	for _, name := range r.Registered() {
		libOrder, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		for _, lib := range libOrder {
			if !seen[lib] {
				seen[lib] = true
				order = append(order, lib)
			}
		}
	}
	return order, nil
}

// defaultRegistry is the registry the kernel packages register with from their init functions.
var defaultRegistry = NewRegistry()

// Register a library with the default registry. See Registry.Register.
func Register(lib Library) { defaultRegistry.Register(lib) }

// Lookup a library in the default registry. See Registry.Lookup.
func Lookup(name string) (Library, bool) { return defaultRegistry.Lookup(name) }

// Registered returns the sorted names in the default registry. See Registry.Registered.
func Registered() []string { return defaultRegistry.Registered() }

// Resolve the named library in the default registry. See Registry.Resolve.
func Resolve(name string) ([]string, error) { return defaultRegistry.Resolve(name) }

// ResolveAll validates the default registry's whole manifest. See Registry.ResolveAll.
func ResolveAll() ([]string, error) { return defaultRegistry.ResolveAll() }

func init() {
	// Shared utility libraries of the build manifest: leaf targets with no kernel attached.
	Register(Library{
		Name: "kernel-utils",
		Srcs: []string{"kernel_utils.cc"},
		Hdrs: []string{"kernel_utils.h"},
	})
	Register(Library{
		Name: "padding-helpers",
		Srcs: []string{"padding_helpers.cc"},
		Hdrs: []string{"padding_helpers.h"},
		Deps: []string{"kernel-utils"},
	})
	Register(Library{
		Name: "tensor-helpers",
		Srcs: []string{"tensor_helpers.cc"},
		Hdrs: []string{"tensor_helpers.h"},
		Deps: []string{"kernel-utils"},
	})
}
