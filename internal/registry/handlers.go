package registry

import "sort"

// Funcs is a Module built from a plain name -> function map. It registers
// in sorted name order so duplicate handling does not depend on map order.
type Funcs map[string]Func

// Register implements Module.
func (f Funcs) Register(r *Registry) {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r.Register(name, f[name])
	}
}
