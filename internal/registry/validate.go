package registry

import (
	"fmt"
	"sort"
	"strings"
)

// Validate checks that every name in refs resolves. It reports all unknown
// names at once, sorted and de-duplicated, so a config author sees the full
// list before anything runs.
func (r *Registry) Validate(refs []string) error {
	seen := make(map[string]struct{})
	var missing []string
	for _, name := range refs {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if !r.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: unknown functions:\n- %s", ErrFuncNotFound, strings.Join(missing, "\n- "))
}
