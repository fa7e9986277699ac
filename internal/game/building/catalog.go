package building

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a building ID is not present in the catalog.
// Callers holding an unknown ID have a stale or invalid reference.
var ErrNotFound = errors.New("building not found")

// ErrInvalidCatalog is returned when a set of definitions cannot form a catalog.
var ErrInvalidCatalog = errors.New("invalid building catalog")

// Catalog is the read-only registry of building definitions. It is safe for
// concurrent use because it is never mutated after NewCatalog returns. The
// catalog owns its definitions: NewCatalog stores copies and every accessor
// hands out copies.
type Catalog struct {
	defs  map[string]*Definition
	order []*Definition
}

// NewCatalog builds a Catalog from copies of defs, preserving their order.
//
// Precondition: defs must not contain nil entries.
// Postcondition: returns an error wrapping ErrInvalidCatalog if any definition
// is invalid, an ID repeats, a required building is not in defs, or the
// requirements form a cycle.
func NewCatalog(defs []*Definition) (*Catalog, error) {
	c := &Catalog{
		defs:  make(map[string]*Definition, len(defs)),
		order: make([]*Definition, 0, len(defs)),
	}
	for _, d := range defs {
		d = d.Clone()
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		if _, exists := c.defs[d.ID]; exists {
			return nil, fmt.Errorf("%w: building ID %q already registered", ErrInvalidCatalog, d.ID)
		}
		c.defs[d.ID] = d
		c.order = append(c.order, d)
	}
	for _, d := range c.order {
		for _, req := range d.Requires() {
			if _, ok := c.defs[req]; !ok {
				return nil, fmt.Errorf("%w: building %q requires unknown building %q", ErrInvalidCatalog, d.ID, req)
			}
		}
	}
	if err := c.checkCycles(); err != nil {
		return nil, err
	}
	return c, nil
}

// checkCycles rejects requirement loops, which would make every member
// permanently unbuildable without an override.
func (c *Catalog) checkCycles() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(c.defs))
	var visit func(id string, path []string) error
	visit = func(id string, path []string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("%w: requirement cycle %v", ErrInvalidCatalog, append(path, id))
		case done:
			return nil
		}
		state[id] = visiting
		next := append(append([]string(nil), path...), id)
		for _, req := range c.defs[id].Requires() {
			if err := visit(req, next); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}
	for _, d := range c.order {
		if err := visit(d.ID, nil); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a copy of the definition for id.
//
// Postcondition: returns an error wrapping ErrNotFound iff id is not registered.
func (c *Catalog) Get(id string) (*Definition, error) {
	d, ok := c.defs[id]
	if !ok {
		return nil, fmt.Errorf("building %q: %w", id, ErrNotFound)
	}
	return d.Clone(), nil
}

// Lookup returns a copy of the definition for id and whether it exists.
func (c *Catalog) Lookup(id string) (*Definition, bool) {
	d, ok := c.defs[id]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// All returns copies of every definition in insertion order.
//
// Postcondition: neither the slice nor its definitions alias the catalog.
func (c *Catalog) All() []*Definition {
	out := make([]*Definition, len(c.order))
	for i, d := range c.order {
		out[i] = d.Clone()
	}
	return out
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.order)
}

// ByCategory returns copies of the definitions of the given category in
// insertion order.
func (c *Catalog) ByCategory(cat Category) []*Definition {
	var out []*Definition
	for _, d := range c.order {
		if d.Category == cat {
			out = append(out, d.Clone())
		}
	}
	return out
}
