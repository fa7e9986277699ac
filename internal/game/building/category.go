package building

import "fmt"

// Category is the closed set of slot/building kinds. A building may only be
// placed into a slot of the same category.
type Category int

const (
	// CategoryBreeding slots host breeding structures and accept a character.
	CategoryBreeding Category = iota + 1
	// CategoryResource slots host producers and accept a character.
	CategoryResource
	// CategoryGlobal slots host den-wide structures. Build-only.
	CategoryGlobal
	// CategorySpecial slots host one-off structures. Build-only.
	CategorySpecial
)

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{CategoryBreeding, CategoryResource, CategoryGlobal, CategorySpecial}
}

// ParseCategory converts a category name to a Category.
//
// Postcondition: returns an error iff s is not one of breeding, resource, global, special.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "breeding":
		return CategoryBreeding, nil
	case "resource":
		return CategoryResource, nil
	case "global":
		return CategoryGlobal, nil
	case "special":
		return CategorySpecial, nil
	}
	return 0, fmt.Errorf("category must be one of breeding, resource, global, special; got %q", s)
}

// String returns the lowercase category name, or "unknown(N)" for invalid values.
func (c Category) String() string {
	switch c {
	case CategoryBreeding:
		return "breeding"
	case CategoryResource:
		return "resource"
	case CategoryGlobal:
		return "global"
	case CategorySpecial:
		return "special"
	}
	return fmt.Sprintf("unknown(%d)", int(c))
}

// Valid reports whether c is one of the four declared categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBreeding, CategoryResource, CategoryGlobal, CategorySpecial:
		return true
	}
	return false
}

// Assignable reports whether a character may be assigned to a slot of this
// category. Only breeding and resource slots are staffed.
func (c Category) Assignable() bool {
	switch c {
	case CategoryBreeding, CategoryResource:
		return true
	case CategoryGlobal, CategorySpecial:
		return false
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
