package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidEntityKind is returned when a rebuild, selection, or parameter update names a kind
// outside the closed set (Box, Cylinder, IcoSphere).
var ErrInvalidEntityKind = errors.New("invalid entity kind")

// Kind is one of the fixed logical shapes shown in the demo. The zero value is not a valid kind,
// so an uninitialized Kind never aliases Box.
type Kind int

const (
	Box Kind = iota + 1
	Cylinder
	IcoSphere
)

// kinds is the fixed rebuild order used by the render loop.
var kinds = []Kind{Box, Cylinder, IcoSphere}

// Kinds returns every known kind in rebuild order (Box, Cylinder, IcoSphere).
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// String returns the mesh name used for the kind ("Box", "Cylinder", "IcoSphere").
func (k Kind) String() string {
	switch k {
	case Box:
		return "Box"
	case Cylinder:
		return "Cylinder"
	case IcoSphere:
		return "IcoSphere"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is one of Box, Cylinder, IcoSphere.
func (k Kind) Valid() bool {
	return k >= Box && k <= IcoSphere
}

// ParseKind maps a mesh name back to its kind by exact match. Terminal commands use the
// lower-case aliases ("box", "cylinder", "icosphere") so those are accepted too.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "Box", "box":
		return Box, nil
	case "Cylinder", "cylinder":
		return Cylinder, nil
	case "IcoSphere", "icosphere":
		return IcoSphere, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidEntityKind, name)
}
