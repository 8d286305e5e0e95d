package entity

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidParameters wraps validation failures for shape parameters (e.g. a zero width).
var ErrInvalidParameters = errors.New("invalid entity parameters")

var validate = NewValidator()

// NewValidator returns a validator that also knows the "finite" tag, which rejects NaN and
// infinite floats.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(err)
	}
	return v
}

func isFinite(fl validator.FieldLevel) bool {
	return Finite(float32(fl.Field().Float()))
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vals ...float32) bool {
	for _, v := range vals {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Params is the numeric parameter set of one entity kind.
type Params interface {
	Kind() Kind
}

// BoxParams are the box dimensions in world units.
type BoxParams struct {
	Width  float32 `yaml:"width" validate:"finite,gt=0"`
	Height float32 `yaml:"height" validate:"finite,gt=0"`
	Depth  float32 `yaml:"depth" validate:"finite,gt=0"`
}

func (BoxParams) Kind() Kind { return Box }

// CylinderParams are the cylinder diameter (top and bottom) and height.
type CylinderParams struct {
	Diameter float32 `yaml:"diameter" validate:"finite,gt=0"`
	Height   float32 `yaml:"height" validate:"finite,gt=0"`
}

func (CylinderParams) Kind() Kind { return Cylinder }

// IcoSphereParams are the sphere diameter and its subdivision count.
type IcoSphereParams struct {
	Diameter     float32 `yaml:"diameter" validate:"finite,gt=0"`
	Subdivisions int     `yaml:"subdivisions" validate:"min=1,max=64"`
}

func (IcoSphereParams) Kind() Kind { return IcoSphere }

// Radius is half the diameter; the sphere is built from a radius.
func (p IcoSphereParams) Radius() float32 {
	return p.Diameter * 0.5
}

// DefaultParams returns the startup parameters for kind: box 1x1x1, cylinder d=1 h=2,
// icosphere d=1 with 15 subdivisions.
func DefaultParams(kind Kind) (Params, error) {
	switch kind {
	case Box:
		return BoxParams{Width: 1, Height: 1, Depth: 1}, nil
	case Cylinder:
		return CylinderParams{Diameter: 1, Height: 2}, nil
	case IcoSphere:
		return IcoSphereParams{Diameter: 1, Subdivisions: 15}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrInvalidEntityKind, kind)
}

// Validate checks p against its struct tags. A nil p is reported as an invalid kind.
func Validate(p Params) error {
	if p == nil {
		return fmt.Errorf("%w: nil parameters", ErrInvalidEntityKind)
	}
	if !p.Kind().Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidEntityKind, p.Kind())
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidParameters, p.Kind(), err)
	}
	return nil
}
