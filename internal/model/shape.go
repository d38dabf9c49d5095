package model

import "strings"

// ShapeKind enumerates the seven tetrimino kinds
type ShapeKind int

const (
	ShapeI ShapeKind = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeKindCount is the number of shape kinds in the catalog
const ShapeKindCount = 7

// RotationState is one orientation of a shape: four offsets from the piece origin
type RotationState [4]Cell

// Shape is a catalog entry
type Shape struct {
	Kind      ShapeKind
	Rotations []RotationState // Rotation cycles forward through this list and wraps
	Color     Color
}

var shapeNames = [ShapeKindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

var shapeCatalog = [ShapeKindCount]Shape{
	{
		Kind: ShapeI,
		Rotations: []RotationState{
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		},
		Color: Color{0, 255, 255, 255},
	},
	{
		Kind: ShapeO,
		Rotations: []RotationState{
			{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		},
		Color: Color{255, 255, 0, 255},
	},
	{
		Kind: ShapeT,
		Rotations: []RotationState{
			{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
			{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
		},
		Color: Color{128, 0, 128, 255},
	},
	{
		Kind: ShapeS,
		Rotations: []RotationState{
			{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		},
		Color: Color{0, 255, 0, 255},
	},
	{
		Kind: ShapeZ,
		Rotations: []RotationState{
			{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
			{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		},
		Color: Color{255, 0, 0, 255},
	},
	{
		Kind: ShapeJ,
		Rotations: []RotationState{
			{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
		},
		Color: Color{0, 0, 255, 255},
	},
	{
		Kind: ShapeL,
		Rotations: []RotationState{
			{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
			{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		},
		Color: Color{255, 165, 0, 255},
	},
}

// IsValid returns true if the kind is in the catalog
func (k ShapeKind) IsValid() bool {
	return k >= 0 && k < ShapeKindCount
}

// String returns the single-letter name of the kind
func (k ShapeKind) String() string {
	if !k.IsValid() {
		return "?"
	}
	return shapeNames[k]
}

// MarshalText implements encoding.TextMarshaler
func (k ShapeKind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, ErrUnknownShape
	}
	return []byte(k.String()), nil
}

// ParseShapeKind converts a single-letter name to a ShapeKind
func ParseShapeKind(name string) (ShapeKind, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == upper {
			return ShapeKind(i), nil
		}
	}
	return 0, ErrUnknownShape
}

// LookupShape returns the catalog entry for a kind
func LookupShape(kind ShapeKind) (Shape, error) {
	if !kind.IsValid() {
		return Shape{}, ErrUnknownShape
	}
	return shapeCatalog[kind], nil
}

// AllShapeKinds returns every kind in catalog order
func AllShapeKinds() []ShapeKind {
	kinds := make([]ShapeKind, ShapeKindCount)
	for i := range kinds {
		kinds[i] = ShapeKind(i)
	}
	return kinds
}
