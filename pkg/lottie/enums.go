package lottie

import "fmt"

// enumString returns names[v], or Type(v) for out-of-range values.
func enumString(typ string, names []string, v int) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typ, v)
}

// enumParse is the inverse of enumString over the named values.
func enumParse(typ string, names []string, text []byte) (int, error) {
	s := string(text)
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", typ, s)
}

// EasingType identifies the interpolation used to reach a keyframe.
type EasingType int

const (
	EasingLinear EasingType = iota
	EasingCubicBezier
	EasingHold
)

var easingTypeNames = []string{"Linear", "CubicBezier", "Hold"}

func (t EasingType) String() string { return enumString("EasingType", easingTypeNames, int(t)) }

func (t EasingType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *EasingType) UnmarshalText(text []byte) error {
	v, err := enumParse("EasingType", easingTypeNames, text)
	*t = EasingType(v)
	return err
}

// MatteType controls how a layer uses the layer above it as a matte.
type MatteType int

const (
	MatteNone MatteType = iota
	MatteAdd
	MatteInvert
)

var matteTypeNames = []string{"None", "Add", "Invert"}

func (t MatteType) String() string { return enumString("MatteType", matteTypeNames, int(t)) }

func (t MatteType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *MatteType) UnmarshalText(text []byte) error {
	v, err := enumParse("MatteType", matteTypeNames, text)
	*t = MatteType(v)
	return err
}

// MaskMode is the compositing mode of a mask.
type MaskMode int

const (
	MaskNone MaskMode = iota
	MaskAdditive
	MaskSubtract
	MaskIntersect
	MaskLighten
	MaskDarken
	MaskDifference
)

var maskModeNames = []string{"None", "Additive", "Subtract", "Intersect", "Lighten", "Darken", "Difference"}

func (m MaskMode) String() string { return enumString("MaskMode", maskModeNames, int(m)) }

func (m MaskMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *MaskMode) UnmarshalText(text []byte) error {
	v, err := enumParse("MaskMode", maskModeNames, text)
	*m = MaskMode(v)
	return err
}

// DrawingDirection is the winding direction of a generated shape.
type DrawingDirection int

const (
	DirectionForward DrawingDirection = iota
	DirectionReverse
)

var drawingDirectionNames = []string{"Forward", "Reverse"}

func (d DrawingDirection) String() string {
	return enumString("DrawingDirection", drawingDirectionNames, int(d))
}

func (d DrawingDirection) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *DrawingDirection) UnmarshalText(text []byte) error {
	v, err := enumParse("DrawingDirection", drawingDirectionNames, text)
	*d = DrawingDirection(v)
	return err
}

// PolystarType distinguishes stars from regular polygons.
type PolystarType int

const (
	PolystarStar PolystarType = iota
	PolystarPolygon
)

var polystarTypeNames = []string{"Star", "Polygon"}

func (t PolystarType) String() string { return enumString("PolystarType", polystarTypeNames, int(t)) }

func (t PolystarType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *PolystarType) UnmarshalText(text []byte) error {
	v, err := enumParse("PolystarType", polystarTypeNames, text)
	*t = PolystarType(v)
	return err
}

// TrimType controls whether a trim path applies to all paths at once or to
// each path individually.
type TrimType int

const (
	TrimSimultaneously TrimType = iota
	TrimIndividually
)

var trimTypeNames = []string{"Simultaneously", "Individually"}

func (t TrimType) String() string { return enumString("TrimType", trimTypeNames, int(t)) }

func (t TrimType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *TrimType) UnmarshalText(text []byte) error {
	v, err := enumParse("TrimType", trimTypeNames, text)
	*t = TrimType(v)
	return err
}

// MergeMode is the boolean operation of a merge-paths node.
type MergeMode int

const (
	MergeMerge MergeMode = iota
	MergeAdd
	MergeSubtract
	MergeIntersect
	MergeExcludeIntersections
)

var mergeModeNames = []string{"Merge", "Add", "Subtract", "Intersect", "ExcludeIntersections"}

func (m MergeMode) String() string { return enumString("MergeMode", mergeModeNames, int(m)) }

func (m MergeMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *MergeMode) UnmarshalText(text []byte) error {
	v, err := enumParse("MergeMode", mergeModeNames, text)
	*m = MergeMode(v)
	return err
}

// LineCap is the shape drawn at open stroke ends.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapProjected
)

var lineCapNames = []string{"Butt", "Round", "Projected"}

func (c LineCap) String() string { return enumString("LineCap", lineCapNames, int(c)) }

func (c LineCap) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *LineCap) UnmarshalText(text []byte) error {
	v, err := enumParse("LineCap", lineCapNames, text)
	*c = LineCap(v)
	return err
}

// LineJoin is the shape drawn where stroke segments meet.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

var lineJoinNames = []string{"Miter", "Round", "Bevel"}

func (j LineJoin) String() string { return enumString("LineJoin", lineJoinNames, int(j)) }

func (j LineJoin) MarshalText() ([]byte, error) { return []byte(j.String()), nil }

func (j *LineJoin) UnmarshalText(text []byte) error {
	v, err := enumParse("LineJoin", lineJoinNames, text)
	*j = LineJoin(v)
	return err
}

// FillType is the fill rule of a fill.
type FillType int

const (
	FillEvenOdd FillType = iota
	FillNonZero
)

var fillTypeNames = []string{"EvenOdd", "NonZero"}

func (f FillType) String() string { return enumString("FillType", fillTypeNames, int(f)) }

func (f FillType) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *FillType) UnmarshalText(text []byte) error {
	v, err := enumParse("FillType", fillTypeNames, text)
	*f = FillType(v)
	return err
}
