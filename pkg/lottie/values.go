package lottie

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector3 is a three-component vector. Two-dimensional Lottie values such as
// positions and sizes leave Z at zero.
type Vector3 struct {
	X, Y, Z float64
}

// Vec2 returns a Vector3 with the given X and Y and a zero Z.
func Vec2(x, y float64) Vector3 { return Vector3{X: x, Y: y} }

// IsZero reports whether all components are zero.
func (v Vector3) IsZero() bool { return v == Vector3{} }

// String formats the vector as {X,Y,Z}.
func (v Vector3) String() string {
	return "{" + FormatFloat(v.X) + "," + FormatFloat(v.Y) + "," + FormatFloat(v.Z) + "}"
}

// Color is an ARGB color with channels in the range [0, 1].
type Color struct {
	A, R, G, B float64
}

// ColorFromARGB builds a Color from 8-bit channels.
func ColorFromARGB(a, r, g, b uint8) Color {
	return Color{
		A: float64(a) / 255,
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

// ParseColor parses "#AARRGGBB" or "#RRGGBB" (opaque).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		hex = "FF" + hex
	}
	if len(hex) != 8 || !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("invalid color %q: want #AARRGGBB or #RRGGBB", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return ColorFromARGB(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)), nil
}

// String formats the color as #AARRGGBB in upper-case hex.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", channel(c.A), channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// BezierSegment is one cubic segment of a path: start point, two control
// points and end point.
type BezierSegment struct {
	ControlPoint0 Vector3
	ControlPoint1 Vector3
	ControlPoint2 Vector3
	ControlPoint3 Vector3
}

// PathGeometry is a sequence of connected cubic segments.
type PathGeometry struct {
	Segments []BezierSegment
	IsClosed bool
}

// Equal reports whether two geometries have the same segments and closure.
func (p PathGeometry) Equal(o PathGeometry) bool {
	if p.IsClosed != o.IsClosed || len(p.Segments) != len(o.Segments) {
		return false
	}
	for i := range p.Segments {
		if p.Segments[i] != o.Segments[i] {
			return false
		}
	}
	return true
}

// String formats the geometry in SVG path syntax using X and Y only,
// e.g. "M0,0 C10,0 10,10 0,10 Z".
func (p PathGeometry) String() string {
	if len(p.Segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M")
	b.WriteString(point(p.Segments[0].ControlPoint0))
	for _, s := range p.Segments {
		b.WriteString(" C")
		b.WriteString(point(s.ControlPoint1))
		b.WriteString(" ")
		b.WriteString(point(s.ControlPoint2))
		b.WriteString(" ")
		b.WriteString(point(s.ControlPoint3))
	}
	if p.IsClosed {
		b.WriteString(" Z")
	}
	return b.String()
}

func point(v Vector3) string { return FormatFloat(v.X) + "," + FormatFloat(v.Y) }

// GradientStop is a color at an offset in [0, 1] along a gradient.
type GradientStop struct {
	Offset float64
	Color  Color
}

// String formats the stop as offset:color.
func (s GradientStop) String() string { return FormatFloat(s.Offset) + ":" + s.Color.String() }

// GradientStops is an ordered list of gradient stops.
type GradientStops []GradientStop

// Equal reports whether both lists hold the same stops in the same order.
func (g GradientStops) Equal(o GradientStops) bool {
	if len(g) != len(o) {
		return false
	}
	for i := range g {
		if g[i] != o[i] {
			return false
		}
	}
	return true
}

// String joins the stops with ";".
func (g GradientStops) String() string {
	parts := make([]string, len(g))
	for i, s := range g {
		parts[i] = s.String()
	}
	return strings.Join(parts, ";")
}

// Version is the Bodymovin format version of a composition.
type Version struct {
	Major, Minor, Patch int
}

// ParseVersion parses "major.minor.patch"; missing trailing parts are zero.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if s == "" || len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid version %q", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q", s)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String formats the version as major.minor.patch.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// FormatFloat formats f with the fewest digits that round-trip and never
// uses exponent notation: 5, 0.5, -12.25.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
