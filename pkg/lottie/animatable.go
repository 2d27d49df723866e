package lottie

// Easing describes how a property approaches a keyframe. ControlPoint1 and
// ControlPoint2 are only meaningful for [EasingCubicBezier].
type Easing struct {
	Type          EasingType
	ControlPoint1 Vector3
	ControlPoint2 Vector3
}

// Linear and Hold are the easings without control points.
var (
	Linear = Easing{Type: EasingLinear}
	Hold   = Easing{Type: EasingHold}
)

// CubicBezier returns a cubic-bezier easing with the given control points.
func CubicBezier(cp1, cp2 Vector3) Easing {
	return Easing{Type: EasingCubicBezier, ControlPoint1: cp1, ControlPoint2: cp2}
}

// KeyFrame is one control point of a time-varying property.
//
// SpatialControlPoint1 and SpatialControlPoint2 are the outgoing and incoming
// tangents of a curved motion path. They only apply when T is [Vector3]; a
// zero pair means the value moves in a straight line.
type KeyFrame[T any] struct {
	Frame                float64
	Value                T
	Easing               Easing
	SpatialControlPoint1 Vector3
	SpatialControlPoint2 Vector3
}

// HasSpatialBezier reports whether the keyframe describes a curved motion
// path, that is T is Vector3 and at least one control point is non-zero.
func (kf KeyFrame[T]) HasSpatialBezier() bool {
	if _, ok := any(kf.Value).(Vector3); !ok {
		return false
	}
	return !kf.SpatialControlPoint1.IsZero() || !kf.SpatialControlPoint2.IsZero()
}

// Animatable is a property that is either constant or driven by keyframes.
// Keyframes are ordered by non-decreasing frame.
type Animatable[T any] struct {
	InitialValue T
	KeyFrames    []KeyFrame[T]
}

// Static returns a non-animated property holding v.
func Static[T any](v T) Animatable[T] {
	return Animatable[T]{InitialValue: v}
}

// Animated returns a property driven by kfs. The initial value is the value of
// the first keyframe; with no keyframes the zero value is used.
func Animated[T any](kfs ...KeyFrame[T]) Animatable[T] {
	a := Animatable[T]{KeyFrames: kfs}
	if len(kfs) > 0 {
		a.InitialValue = kfs[0].Value
	}
	return a
}

// Key is shorthand for a keyframe with the given easing and no spatial
// control points.
func Key[T any](frame float64, value T, easing Easing) KeyFrame[T] {
	return KeyFrame[T]{Frame: frame, Value: value, Easing: easing}
}

// IsAnimated reports whether the value changes over time. A single keyframe
// holds one value for the whole timeline and is not considered animated.
func (a Animatable[T]) IsAnimated() bool { return len(a.KeyFrames) > 1 }

// AnimatableVector3Type tags the two representations of a vector property.
type AnimatableVector3Type int

const (
	AnimatableVector3TypeVector3 AnimatableVector3Type = iota
	AnimatableVector3TypeXYZ
)

var animatableVector3TypeNames = []string{"Vector3", "XYZ"}

func (t AnimatableVector3Type) String() string {
	return enumString("AnimatableVector3Type", animatableVector3TypeNames, int(t))
}

// AnimatableVector3 is a vector property animated either as one channel or as
// three independent per-axis channels.
type AnimatableVector3 interface {
	AnimatableVector3Type() AnimatableVector3Type
	sealedVector3()
}

// AnimatableVector3Value animates a vector as a single channel.
type AnimatableVector3Value struct {
	Animatable[Vector3]
}

// AnimatableXYZ animates each axis of a vector independently.
type AnimatableXYZ struct {
	X, Y, Z Animatable[float64]
}

func (*AnimatableVector3Value) AnimatableVector3Type() AnimatableVector3Type {
	return AnimatableVector3TypeVector3
}

func (*AnimatableXYZ) AnimatableVector3Type() AnimatableVector3Type {
	return AnimatableVector3TypeXYZ
}

func (*AnimatableVector3Value) sealedVector3() {}
func (*AnimatableXYZ) sealedVector3()          {}

// StaticVector3 returns a non-animated single-channel vector property.
func StaticVector3(v Vector3) *AnimatableVector3Value {
	return &AnimatableVector3Value{Animatable: Static(v)}
}

// AnimatedVector3 returns a single-channel vector property driven by kfs.
func AnimatedVector3(kfs ...KeyFrame[Vector3]) *AnimatableVector3Value {
	return &AnimatableVector3Value{Animatable: Animated(kfs...)}
}

// keyFrameSeqs returns the keyframe sequences of v for validation.
func keyFrameSeqs(v AnimatableVector3) [][]float64 {
	switch v := v.(type) {
	case *AnimatableVector3Value:
		return [][]float64{frames(v.KeyFrames)}
	case *AnimatableXYZ:
		return [][]float64{frames(v.X.KeyFrames), frames(v.Y.KeyFrames), frames(v.Z.KeyFrames)}
	}
	return nil
}

func frames[T any](kfs []KeyFrame[T]) []float64 {
	out := make([]float64, len(kfs))
	for i, kf := range kfs {
		out[i] = kf.Frame
	}
	return out
}
