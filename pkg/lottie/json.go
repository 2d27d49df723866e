package lottie

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the vector as [x, y, z].
func (v Vector3) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{v.X, v.Y, v.Z})
}

// UnmarshalJSON accepts [x, y] or [x, y, z].
func (v *Vector3) UnmarshalJSON(data []byte) error {
	var xs []float64
	if err := json.Unmarshal(data, &xs); err != nil {
		return fmt.Errorf("vector: %w", err)
	}
	switch len(xs) {
	case 2:
		*v = Vector3{X: xs[0], Y: xs[1]}
	case 3:
		*v = Vector3{X: xs[0], Y: xs[1], Z: xs[2]}
	default:
		return fmt.Errorf("vector: want 2 or 3 components, got %d", len(xs))
	}
	return nil
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (v Version) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

type pathJSON struct {
	Segments [][4]Vector3 `json:"segments"`
	Closed   bool         `json:"closed,omitempty"`
}

// MarshalJSON encodes the geometry as {"segments": [[p0, p1, p2, p3], ...], "closed": bool}.
func (p PathGeometry) MarshalJSON() ([]byte, error) {
	out := pathJSON{Segments: make([][4]Vector3, len(p.Segments)), Closed: p.IsClosed}
	for i, s := range p.Segments {
		out.Segments[i] = [4]Vector3{s.ControlPoint0, s.ControlPoint1, s.ControlPoint2, s.ControlPoint3}
	}
	return json.Marshal(out)
}

func (p *PathGeometry) UnmarshalJSON(data []byte) error {
	var in pathJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("path: %w", err)
	}
	p.IsClosed = in.Closed
	p.Segments = make([]BezierSegment, len(in.Segments))
	for i, s := range in.Segments {
		p.Segments[i] = BezierSegment{s[0], s[1], s[2], s[3]}
	}
	return nil
}

type gradientStopJSON struct {
	Offset float64 `json:"offset"`
	Color  Color   `json:"color"`
}

func (s GradientStop) MarshalJSON() ([]byte, error) {
	return json.Marshal(gradientStopJSON(s))
}

func (s *GradientStop) UnmarshalJSON(data []byte) error {
	var in gradientStopJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("gradient stop: %w", err)
	}
	*s = GradientStop(in)
	return nil
}

type easingJSON struct {
	Type          EasingType `json:"type"`
	ControlPoint1 Vector3    `json:"cp1"`
	ControlPoint2 Vector3    `json:"cp2"`
}

// MarshalJSON encodes Linear and Hold as their names and cubic-bezier easings
// as {"type": "CubicBezier", "cp1": [...], "cp2": [...]}.
func (e Easing) MarshalJSON() ([]byte, error) {
	if e.Type != EasingCubicBezier {
		return json.Marshal(e.Type)
	}
	return json.Marshal(easingJSON(e))
}

func (e *Easing) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		var t EasingType
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("easing: %w", err)
		}
		*e = Easing{Type: t}
		return nil
	}
	var in easingJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("easing: %w", err)
	}
	*e = Easing(in)
	return nil
}

type keyFrameJSON[T any] struct {
	Frame                float64  `json:"frame"`
	Value                T        `json:"value"`
	Easing               Easing   `json:"easing"`
	SpatialControlPoint1 *Vector3 `json:"spatialControlPoint1,omitempty"`
	SpatialControlPoint2 *Vector3 `json:"spatialControlPoint2,omitempty"`
}

type animatedJSON[T any] struct {
	KeyFrames []keyFrameJSON[T] `json:"keyframes"`
}

// MarshalJSON encodes a property without keyframes as its bare value and a
// keyframed property as {"keyframes": [...]}.
func (a Animatable[T]) MarshalJSON() ([]byte, error) {
	if len(a.KeyFrames) == 0 {
		return json.Marshal(a.InitialValue)
	}
	out := animatedJSON[T]{KeyFrames: make([]keyFrameJSON[T], len(a.KeyFrames))}
	for i, kf := range a.KeyFrames {
		k := keyFrameJSON[T]{Frame: kf.Frame, Value: kf.Value, Easing: kf.Easing}
		if kf.HasSpatialBezier() {
			cp1, cp2 := kf.SpatialControlPoint1, kf.SpatialControlPoint2
			k.SpatialControlPoint1, k.SpatialControlPoint2 = &cp1, &cp2
		}
		out.KeyFrames[i] = k
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts either form produced by MarshalJSON. Keyframe easing
// defaults to Linear.
func (a *Animatable[T]) UnmarshalJSON(data []byte) error {
	if isKeyframed(data) {
		var in animatedJSON[T]
		if err := json.Unmarshal(data, &in); err != nil {
			return err
		}
		kfs := make([]KeyFrame[T], len(in.KeyFrames))
		for i, k := range in.KeyFrames {
			kfs[i] = KeyFrame[T]{Frame: k.Frame, Value: k.Value, Easing: k.Easing}
			if k.SpatialControlPoint1 != nil {
				kfs[i].SpatialControlPoint1 = *k.SpatialControlPoint1
			}
			if k.SpatialControlPoint2 != nil {
				kfs[i].SpatialControlPoint2 = *k.SpatialControlPoint2
			}
		}
		*a = Animated(kfs...)
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = Static(v)
	return nil
}

// MarshalJSON encodes the single channel like [Animatable].
func (v *AnimatableVector3Value) MarshalJSON() ([]byte, error) {
	return v.Animatable.MarshalJSON()
}

type xyzJSON struct {
	X Animatable[float64] `json:"x"`
	Y Animatable[float64] `json:"y"`
	Z Animatable[float64] `json:"z"`
}

// MarshalJSON encodes the per-axis channels as {"x": ..., "y": ..., "z": ...}.
func (v *AnimatableXYZ) MarshalJSON() ([]byte, error) {
	return json.Marshal(xyzJSON{X: v.X, Y: v.Y, Z: v.Z})
}

// UnmarshalVector3 decodes either representation of a vector property. An
// object with an "x" key is read as per-axis channels; anything else as a
// single channel.
func UnmarshalVector3(data []byte) (AnimatableVector3, error) {
	if hasKey(data, "x") {
		var in xyzJSON
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, err
		}
		return &AnimatableXYZ{X: in.X, Y: in.Y, Z: in.Z}, nil
	}
	var v AnimatableVector3Value
	if err := v.Animatable.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return &v, nil
}

func isJSONString(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '"'
}

func isKeyframed(data []byte) bool { return hasKey(data, "keyframes") }

func hasKey(data []byte, key string) bool {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return false
	}
	_, ok := obj[key]
	return ok
}
