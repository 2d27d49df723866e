package lottie

import (
	"fmt"
	"reflect"

	"github.com/matzehuels/lottiedoc/pkg/errors"
)

// Validate checks the structural invariants consumers of a composition rely
// on:
//
//   - layer indices are unique within each layer collection
//   - a layer's Parent refers to another layer of the same collection
//   - every layer has a transform and no collection holds nil entries
//   - keyframes are ordered by non-decreasing frame
//   - vector properties are set
//   - asset ids are unique and every RefID resolves to an asset of the
//     matching kind
//
// The first violation is returned as an *errors.Error with code
// INVALID_COMPOSITION.
func Validate(c *Composition) error {
	if c == nil {
		return errors.New(errors.ErrCodeInvalidComposition, "composition is nil")
	}
	v := validator{assets: c.Assets}
	if err := v.assetIDs(); err != nil {
		return err
	}
	for _, a := range c.Assets.All() {
		if lc, ok := a.(*LayerCollectionAsset); ok {
			if err := v.layers("asset "+lc.ID, lc.Layers); err != nil {
				return err
			}
		}
	}
	if err := v.layers("composition", c.Layers); err != nil {
		return err
	}
	for i, m := range c.Markers {
		if m == nil {
			return invalid("marker %d is nil", i)
		}
	}
	return nil
}

type validator struct {
	assets *AssetCollection
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidComposition, format, args...)
}

func (v validator) assetIDs() error {
	seen := make(map[string]bool, v.assets.Len())
	for i, a := range v.assets.All() {
		if isNil(a) {
			return invalid("asset %d is nil", i)
		}
		id := a.AssetID()
		if id == "" {
			return invalid("asset %d has an empty id", i)
		}
		if seen[id] {
			return invalid("duplicate asset id %q", id)
		}
		seen[id] = true
	}
	return nil
}

func (v validator) layers(scope string, lc *LayerCollection) error {
	indices := make(map[int]bool, lc.Len())
	for i, l := range lc.BottomToTop() {
		if isNil(l) {
			return invalid("%s: layer %d is nil", scope, i)
		}
		idx := l.Base().Index
		if indices[idx] {
			return invalid("%s: duplicate layer index %d", scope, idx)
		}
		indices[idx] = true
	}

	for _, l := range lc.BottomToTop() {
		b := l.Base()
		where := fmt.Sprintf("%s: layer %d", scope, b.Index)
		if b.Parent != nil {
			if *b.Parent == b.Index {
				return invalid("%s is its own parent", where)
			}
			if !indices[*b.Parent] {
				return invalid("%s has unknown parent %d", where, *b.Parent)
			}
		}
		if b.Transform == nil {
			return invalid("%s has no transform", where)
		}
		if err := v.transform(where, b.Transform); err != nil {
			return err
		}
		for i, m := range b.Masks {
			if m == nil {
				return invalid("%s: mask %d is nil", where, i)
			}
			if err := ordered(where+" mask "+m.Name+" points", frames(m.Points.KeyFrames)); err != nil {
				return err
			}
			if err := ordered(where+" mask "+m.Name+" opacity", frames(m.Opacity.KeyFrames)); err != nil {
				return err
			}
		}
		if err := v.layer(where, l); err != nil {
			return err
		}
	}
	return nil
}

func (v validator) layer(where string, l Layer) error {
	switch l := l.(type) {
	case *PreCompLayer:
		if l.RefID == "" {
			return nil
		}
		a, ok := v.assets.Lookup(l.RefID)
		if !ok {
			return invalid("%s references unknown asset %q", where, l.RefID)
		}
		if _, ok := a.(*LayerCollectionAsset); !ok {
			return invalid("%s references %q which is not a precomposition", where, l.RefID)
		}
	case *ImageLayer:
		if l.RefID == "" {
			return nil
		}
		a, ok := v.assets.Lookup(l.RefID)
		if !ok {
			return invalid("%s references unknown asset %q", where, l.RefID)
		}
		if _, ok := a.(ImageAsset); !ok {
			return invalid("%s references %q which is not an image", where, l.RefID)
		}
	case *ShapeLayer:
		return v.contents(where, l.Contents)
	}
	return nil
}

func (v validator) contents(where string, contents []ShapeContent) error {
	for i, c := range contents {
		if isNil(c) {
			return invalid("%s: shape content %d is nil", where, i)
		}
		at := fmt.Sprintf("%s: %s %q", where, c.ContentType(), c.ObjectName())
		if err := v.content(at, c); err != nil {
			return err
		}
	}
	return nil
}

func (v validator) content(at string, c ShapeContent) error {
	var seqs [][]float64
	var vectors []AnimatableVector3
	switch c := c.(type) {
	case *ShapeGroup:
		return v.contents(at, c.Contents)
	case *Path:
		seqs = append(seqs, frames(c.Geometry.KeyFrames))
	case *Ellipse:
		vectors = append(vectors, c.Diameter, c.Position)
	case *Rectangle:
		vectors = append(vectors, c.Size, c.Position)
		seqs = append(seqs, frames(c.CornerRadius.KeyFrames))
	case *Polystar:
		vectors = append(vectors, c.Position)
		seqs = append(seqs, frames(c.Points.KeyFrames), frames(c.Rotation.KeyFrames),
			frames(c.InnerRadius.KeyFrames), frames(c.InnerRoundness.KeyFrames),
			frames(c.OuterRadius.KeyFrames), frames(c.OuterRoundness.KeyFrames))
	case *SolidColorFill:
		seqs = append(seqs, frames(c.Color.KeyFrames), frames(c.Opacity.KeyFrames))
	case *LinearGradientFill:
		vectors = append(vectors, c.StartPoint, c.EndPoint)
		seqs = append(seqs, frames(c.Opacity.KeyFrames), frames(c.GradientStops.KeyFrames))
	case *RadialGradientFill:
		vectors = append(vectors, c.StartPoint, c.EndPoint)
		seqs = append(seqs, frames(c.Opacity.KeyFrames), frames(c.GradientStops.KeyFrames),
			frames(c.HighlightLength.KeyFrames), frames(c.HighlightDegrees.KeyFrames))
	case *SolidColorStroke:
		seqs = append(seqs, frames(c.Color.KeyFrames), frames(c.Opacity.KeyFrames), frames(c.StrokeWidth.KeyFrames))
	case *LinearGradientStroke:
		vectors = append(vectors, c.StartPoint, c.EndPoint)
		seqs = append(seqs, frames(c.Opacity.KeyFrames), frames(c.StrokeWidth.KeyFrames),
			frames(c.GradientStops.KeyFrames))
	case *RadialGradientStroke:
		vectors = append(vectors, c.StartPoint, c.EndPoint)
		seqs = append(seqs, frames(c.Opacity.KeyFrames), frames(c.StrokeWidth.KeyFrames),
			frames(c.GradientStops.KeyFrames), frames(c.HighlightLength.KeyFrames),
			frames(c.HighlightDegrees.KeyFrames))
	case *Transform:
		return v.transform(at, c)
	case *TrimPath:
		seqs = append(seqs, frames(c.StartTrim.KeyFrames), frames(c.EndTrim.KeyFrames), frames(c.Offset.KeyFrames))
	case *RoundedCorner:
		seqs = append(seqs, frames(c.Radius.KeyFrames))
	case *Repeater:
		seqs = append(seqs, frames(c.Count.KeyFrames), frames(c.Offset.KeyFrames))
		if c.Transform == nil {
			return invalid("%s has no transform", at)
		}
		if err := v.transform(at, c.Transform); err != nil {
			return err
		}
	}
	return checkAll(at, seqs, vectors)
}

func (v validator) transform(at string, t *Transform) error {
	return checkAll(at+" transform",
		[][]float64{frames(t.Rotation.KeyFrames), frames(t.Opacity.KeyFrames)},
		[]AnimatableVector3{t.Anchor, t.Position, t.ScalePercent})
}

func checkAll(at string, seqs [][]float64, vectors []AnimatableVector3) error {
	for _, vec := range vectors {
		if isNil(vec) {
			return invalid("%s has an unset vector property", at)
		}
		seqs = append(seqs, keyFrameSeqs(vec)...)
	}
	for _, s := range seqs {
		if err := ordered(at, s); err != nil {
			return err
		}
	}
	return nil
}

// isNil reports whether v is nil or a nil pointer held in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func ordered(at string, frames []float64) error {
	for i := 1; i < len(frames); i++ {
		if frames[i] < frames[i-1] {
			return invalid("%s: keyframe at frame %s precedes frame %s",
				at, FormatFloat(frames[i]), FormatFloat(frames[i-1]))
		}
	}
	return nil
}
