// Package builder turns a Lottie scene graph into a [doc.Document].
//
// The builder walks the scene graph depth first and emits one element per
// node. Scalars become attributes; nested objects become child elements.
// Optional fields are left out when they hold their default (a blank name, a
// time stretch of 1, no parent), so two documents only differ where the scene
// graphs differ.
//
// # Animatable properties
//
// A property that does not change over time is emitted as an attribute
// holding its value. An animated property becomes a child element whose text
// lists its keyframes as value@frame(easing), separated by ", ":
//
//	<Transform Rotation="0">
//	  <Opacity>0@0(Linear), 100@30(Linear)</Opacity>
//	</Transform>
//
// A vector keyframe with a curved motion path is written as
// SpatialBezier:value,cp1,cp2@frame(easing). Per-axis vectors become an
// element with X, Y and Z, each following the same rule.
//
// # Ordering
//
// Layers are emitted top-to-bottom, the reverse of their storage order in a
// [lottie.LayerCollection]. Everything else keeps the order of the input.
//
// # Errors
//
// The builder trusts its input; run [lottie.Validate] first when the scene
// graph comes from outside. The only failure is a node whose variant the
// builder does not know, including a nil layer, shape content or vector
// property. It is reported as an [errors.ErrCodeUnreachable] error wrapping a
// [*Fault], and no partial document is returned.
//
// Build functions hold no state and may be called concurrently.
package builder

import (
	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/lottie"
)

// Build returns the document for a composition, rooted at LottieComposition.
func Build(c *lottie.Composition) (*doc.Document, error) {
	return guard(func() *doc.Document {
		if c == nil {
			fault("composition", c)
		}
		return doc.New(fromComposition(c))
	})
}

// BuildObject returns a document rooted at the element for any top-level
// object: a composition, a marker, a layer or a shape content.
func BuildObject(o lottie.Object) (*doc.Document, error) {
	return guard(func() *doc.Document {
		return doc.New(fromObject(o))
	})
}

// BuildAsset returns the element for a single asset.
func BuildAsset(a lottie.Asset) (*doc.Element, error) {
	return guard(func() *doc.Element { return fromAsset(a) })
}

// BuildLayer returns the element for a single layer.
func BuildLayer(l lottie.Layer) (*doc.Element, error) {
	return guard(func() *doc.Element { return fromLayer(l) })
}

// BuildShapeContent returns the element for a single shape content.
func BuildShapeContent(c lottie.ShapeContent) (*doc.Element, error) {
	return guard(func() *doc.Element { return fromShapeContent(c) })
}

// BuildMask returns the element for a single mask.
func BuildMask(m *lottie.Mask) (*doc.Element, error) {
	return guard(func() *doc.Element {
		if m == nil {
			fault("mask", m)
		}
		return fromMask(m)
	})
}

// BuildMarker returns the element for a single marker.
func BuildMarker(m *lottie.Marker) (*doc.Element, error) {
	return guard(func() *doc.Element {
		if m == nil {
			fault("marker", m)
		}
		return fromMarker(m)
	})
}

// BuildTransform returns the element for a single transform.
func BuildTransform(t *lottie.Transform) (*doc.Element, error) {
	return guard(func() *doc.Element { return fromTransform(t) })
}

// fromObject dispatches on the top-level object family.
func fromObject(o lottie.Object) *doc.Element {
	switch o := o.(type) {
	case *lottie.Composition:
		if o != nil {
			return fromComposition(o)
		}
	case *lottie.Marker:
		if o != nil {
			return fromMarker(o)
		}
	case lottie.Layer:
		return fromLayer(o)
	case lottie.ShapeContent:
		return fromShapeContent(o)
	}
	fault("object", o)
	return nil
}

// guard runs build and converts a dispatch fault into an error. Any other
// panic is a bug and propagates.
func guard[T any](build func() T) (out T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		f, ok := r.(*Fault)
		if !ok {
			panic(r)
		}
		var zero T
		out = zero
		err = errors.Wrap(errors.ErrCodeUnreachable, f, "build document")
	}()
	return build(), nil
}
