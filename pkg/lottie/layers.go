package lottie

import "slices"

// LayerType tags the [Layer] variants.
type LayerType int

const (
	LayerTypePreComp LayerType = iota
	LayerTypeSolid
	LayerTypeImage
	LayerTypeNull
	LayerTypeShape
	LayerTypeText
)

var layerTypeNames = []string{"PreComp", "Solid", "Image", "Null", "Shape", "Text"}

func (t LayerType) String() string { return enumString("LayerType", layerTypeNames, int(t)) }

// Layer is one layer of a composition or of a precomposition asset.
type Layer interface {
	Object
	LayerType() LayerType
	Base() *LayerBase
	sealedLayer()
}

// LayerBase holds the fields shared by every [Layer].
//
// Parent refers to the Index of another layer in the same collection; it is a
// lookup key, not ownership. TimeStretch defaults to 1.
type LayerBase struct {
	ObjectBase
	Index       int
	IsHidden    bool
	StartTime   float64
	InPoint     float64
	OutPoint    float64
	TimeStretch float64
	Parent      *int
	Transform   *Transform
	Masks       []*Mask
	MatteType   MatteType
}

// Base returns the shared layer fields.
func (l *LayerBase) Base() *LayerBase { return l }

func (*LayerBase) sealedLayer() {}

// ParentIndex returns a pointer to i, for use as [LayerBase.Parent].
func ParentIndex(i int) *int { return &i }

// PreCompLayer renders the layers of a [LayerCollectionAsset].
type PreCompLayer struct {
	LayerBase
	Width  float64
	Height float64
	RefID  string
}

// SolidLayer is a rectangle of solid color.
type SolidLayer struct {
	LayerBase
	Width  int
	Height int
	Color  Color
}

// ImageLayer renders an [ImageAsset].
type ImageLayer struct {
	LayerBase
	RefID string
}

// NullLayer renders nothing; it exists to parent other layers.
type NullLayer struct {
	LayerBase
}

// ShapeLayer renders vector shape contents.
type ShapeLayer struct {
	LayerBase
	Contents []ShapeContent
}

// TextLayer renders text. Text documents are not part of this model.
type TextLayer struct {
	LayerBase
}

func (*PreCompLayer) ObjectType() ObjectType { return ObjectTypePreCompLayer }
func (*SolidLayer) ObjectType() ObjectType   { return ObjectTypeSolidLayer }
func (*ImageLayer) ObjectType() ObjectType   { return ObjectTypeImageLayer }
func (*NullLayer) ObjectType() ObjectType    { return ObjectTypeNullLayer }
func (*ShapeLayer) ObjectType() ObjectType   { return ObjectTypeShapeLayer }
func (*TextLayer) ObjectType() ObjectType    { return ObjectTypeTextLayer }

func (*PreCompLayer) LayerType() LayerType { return LayerTypePreComp }
func (*SolidLayer) LayerType() LayerType   { return LayerTypeSolid }
func (*ImageLayer) LayerType() LayerType   { return LayerTypeImage }
func (*NullLayer) LayerType() LayerType    { return LayerTypeNull }
func (*ShapeLayer) LayerType() LayerType   { return LayerTypeShape }
func (*TextLayer) LayerType() LayerType    { return LayerTypeText }

// LayerCollection is an ordered set of layers, stored bottom-to-top: the first
// layer is drawn first and ends up underneath all others.
type LayerCollection struct {
	layers []Layer
}

// NewLayerCollection returns a collection holding layers in bottom-to-top
// order.
func NewLayerCollection(bottomToTop ...Layer) *LayerCollection {
	return &LayerCollection{layers: bottomToTop}
}

// BottomToTop returns the layers in storage (paint) order. The slice must not
// be modified.
func (c *LayerCollection) BottomToTop() []Layer {
	if c == nil {
		return nil
	}
	return c.layers
}

// TopToBottom returns a new slice with the layers in z-order, topmost first.
func (c *LayerCollection) TopToBottom() []Layer {
	out := slices.Clone(c.BottomToTop())
	slices.Reverse(out)
	return out
}

// Len returns the number of layers.
func (c *LayerCollection) Len() int { return len(c.BottomToTop()) }

// ByIndex returns the layer whose Index is i.
func (c *LayerCollection) ByIndex(i int) (Layer, bool) {
	for _, l := range c.BottomToTop() {
		if l != nil && l.Base().Index == i {
			return l, true
		}
	}
	return nil, false
}
