package builder

import (
	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/lottie"
)

// layerContents is the prefix shared by every layer.
func layerContents(l lottie.Layer) []doc.Item {
	b := l.Base()
	items := []doc.Item{intAttr("Index", b.Index)}
	items = append(items, objectContents(l)...)
	if b.IsHidden {
		items = append(items, boolAttr("IsHidden", true))
	}
	items = append(items,
		floatAttr("StartTime", b.StartTime),
		floatAttr("InPoint", b.InPoint),
		floatAttr("OutPoint", b.OutPoint),
	)
	if b.TimeStretch != 1 {
		items = append(items, floatAttr("TimeStretch", b.TimeStretch))
	}
	if b.Parent != nil {
		items = append(items, intAttr("Parent", *b.Parent))
	}
	items = append(items, fromTransform(b.Transform))
	for _, m := range b.Masks {
		if m == nil {
			fault("mask", m)
		}
		items = append(items, fromMask(m))
	}
	return append(items, stringerAttr("LayerMatteType", b.MatteType))
}

func fromLayer(l lottie.Layer) *doc.Element {
	if isNil(l) {
		fault("layer", l)
	}
	switch l := l.(type) {
	case *lottie.PreCompLayer:
		return doc.NewElement("PreComp", append(layerContents(l),
			floatAttr("Width", l.Width),
			floatAttr("Height", l.Height),
			optionalAttr("RefId", l.RefID),
		)...)
	case *lottie.SolidLayer:
		return doc.NewElement("Solid", append(layerContents(l),
			intAttr("Width", l.Width),
			intAttr("Height", l.Height),
			stringerAttr("Color", l.Color),
		)...)
	case *lottie.ImageLayer:
		return doc.NewElement("Image", append(layerContents(l),
			optionalAttr("RefId", l.RefID),
		)...)
	case *lottie.NullLayer:
		return doc.NewElement("Null", layerContents(l)...)
	case *lottie.ShapeLayer:
		items := layerContents(l)
		for _, c := range l.Contents {
			items = append(items, fromShapeContent(c))
		}
		return doc.NewElement("Shape", items...)
	case *lottie.TextLayer:
		return doc.NewElement("Text", layerContents(l)...)
	}
	fault("layer", l)
	return nil
}

func fromMask(m *lottie.Mask) *doc.Element {
	return doc.NewElement("Mask",
		boolAttr("Inverted", m.Inverted),
		attr("Name", m.Name),
		fromAnimatable("Points", m.Points),
		fromAnimatable("Opacity", m.Opacity),
		stringerAttr("Mode", m.Mode),
	)
}
