package builder

import (
	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/lottie"
)

// shapeContentContents is the prefix shared by every shape content.
func shapeContentContents(c lottie.ShapeContent) []doc.Item {
	items := objectContents(c)
	return append(items, optionalAttr("MatchName", c.ContentBase().MatchName))
}

func strokeStyle(s lottie.StrokeStyle) []doc.Item {
	return []doc.Item{
		stringerAttr("LineCap", s.LineCap),
		stringerAttr("LineJoin", s.LineJoin),
		floatAttr("MiterLimit", s.MiterLimit),
	}
}

func fromShapeContent(c lottie.ShapeContent) *doc.Element {
	if isNil(c) {
		fault("shape content", c)
	}
	items := shapeContentContents(c)
	switch c := c.(type) {
	case *lottie.ShapeGroup:
		for _, child := range c.Contents {
			items = append(items, fromShapeContent(child))
		}
		return doc.NewElement("Group", items...)

	case *lottie.Path:
		return doc.NewElement("Path", append(items,
			stringerAttr("Direction", c.Direction),
			fromAnimatable("Geometry", c.Geometry),
		)...)

	case *lottie.Ellipse:
		return doc.NewElement("Ellipse", append(items,
			fromVector3("Diameter", c.Diameter),
			fromVector3("Position", c.Position),
			stringerAttr("Direction", c.Direction),
		)...)

	case *lottie.Rectangle:
		return doc.NewElement("Rectangle", append(items,
			fromVector3("Size", c.Size),
			fromVector3("Position", c.Position),
			fromAnimatable("CornerRadius", c.CornerRadius),
			stringerAttr("Direction", c.Direction),
		)...)

	case *lottie.Polystar:
		return doc.NewElement("Polystar", append(items,
			stringerAttr("Direction", c.Direction),
			stringerAttr("StarType", c.StarType),
			fromAnimatable("Points", c.Points),
			fromVector3("Position", c.Position),
			fromAnimatable("Rotation", c.Rotation),
			fromAnimatable("InnerRadius", c.InnerRadius),
			fromAnimatable("InnerRoundness", c.InnerRoundness),
			fromAnimatable("OuterRadius", c.OuterRadius),
			fromAnimatable("OuterRoundness", c.OuterRoundness),
		)...)

	case *lottie.SolidColorFill:
		return doc.NewElement("SolidColorFill", append(items,
			fromAnimatable("Color", c.Color),
			fromAnimatable("Opacity", c.Opacity),
			stringerAttr("FillType", c.FillType),
		)...)

	case *lottie.LinearGradientFill:
		return doc.NewElement("LinearGradientFill", append(items, gradientFill(c.GradientFill)...)...)

	case *lottie.RadialGradientFill:
		items = append(items, gradientFill(c.GradientFill)...)
		return doc.NewElement("RadialGradientFill", append(items,
			fromAnimatable("HighlightLength", c.HighlightLength),
			fromAnimatable("HighlightDegrees", c.HighlightDegrees),
		)...)

	case *lottie.SolidColorStroke:
		items = append(items,
			fromAnimatable("Color", c.Color),
			fromAnimatable("Opacity", c.Opacity),
			fromAnimatable("StrokeWidth", c.StrokeWidth),
		)
		return doc.NewElement("SolidColorStroke", append(items, strokeStyle(c.StrokeStyle)...)...)

	case *lottie.LinearGradientStroke:
		items = append(items, gradientStroke(c.GradientStroke)...)
		return doc.NewElement("LinearGradientStroke", append(items, strokeStyle(c.StrokeStyle)...)...)

	case *lottie.RadialGradientStroke:
		items = append(items, gradientStroke(c.GradientStroke)...)
		items = append(items,
			fromAnimatable("HighlightLength", c.HighlightLength),
			fromAnimatable("HighlightDegrees", c.HighlightDegrees),
		)
		return doc.NewElement("RadialGradientStroke", append(items, strokeStyle(c.StrokeStyle)...)...)

	case *lottie.Transform:
		return fromTransform(c)

	case *lottie.TrimPath:
		return doc.NewElement("TrimPath", append(items,
			fromAnimatable("StartTrim", c.StartTrim),
			fromAnimatable("EndTrim", c.EndTrim),
			fromAnimatable("Offset", c.Offset),
			stringerAttr("TrimPathType", c.TrimPathType),
		)...)

	case *lottie.MergePaths:
		return doc.NewElement("MergePaths", append(items,
			stringerAttr("Mode", c.Mode),
		)...)

	case *lottie.RoundedCorner:
		return doc.NewElement("RoundedCorner", append(items,
			fromAnimatable("Radius", c.Radius),
		)...)

	case *lottie.Repeater:
		return doc.NewElement("Repeater", append(items,
			fromAnimatable("Count", c.Count),
			fromAnimatable("Offset", c.Offset),
			fromTransform(c.Transform),
		)...)
	}
	fault("shape content", c)
	return nil
}

func gradientFill(g lottie.GradientFill) []doc.Item {
	return []doc.Item{
		fromAnimatable("GradientStops", g.GradientStops),
		fromAnimatable("Opacity", g.Opacity),
		fromVector3("StartPoint", g.StartPoint),
		fromVector3("EndPoint", g.EndPoint),
		stringerAttr("FillType", g.FillType),
	}
}

func gradientStroke(g lottie.GradientStroke) []doc.Item {
	return []doc.Item{
		fromAnimatable("Opacity", g.Opacity),
		fromAnimatable("StrokeWidth", g.StrokeWidth),
		fromVector3("StartPoint", g.StartPoint),
		fromVector3("EndPoint", g.EndPoint),
		fromAnimatable("GradientStops", g.GradientStops),
	}
}

// fromTransform is used for layer transforms, transforms inside shape
// contents and repeater transforms alike.
func fromTransform(t *lottie.Transform) *doc.Element {
	if t == nil {
		fault("transform", t)
	}
	return doc.NewElement("Transform", append(shapeContentContents(t),
		fromVector3("ScalePercent", t.ScalePercent),
		fromVector3("Position", t.Position),
		fromVector3("Anchor", t.Anchor),
		fromAnimatable("Opacity", t.Opacity),
		fromAnimatable("Rotation", t.Rotation),
	)...)
}
