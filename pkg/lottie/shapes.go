package lottie

// ShapeContentType tags the [ShapeContent] variants.
type ShapeContentType int

const (
	ShapeContentTypeGroup ShapeContentType = iota
	ShapeContentTypePath
	ShapeContentTypeEllipse
	ShapeContentTypeRectangle
	ShapeContentTypePolystar
	ShapeContentTypeSolidColorFill
	ShapeContentTypeLinearGradientFill
	ShapeContentTypeRadialGradientFill
	ShapeContentTypeSolidColorStroke
	ShapeContentTypeLinearGradientStroke
	ShapeContentTypeRadialGradientStroke
	ShapeContentTypeTransform
	ShapeContentTypeTrimPath
	ShapeContentTypeMergePaths
	ShapeContentTypeRoundedCorner
	ShapeContentTypeRepeater
)

var shapeContentTypeNames = []string{
	"Group", "Path", "Ellipse", "Rectangle", "Polystar",
	"SolidColorFill", "LinearGradientFill", "RadialGradientFill",
	"SolidColorStroke", "LinearGradientStroke", "RadialGradientStroke",
	"Transform", "TrimPath", "MergePaths", "RoundedCorner", "Repeater",
}

func (t ShapeContentType) String() string {
	return enumString("ShapeContentType", shapeContentTypeNames, int(t))
}

// ShapeContent is one item in the contents of a shape layer or group.
type ShapeContent interface {
	Object
	ContentType() ShapeContentType
	ContentBase() *ShapeContentBase
	sealedShapeContent()
}

// ShapeContentBase holds the fields shared by every [ShapeContent].
// MatchName is the After Effects internal name of the item ("ADBE Vector Group").
type ShapeContentBase struct {
	ObjectBase
	MatchName string
}

// ContentBase returns the shared shape content fields.
func (c *ShapeContentBase) ContentBase() *ShapeContentBase { return c }

func (*ShapeContentBase) sealedShapeContent() {}

// ShapeGroup nests further shape contents.
type ShapeGroup struct {
	ShapeContentBase
	Contents []ShapeContent
}

// Path is a free-form bezier outline. It reports [ObjectTypeShape] as an
// object and [ShapeContentTypePath] as shape content.
type Path struct {
	ShapeContentBase
	Direction DrawingDirection
	Geometry  Animatable[PathGeometry]
}

// Ellipse is an ellipse centred at Position.
type Ellipse struct {
	ShapeContentBase
	Direction DrawingDirection
	Diameter  AnimatableVector3
	Position  AnimatableVector3
}

// Rectangle is a rectangle centred at Position.
type Rectangle struct {
	ShapeContentBase
	Direction    DrawingDirection
	Size         AnimatableVector3
	Position     AnimatableVector3
	CornerRadius Animatable[float64]
}

// Polystar is a star or regular polygon.
type Polystar struct {
	ShapeContentBase
	Direction      DrawingDirection
	StarType       PolystarType
	Points         Animatable[float64]
	Position       AnimatableVector3
	Rotation       Animatable[float64]
	InnerRadius    Animatable[float64]
	InnerRoundness Animatable[float64]
	OuterRadius    Animatable[float64]
	OuterRoundness Animatable[float64]
}

// SolidColorFill fills the preceding paths with a color.
type SolidColorFill struct {
	ShapeContentBase
	FillType FillType
	Color    Animatable[Color]
	Opacity  Animatable[float64]
}

// GradientFill holds the fields shared by linear and radial gradient fills.
type GradientFill struct {
	FillType      FillType
	Opacity       Animatable[float64]
	StartPoint    AnimatableVector3
	EndPoint      AnimatableVector3
	GradientStops Animatable[GradientStops]
}

// LinearGradientFill fills the preceding paths with a linear gradient.
type LinearGradientFill struct {
	ShapeContentBase
	GradientFill
}

// RadialGradientFill fills the preceding paths with a radial gradient.
type RadialGradientFill struct {
	ShapeContentBase
	GradientFill
	HighlightLength  Animatable[float64]
	HighlightDegrees Animatable[float64]
}

// StrokeStyle holds the non-animated line style of every stroke.
type StrokeStyle struct {
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64
}

// SolidColorStroke strokes the preceding paths with a color.
type SolidColorStroke struct {
	ShapeContentBase
	StrokeStyle
	Color       Animatable[Color]
	Opacity     Animatable[float64]
	StrokeWidth Animatable[float64]
}

// GradientStroke holds the fields shared by linear and radial gradient strokes.
type GradientStroke struct {
	StrokeStyle
	Opacity       Animatable[float64]
	StrokeWidth   Animatable[float64]
	StartPoint    AnimatableVector3
	EndPoint      AnimatableVector3
	GradientStops Animatable[GradientStops]
}

// LinearGradientStroke strokes the preceding paths with a linear gradient.
type LinearGradientStroke struct {
	ShapeContentBase
	GradientStroke
}

// RadialGradientStroke strokes the preceding paths with a radial gradient.
type RadialGradientStroke struct {
	ShapeContentBase
	GradientStroke
	HighlightLength  Animatable[float64]
	HighlightDegrees Animatable[float64]
}

// Transform positions, scales, rotates and fades a layer or group.
type Transform struct {
	ShapeContentBase
	Anchor       AnimatableVector3
	Position     AnimatableVector3
	ScalePercent AnimatableVector3
	Rotation     Animatable[float64]
	Opacity      Animatable[float64]
}

// IdentityTransform returns a static transform that leaves content unchanged.
func IdentityTransform() *Transform {
	return &Transform{
		Anchor:       StaticVector3(Vector3{}),
		Position:     StaticVector3(Vector3{}),
		ScalePercent: StaticVector3(Vector3{X: 100, Y: 100, Z: 100}),
		Rotation:     Static(0.0),
		Opacity:      Static(100.0),
	}
}

// TrimPath trims the preceding paths to a percentage range.
type TrimPath struct {
	ShapeContentBase
	TrimPathType TrimType
	StartTrim    Animatable[float64]
	EndTrim      Animatable[float64]
	Offset       Animatable[float64]
}

// MergePaths combines the preceding paths with a boolean operation.
type MergePaths struct {
	ShapeContentBase
	Mode MergeMode
}

// RoundedCorner rounds the corners of the preceding paths.
type RoundedCorner struct {
	ShapeContentBase
	Radius Animatable[float64]
}

// Repeater draws Count copies of the preceding contents, each offset by
// Transform.
type Repeater struct {
	ShapeContentBase
	Count     Animatable[float64]
	Offset    Animatable[float64]
	Transform *Transform
}

func (*ShapeGroup) ObjectType() ObjectType           { return ObjectTypeShapeGroup }
func (*Path) ObjectType() ObjectType                 { return ObjectTypeShape }
func (*Ellipse) ObjectType() ObjectType              { return ObjectTypeEllipse }
func (*Rectangle) ObjectType() ObjectType            { return ObjectTypeRectangle }
func (*Polystar) ObjectType() ObjectType             { return ObjectTypePolystar }
func (*SolidColorFill) ObjectType() ObjectType       { return ObjectTypeSolidColorFill }
func (*LinearGradientFill) ObjectType() ObjectType   { return ObjectTypeLinearGradientFill }
func (*RadialGradientFill) ObjectType() ObjectType   { return ObjectTypeRadialGradientFill }
func (*SolidColorStroke) ObjectType() ObjectType     { return ObjectTypeSolidColorStroke }
func (*LinearGradientStroke) ObjectType() ObjectType { return ObjectTypeLinearGradientStroke }
func (*RadialGradientStroke) ObjectType() ObjectType { return ObjectTypeRadialGradientStroke }
func (*Transform) ObjectType() ObjectType            { return ObjectTypeTransform }
func (*TrimPath) ObjectType() ObjectType             { return ObjectTypeTrimPath }
func (*MergePaths) ObjectType() ObjectType           { return ObjectTypeMergePaths }
func (*RoundedCorner) ObjectType() ObjectType        { return ObjectTypeRoundedCorner }
func (*Repeater) ObjectType() ObjectType             { return ObjectTypeRepeater }

func (*ShapeGroup) ContentType() ShapeContentType         { return ShapeContentTypeGroup }
func (*Path) ContentType() ShapeContentType               { return ShapeContentTypePath }
func (*Ellipse) ContentType() ShapeContentType            { return ShapeContentTypeEllipse }
func (*Rectangle) ContentType() ShapeContentType          { return ShapeContentTypeRectangle }
func (*Polystar) ContentType() ShapeContentType           { return ShapeContentTypePolystar }
func (*SolidColorFill) ContentType() ShapeContentType     { return ShapeContentTypeSolidColorFill }
func (*LinearGradientFill) ContentType() ShapeContentType { return ShapeContentTypeLinearGradientFill }
func (*RadialGradientFill) ContentType() ShapeContentType { return ShapeContentTypeRadialGradientFill }
func (*SolidColorStroke) ContentType() ShapeContentType   { return ShapeContentTypeSolidColorStroke }
func (*LinearGradientStroke) ContentType() ShapeContentType {
	return ShapeContentTypeLinearGradientStroke
}
func (*RadialGradientStroke) ContentType() ShapeContentType {
	return ShapeContentTypeRadialGradientStroke
}
func (*Transform) ContentType() ShapeContentType     { return ShapeContentTypeTransform }
func (*TrimPath) ContentType() ShapeContentType      { return ShapeContentTypeTrimPath }
func (*MergePaths) ContentType() ShapeContentType    { return ShapeContentTypeMergePaths }
func (*RoundedCorner) ContentType() ShapeContentType { return ShapeContentTypeRoundedCorner }
func (*Repeater) ContentType() ShapeContentType      { return ShapeContentTypeRepeater }

// Mask clips a layer to an animated outline.
type Mask struct {
	Inverted bool
	Name     string
	Points   Animatable[PathGeometry]
	Opacity  Animatable[float64]
	Mode     MaskMode
}
