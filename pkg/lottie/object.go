package lottie

// ObjectType tags every [Object] variant.
type ObjectType int

const (
	ObjectTypeComposition ObjectType = iota
	ObjectTypeMarker
	ObjectTypePreCompLayer
	ObjectTypeSolidLayer
	ObjectTypeImageLayer
	ObjectTypeNullLayer
	ObjectTypeShapeLayer
	ObjectTypeTextLayer
	ObjectTypeShapeGroup
	ObjectTypeShape
	ObjectTypeEllipse
	ObjectTypeRectangle
	ObjectTypePolystar
	ObjectTypeSolidColorFill
	ObjectTypeLinearGradientFill
	ObjectTypeRadialGradientFill
	ObjectTypeSolidColorStroke
	ObjectTypeLinearGradientStroke
	ObjectTypeRadialGradientStroke
	ObjectTypeTransform
	ObjectTypeTrimPath
	ObjectTypeMergePaths
	ObjectTypeRoundedCorner
	ObjectTypeRepeater
)

var objectTypeNames = []string{
	"Composition", "Marker",
	"PreCompLayer", "SolidLayer", "ImageLayer", "NullLayer", "ShapeLayer", "TextLayer",
	"ShapeGroup", "Shape", "Ellipse", "Rectangle", "Polystar",
	"SolidColorFill", "LinearGradientFill", "RadialGradientFill",
	"SolidColorStroke", "LinearGradientStroke", "RadialGradientStroke",
	"Transform", "TrimPath", "MergePaths", "RoundedCorner", "Repeater",
}

func (t ObjectType) String() string { return enumString("ObjectType", objectTypeNames, int(t)) }

// Object is any named node of the scene graph that can be serialized on its
// own: the composition, markers, layers and shape contents.
type Object interface {
	ObjectType() ObjectType
	ObjectName() string
	sealedObject()
}

// ObjectBase holds the fields shared by every [Object].
type ObjectBase struct {
	Name string
}

// ObjectName returns the optional name of the object.
func (o *ObjectBase) ObjectName() string { return o.Name }

func (*ObjectBase) sealedObject() {}
