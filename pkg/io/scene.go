package io

import (
	"encoding/json"

	"github.com/matzehuels/lottiedoc/pkg/lottie"
)

type (
	anim      = lottie.Animatable[float64]
	animColor = lottie.Animatable[lottie.Color]
	animPath  = lottie.Animatable[lottie.PathGeometry]
	animStops = lottie.Animatable[lottie.GradientStops]
)

type sceneJSON struct {
	Version  lottie.Version `json:"version"`
	Name     string         `json:"name,omitempty"`
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	InPoint  float64        `json:"inPoint"`
	OutPoint float64        `json:"outPoint"`
	Assets   []assetJSON    `json:"assets,omitempty"`
	Layers   []layerJSON    `json:"layers"`
	Markers  []markerJSON   `json:"markers,omitempty"`
}

type markerJSON struct {
	Name       string  `json:"name,omitempty"`
	Frame      float64 `json:"frame"`
	DurationMs float64 `json:"durationMs"`
}

type assetJSON struct {
	Type     string      `json:"type"`
	ID       string      `json:"id"`
	Width    float64     `json:"width,omitempty"`
	Height   float64     `json:"height,omitempty"`
	Format   string      `json:"format,omitempty"`
	Data     []byte      `json:"data,omitempty"`
	Path     string      `json:"path,omitempty"`
	FileName string      `json:"fileName,omitempty"`
	Layers   []layerJSON `json:"layers,omitempty"`
}

type layerJSON struct {
	Type        string           `json:"type"`
	Index       int              `json:"index"`
	Name        string           `json:"name,omitempty"`
	Hidden      bool             `json:"hidden,omitempty"`
	StartTime   float64          `json:"startTime,omitempty"`
	InPoint     float64          `json:"inPoint"`
	OutPoint    float64          `json:"outPoint"`
	TimeStretch *float64         `json:"timeStretch,omitempty"`
	Parent      *int             `json:"parent,omitempty"`
	Transform   *contentJSON     `json:"transform,omitempty"`
	Masks       []maskJSON       `json:"masks,omitempty"`
	Matte       lottie.MatteType `json:"matte,omitempty"`

	Width    float64       `json:"width,omitempty"`
	Height   float64       `json:"height,omitempty"`
	RefID    string        `json:"refId,omitempty"`
	Color    *lottie.Color `json:"color,omitempty"`
	Contents []contentJSON `json:"contents,omitempty"`
}

type maskJSON struct {
	Name     string          `json:"name,omitempty"`
	Inverted bool            `json:"inverted,omitempty"`
	Mode     lottie.MaskMode `json:"mode,omitempty"`
	Points   *animPath       `json:"points,omitempty"`
	Opacity  *anim           `json:"opacity,omitempty"`
}

// contentJSON is the union of every shape content. Fields that a content
// type does not use are left empty.
type contentJSON struct {
	Type      string                  `json:"type,omitempty"`
	Name      string                  `json:"name,omitempty"`
	MatchName string                  `json:"matchName,omitempty"`
	Direction lottie.DrawingDirection `json:"direction,omitempty"`

	Contents []contentJSON `json:"contents,omitempty"`
	Geometry *animPath     `json:"geometry,omitempty"`

	Diameter       *vector             `json:"diameter,omitempty"`
	Size           *vector             `json:"size,omitempty"`
	Position       *vector             `json:"position,omitempty"`
	CornerRadius   *anim               `json:"cornerRadius,omitempty"`
	StarType       lottie.PolystarType `json:"starType,omitempty"`
	Points         *anim               `json:"points,omitempty"`
	InnerRadius    *anim               `json:"innerRadius,omitempty"`
	InnerRoundness *anim               `json:"innerRoundness,omitempty"`
	OuterRadius    *anim               `json:"outerRadius,omitempty"`
	OuterRoundness *anim               `json:"outerRoundness,omitempty"`

	FillType         lottie.FillType `json:"fillType,omitempty"`
	Color            *animColor      `json:"color,omitempty"`
	Opacity          *anim           `json:"opacity,omitempty"`
	StrokeWidth      *anim           `json:"strokeWidth,omitempty"`
	LineCap          lottie.LineCap  `json:"lineCap,omitempty"`
	LineJoin         lottie.LineJoin `json:"lineJoin,omitempty"`
	MiterLimit       float64         `json:"miterLimit,omitempty"`
	StartPoint       *vector         `json:"startPoint,omitempty"`
	EndPoint         *vector         `json:"endPoint,omitempty"`
	GradientStops    *animStops      `json:"gradientStops,omitempty"`
	HighlightLength  *anim           `json:"highlightLength,omitempty"`
	HighlightDegrees *anim           `json:"highlightDegrees,omitempty"`

	Anchor   *vector `json:"anchor,omitempty"`
	Scale    *vector `json:"scale,omitempty"`
	Rotation *anim   `json:"rotation,omitempty"`

	TrimType lottie.TrimType  `json:"trimType,omitempty"`
	Start    *anim            `json:"start,omitempty"`
	End      *anim            `json:"end,omitempty"`
	Offset   *anim            `json:"offset,omitempty"`
	Mode     lottie.MergeMode `json:"mode,omitempty"`
	Radius   *anim            `json:"radius,omitempty"`
	Count    *anim            `json:"count,omitempty"`

	Transform *contentJSON `json:"transform,omitempty"`
}

// vector holds either representation of a vector property.
type vector struct {
	lottie.AnimatableVector3
}

func (v *vector) UnmarshalJSON(data []byte) error {
	a, err := lottie.UnmarshalVector3(data)
	if err != nil {
		return err
	}
	v.AnimatableVector3 = a
	return nil
}

func (v vector) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.AnimatableVector3)
}

var layerTypes = map[lottie.LayerType]string{
	lottie.LayerTypePreComp: "precomp",
	lottie.LayerTypeSolid:   "solid",
	lottie.LayerTypeImage:   "image",
	lottie.LayerTypeNull:    "null",
	lottie.LayerTypeShape:   "shape",
	lottie.LayerTypeText:    "text",
}

var contentTypes = map[lottie.ShapeContentType]string{
	lottie.ShapeContentTypeGroup:                "group",
	lottie.ShapeContentTypePath:                 "path",
	lottie.ShapeContentTypeEllipse:              "ellipse",
	lottie.ShapeContentTypeRectangle:            "rectangle",
	lottie.ShapeContentTypePolystar:             "polystar",
	lottie.ShapeContentTypeSolidColorFill:       "fill",
	lottie.ShapeContentTypeLinearGradientFill:   "gradientFill",
	lottie.ShapeContentTypeRadialGradientFill:   "radialGradientFill",
	lottie.ShapeContentTypeSolidColorStroke:     "stroke",
	lottie.ShapeContentTypeLinearGradientStroke: "gradientStroke",
	lottie.ShapeContentTypeRadialGradientStroke: "radialGradientStroke",
	lottie.ShapeContentTypeTransform:            "transform",
	lottie.ShapeContentTypeTrimPath:             "trim",
	lottie.ShapeContentTypeMergePaths:           "merge",
	lottie.ShapeContentTypeRoundedCorner:        "roundedCorner",
	lottie.ShapeContentTypeRepeater:             "repeater",
}
