package builder

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/lottie"
)

var (
	red   = lottie.ColorFromARGB(255, 255, 0, 0)
	blue  = lottie.ColorFromARGB(255, 0, 0, 255)
	stops = lottie.GradientStops{{Offset: 0, Color: red}, {Offset: 1, Color: blue}}
	unit  = lottie.PathGeometry{
		Segments: []lottie.BezierSegment{{
			ControlPoint0: lottie.Vec2(0, 0),
			ControlPoint1: lottie.Vec2(1, 0),
			ControlPoint2: lottie.Vec2(1, 1),
			ControlPoint3: lottie.Vec2(0, 1),
		}},
	}
)

func v3(x, y float64) *lottie.AnimatableVector3Value { return lottie.StaticVector3(lottie.Vec2(x, y)) }

func allShapeContents() []lottie.ShapeContent {
	return []lottie.ShapeContent{
		&lottie.ShapeGroup{Contents: []lottie.ShapeContent{&lottie.MergePaths{}}},
		&lottie.Path{Geometry: lottie.Static(unit)},
		&lottie.Ellipse{Diameter: v3(10, 10), Position: v3(0, 0)},
		&lottie.Rectangle{Size: v3(10, 5), Position: v3(0, 0), CornerRadius: lottie.Static(2.0)},
		&lottie.Polystar{
			StarType: lottie.PolystarPolygon, Points: lottie.Static(5.0), Position: v3(0, 0),
			Rotation: lottie.Static(0.0), InnerRadius: lottie.Static(0.0), InnerRoundness: lottie.Static(0.0),
			OuterRadius: lottie.Static(10.0), OuterRoundness: lottie.Static(0.0),
		},
		&lottie.SolidColorFill{Color: lottie.Static(red), Opacity: lottie.Static(100.0)},
		&lottie.LinearGradientFill{GradientFill: lottie.GradientFill{
			Opacity: lottie.Static(100.0), StartPoint: v3(0, 0), EndPoint: v3(1, 0), GradientStops: lottie.Static(stops),
		}},
		&lottie.RadialGradientFill{
			GradientFill: lottie.GradientFill{
				Opacity: lottie.Static(100.0), StartPoint: v3(0, 0), EndPoint: v3(1, 0), GradientStops: lottie.Static(stops),
			},
			HighlightLength: lottie.Static(0.0), HighlightDegrees: lottie.Static(0.0),
		},
		&lottie.SolidColorStroke{Color: lottie.Static(blue), Opacity: lottie.Static(100.0), StrokeWidth: lottie.Static(2.0)},
		&lottie.LinearGradientStroke{GradientStroke: lottie.GradientStroke{
			Opacity: lottie.Static(100.0), StrokeWidth: lottie.Static(1.0),
			StartPoint: v3(0, 0), EndPoint: v3(1, 0), GradientStops: lottie.Static(stops),
		}},
		&lottie.RadialGradientStroke{
			GradientStroke: lottie.GradientStroke{
				Opacity: lottie.Static(100.0), StrokeWidth: lottie.Static(1.0),
				StartPoint: v3(0, 0), EndPoint: v3(1, 0), GradientStops: lottie.Static(stops),
			},
			HighlightLength: lottie.Static(0.0), HighlightDegrees: lottie.Static(0.0),
		},
		lottie.IdentityTransform(),
		&lottie.TrimPath{StartTrim: lottie.Static(0.0), EndTrim: lottie.Static(100.0), Offset: lottie.Static(0.0)},
		&lottie.MergePaths{Mode: lottie.MergeIntersect},
		&lottie.RoundedCorner{Radius: lottie.Static(4.0)},
		&lottie.Repeater{Count: lottie.Static(3.0), Offset: lottie.Static(0.0), Transform: lottie.IdentityTransform()},
	}
}

func allLayers() []lottie.Layer {
	return []lottie.Layer{
		&lottie.PreCompLayer{LayerBase: layerBase(1), Width: 10, Height: 10, RefID: "comp_0"},
		&lottie.SolidLayer{LayerBase: layerBase(2), Width: 10, Height: 10, Color: red},
		&lottie.ImageLayer{LayerBase: layerBase(3), RefID: "img_0"},
		&lottie.NullLayer{LayerBase: layerBase(4)},
		&lottie.ShapeLayer{LayerBase: layerBase(5), Contents: allShapeContents()},
		&lottie.TextLayer{LayerBase: layerBase(6)},
	}
}

// fullComposition exercises every variant of every family.
func fullComposition() *lottie.Composition {
	masked := &lottie.NullLayer{LayerBase: layerBase(1)}
	masked.Masks = []*lottie.Mask{{Name: "m", Points: lottie.Static(unit), Opacity: lottie.Static(100.0), Mode: lottie.MaskAdditive}}
	return &lottie.Composition{
		ObjectBase: lottie.ObjectBase{Name: "full"},
		Version:    lottie.Version{Major: 5, Minor: 7, Patch: 1},
		Width:      512,
		Height:     512,
		OutPoint:   60,
		Assets: lottie.NewAssetCollection(
			&lottie.LayerCollectionAsset{ID: "comp_0", Layers: lottie.NewLayerCollection(masked)},
			&lottie.EmbeddedImageAsset{ID: "img_0", Width: 1, Height: 1, Format: "png", Bytes: []byte{0x89}},
			&lottie.ExternalImageAsset{ID: "img_1", Width: 1, Height: 1, Path: "images/", FileName: "b.png"},
		),
		Layers:  lottie.NewLayerCollection(allLayers()...),
		Markers: []*lottie.Marker{{ObjectBase: lottie.ObjectBase{Name: "loop"}, Frame: 30, DurationMilliseconds: 1000}},
	}
}

func TestEveryLayerVariant(t *testing.T) {
	want := []string{"PreComp", "Solid", "Image", "Null", "Shape", "Text"}
	for i, l := range allLayers() {
		e, err := BuildLayer(l)
		if err != nil {
			t.Fatalf("BuildLayer(%T): %v", l, err)
		}
		if e.Name != want[i] {
			t.Errorf("BuildLayer(%T) = %s, want %s", l, e.Name, want[i])
		}
		if e.Element("Transform") == nil {
			t.Errorf("%s has no Transform child", e.Name)
		}
	}
}

func TestEveryShapeContentVariant(t *testing.T) {
	want := []string{
		"Group", "Path", "Ellipse", "Rectangle", "Polystar",
		"SolidColorFill", "LinearGradientFill", "RadialGradientFill",
		"SolidColorStroke", "LinearGradientStroke", "RadialGradientStroke",
		"Transform", "TrimPath", "MergePaths", "RoundedCorner", "Repeater",
	}
	contents := allShapeContents()
	if len(contents) != len(want) {
		t.Fatalf("fixture has %d contents, want %d", len(contents), len(want))
	}
	for i, c := range contents {
		e, err := BuildShapeContent(c)
		if err != nil {
			t.Fatalf("BuildShapeContent(%T): %v", c, err)
		}
		if e.Name != want[i] {
			t.Errorf("BuildShapeContent(%T) = %s, want %s", c, e.Name, want[i])
		}
	}
}

func attrNames(e *doc.Element) []string {
	var out []string
	for _, a := range e.Attrs {
		out = append(out, a.Name)
	}
	return out
}

func TestShapeContentAttributeOrder(t *testing.T) {
	tests := []struct {
		content lottie.ShapeContent
		want    []string
	}{
		{&lottie.Path{Geometry: lottie.Static(unit)}, []string{"Direction", "Geometry"}},
		{&lottie.Ellipse{Diameter: v3(1, 1), Position: v3(0, 0)}, []string{"Diameter", "Position", "Direction"}},
		{allShapeContents()[3], []string{"Size", "Position", "CornerRadius", "Direction"}},
		{allShapeContents()[4], []string{
			"Direction", "StarType", "Points", "Position", "Rotation",
			"InnerRadius", "InnerRoundness", "OuterRadius", "OuterRoundness",
		}},
		{allShapeContents()[5], []string{"Color", "Opacity", "FillType"}},
		{allShapeContents()[6], []string{"GradientStops", "Opacity", "StartPoint", "EndPoint", "FillType"}},
		{allShapeContents()[7], []string{
			"GradientStops", "Opacity", "StartPoint", "EndPoint", "FillType", "HighlightLength", "HighlightDegrees",
		}},
		{allShapeContents()[8], []string{"Color", "Opacity", "StrokeWidth", "LineCap", "LineJoin", "MiterLimit"}},
		{allShapeContents()[9], []string{
			"Opacity", "StrokeWidth", "StartPoint", "EndPoint", "GradientStops", "LineCap", "LineJoin", "MiterLimit",
		}},
		{allShapeContents()[10], []string{
			"Opacity", "StrokeWidth", "StartPoint", "EndPoint", "GradientStops",
			"HighlightLength", "HighlightDegrees", "LineCap", "LineJoin", "MiterLimit",
		}},
		{allShapeContents()[11], []string{"ScalePercent", "Position", "Anchor", "Opacity", "Rotation"}},
		{allShapeContents()[12], []string{"StartTrim", "EndTrim", "Offset", "TrimPathType"}},
		{allShapeContents()[13], []string{"Mode"}},
		{allShapeContents()[14], []string{"Radius"}},
		{allShapeContents()[15], []string{"Count", "Offset"}},
	}
	for _, tt := range tests {
		e, err := BuildShapeContent(tt.content)
		if err != nil {
			t.Fatalf("BuildShapeContent(%T): %v", tt.content, err)
		}
		if diff := cmp.Diff(tt.want, attrNames(e)); diff != "" {
			t.Errorf("%s attribute order mismatch (-want +got):\n%s", e.Name, diff)
		}
	}
}

func TestShapeContentPrefix(t *testing.T) {
	fill := &lottie.SolidColorFill{Color: lottie.Static(red), Opacity: lottie.Static(50.0), FillType: lottie.FillNonZero}
	fill.Name = "Fill 1"
	fill.MatchName = "ADBE Vector Graphic - Fill"

	e, err := BuildShapeContent(fill)
	if err != nil {
		t.Fatalf("BuildShapeContent: %v", err)
	}
	want := doc.NewElement("SolidColorFill",
		doc.Attr{Name: "Name", Value: "Fill 1"},
		doc.Attr{Name: "MatchName", Value: "ADBE Vector Graphic - Fill"},
		doc.Attr{Name: "Color", Value: "#FFFF0000"},
		doc.Attr{Name: "Opacity", Value: "50"},
		doc.Attr{Name: "FillType", Value: "NonZero"},
	)
	if diff := cmp.Diff(want, e); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupAndRepeaterChildren(t *testing.T) {
	g := &lottie.ShapeGroup{Contents: []lottie.ShapeContent{
		&lottie.Path{Geometry: lottie.Static(unit)},
		&lottie.SolidColorFill{Color: lottie.Static(red), Opacity: lottie.Static(100.0)},
		lottie.IdentityTransform(),
	}}
	e, err := BuildShapeContent(g)
	if err != nil {
		t.Fatalf("BuildShapeContent: %v", err)
	}
	var names []string
	for _, c := range e.Elements() {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"Path", "SolidColorFill", "Transform"}, names); diff != "" {
		t.Errorf("group children mismatch (-want +got):\n%s", diff)
	}

	r, err := BuildShapeContent(allShapeContents()[15])
	if err != nil {
		t.Fatalf("BuildShapeContent: %v", err)
	}
	if r.Element("Transform") == nil {
		t.Error("Repeater has no Transform child")
	}
}

func TestGradientValues(t *testing.T) {
	e, err := BuildShapeContent(allShapeContents()[6])
	if err != nil {
		t.Fatalf("BuildShapeContent: %v", err)
	}
	if v, _ := e.Attr("GradientStops"); v != "0:#FFFF0000;1:#FF0000FF" {
		t.Errorf("GradientStops = %q", v)
	}
	if v, _ := e.Attr("EndPoint"); v != "{1,0,0}" {
		t.Errorf("EndPoint = %q", v)
	}
}

func TestFullComposition(t *testing.T) {
	d, err := Build(fullComposition())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	root := d.Root
	var top []string
	for _, c := range root.Elements() {
		top = append(top, c.Name)
	}
	if diff := cmp.Diff([]string{"Assets", "Layers", "Markers"}, top); diff != "" {
		t.Errorf("top-level children mismatch (-want +got):\n%s", diff)
	}

	if got := len(root.Element("Assets").Elements()); got != 3 {
		t.Errorf("assets = %d, want 3", got)
	}
	layers := root.Element("Layers").Elements()
	if layers[0].Name != "Text" || layers[len(layers)-1].Name != "PreComp" {
		t.Errorf("layers not top-to-bottom: first %s, last %s", layers[0].Name, layers[len(layers)-1].Name)
	}

	precomp := root.Element("Assets").Element("LayerCollectionAsset")
	mask := precomp.Element("Layers").Element("Null").Element("Mask")
	if mask == nil {
		t.Fatal("precomp mask missing")
	}
	if diff := cmp.Diff([]string{"Inverted", "Name", "Points", "Opacity", "Mode"}, attrNames(mask)); diff != "" {
		t.Errorf("mask attribute order mismatch (-want +got):\n%s", diff)
	}
}
