package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/lottie"
)

var allowCollections = cmp.AllowUnexported(lottie.LayerCollection{}, lottie.AssetCollection{})

func TestImportSample(t *testing.T) {
	c, err := ImportJSON(filepath.Join("testdata", "spinner.json"), ReadOptions{})
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}

	if c.Name != "spinner" || c.Version != (lottie.Version{Major: 5, Minor: 7, Patch: 1}) {
		t.Errorf("header = %q %s", c.Name, c.Version)
	}

	// File order is top-to-bottom; storage is bottom-to-top.
	var indices []int
	for _, l := range c.Layers.BottomToTop() {
		indices = append(indices, l.Base().Index)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, indices); diff != "" {
		t.Errorf("storage order mismatch (-want +got):\n%s", diff)
	}

	ring, _ := c.Layers.ByIndex(3)
	if ring.Base().TimeStretch != 1 {
		t.Errorf("TimeStretch default = %v, want 1", ring.Base().TimeStretch)
	}
	if !ring.Base().Transform.Rotation.IsAnimated() {
		t.Error("ring rotation not animated")
	}
	if got := ring.Base().Transform.Opacity.InitialValue; got != 100 {
		t.Errorf("transform opacity default = %v, want 100", got)
	}

	group := ring.(*lottie.ShapeLayer).Contents[0].(*lottie.ShapeGroup)
	stroke := group.Contents[1].(*lottie.SolidColorStroke)
	if stroke.LineCap != lottie.LineCapRound || stroke.Opacity.InitialValue != 100 {
		t.Errorf("stroke = %+v", stroke)
	}
	trim := group.Contents[2].(*lottie.TrimPath)
	if trim.EndTrim.KeyFrames[0].Easing.Type != lottie.EasingCubicBezier {
		t.Errorf("trim easing = %v", trim.EndTrim.KeyFrames[0].Easing.Type)
	}

	dot, _ := c.Layers.ByIndex(2)
	pos := dot.Base().Transform.Position.(*lottie.AnimatableVector3Value)
	if !pos.KeyFrames[0].HasSpatialBezier() {
		t.Error("spatial control points lost")
	}

	if _, ok := c.Assets.Lookup("img_logo"); !ok {
		t.Error("external image asset missing")
	}
	if len(c.Markers) != 1 || c.Markers[0].DurationMilliseconds != 2000 {
		t.Errorf("markers = %+v", c.Markers)
	}
}

func TestRoundTrip(t *testing.T) {
	c, err := ImportJSON(filepath.Join("testdata", "spinner.json"), ReadOptions{})
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportJSON(c, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	back, err := ImportJSON(path, ReadOptions{})
	if err != nil {
		t.Fatalf("ImportJSON(exported): %v", err)
	}
	if diff := cmp.Diff(c, back, allowCollections); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// A second export is byte-identical to the first.
	var a, b bytes.Buffer
	if err := WriteJSON(c, &a); err != nil {
		t.Fatal(err)
	}
	if err := WriteJSON(back, &b); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("export is not stable")
	}
}

func TestRoundTripEveryVariant(t *testing.T) {
	stops := lottie.Static(lottie.GradientStops{{Offset: 0, Color: lottie.ColorFromARGB(255, 1, 2, 3)}})
	xyz := &lottie.AnimatableXYZ{X: lottie.Static(1.0), Y: lottie.Static(2.0), Z: lottie.Static(0.0)}
	contents := []lottie.ShapeContent{
		&lottie.ShapeGroup{Contents: []lottie.ShapeContent{&lottie.MergePaths{Mode: lottie.MergeSubtract}}},
		&lottie.Path{Direction: lottie.DirectionReverse, Geometry: lottie.Static(lottie.PathGeometry{IsClosed: true, Segments: []lottie.BezierSegment{{}}})},
		&lottie.Ellipse{Diameter: lottie.StaticVector3(lottie.Vec2(1, 1)), Position: xyz},
		&lottie.Rectangle{Size: lottie.StaticVector3(lottie.Vec2(1, 1)), Position: lottie.StaticVector3(lottie.Vector3{}), CornerRadius: lottie.Static(1.0)},
		&lottie.Polystar{StarType: lottie.PolystarPolygon, Points: lottie.Static(6.0), Position: lottie.StaticVector3(lottie.Vector3{}),
			Rotation: lottie.Static(0.0), InnerRadius: lottie.Static(1.0), InnerRoundness: lottie.Static(0.0),
			OuterRadius: lottie.Static(2.0), OuterRoundness: lottie.Static(0.0)},
		&lottie.SolidColorFill{FillType: lottie.FillNonZero, Color: lottie.Static(lottie.ColorFromARGB(255, 9, 9, 9)), Opacity: lottie.Static(50.0)},
		&lottie.LinearGradientFill{GradientFill: lottie.GradientFill{Opacity: lottie.Static(1.0),
			StartPoint: lottie.StaticVector3(lottie.Vector3{}), EndPoint: lottie.StaticVector3(lottie.Vec2(1, 0)), GradientStops: stops}},
		&lottie.RadialGradientFill{GradientFill: lottie.GradientFill{Opacity: lottie.Static(1.0),
			StartPoint: lottie.StaticVector3(lottie.Vector3{}), EndPoint: lottie.StaticVector3(lottie.Vec2(1, 0)), GradientStops: stops},
			HighlightLength: lottie.Static(3.0), HighlightDegrees: lottie.Static(45.0)},
		&lottie.SolidColorStroke{StrokeStyle: lottie.StrokeStyle{LineJoin: lottie.LineJoinBevel, MiterLimit: 4},
			Color: lottie.Static(lottie.ColorFromARGB(255, 0, 0, 0)), Opacity: lottie.Static(100.0), StrokeWidth: lottie.Static(2.0)},
		&lottie.LinearGradientStroke{GradientStroke: lottie.GradientStroke{Opacity: lottie.Static(1.0), StrokeWidth: lottie.Static(1.0),
			StartPoint: lottie.StaticVector3(lottie.Vector3{}), EndPoint: lottie.StaticVector3(lottie.Vec2(1, 0)), GradientStops: stops}},
		&lottie.RadialGradientStroke{GradientStroke: lottie.GradientStroke{Opacity: lottie.Static(1.0), StrokeWidth: lottie.Static(1.0),
			StartPoint: lottie.StaticVector3(lottie.Vector3{}), EndPoint: lottie.StaticVector3(lottie.Vec2(1, 0)), GradientStops: stops},
			HighlightLength: lottie.Static(0.0), HighlightDegrees: lottie.Static(0.0)},
		lottie.IdentityTransform(),
		&lottie.TrimPath{TrimPathType: lottie.TrimIndividually, StartTrim: lottie.Static(0.0), EndTrim: lottie.Static(50.0), Offset: lottie.Static(0.0)},
		&lottie.RoundedCorner{Radius: lottie.Static(3.0)},
		&lottie.Repeater{Count: lottie.Static(4.0), Offset: lottie.Static(1.0), Transform: lottie.IdentityTransform()},
	}
	base := func(i int) lottie.LayerBase {
		return lottie.LayerBase{Index: i, OutPoint: 10, TimeStretch: 1, Transform: lottie.IdentityTransform()}
	}
	masked := base(4)
	masked.Masks = []*lottie.Mask{{Name: "m", Inverted: true, Mode: lottie.MaskIntersect,
		Points: lottie.Static(lottie.PathGeometry{Segments: []lottie.BezierSegment{}}), Opacity: lottie.Static(80.0)}}
	c := &lottie.Composition{
		Version: lottie.Version{Major: 5},
		Assets: lottie.NewAssetCollection(
			&lottie.EmbeddedImageAsset{ID: "img", Width: 1, Height: 1, Format: "png", Bytes: []byte("png-bytes")},
			&lottie.LayerCollectionAsset{ID: "pre", Layers: lottie.NewLayerCollection(&lottie.TextLayer{LayerBase: base(1)})},
		),
		Layers: lottie.NewLayerCollection(
			&lottie.ImageLayer{LayerBase: base(1), RefID: "img"},
			&lottie.PreCompLayer{LayerBase: base(2), Width: 5, Height: 5, RefID: "pre"},
			&lottie.SolidLayer{LayerBase: base(3), Width: 5, Height: 5, Color: lottie.ColorFromARGB(128, 1, 2, 3)},
			&lottie.NullLayer{LayerBase: masked},
			&lottie.ShapeLayer{LayerBase: base(5), Contents: contents},
		),
	}

	var buf bytes.Buffer
	if err := WriteJSON(c, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	back, err := ReadJSON(&buf, ReadOptions{})
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if diff := cmp.Diff(c, back, allowCollections); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
		want string
	}{
		{"malformed", `{"layers": [`, errors.ErrCodeInvalidInput, "decode scene"},
		{"unknown field", `{"layers": [], "frameRate": 30}`, errors.ErrCodeInvalidInput, "frameRate"},
		{"unknown layer type", `{"layers": [{"type": "audio", "index": 1}]}`, errors.ErrCodeInvalidInput, `layers[0]: unknown layer type "audio"`},
		{
			"unknown content type",
			`{"layers": [{"type": "shape", "index": 1, "contents": [{"type": "blob"}]}]}`,
			errors.ErrCodeInvalidInput,
			`layers[0]: contents[0]: unknown shape content type "blob"`,
		},
		{"unknown asset type", `{"assets": [{"type": "font", "id": "f"}], "layers": []}`, errors.ErrCodeInvalidInput, "unknown asset type"},
		{"bad color", `{"layers": [{"type": "solid", "index": 1, "color": "red"}]}`, errors.ErrCodeInvalidInput, "invalid color"},
		{"fractional solid width", `{"layers": [{"type": "solid", "index": 1, "width": 10.5, "height": 4}]}`, errors.ErrCodeInvalidInput, "layers[0]: width 10.5 is not a whole number"},
		{"fractional solid height", `{"layers": [{"type": "solid", "index": 1, "width": 10, "height": 0.25}]}`, errors.ErrCodeInvalidInput, "height 0.25 is not a whole number"},
		{
			"duplicate index",
			`{"layers": [{"type": "null", "index": 1}, {"type": "null", "index": 1}]}`,
			errors.ErrCodeInvalidComposition,
			"duplicate layer index 1",
		},
		{
			"dangling ref",
			`{"layers": [{"type": "precomp", "index": 1, "refId": "nope"}]}`,
			errors.ErrCodeInvalidComposition,
			`unknown asset "nope"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in), ReadOptions{})
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.code)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestSkipValidation(t *testing.T) {
	in := `{"layers": [{"type": "null", "index": 1}, {"type": "null", "index": 1}]}`
	c, err := ReadJSON(strings.NewReader(in), ReadOptions{SkipValidation: true})
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if c.Layers.Len() != 2 {
		t.Errorf("layers = %d, want 2", c.Layers.Len())
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json"), ReadOptions{})
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestExportJSONCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := ExportJSON(&lottie.Composition{}, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"layers": []`) {
		t.Errorf("empty composition export:\n%s", data)
	}
}
