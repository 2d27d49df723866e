package builder

import (
	stderrors "errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/lottie"
)

func layerBase(index int) lottie.LayerBase {
	return lottie.LayerBase{Index: index, OutPoint: 30, TimeStretch: 1, Transform: lottie.IdentityTransform()}
}

func identityElement() *doc.Element {
	return doc.NewElement("Transform",
		doc.Attr{Name: "ScalePercent", Value: "{100,100,100}"},
		doc.Attr{Name: "Position", Value: "{0,0,0}"},
		doc.Attr{Name: "Anchor", Value: "{0,0,0}"},
		doc.Attr{Name: "Opacity", Value: "100"},
		doc.Attr{Name: "Rotation", Value: "0"},
	)
}

func TestBuild(t *testing.T) {
	c := &lottie.Composition{
		ObjectBase: lottie.ObjectBase{Name: "demo"},
		Version:    lottie.Version{Major: 5, Minor: 7, Patch: 1},
		Width:      100,
		Height:     50,
		OutPoint:   30,
		Layers:     lottie.NewLayerCollection(&lottie.NullLayer{LayerBase: layerBase(1)}),
	}

	got, err := Build(c)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := doc.New(doc.NewElement("LottieComposition",
		doc.Attr{Name: "Version", Value: "5.7.1"},
		doc.Attr{Name: "Name", Value: "demo"},
		doc.Attr{Name: "Width", Value: "100"},
		doc.Attr{Name: "Height", Value: "50"},
		doc.Attr{Name: "InPoint", Value: "0"},
		doc.Attr{Name: "OutPoint", Value: "30"},
		doc.NewElement("Assets"),
		doc.NewElement("Layers",
			doc.NewElement("Null",
				doc.Attr{Name: "Index", Value: "1"},
				doc.Attr{Name: "StartTime", Value: "0"},
				doc.Attr{Name: "InPoint", Value: "0"},
				doc.Attr{Name: "OutPoint", Value: "30"},
				identityElement(),
				doc.Attr{Name: "LayerMatteType", Value: "None"},
			),
		),
	))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}
}

func TestAnimatableFork(t *testing.T) {
	tests := []struct {
		name     string
		opacity  lottie.Animatable[float64]
		wantAttr string
		wantText string
	}{
		{name: "static", opacity: lottie.Static(5.0), wantAttr: "5"},
		{name: "single keyframe", opacity: lottie.Animated(lottie.Key(12, 5.0, lottie.Hold)), wantAttr: "5"},
		{
			name:     "animated",
			opacity:  lottie.Animated(lottie.Key(0, 5.0, lottie.Linear), lottie.Key(30, 10.0, lottie.Linear)),
			wantText: "5@0(Linear), 10@30(Linear)",
		},
		{
			name: "mixed easings",
			opacity: lottie.Animated(
				lottie.Key(0, 0.5, lottie.CubicBezier(lottie.Vec2(0.4, 0), lottie.Vec2(0.6, 1))),
				lottie.Key(10, 1.0, lottie.Hold),
				lottie.Key(20.5, 0.0, lottie.Linear),
			),
			wantText: "0.5@0(CubicBezier), 1@10(Hold), 0@20.5(Linear)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := lottie.IdentityTransform()
			tr.Opacity = tt.opacity
			e, err := BuildTransform(tr)
			if err != nil {
				t.Fatalf("BuildTransform: %v", err)
			}
			v, isAttr := e.Attr("Opacity")
			child := e.Element("Opacity")
			if tt.wantText == "" {
				if !isAttr || v != tt.wantAttr || child != nil {
					t.Errorf("Opacity attr = %q (%v), child = %v; want attribute %q", v, isAttr, child, tt.wantAttr)
				}
				return
			}
			if isAttr || child == nil {
				t.Fatalf("Opacity emitted as attribute %q, want element", v)
			}
			if got := child.Text(); got != tt.wantText {
				t.Errorf("Opacity text = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestSpatialBezier(t *testing.T) {
	curved := lottie.Key(0, lottie.Vec2(0, 0), lottie.Linear)
	curved.SpatialControlPoint1 = lottie.Vec2(10, 0)
	curved.SpatialControlPoint2 = lottie.Vec2(0, 10)

	tr := lottie.IdentityTransform()
	tr.Position = lottie.AnimatedVector3(curved, lottie.Key(30, lottie.Vec2(100, 50), lottie.Hold))

	e, err := BuildTransform(tr)
	if err != nil {
		t.Fatalf("BuildTransform: %v", err)
	}
	want := "SpatialBezier:{0,0,0},{10,0,0},{0,10,0}@0(Linear), {100,50,0}@30(Hold)"
	if got := e.Element("Position").Text(); got != want {
		t.Errorf("Position = %q, want %q", got, want)
	}
}

func TestXYZ(t *testing.T) {
	tr := lottie.IdentityTransform()
	tr.Position = &lottie.AnimatableXYZ{
		X: lottie.Static(1.0),
		Y: lottie.Animated(lottie.Key(0, 0.0, lottie.Linear), lottie.Key(10, 5.0, lottie.Linear)),
		Z: lottie.Static(0.0),
	}

	e, err := BuildTransform(tr)
	if err != nil {
		t.Fatalf("BuildTransform: %v", err)
	}
	want := doc.NewElement("Position",
		doc.Attr{Name: "X", Value: "1"},
		doc.NewElement("Y", doc.Text("0@0(Linear), 5@10(Linear)")),
		doc.Attr{Name: "Z", Value: "0"},
	)
	if diff := cmp.Diff(want, e.Element("Position")); diff != "" {
		t.Errorf("Position mismatch (-want +got):\n%s", diff)
	}
	if _, ok := e.Attr("Position"); ok {
		t.Error("per-axis vector also emitted as attribute")
	}
}

func layerIndices(t *testing.T, layers *doc.Element) []string {
	t.Helper()
	var out []string
	for _, l := range layers.Elements() {
		v, _ := l.Attr("Index")
		out = append(out, v)
	}
	return out
}

func TestLayerOrder(t *testing.T) {
	c := &lottie.Composition{
		Layers: lottie.NewLayerCollection(
			&lottie.NullLayer{LayerBase: layerBase(3)},
			&lottie.NullLayer{LayerBase: layerBase(1)},
			&lottie.NullLayer{LayerBase: layerBase(2)},
		),
	}
	d, err := Build(c)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := layerIndices(t, d.Root.Element("Layers"))
	if diff := cmp.Diff([]string{"2", "1", "3"}, got); diff != "" {
		t.Errorf("layer order mismatch (-want +got):\n%s", diff)
	}
}

func TestPrecompLayerOrder(t *testing.T) {
	c := &lottie.Composition{
		Assets: lottie.NewAssetCollection(&lottie.LayerCollectionAsset{
			ID: "comp_0",
			Layers: lottie.NewLayerCollection(
				&lottie.SolidLayer{LayerBase: layerBase(1)},
				&lottie.SolidLayer{LayerBase: layerBase(2)},
			),
		}),
	}
	d, err := Build(c)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	asset := d.Root.Element("Assets").Element("LayerCollectionAsset")
	if id, _ := asset.Attr("Id"); id != "comp_0" {
		t.Errorf("Id = %q", id)
	}
	if diff := cmp.Diff([]string{"2", "1"}, layerIndices(t, asset.Element("Layers"))); diff != "" {
		t.Errorf("precomp layer order mismatch (-want +got):\n%s", diff)
	}
}

func TestSparsity(t *testing.T) {
	plain := &lottie.ShapeLayer{LayerBase: layerBase(1)}
	full := &lottie.ShapeLayer{LayerBase: layerBase(2)}
	full.Name = "fg"
	full.IsHidden = true
	full.TimeStretch = 2
	full.Parent = lottie.ParentIndex(1)

	tests := []struct {
		name    string
		layer   lottie.Layer
		present []string
		absent  []string
	}{
		{
			name:    "defaults",
			layer:   plain,
			present: []string{"Index", "StartTime", "InPoint", "OutPoint", "LayerMatteType"},
			absent:  []string{"Name", "IsHidden", "TimeStretch", "Parent"},
		},
		{
			name:    "all set",
			layer:   full,
			present: []string{"Index", "Name", "IsHidden", "TimeStretch", "Parent"},
		},
		{
			name:   "blank name",
			layer:  &lottie.NullLayer{LayerBase: lottie.LayerBase{ObjectBase: lottie.ObjectBase{Name: "  "}, TimeStretch: 1, Transform: lottie.IdentityTransform()}},
			absent: []string{"Name"},
		},
		{
			name:   "precomp without ref",
			layer:  &lottie.PreCompLayer{LayerBase: layerBase(1)},
			absent: []string{"RefId"},
		},
		{
			name:   "image without ref",
			layer:  &lottie.ImageLayer{LayerBase: layerBase(1)},
			absent: []string{"RefId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := BuildLayer(tt.layer)
			if err != nil {
				t.Fatalf("BuildLayer: %v", err)
			}
			for _, name := range tt.present {
				if _, ok := e.Attr(name); !ok {
					t.Errorf("attribute %s missing", name)
				}
			}
			for _, name := range tt.absent {
				if v, ok := e.Attr(name); ok {
					t.Errorf("attribute %s = %q, want absent", name, v)
				}
			}
		})
	}

	e, _ := BuildLayer(full)
	wantOrder := []string{"Index", "Name", "IsHidden", "StartTime", "InPoint", "OutPoint", "TimeStretch", "Parent", "LayerMatteType"}
	var gotOrder []string
	for _, a := range e.Attrs {
		gotOrder = append(gotOrder, a.Name)
	}
	if diff := cmp.Diff(wantOrder, gotOrder); diff != "" {
		t.Errorf("layer attribute order mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkersOnlyWhenPresent(t *testing.T) {
	c := &lottie.Composition{}
	d, err := Build(c)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Root.Element("Markers") != nil {
		t.Error("Markers emitted for composition without markers")
	}

	c.Markers = []*lottie.Marker{{ObjectBase: lottie.ObjectBase{Name: "intro"}, Frame: 10, DurationMilliseconds: 250}}
	d, err = Build(c)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := doc.NewElement("Markers", doc.NewElement("Marker",
		doc.Attr{Name: "Name", Value: "intro"},
		doc.Attr{Name: "Frame", Value: "10"},
		doc.Attr{Name: "DurationMilliseconds", Value: "250"},
	))
	if diff := cmp.Diff(want, d.Root.Element("Markers")); diff != "" {
		t.Errorf("Markers mismatch (-want +got):\n%s", diff)
	}
}

func TestRefIDIndependentOfAssetOrder(t *testing.T) {
	build := func(assets ...lottie.Asset) *doc.Element {
		c := &lottie.Composition{
			Assets: lottie.NewAssetCollection(assets...),
			Layers: lottie.NewLayerCollection(
				&lottie.PreCompLayer{LayerBase: layerBase(1), RefID: "comp_0"},
				&lottie.ImageLayer{LayerBase: layerBase(2), RefID: "img_0"},
			),
		}
		d, err := Build(c)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		return d.Root.Element("Layers")
	}
	pre := &lottie.LayerCollectionAsset{ID: "comp_0"}
	img := &lottie.EmbeddedImageAsset{ID: "img_0", Format: "png", Bytes: []byte{1, 2, 3}}

	a := build(pre, img)
	b := build(img, pre)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("layers depend on asset order (-a +b):\n%s", diff)
	}
	if ref, _ := a.Element("PreComp").Attr("RefId"); ref != "comp_0" {
		t.Errorf("PreComp RefId = %q", ref)
	}
	if ref, _ := a.Element("Image").Attr("RefId"); ref != "img_0" {
		t.Errorf("Image RefId = %q", ref)
	}
}

func TestAssets(t *testing.T) {
	tests := []struct {
		name  string
		asset lottie.Asset
		want  *doc.Element
	}{
		{
			name:  "embedded",
			asset: &lottie.EmbeddedImageAsset{ID: "img_0", Width: 4, Height: 2, Format: "png", Bytes: make([]byte, 17)},
			want: doc.NewElement("ImageAsset",
				doc.Attr{Name: "Id", Value: "img_0"},
				doc.Attr{Name: "Width", Value: "4"},
				doc.Attr{Name: "Height", Value: "2"},
				doc.Attr{Name: "Format", Value: "png"},
				doc.Attr{Name: "SizeInBytes", Value: "17"},
			),
		},
		{
			name:  "external",
			asset: &lottie.ExternalImageAsset{ID: "img_1", Width: 8, Height: 8, Path: "images/", FileName: "a.png"},
			want: doc.NewElement("ImageAsset",
				doc.Attr{Name: "Id", Value: "img_1"},
				doc.Attr{Name: "Width", Value: "8"},
				doc.Attr{Name: "Height", Value: "8"},
				doc.Attr{Name: "Path", Value: "images/"},
				doc.Attr{Name: "FileName", Value: "a.png"},
			),
		},
		{
			name:  "empty precomp",
			asset: &lottie.LayerCollectionAsset{ID: "comp_0"},
			want: doc.NewElement("LayerCollectionAsset",
				doc.Attr{Name: "Id", Value: "comp_0"},
				doc.NewElement("Layers"),
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildAsset(tt.asset)
			if err != nil {
				t.Fatalf("BuildAsset: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMask(t *testing.T) {
	m := &lottie.Mask{
		Inverted: true,
		Points: lottie.Static(lottie.PathGeometry{
			Segments: []lottie.BezierSegment{{
				ControlPoint0: lottie.Vec2(0, 0),
				ControlPoint1: lottie.Vec2(1, 0),
				ControlPoint2: lottie.Vec2(1, 1),
				ControlPoint3: lottie.Vec2(0, 1),
			}},
			IsClosed: true,
		}),
		Opacity: lottie.Static(100.0),
		Mode:    lottie.MaskSubtract,
	}
	got, err := BuildMask(m)
	if err != nil {
		t.Fatalf("BuildMask: %v", err)
	}
	want := doc.NewElement("Mask",
		doc.Attr{Name: "Inverted", Value: "true"},
		doc.Attr{Name: "Name", Value: ""},
		doc.Attr{Name: "Points", Value: "M0,0 C1,0 1,1 0,1 Z"},
		doc.Attr{Name: "Opacity", Value: "100"},
		doc.Attr{Name: "Mode", Value: "Subtract"},
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDeterminism(t *testing.T) {
	c := fullComposition()
	a, err := Build(c)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := Build(c)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !doc.Equal(a, b) {
		t.Errorf("builds differ: %v", doc.Diff(a, b))
	}
}

func TestConcurrentBuild(t *testing.T) {
	c := fullComposition()
	want, err := Build(c)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Build(c)
			if err != nil {
				errs <- err.Error()
				return
			}
			if !doc.Equal(want, got) {
				errs <- "concurrent build differs"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestBuildObject(t *testing.T) {
	tests := []struct {
		obj  lottie.Object
		root string
	}{
		{fullComposition(), "LottieComposition"},
		{&lottie.Marker{}, "Marker"},
		{&lottie.TextLayer{LayerBase: layerBase(1)}, "Text"},
		{&lottie.MergePaths{Mode: lottie.MergeAdd}, "MergePaths"},
		{lottie.IdentityTransform(), "Transform"},
	}
	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			d, err := BuildObject(tt.obj)
			if err != nil {
				t.Fatalf("BuildObject: %v", err)
			}
			if d.Root.Name != tt.root {
				t.Errorf("root = %s, want %s", d.Root.Name, tt.root)
			}
		})
	}
}

type foreignLayer struct{ lottie.LayerBase }

func (*foreignLayer) ObjectType() lottie.ObjectType { return lottie.ObjectTypeNullLayer }
func (*foreignLayer) LayerType() lottie.LayerType   { return lottie.LayerTypeNull }

type foreignContent struct{ lottie.ShapeContentBase }

func (*foreignContent) ObjectType() lottie.ObjectType        { return lottie.ObjectTypeShape }
func (*foreignContent) ContentType() lottie.ShapeContentType { return lottie.ShapeContentTypePath }

type foreignVector struct{ lottie.AnimatableXYZ }

func TestFaults(t *testing.T) {
	nilVector := lottie.IdentityTransform()
	nilVector.Anchor = nil
	foreignVec := lottie.IdentityTransform()
	foreignVec.Position = &foreignVector{}

	tests := []struct {
		name   string
		build  func() (any, error)
		family string
	}{
		{"nil composition", func() (any, error) { return Build(nil) }, "composition"},
		{"nil layer", func() (any, error) {
			return Build(&lottie.Composition{Layers: lottie.NewLayerCollection(&lottie.NullLayer{LayerBase: layerBase(1)}, nil)})
		}, "layer"},
		{"typed nil layer", func() (any, error) { return BuildLayer((*lottie.SolidLayer)(nil)) }, "layer"},
		{"foreign layer", func() (any, error) {
			return Build(&lottie.Composition{Layers: lottie.NewLayerCollection(&foreignLayer{LayerBase: layerBase(1)})})
		}, "layer"},
		{"nil shape content", func() (any, error) {
			return BuildLayer(&lottie.ShapeLayer{LayerBase: layerBase(1), Contents: []lottie.ShapeContent{&lottie.ShapeGroup{Contents: []lottie.ShapeContent{nil}}}})
		}, "shape content"},
		{"foreign shape content", func() (any, error) { return BuildShapeContent(&foreignContent{}) }, "shape content"},
		{"nil vector", func() (any, error) { return BuildTransform(nilVector) }, "vector property"},
		{"foreign vector", func() (any, error) { return BuildTransform(foreignVec) }, "vector property"},
		{"nil transform", func() (any, error) { return BuildLayer(&lottie.NullLayer{}) }, "transform"},
		{"nil asset", func() (any, error) { return BuildAsset(nil) }, "asset"},
		{"nil mask", func() (any, error) { return BuildMask(nil) }, "mask"},
		{"nil marker", func() (any, error) {
			return Build(&lottie.Composition{Markers: []*lottie.Marker{nil}})
		}, "marker"},
		{"nil object", func() (any, error) { return BuildObject(nil) }, "object"},
		{"typed nil composition object", func() (any, error) { return BuildObject((*lottie.Composition)(nil)) }, "object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.build()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeUnreachable) {
				t.Errorf("code = %v, want UNREACHABLE", errors.GetCode(err))
			}
			var f *Fault
			if !stderrors.As(err, &f) {
				t.Fatalf("error %v does not wrap *Fault", err)
			}
			if f.Family != tt.family {
				t.Errorf("Family = %q, want %q", f.Family, tt.family)
			}
			if !strings.HasPrefix(f.Error(), "unreachable: ") {
				t.Errorf("Fault.Error() = %q", f.Error())
			}
			switch v := out.(type) {
			case *doc.Document:
				if v != nil {
					t.Error("partial document returned")
				}
			case *doc.Element:
				if v != nil {
					t.Error("partial element returned")
				}
			}
		})
	}
}

func TestNonFaultPanicPropagates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("panic was swallowed")
		}
	}()
	_, _ = guard(func() int { panic("boom") })
}
