package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/lottiedoc/pkg/builder"
	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/lottie"
)

func small() *doc.Document {
	return doc.New(doc.NewElement("Transform",
		doc.Attr{Name: "Rotation", Value: "0"},
		doc.Attr{Name: "Name", Value: `a<b & "c"`},
		doc.NewElement("Opacity", doc.Text("0@0(Linear), 100@30(Linear)")),
		doc.NewElement("Empty"),
	))
}

func sceneDocument(t *testing.T) *doc.Document {
	t.Helper()
	curved := lottie.Key(0, lottie.Vec2(0, 0), lottie.Linear)
	curved.SpatialControlPoint1 = lottie.Vec2(5, 5)
	tr := lottie.IdentityTransform()
	tr.Position = lottie.AnimatedVector3(curved, lottie.Key(30, lottie.Vec2(10, 10), lottie.Hold))
	tr.Opacity = lottie.Animated(lottie.Key(0, 0.0, lottie.Linear), lottie.Key(30, 100.0, lottie.Linear))

	c := &lottie.Composition{
		ObjectBase: lottie.ObjectBase{Name: "scene"},
		Version:    lottie.Version{Major: 5, Minor: 7},
		Width:      64,
		Height:     64,
		OutPoint:   30,
		Layers: lottie.NewLayerCollection(
			&lottie.ShapeLayer{
				LayerBase: lottie.LayerBase{Index: 1, OutPoint: 30, TimeStretch: 1, Transform: tr},
				Contents: []lottie.ShapeContent{
					&lottie.Rectangle{
						Size:         lottie.StaticVector3(lottie.Vec2(10, 10)),
						Position:     lottie.StaticVector3(lottie.Vec2(0, 0)),
						CornerRadius: lottie.Static(1.5),
					},
					&lottie.SolidColorFill{Color: lottie.Static(lottie.ColorFromARGB(255, 0, 128, 255)), Opacity: lottie.Static(100.0)},
				},
			},
		),
	}
	d, err := builder.Build(c)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return d
}

func TestRenderXML(t *testing.T) {
	got, err := RenderXML(small())
	if err != nil {
		t.Fatalf("RenderXML: %v", err)
	}
	want := `<?xml version="1.0" encoding="utf-8"?>
<Transform Rotation="0" Name="a&lt;b &amp; &#34;c&#34;">
  <Opacity>0@0(Linear), 100@30(Linear)</Opacity>
  <Empty></Empty>
</Transform>
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("RenderXML mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderXMLCompact(t *testing.T) {
	got, err := RenderXML(small(), WithIndent(0))
	if err != nil {
		t.Fatalf("RenderXML: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(got)), "\n")
	if len(lines) != 2 {
		t.Errorf("compact output has %d lines, want header and body", len(lines))
	}
}

func TestXMLRoundTrip(t *testing.T) {
	for _, indent := range []int{0, 2, 4} {
		d := sceneDocument(t)
		data, err := RenderXML(d, WithIndent(indent))
		if err != nil {
			t.Fatalf("RenderXML: %v", err)
		}
		back, err := ParseXML(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("ParseXML: %v", err)
		}
		if diffs := doc.Diff(d, back); len(diffs) > 0 {
			t.Errorf("indent %d: round trip differs: %v", indent, diffs)
		}
	}
}

func TestParseXMLErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"unclosed", "<A><B></A>"},
		{"two roots", "<A></A><B></B>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseXML(strings.NewReader(tt.in))
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ParseXML(%q) error = %v, want INVALID_FORMAT", tt.in, err)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := sceneDocument(t)
	data, err := RenderJSON(d)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	if !bytes.Contains(data, []byte(`"name": "LottieComposition"`)) {
		t.Errorf("unexpected json:\n%s", data)
	}
	back, err := ParseJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if !doc.Equal(d, back) {
		t.Errorf("round trip differs: %v", doc.Diff(d, back))
	}
}

func TestRenderJSONShape(t *testing.T) {
	got, err := RenderJSON(doc.New(doc.NewElement("A", doc.Attr{Name: "x", Value: "1"}, doc.Text("t"))), WithIndent(0))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	want := `{"name":"A","attributes":[{"name":"x","value":"1"}],"children":[{"text":"t"}]}` + "\n"
	if string(got) != want {
		t.Errorf("RenderJSON = %s, want %s", got, want)
	}
}

func TestParseJSONRejectsNamelessElement(t *testing.T) {
	_, err := ParseJSON(strings.NewReader(`{"children":[{"attributes":[]}]}`))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestRenderYAML(t *testing.T) {
	got, err := RenderYAML(small())
	if err != nil {
		t.Fatalf("RenderYAML: %v", err)
	}
	if !bytes.Contains(got, []byte(`Rotation: "0"`)) {
		t.Errorf("numeric-looking attribute not quoted:\n%s", got)
	}

	var back map[string]map[string]any
	if err := yaml.Unmarshal(got, &back); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	body := back["Transform"]
	if body["Rotation"] != "0" || body["Name"] != `a<b & "c"` {
		t.Errorf("attributes = %v", body)
	}
	children, ok := body["children"].([]any)
	if !ok || len(children) != 2 {
		t.Fatalf("children = %#v", body["children"])
	}
	opacity := children[0].(map[string]any)["Opacity"].(map[string]any)
	if diff := cmp.Diff([]any{"0@0(Linear), 100@30(Linear)"}, opacity["children"]); diff != "" {
		t.Errorf("Opacity text mismatch (-want +got):\n%s", diff)
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(small())
	for _, want := range []string{
		`n0 [label="Transform"];`,
		`n1 [label="Opacity", fillcolor=lightyellow];`,
		`n2 [label="Empty"];`,
		"n0 -> n1;",
		"n0 -> n2;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	detailed := ToDOT(small(), WithDetailed())
	if !strings.Contains(detailed, `Rotation: 0`) {
		t.Errorf("detailed DOT missing attributes:\n%s", detailed)
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering in short mode")
	}
	svg, err := Render(small(), FormatSVG)
	if err != nil {
		t.Fatalf("Render svg: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("output is not svg: %.80s", svg)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 44.00" width="62" height="44"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox = %s, want %s", got, want)
	}
	if out := normalizeViewBox([]byte("<svg/>")); string(out) != "<svg/>" {
		t.Errorf("svg without viewBox changed: %s", out)
	}
}

func TestParseFormats(t *testing.T) {
	got, err := ParseFormats("xml, JSON,yml,xml")
	if err != nil {
		t.Fatalf("ParseFormats: %v", err)
	}
	if diff := cmp.Diff([]Format{FormatXML, FormatJSON, FormatYAML}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"", " , ", "pdf"} {
		if _, err := ParseFormats(bad); !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ParseFormats(%q) error = %v", bad, err)
		}
	}
}

func TestRenderDispatch(t *testing.T) {
	d := small()
	for _, f := range []Format{FormatXML, FormatJSON, FormatYAML, FormatDOT} {
		out, err := Render(d, f)
		if err != nil {
			t.Errorf("Render(%s): %v", f, err)
		}
		if len(out) == 0 {
			t.Errorf("Render(%s) returned nothing", f)
		}
	}
	if _, err := Render(d, "pdf"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(pdf) error = %v", err)
	}
	if _, err := Render(nil, FormatXML); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Render(nil) error = %v", err)
	}
}

func TestFormatMetadata(t *testing.T) {
	if FormatSVG.Extension() != ".svg" || FormatSVG.ContentType() != "image/svg+xml" {
		t.Error("svg metadata mismatch")
	}
	if Format("bin").ContentType() != "application/octet-stream" {
		t.Error("unknown format content type mismatch")
	}
}
