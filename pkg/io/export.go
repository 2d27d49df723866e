package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/lottie"
)

// WriteJSON encodes c as an indented scene document. Every property is
// written explicitly, so [ReadJSON] restores an identical composition.
func WriteJSON(c *lottie.Composition, w io.Writer) error {
	out, err := encodeScene(c)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes c to a scene file at path.
func ExportJSON(c *lottie.Composition, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(c, f)
}

func encodeScene(c *lottie.Composition) (sceneJSON, error) {
	if c == nil {
		return sceneJSON{}, errors.New(errors.ErrCodeInvalidInput, "encode scene: nil composition")
	}
	out := sceneJSON{
		Version:  c.Version,
		Name:     c.Name,
		Width:    c.Width,
		Height:   c.Height,
		InPoint:  c.InPoint,
		OutPoint: c.OutPoint,
	}
	for i, a := range c.Assets.All() {
		asset, err := encodeAsset(a)
		if err != nil {
			return sceneJSON{}, fmt.Errorf("assets[%d]: %w", i, err)
		}
		out.Assets = append(out.Assets, asset)
	}
	layers, err := encodeLayers(c.Layers)
	if err != nil {
		return sceneJSON{}, fmt.Errorf("layers%w", err)
	}
	out.Layers = layers
	for _, m := range c.Markers {
		if m == nil {
			return sceneJSON{}, errors.New(errors.ErrCodeInvalidInput, "encode scene: nil marker")
		}
		out.Markers = append(out.Markers, markerJSON{Name: m.Name, Frame: m.Frame, DurationMs: m.DurationMilliseconds})
	}
	return out, nil
}

func encodeAsset(a lottie.Asset) (assetJSON, error) {
	switch a := a.(type) {
	case *lottie.LayerCollectionAsset:
		layers, err := encodeLayers(a.Layers)
		if err != nil {
			return assetJSON{}, fmt.Errorf("layers%w", err)
		}
		return assetJSON{Type: "precomp", ID: a.ID, Layers: layers}, nil
	case *lottie.EmbeddedImageAsset:
		return assetJSON{Type: "image", ID: a.ID, Width: a.Width, Height: a.Height, Format: a.Format, Data: a.Bytes}, nil
	case *lottie.ExternalImageAsset:
		return assetJSON{Type: "externalImage", ID: a.ID, Width: a.Width, Height: a.Height, Path: a.Path, FileName: a.FileName}, nil
	}
	return assetJSON{}, fmt.Errorf("unsupported asset %T", a)
}

// encodeLayers writes layers top-to-bottom. Errors are prefixed with the
// index in that order.
func encodeLayers(c *lottie.LayerCollection) ([]layerJSON, error) {
	out := []layerJSON{}
	for i, l := range c.TopToBottom() {
		layer, err := encodeLayer(l)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, layer)
	}
	return out, nil
}

func encodeLayer(l lottie.Layer) (layerJSON, error) {
	if l == nil {
		return layerJSON{}, fmt.Errorf("nil layer")
	}
	b := l.Base()
	stretch := b.TimeStretch
	out := layerJSON{
		Index:       b.Index,
		Name:        b.Name,
		Hidden:      b.IsHidden,
		StartTime:   b.StartTime,
		InPoint:     b.InPoint,
		OutPoint:    b.OutPoint,
		TimeStretch: &stretch,
		Parent:      b.Parent,
		Matte:       b.MatteType,
	}
	if b.Transform != nil {
		t := encodeTransform(b.Transform)
		out.Transform = &t
	}
	for _, m := range b.Masks {
		if m == nil {
			return layerJSON{}, fmt.Errorf("nil mask")
		}
		points, opacity := m.Points, m.Opacity
		out.Masks = append(out.Masks, maskJSON{
			Name:     m.Name,
			Inverted: m.Inverted,
			Mode:     m.Mode,
			Points:   &points,
			Opacity:  &opacity,
		})
	}

	out.Type = layerTypes[l.LayerType()]
	switch l := l.(type) {
	case *lottie.PreCompLayer:
		out.Width, out.Height, out.RefID = l.Width, l.Height, l.RefID
	case *lottie.SolidLayer:
		color := l.Color
		out.Width, out.Height, out.Color = float64(l.Width), float64(l.Height), &color
	case *lottie.ImageLayer:
		out.RefID = l.RefID
	case *lottie.ShapeLayer:
		contents, err := encodeContents(l.Contents)
		if err != nil {
			return layerJSON{}, err
		}
		out.Contents = contents
	case *lottie.NullLayer, *lottie.TextLayer:
	default:
		return layerJSON{}, fmt.Errorf("unsupported layer %T", l)
	}
	return out, nil
}

func encodeContents(in []lottie.ShapeContent) ([]contentJSON, error) {
	var out []contentJSON
	for i, c := range in {
		content, err := encodeContent(c)
		if err != nil {
			return nil, fmt.Errorf("contents[%d]: %w", i, err)
		}
		out = append(out, content)
	}
	return out, nil
}

func encodeContent(c lottie.ShapeContent) (contentJSON, error) {
	if c == nil {
		return contentJSON{}, fmt.Errorf("nil shape content")
	}
	if t, ok := c.(*lottie.Transform); ok {
		return encodeTransform(t), nil
	}

	base := c.ContentBase()
	out := contentJSON{Type: contentTypes[c.ContentType()], Name: base.Name, MatchName: base.MatchName}
	switch c := c.(type) {
	case *lottie.ShapeGroup:
		contents, err := encodeContents(c.Contents)
		if err != nil {
			return contentJSON{}, err
		}
		out.Contents = contents
	case *lottie.Path:
		out.Direction, out.Geometry = c.Direction, ptr(c.Geometry)
	case *lottie.Ellipse:
		out.Direction, out.Diameter, out.Position = c.Direction, vecPtr(c.Diameter), vecPtr(c.Position)
	case *lottie.Rectangle:
		out.Direction, out.Size, out.Position = c.Direction, vecPtr(c.Size), vecPtr(c.Position)
		out.CornerRadius = ptr(c.CornerRadius)
	case *lottie.Polystar:
		out.Direction, out.StarType = c.Direction, c.StarType
		out.Points, out.Position, out.Rotation = ptr(c.Points), vecPtr(c.Position), ptr(c.Rotation)
		out.InnerRadius, out.InnerRoundness = ptr(c.InnerRadius), ptr(c.InnerRoundness)
		out.OuterRadius, out.OuterRoundness = ptr(c.OuterRadius), ptr(c.OuterRoundness)
	case *lottie.SolidColorFill:
		out.FillType, out.Color, out.Opacity = c.FillType, ptr(c.Color), ptr(c.Opacity)
	case *lottie.LinearGradientFill:
		setGradientFill(&out, c.GradientFill)
	case *lottie.RadialGradientFill:
		setGradientFill(&out, c.GradientFill)
		out.HighlightLength, out.HighlightDegrees = ptr(c.HighlightLength), ptr(c.HighlightDegrees)
	case *lottie.SolidColorStroke:
		setStrokeStyle(&out, c.StrokeStyle)
		out.Color, out.Opacity, out.StrokeWidth = ptr(c.Color), ptr(c.Opacity), ptr(c.StrokeWidth)
	case *lottie.LinearGradientStroke:
		setGradientStroke(&out, c.GradientStroke)
	case *lottie.RadialGradientStroke:
		setGradientStroke(&out, c.GradientStroke)
		out.HighlightLength, out.HighlightDegrees = ptr(c.HighlightLength), ptr(c.HighlightDegrees)
	case *lottie.TrimPath:
		out.TrimType, out.Start, out.End, out.Offset = c.TrimPathType, ptr(c.StartTrim), ptr(c.EndTrim), ptr(c.Offset)
	case *lottie.MergePaths:
		out.Mode = c.Mode
	case *lottie.RoundedCorner:
		out.Radius = ptr(c.Radius)
	case *lottie.Repeater:
		out.Count, out.Offset = ptr(c.Count), ptr(c.Offset)
		if c.Transform != nil {
			t := encodeTransform(c.Transform)
			out.Transform = &t
		}
	default:
		return contentJSON{}, fmt.Errorf("unsupported shape content %T", c)
	}
	return out, nil
}

func setStrokeStyle(out *contentJSON, s lottie.StrokeStyle) {
	out.LineCap, out.LineJoin, out.MiterLimit = s.LineCap, s.LineJoin, s.MiterLimit
}

func setGradientFill(out *contentJSON, g lottie.GradientFill) {
	out.FillType, out.Opacity = g.FillType, ptr(g.Opacity)
	out.StartPoint, out.EndPoint = vecPtr(g.StartPoint), vecPtr(g.EndPoint)
	out.GradientStops = ptr(g.GradientStops)
}

func setGradientStroke(out *contentJSON, g lottie.GradientStroke) {
	setStrokeStyle(out, g.StrokeStyle)
	out.Opacity, out.StrokeWidth = ptr(g.Opacity), ptr(g.StrokeWidth)
	out.StartPoint, out.EndPoint = vecPtr(g.StartPoint), vecPtr(g.EndPoint)
	out.GradientStops = ptr(g.GradientStops)
}

func encodeTransform(t *lottie.Transform) contentJSON {
	return contentJSON{
		Type:      "transform",
		Name:      t.Name,
		MatchName: t.MatchName,
		Anchor:    vecPtr(t.Anchor),
		Position:  vecPtr(t.Position),
		Scale:     vecPtr(t.ScalePercent),
		Rotation:  ptr(t.Rotation),
		Opacity:   ptr(t.Opacity),
	}
}

func ptr[T any](v T) *T { return &v }

func vecPtr(v lottie.AnimatableVector3) *vector {
	if v == nil {
		return nil
	}
	return &vector{v}
}
