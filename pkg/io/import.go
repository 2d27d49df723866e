package io

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/lottie"
)

// ReadOptions controls [ReadJSON].
type ReadOptions struct {
	// SkipValidation returns the decoded composition without running
	// [lottie.Validate].
	SkipValidation bool
}

// ReadJSON decodes a scene from r and validates it. ReadJSON does not close r.
func ReadJSON(r io.Reader, opts ReadOptions) (*lottie.Composition, error) {
	var data sceneJSON
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode scene")
	}

	c, err := decodeScene(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode scene")
	}
	if !opts.SkipValidation {
		if err := lottie.Validate(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ImportJSON reads the scene file at path.
func ImportJSON(path string, opts ReadOptions) (*lottie.Composition, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f, opts)
}

func decodeScene(s sceneJSON) (*lottie.Composition, error) {
	c := &lottie.Composition{
		ObjectBase: lottie.ObjectBase{Name: s.Name},
		Version:    s.Version,
		Width:      s.Width,
		Height:     s.Height,
		InPoint:    s.InPoint,
		OutPoint:   s.OutPoint,
	}

	assets := make([]lottie.Asset, len(s.Assets))
	for i, a := range s.Assets {
		asset, err := decodeAsset(a)
		if err != nil {
			return nil, fmt.Errorf("assets[%d]: %w", i, err)
		}
		assets[i] = asset
	}
	c.Assets = lottie.NewAssetCollection(assets...)

	layers, err := decodeLayers("layers", s.Layers)
	if err != nil {
		return nil, err
	}
	c.Layers = layers

	for _, m := range s.Markers {
		c.Markers = append(c.Markers, &lottie.Marker{
			ObjectBase:           lottie.ObjectBase{Name: m.Name},
			Frame:                m.Frame,
			DurationMilliseconds: m.DurationMs,
		})
	}
	return c, nil
}

func decodeAsset(a assetJSON) (lottie.Asset, error) {
	switch a.Type {
	case "precomp":
		layers, err := decodeLayers("layers", a.Layers)
		if err != nil {
			return nil, err
		}
		return &lottie.LayerCollectionAsset{ID: a.ID, Layers: layers}, nil
	case "image":
		return &lottie.EmbeddedImageAsset{ID: a.ID, Width: a.Width, Height: a.Height, Format: a.Format, Bytes: a.Data}, nil
	case "externalImage":
		return &lottie.ExternalImageAsset{ID: a.ID, Width: a.Width, Height: a.Height, Path: a.Path, FileName: a.FileName}, nil
	}
	return nil, fmt.Errorf("unknown asset type %q", a.Type)
}

// decodeLayers converts the top-to-bottom file order into a bottom-to-top
// collection.
func decodeLayers(path string, in []layerJSON) (*lottie.LayerCollection, error) {
	layers := make([]lottie.Layer, len(in))
	for i, l := range in {
		layer, err := decodeLayer(l)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", path, i, err)
		}
		layers[i] = layer
	}
	slices.Reverse(layers)
	return lottie.NewLayerCollection(layers...), nil
}

func decodeLayer(l layerJSON) (lottie.Layer, error) {
	base := lottie.LayerBase{
		ObjectBase:  lottie.ObjectBase{Name: l.Name},
		Index:       l.Index,
		IsHidden:    l.Hidden,
		StartTime:   l.StartTime,
		InPoint:     l.InPoint,
		OutPoint:    l.OutPoint,
		TimeStretch: 1,
		Parent:      l.Parent,
		MatteType:   l.Matte,
	}
	if l.TimeStretch != nil {
		base.TimeStretch = *l.TimeStretch
	}
	base.Transform = decodeTransform(l.Transform)
	for _, m := range l.Masks {
		base.Masks = append(base.Masks, &lottie.Mask{
			Inverted: m.Inverted,
			Name:     m.Name,
			Points:   orPath(m.Points),
			Opacity:  or(m.Opacity, 100),
			Mode:     m.Mode,
		})
	}

	switch l.Type {
	case "precomp":
		return &lottie.PreCompLayer{LayerBase: base, Width: l.Width, Height: l.Height, RefID: l.RefID}, nil
	case "solid":
		var color lottie.Color
		if l.Color != nil {
			color = *l.Color
		}
		w, err := wholeNumber("width", l.Width)
		if err != nil {
			return nil, err
		}
		h, err := wholeNumber("height", l.Height)
		if err != nil {
			return nil, err
		}
		return &lottie.SolidLayer{LayerBase: base, Width: w, Height: h, Color: color}, nil
	case "image":
		return &lottie.ImageLayer{LayerBase: base, RefID: l.RefID}, nil
	case "null":
		return &lottie.NullLayer{LayerBase: base}, nil
	case "shape":
		contents, err := decodeContents(l.Contents)
		if err != nil {
			return nil, err
		}
		return &lottie.ShapeLayer{LayerBase: base, Contents: contents}, nil
	case "text":
		return &lottie.TextLayer{LayerBase: base}, nil
	}
	return nil, fmt.Errorf("unknown layer type %q", l.Type)
}

// wholeNumber converts a JSON number that must hold an integer.
func wholeNumber(field string, f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s %s is not a whole number", field, lottie.FormatFloat(f))
	}
	return int(f), nil
}

func decodeContents(in []contentJSON) ([]lottie.ShapeContent, error) {
	out := make([]lottie.ShapeContent, len(in))
	for i, c := range in {
		content, err := decodeContent(c)
		if err != nil {
			return nil, fmt.Errorf("contents[%d]: %w", i, err)
		}
		out[i] = content
	}
	return out, nil
}

func decodeContent(c contentJSON) (lottie.ShapeContent, error) {
	base := lottie.ShapeContentBase{ObjectBase: lottie.ObjectBase{Name: c.Name}, MatchName: c.MatchName}
	style := lottie.StrokeStyle{LineCap: c.LineCap, LineJoin: c.LineJoin, MiterLimit: c.MiterLimit}

	switch c.Type {
	case "group":
		contents, err := decodeContents(c.Contents)
		if err != nil {
			return nil, err
		}
		return &lottie.ShapeGroup{ShapeContentBase: base, Contents: contents}, nil
	case "path":
		return &lottie.Path{ShapeContentBase: base, Direction: c.Direction, Geometry: orPath(c.Geometry)}, nil
	case "ellipse":
		return &lottie.Ellipse{
			ShapeContentBase: base,
			Direction:        c.Direction,
			Diameter:         vec(c.Diameter, lottie.Vector3{}),
			Position:         vec(c.Position, lottie.Vector3{}),
		}, nil
	case "rectangle":
		return &lottie.Rectangle{
			ShapeContentBase: base,
			Direction:        c.Direction,
			Size:             vec(c.Size, lottie.Vector3{}),
			Position:         vec(c.Position, lottie.Vector3{}),
			CornerRadius:     or(c.CornerRadius, 0),
		}, nil
	case "polystar":
		return &lottie.Polystar{
			ShapeContentBase: base,
			Direction:        c.Direction,
			StarType:         c.StarType,
			Points:           or(c.Points, 5),
			Position:         vec(c.Position, lottie.Vector3{}),
			Rotation:         or(c.Rotation, 0),
			InnerRadius:      or(c.InnerRadius, 0),
			InnerRoundness:   or(c.InnerRoundness, 0),
			OuterRadius:      or(c.OuterRadius, 0),
			OuterRoundness:   or(c.OuterRoundness, 0),
		}, nil
	case "fill":
		return &lottie.SolidColorFill{
			ShapeContentBase: base,
			FillType:         c.FillType,
			Color:            orColor(c.Color),
			Opacity:          or(c.Opacity, 100),
		}, nil
	case "gradientFill":
		return &lottie.LinearGradientFill{ShapeContentBase: base, GradientFill: gradientFill(c)}, nil
	case "radialGradientFill":
		return &lottie.RadialGradientFill{
			ShapeContentBase: base,
			GradientFill:     gradientFill(c),
			HighlightLength:  or(c.HighlightLength, 0),
			HighlightDegrees: or(c.HighlightDegrees, 0),
		}, nil
	case "stroke":
		return &lottie.SolidColorStroke{
			ShapeContentBase: base,
			StrokeStyle:      style,
			Color:            orColor(c.Color),
			Opacity:          or(c.Opacity, 100),
			StrokeWidth:      or(c.StrokeWidth, 1),
		}, nil
	case "gradientStroke":
		return &lottie.LinearGradientStroke{ShapeContentBase: base, GradientStroke: gradientStroke(c, style)}, nil
	case "radialGradientStroke":
		return &lottie.RadialGradientStroke{
			ShapeContentBase: base,
			GradientStroke:   gradientStroke(c, style),
			HighlightLength:  or(c.HighlightLength, 0),
			HighlightDegrees: or(c.HighlightDegrees, 0),
		}, nil
	case "transform":
		return decodeTransform(&c), nil
	case "trim":
		return &lottie.TrimPath{
			ShapeContentBase: base,
			TrimPathType:     c.TrimType,
			StartTrim:        or(c.Start, 0),
			EndTrim:          or(c.End, 100),
			Offset:           or(c.Offset, 0),
		}, nil
	case "merge":
		return &lottie.MergePaths{ShapeContentBase: base, Mode: c.Mode}, nil
	case "roundedCorner":
		return &lottie.RoundedCorner{ShapeContentBase: base, Radius: or(c.Radius, 0)}, nil
	case "repeater":
		return &lottie.Repeater{
			ShapeContentBase: base,
			Count:            or(c.Count, 1),
			Offset:           or(c.Offset, 0),
			Transform:        decodeTransform(c.Transform),
		}, nil
	}
	return nil, fmt.Errorf("unknown shape content type %q", c.Type)
}

func gradientFill(c contentJSON) lottie.GradientFill {
	return lottie.GradientFill{
		FillType:      c.FillType,
		Opacity:       or(c.Opacity, 100),
		StartPoint:    vec(c.StartPoint, lottie.Vector3{}),
		EndPoint:      vec(c.EndPoint, lottie.Vector3{}),
		GradientStops: orStops(c.GradientStops),
	}
}

func gradientStroke(c contentJSON, style lottie.StrokeStyle) lottie.GradientStroke {
	return lottie.GradientStroke{
		StrokeStyle:   style,
		Opacity:       or(c.Opacity, 100),
		StrokeWidth:   or(c.StrokeWidth, 1),
		StartPoint:    vec(c.StartPoint, lottie.Vector3{}),
		EndPoint:      vec(c.EndPoint, lottie.Vector3{}),
		GradientStops: orStops(c.GradientStops),
	}
}

// decodeTransform fills omitted properties from the identity transform.
func decodeTransform(c *contentJSON) *lottie.Transform {
	t := lottie.IdentityTransform()
	if c == nil {
		return t
	}
	t.Name = c.Name
	t.MatchName = c.MatchName
	t.Anchor = vec(c.Anchor, lottie.Vector3{})
	t.Position = vec(c.Position, lottie.Vector3{})
	t.ScalePercent = vec(c.Scale, lottie.Vector3{X: 100, Y: 100, Z: 100})
	t.Rotation = or(c.Rotation, 0)
	t.Opacity = or(c.Opacity, 100)
	return t
}

func or(a *anim, def float64) anim {
	if a == nil {
		return lottie.Static(def)
	}
	return *a
}

func orColor(a *animColor) animColor {
	if a == nil {
		return lottie.Static(lottie.Color{A: 1})
	}
	return *a
}

func orPath(a *animPath) animPath {
	if a == nil {
		return lottie.Static(lottie.PathGeometry{})
	}
	return *a
}

func orStops(a *animStops) animStops {
	if a == nil {
		return lottie.Static(lottie.GradientStops(nil))
	}
	return *a
}

func vec(v *vector, def lottie.Vector3) lottie.AnimatableVector3 {
	if v == nil || v.AnimatableVector3 == nil {
		return lottie.StaticVector3(def)
	}
	return v.AnimatableVector3
}
