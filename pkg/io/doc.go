// Package io reads and writes Lottie scene graphs as JSON.
//
// # Format
//
// The interchange format is a direct JSON image of the [lottie] model. Every
// polymorphic node carries a "type" discriminator:
//
//	{
//	  "version": "5.7.1",
//	  "name": "spinner",
//	  "width": 512, "height": 512, "inPoint": 0, "outPoint": 60,
//	  "assets": [{"type": "precomp", "id": "comp_0", "layers": []}],
//	  "layers": [
//	    {"type": "shape", "index": 1, "outPoint": 60,
//	     "transform": {"rotation": {"keyframes": [
//	       {"frame": 0, "value": 0}, {"frame": 60, "value": 360}]}},
//	     "contents": [
//	       {"type": "ellipse", "diameter": [100, 100], "position": [256, 256]},
//	       {"type": "fill", "color": "#FF2196F3"}]}
//	  ]
//	}
//
// Layers are listed top-to-bottom, the order Lottie files use; they are
// stored bottom-to-top in a [lottie.LayerCollection].
//
// Layer types: precomp, solid, image, null, shape, text. Shape content types:
// group, path, ellipse, rectangle, polystar, fill, gradientFill,
// radialGradientFill, stroke, gradientStroke, radialGradientStroke,
// transform, trim, merge, roundedCorner, repeater. Asset types: precomp,
// image (bytes embedded as base64 "data"), externalImage.
//
// A property is either a bare value or {"keyframes": [...]}; see
// [lottie.Animatable.MarshalJSON]. Omitted properties take neutral defaults:
// opacity and scale 100, time stretch 1, everything else zero.
//
// # Validation
//
// [ReadJSON] runs [lottie.Validate] on the decoded composition unless
// [ReadOptions.SkipValidation] is set. Decode failures are reported as
// INVALID_INPUT errors naming the offending node, for example
// "layers[2].contents[0]: unknown shape content type \"blob\"".
package io
