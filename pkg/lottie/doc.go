// Package lottie defines the in-memory scene graph of a Lottie animation.
//
// # Overview
//
// A [Composition] is the root of the graph. It owns an ordered
// [AssetCollection], a [LayerCollection] and a list of [Marker]s. Layers own a
// [Transform], zero or more [Mask]s and, for shape layers, an ordered list of
// [ShapeContent] nodes which may nest through [ShapeGroup].
//
// # Closed families
//
// The polymorphic parts of the graph are closed variant families, each
// expressed as an interface sealed with an unexported method:
//
//   - [Object]: the composition, markers, every layer and every shape content
//   - [Layer]: [PreCompLayer], [SolidLayer], [ImageLayer], [NullLayer],
//     [ShapeLayer], [TextLayer]
//   - [ShapeContent]: groups, paths, primitive shapes, fills, strokes,
//     transforms and path modifiers
//   - [Asset]: [LayerCollectionAsset], [EmbeddedImageAsset], [ExternalImageAsset]
//   - [AnimatableVector3]: [AnimatableVector3Value] or [AnimatableXYZ]
//
// No type outside this package can join a family, so a type switch that
// handles every listed variant is complete. Every node also reports an explicit
// tag (for example [Layer.LayerType]) used for diagnostics and for the JSON
// interchange format in package io.
//
// # Animatable properties
//
// [Animatable] holds either a constant or an ordered keyframe sequence.
// [KeyFrame] carries the value, the frame at which it is reached, an [Easing]
// and, for [Vector3] values, two spatial control points describing a curved
// motion path.
//
// # Validation
//
// The graph is plain data with exported fields. Producers should call
// [Validate] before handing a composition to consumers; consumers such as the
// document builder trust the invariants it checks.
//
// # Concurrency
//
// Nothing in this package mutates a graph after construction. A fully built
// composition may be read from any number of goroutines.
package lottie
