package lottie

// Composition is the root of a Lottie scene graph.
type Composition struct {
	ObjectBase
	Version  Version
	Width    float64
	Height   float64
	InPoint  float64
	OutPoint float64
	Assets   *AssetCollection
	Layers   *LayerCollection
	Markers  []*Marker
}

func (*Composition) ObjectType() ObjectType { return ObjectTypeComposition }

// Duration returns the number of frames between InPoint and OutPoint.
func (c *Composition) Duration() float64 { return c.OutPoint - c.InPoint }

// Marker is a named time range of the composition.
type Marker struct {
	ObjectBase
	Frame                float64
	DurationMilliseconds float64
}

func (*Marker) ObjectType() ObjectType { return ObjectTypeMarker }
