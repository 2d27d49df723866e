package builder

import (
	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/lottie"
)

// objectContents is the prefix shared by every object.
func objectContents(o lottie.Object) []doc.Item {
	return []doc.Item{optionalAttr("Name", o.ObjectName())}
}

func fromComposition(c *lottie.Composition) *doc.Element {
	items := []doc.Item{stringerAttr("Version", c.Version)}
	items = append(items, objectContents(c)...)
	items = append(items,
		floatAttr("Width", c.Width),
		floatAttr("Height", c.Height),
		floatAttr("InPoint", c.InPoint),
		floatAttr("OutPoint", c.OutPoint),
		fromAssets(c.Assets),
		fromLayers(c.Layers),
	)
	if len(c.Markers) > 0 {
		markers := make([]doc.Item, len(c.Markers))
		for i, m := range c.Markers {
			if m == nil {
				fault("marker", m)
			}
			markers[i] = fromMarker(m)
		}
		items = append(items, doc.NewElement("Markers", markers...))
	}
	return doc.NewElement("LottieComposition", items...)
}

func fromAssets(c *lottie.AssetCollection) *doc.Element {
	items := make([]doc.Item, c.Len())
	for i, a := range c.All() {
		items[i] = fromAsset(a)
	}
	return doc.NewElement("Assets", items...)
}

func fromAsset(a lottie.Asset) *doc.Element {
	if isNil(a) {
		fault("asset", a)
	}
	switch a := a.(type) {
	case *lottie.LayerCollectionAsset:
		return doc.NewElement("LayerCollectionAsset",
			attr("Id", a.ID),
			fromLayers(a.Layers),
		)
	case *lottie.EmbeddedImageAsset:
		return doc.NewElement("ImageAsset",
			attr("Id", a.ID),
			floatAttr("Width", a.Width),
			floatAttr("Height", a.Height),
			attr("Format", a.Format),
			intAttr("SizeInBytes", len(a.Bytes)),
		)
	case *lottie.ExternalImageAsset:
		return doc.NewElement("ImageAsset",
			attr("Id", a.ID),
			floatAttr("Width", a.Width),
			floatAttr("Height", a.Height),
			attr("Path", a.Path),
			attr("FileName", a.FileName),
		)
	}
	fault("asset", a)
	return nil
}

// fromLayers emits the layers of a collection topmost first.
func fromLayers(c *lottie.LayerCollection) *doc.Element {
	layers := c.TopToBottom()
	items := make([]doc.Item, len(layers))
	for i, l := range layers {
		items[i] = fromLayer(l)
	}
	return doc.NewElement("Layers", items...)
}

func fromMarker(m *lottie.Marker) *doc.Element {
	items := objectContents(m)
	items = append(items,
		floatAttr("Frame", m.Frame),
		floatAttr("DurationMilliseconds", m.DurationMilliseconds),
	)
	return doc.NewElement("Marker", items...)
}
