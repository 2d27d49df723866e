package lottie

// AssetType tags the top-level [Asset] variants.
type AssetType int

const (
	AssetTypeLayerCollection AssetType = iota
	AssetTypeImage
)

var assetTypeNames = []string{"LayerCollection", "Image"}

func (t AssetType) String() string { return enumString("AssetType", assetTypeNames, int(t)) }

// ImageAssetType tags the two kinds of image assets.
type ImageAssetType int

const (
	ImageAssetTypeEmbedded ImageAssetType = iota
	ImageAssetTypeExternal
)

var imageAssetTypeNames = []string{"Embedded", "External"}

func (t ImageAssetType) String() string {
	return enumString("ImageAssetType", imageAssetTypeNames, int(t))
}

// Asset is a reusable resource referenced by id from precomp and image layers.
type Asset interface {
	AssetID() string
	AssetType() AssetType
	sealedAsset()
}

// ImageAsset is the image subfamily of [Asset].
type ImageAsset interface {
	Asset
	ImageAssetType() ImageAssetType
}

// LayerCollectionAsset is a precomposition: a reusable set of layers.
type LayerCollectionAsset struct {
	ID     string
	Layers *LayerCollection
}

// EmbeddedImageAsset is an image whose encoded bytes live in the file.
type EmbeddedImageAsset struct {
	ID     string
	Width  float64
	Height float64
	Format string
	Bytes  []byte
}

// ExternalImageAsset is an image loaded from Path/FileName at play time.
type ExternalImageAsset struct {
	ID       string
	Width    float64
	Height   float64
	Path     string
	FileName string
}

func (a *LayerCollectionAsset) AssetID() string { return a.ID }
func (a *EmbeddedImageAsset) AssetID() string   { return a.ID }
func (a *ExternalImageAsset) AssetID() string   { return a.ID }

func (*LayerCollectionAsset) AssetType() AssetType { return AssetTypeLayerCollection }
func (*EmbeddedImageAsset) AssetType() AssetType   { return AssetTypeImage }
func (*ExternalImageAsset) AssetType() AssetType   { return AssetTypeImage }

func (*EmbeddedImageAsset) ImageAssetType() ImageAssetType { return ImageAssetTypeEmbedded }
func (*ExternalImageAsset) ImageAssetType() ImageAssetType { return ImageAssetTypeExternal }

func (*LayerCollectionAsset) sealedAsset() {}
func (*EmbeddedImageAsset) sealedAsset()   {}
func (*ExternalImageAsset) sealedAsset()   {}

// AssetCollection is the ordered list of assets of a composition.
type AssetCollection struct {
	assets []Asset
}

// NewAssetCollection returns a collection holding assets in the given order.
func NewAssetCollection(assets ...Asset) *AssetCollection {
	return &AssetCollection{assets: assets}
}

// All returns the assets in declaration order. The slice must not be modified.
func (c *AssetCollection) All() []Asset {
	if c == nil {
		return nil
	}
	return c.assets
}

// Len returns the number of assets.
func (c *AssetCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.assets)
}

// Lookup returns the first asset with the given id.
func (c *AssetCollection) Lookup(id string) (Asset, bool) {
	for _, a := range c.All() {
		if !isNil(a) && a.AssetID() == id {
			return a, true
		}
	}
	return nil, false
}
