package domain

// Product is what a crop option is turned into before selling
type Product string

const (
	ProductCrop     Product = "crop"
	ProductSeed     Product = "seed"
	ProductPreserve Product = "preserve"
)

// IsValid reports whether p is a known product
func (p Product) IsValid() bool {
	return p == ProductCrop || p == ProductSeed || p == ProductPreserve
}

// NeedsProcessing reports whether p requires a crafter
func (p Product) NeedsProcessing() bool {
	return p == ProductSeed || p == ProductPreserve
}

// ItemKind is the item a crafter produces for p
func (p Product) ItemKind() ItemKind {
	switch p {
	case ProductSeed:
		return ItemSeed
	case ProductPreserve:
		return ItemPreserve
	default:
		return ItemCrop
	}
}

// OptionKey identifies one quality of one crop
type OptionKey struct {
	Crop CropKind `json:"crop"`
	Star bool     `json:"star"`
}

// CropOption configures how one (crop, quality) stream is handled.
// SeparateHarvestDays ships whatever a day's harvest could not hand to a
// crafter as raw crops on that same day instead of queueing it.
type CropOption struct {
	Crop                CropKind `json:"crop" validate:"required"`
	Star                bool     `json:"star"`
	Product             Product  `json:"product" validate:"required,oneof=crop seed preserve"`
	Crafters            int      `json:"crafters" validate:"min=0,max=30"`
	SeparateHarvestDays bool     `json:"separate_harvest_days"`
}

// Key returns the option's (crop, quality) key
func (o CropOption) Key() OptionKey {
	return OptionKey{Crop: o.Crop, Star: o.Star}
}

// ProductMap maps (crop, quality) to a product for valuation
type ProductMap map[OptionKey]Product

// ProductFor returns the configured product, defaulting to raw crop
func (m ProductMap) ProductFor(crop CropKind, star bool) Product {
	if p, ok := m[OptionKey{Crop: crop, Star: star}]; ok {
		return p
	}
	return ProductCrop
}

// ProductsFromOptions builds a ProductMap from crop options
func ProductsFromOptions(opts []CropOption) ProductMap {
	m := make(ProductMap, len(opts))
	for _, o := range opts {
		m[o.Key()] = o.Product
	}
	return m
}
