// Package catalog defines the fixed list of mintable collection items.
// The catalog is static configuration; supply counters live on chain.
package catalog

type Attribute struct {
	TraitType string
	Value     any
}

type Item struct {
	ID          uint64
	Name        string
	Description string
	ImageURI    string
	MetadataURI string
	Rarity      string
	Element     string
	MaxSupply   uint64
	Attributes  []Attribute
}

// Items is the preset Genesis series, in contract item order. Index i
// corresponds to item ID i+1 in the parallel arrays returned by the
// contract's status call.
var Items = []Item{
	{
		ID:          1,
		Name:        "DMA Studio Genesis #1",
		Description: "First work of the Genesis series, fusing the Dirk Horn element with the studio's founding spirit.",
		ImageURI:    "ipfs://QmQcLJSRtjq8yU5RoeHezCLdvYcgbJ1Wz22Yb1vmcsKUim",
		MetadataURI: "ipfs://QmfKDMyMNzzUTmWm5CNwqDXCWKgwrUkbqfc3ZsrNvJHKDW",
		Rarity:      "Legendary",
		Element:     "Dirk Horn",
		MaxSupply:   3,
		Attributes: []Attribute{
			{TraitType: "Collection", Value: "Genesis"},
			{TraitType: "Element", Value: "Dirk Horn"},
			{TraitType: "Rarity", Value: "Legendary"},
			{TraitType: "Power Level", Value: 100},
		},
	},
	{
		ID:          2,
		Name:        "DMA Studio Genesis #2",
		Description: "Second work of the Genesis series, the minimalist philosophy of the Noir Badge.",
		ImageURI:    "ipfs://QmSbdtfZUSd52PMjxJcfrDpohShBYPPPAdrFhHikFTFSr6",
		MetadataURI: "ipfs://Qmczp3FG3h5F8H7rPrDenPigeTHrkEnrCUbSDnLTfUFDSn",
		Rarity:      "Epic",
		Element:     "Noir Badge",
		MaxSupply:   3,
		Attributes: []Attribute{
			{TraitType: "Collection", Value: "Genesis"},
			{TraitType: "Element", Value: "Noir Badge"},
			{TraitType: "Rarity", Value: "Epic"},
			{TraitType: "Aesthetic", Value: "Minimalist"},
		},
	},
	{
		ID:          3,
		Name:        "DMA Studio Genesis #3",
		Description: "Third work of the Genesis series, a breakthrough in artistic vision.",
		ImageURI:    "ipfs://QmZ6HjJacA3sL2MMA1wL5yA9qGLQiGLEABHxFnKGTDvYxq",
		MetadataURI: "ipfs://QmPQEQ7PVTDpqaBLWKZGArprQ63T9fyDRS4zguU5TiyEDd",
		Rarity:      "Rare",
		Element:     "Artistic Vision",
		MaxSupply:   3,
		Attributes: []Attribute{
			{TraitType: "Collection", Value: "Genesis"},
			{TraitType: "Element", Value: "Artistic Vision"},
			{TraitType: "Rarity", Value: "Rare"},
			{TraitType: "Vision Level", Value: 85},
		},
	},
	{
		ID:          4,
		Name:        "DMA Studio Genesis #4",
		Description: "Fourth work of the Genesis series, an exclusive digital masterpiece.",
		ImageURI:    "ipfs://QmVzVWf5YVDWBZ7skMp5LQEMafgEJtzRZHMXxnnMWdVSDR",
		MetadataURI: "ipfs://QmQoZEqreUwUJVtGmxPncLz1KLM5gsBxah2NCtTmHSNQFr",
		Rarity:      "Rare",
		Element:     "Digital Masterpiece",
		MaxSupply:   3,
		Attributes: []Attribute{
			{TraitType: "Collection", Value: "Genesis"},
			{TraitType: "Element", Value: "Digital Masterpiece"},
			{TraitType: "Rarity", Value: "Rare"},
			{TraitType: "Craftsmanship", Value: 90},
		},
	},
}

// ItemByID returns the catalog item with the given id.
func ItemByID(id uint64) (Item, bool) {
	for _, item := range Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// IsValidID reports whether id names a catalog item.
func IsValidID(id uint64) bool {
	_, ok := ItemByID(id)
	return ok
}

// Count returns the number of catalog items.
func Count() int {
	return len(Items)
}
