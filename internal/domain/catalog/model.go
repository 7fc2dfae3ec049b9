package catalog

import (
	"strings"
	"time"
)

// ItemType partitions the catalog: homemade food vs handmade crafts. The
// type doubles as the Firestore collection name.
type ItemType string

const (
	TypeProducts ItemType = "products"
	TypeCrafts   ItemType = "crafts"
)

func ParseItemType(s string) (ItemType, bool) {
	switch ItemType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeProducts:
		return TypeProducts, true
	case TypeCrafts:
		return TypeCrafts, true
	}
	return "", false
}

type Item struct {
	ID                string    `firestore:"-" json:"id"`
	Name              string    `firestore:"name" json:"name"`
	NameAr            string    `firestore:"nameAr,omitempty" json:"nameAr,omitempty"`
	FirstDescription  string    `firestore:"firstDescription,omitempty" json:"firstDescription,omitempty"`
	SecondDescription string    `firestore:"secondDescription,omitempty" json:"secondDescription,omitempty"`
	// Legacy single-description fields still present on old documents.
	Description   string    `firestore:"description,omitempty" json:"description,omitempty"`
	DescriptionAr string    `firestore:"descriptionAr,omitempty" json:"descriptionAr,omitempty"`
	PriceValue    float64   `firestore:"priceValue" json:"priceValue"`
	PriceCurrency string    `firestore:"priceCurrency,omitempty" json:"priceCurrency,omitempty"`
	Category      string    `firestore:"category,omitempty" json:"category,omitempty"`
	Image         string    `firestore:"image,omitempty" json:"image,omitempty"`
	Seller        string    `firestore:"seller,omitempty" json:"seller,omitempty"`
	Rating        float64   `firestore:"rating" json:"rating"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}

func (i *Item) SetID(id string) { i.ID = id }

// DisplayName picks the localized name, falling back to the English one.
func (i *Item) DisplayName(lang string) string {
	if lang == "ar" && i.NameAr != "" {
		return i.NameAr
	}
	return i.Name
}

type Category struct {
	ID     string `firestore:"-" json:"id"`
	Name   string `firestore:"name" json:"name"`
	NameAr string `firestore:"nameAr,omitempty" json:"nameAr,omitempty"`
	Type   string `firestore:"type,omitempty" json:"type,omitempty"`
}

func (c *Category) SetID(id string) { c.ID = id }

type ItemInput struct {
	Name              string  `json:"name" validate:"required"`
	NameAr            string  `json:"nameAr"`
	FirstDescription  string  `json:"firstDescription"`
	SecondDescription string  `json:"secondDescription"`
	Description       string  `json:"description"`
	DescriptionAr     string  `json:"descriptionAr"`
	PriceValue        any     `json:"priceValue"`
	PriceCurrency     string  `json:"priceCurrency"`
	Category          string  `json:"category"`
	Image             string  `json:"image"`
	Seller            string  `json:"seller"`
	Rating            float64 `json:"rating" validate:"gte=0,lte=5"`
}

func (in *ItemInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.NameAr = strings.TrimSpace(in.NameAr)
	in.Category = strings.TrimSpace(in.Category)
	in.Seller = strings.TrimSpace(in.Seller)
	in.PriceCurrency = strings.TrimSpace(in.PriceCurrency)
}

type CategoryInput struct {
	Name   string `json:"name" validate:"required"`
	NameAr string `json:"nameAr"`
}

func (in *CategoryInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.NameAr = strings.TrimSpace(in.NameAr)
}
