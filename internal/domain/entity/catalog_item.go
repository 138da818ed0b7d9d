package entity

import (
	"strings"
	"time"
)

const (
	ItemTypeStamps         = "stamps"
	ItemTypeFirstDayCovers = "firstDayCovers"
	ItemTypePostcards      = "postcards"
	ItemTypeMiniatureSheet = "miniatureSheets"
)

type CatalogItem struct {
	ID                         string    `json:"id" firestore:"id"`
	UserID                     string    `json:"user_id" firestore:"userId"`
	Name                       string    `json:"name" firestore:"itemName"`
	Category                   string    `json:"category" firestore:"itemCategory"`
	Condition                  string    `json:"condition" firestore:"itemCondition"`
	Price                      float64   `json:"price" firestore:"itemPrice"`
	ImageURL                   string    `json:"image_url,omitempty" firestore:"itemPicURL,omitempty"`
	Description                string    `json:"description" firestore:"description"`
	AcquisitionDate            string    `json:"acquisition_date,omitempty" firestore:"acquisitionDate,omitempty"`
	CollectionLocation         string    `json:"collection_location,omitempty" firestore:"collectionLocation,omitempty"`
	Year                       int       `json:"year,omitempty" firestore:"year,omitempty"`
	Rarity                     string    `json:"rarity,omitempty" firestore:"rarity,omitempty"`
	PostalCircle               string    `json:"postal_circle,omitempty" firestore:"postalCircle,omitempty"`
	ItemType                   string    `json:"item_type,omitempty" firestore:"itemType,omitempty"`
	HasAuthenticityCertificate bool      `json:"has_authenticity_certificate" firestore:"hasAuthenticityCertificate"`
	ExpertVerified             bool      `json:"expert_verified" firestore:"expertVerified"`
	CreatedAt                  time.Time `json:"created_at" firestore:"createdAt"`
}

// CatalogFilter narrows a catalog listing. Zero values are ignored.
type CatalogFilter struct {
	UserID       string
	Category     string
	PostalCircle string
	Rarity       string
	ItemType     string
	YearFrom     int
	YearTo       int
	Search       string
}

// HasInMemoryCriteria reports whether the filter needs a pass that the
// document store cannot do with equality queries alone.
func (f CatalogFilter) HasInMemoryCriteria() bool {
	return f.Search != "" || f.YearFrom > 0 || f.YearTo > 0
}

// Matches applies the in-memory criteria: the year range and a case-insensitive
// search over name, description and category.
func (f CatalogFilter) Matches(item *CatalogItem) bool {
	if f.YearFrom > 0 && item.Year < f.YearFrom {
		return false
	}
	if f.YearTo > 0 && (item.Year == 0 || item.Year > f.YearTo) {
		return false
	}
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(item.Name), term) ||
		strings.Contains(strings.ToLower(item.Description), term) ||
		strings.Contains(strings.ToLower(item.Category), term)
}
