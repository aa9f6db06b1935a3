package repository

import (
	"sort"

	"baanthai-construction-api/internal/models"
)

// The store's native query ordering is not used for list reads; collections
// are re-sorted here after fetch.

// SortHouses orders by the explicit order field ascending, newest first among
// equal orders.
func SortHouses(houses []models.House) {
	sort.SliceStable(houses, func(i, j int) bool {
		if houses[i].Order != houses[j].Order {
			return houses[i].Order < houses[j].Order
		}
		return houses[i].CreatedAt.After(houses[j].CreatedAt)
	})
}

// SortGalleryItems orders by the explicit order field ascending; ties keep
// their fetched order.
func SortGalleryItems(items []models.GalleryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
}
