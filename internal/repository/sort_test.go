package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"baanthai-construction-api/internal/models"
)

func TestSortHousesOrderAscCreatedAtDescTieBreak(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	houses := []models.House{
		{ID: "c", Order: 2, CreatedAt: base},
		{ID: "a", Order: 1, CreatedAt: base.Add(1 * time.Hour)},
		{ID: "b", Order: 1, CreatedAt: base.Add(5 * time.Hour)},
	}

	SortHouses(houses)

	// order 1 before order 2; within order 1 the newer house first
	assert.Equal(t, []string{"b", "a", "c"}, []string{houses[0].ID, houses[1].ID, houses[2].ID})
}

func TestSortHousesDeterministicOnRepeat(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	build := func() []models.House {
		return []models.House{
			{ID: "x", Order: 0, CreatedAt: base.Add(2 * time.Hour)},
			{ID: "y", Order: 0, CreatedAt: base.Add(3 * time.Hour)},
			{ID: "z", Order: 5, CreatedAt: base},
		}
	}

	first := build()
	second := build()
	// different input orders, same result
	second[0], second[1] = second[1], second[0]
	SortHouses(first)
	SortHouses(second)

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestSortGalleryItemsNonDecreasingOrder(t *testing.T) {
	items := []models.GalleryItem{
		{ID: "a", Order: 2},
		{ID: "b", Order: 0},
		{ID: "c", Order: 1},
		{ID: "d", Order: 1},
	}

	SortGalleryItems(items)

	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Order, items[i].Order)
	}
	// stable among equals
	assert.Equal(t, "c", items[1].ID)
	assert.Equal(t, "d", items[2].ID)
}
