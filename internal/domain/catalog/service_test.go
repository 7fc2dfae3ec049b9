package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByCategoryCaseInsensitive(t *testing.T) {
	items := []Item{
		{Name: "Kunafa", Category: "Sweets"},
		{Name: "Baklava", Category: "sweets"},
		{Name: "Maqluba", Category: "Meals"},
	}

	got := FilterByCategory(items, "sweets")
	assert.Len(t, got, 2)
	assert.Equal(t, "Kunafa", got[0].Name)
	assert.Equal(t, "Baklava", got[1].Name)

	got = FilterByCategory(items, "MEALS")
	assert.Len(t, got, 1)
	assert.Equal(t, "Maqluba", got[0].Name)

	assert.Empty(t, FilterByCategory(items, "Drinks"))
}

func TestFilterByCategoryAllPassesThrough(t *testing.T) {
	items := []Item{
		{Category: "Sweets"},
		{Category: "Meals"},
	}
	assert.Equal(t, items, FilterByCategory(items, ""))
	assert.Equal(t, items, FilterByCategory(items, "All"))
	assert.Equal(t, items, FilterByCategory(items, "all"))
}

func TestAvailableCategories(t *testing.T) {
	items := []Item{
		{Category: "Sweets"},
		{Category: "Meals"},
		{Category: "sweets"},
		{Category: ""},
		{Category: "Drinks"},
	}
	got := AvailableCategories(items)
	assert.Equal(t, []string{"All", "Sweets", "Meals", "Drinks"}, got)
}

func TestAvailableCategoriesEmpty(t *testing.T) {
	assert.Equal(t, []string{"All"}, AvailableCategories(nil))
}

func TestParseItemType(t *testing.T) {
	typ, ok := ParseItemType("products")
	assert.True(t, ok)
	assert.Equal(t, TypeProducts, typ)

	typ, ok = ParseItemType(" Crafts ")
	assert.True(t, ok)
	assert.Equal(t, TypeCrafts, typ)

	_, ok = ParseItemType("users")
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	it := Item{Name: "Kunafa", NameAr: "كنافة"}
	assert.Equal(t, "كنافة", it.DisplayName("ar"))
	assert.Equal(t, "Kunafa", it.DisplayName("en"))

	noAr := Item{Name: "Kunafa"}
	assert.Equal(t, "Kunafa", noAr.DisplayName("ar"))
}

func TestItemDataDefaults(t *testing.T) {
	data := itemData(ItemInput{Name: "Kunafa", PriceValue: "12.5", NameAr: ""})
	assert.Equal(t, 12.5, data["priceValue"])
	assert.NotContains(t, data, "nameAr")
	assert.NotContains(t, data, "id")
}
