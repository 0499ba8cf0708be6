// Package entity contains the core business objects of the project.
package entity

// FoodCategory classifies a donated food item.
type FoodCategory string

const (
	// CategoryVegetables covers fresh or prepared vegetables.
	CategoryVegetables FoodCategory = "vegetables"
	// CategoryFruits covers fresh or prepared fruits.
	CategoryFruits FoodCategory = "fruits"
	// CategoryDairy covers milk products.
	CategoryDairy FoodCategory = "dairy"
	// CategoryBakery covers bread and baked goods.
	CategoryBakery FoodCategory = "bakery"
	// CategoryCookedFood covers ready-to-eat prepared meals.
	CategoryCookedFood FoodCategory = "cooked_food"
	// CategoryBeverages covers drinks.
	CategoryBeverages FoodCategory = "beverages"
	// CategoryOther covers everything that fits no other category.
	CategoryOther FoodCategory = "other"
)

// String returns the string representation of the FoodCategory.
func (c FoodCategory) String() string {
	return string(c)
}

// IsValid checks if the FoodCategory is a valid value.
func (c FoodCategory) IsValid() bool {
	switch c {
	case CategoryVegetables, CategoryFruits, CategoryDairy, CategoryBakery,
		CategoryCookedFood, CategoryBeverages, CategoryOther:
		return true
	default:
		return false
	}
}
