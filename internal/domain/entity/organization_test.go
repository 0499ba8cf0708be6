package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrganization_AcceptsAny(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		preferences []FoodCategory
		categories  []FoodCategory
		want        bool
	}{
		{
			name:        "empty preferences accept everything",
			preferences: nil,
			categories:  []FoodCategory{CategoryDairy},
			want:        true,
		},
		{
			name:        "overlap on one category",
			preferences: []FoodCategory{CategoryVegetables, CategoryFruits},
			categories:  []FoodCategory{CategoryBakery, CategoryFruits},
			want:        true,
		},
		{
			name:        "no overlap",
			preferences: []FoodCategory{CategoryVegetables},
			categories:  []FoodCategory{CategoryDairy, CategoryBakery},
			want:        false,
		},
		{
			name:        "empty categories never match non-empty preferences",
			preferences: []FoodCategory{CategoryVegetables},
			categories:  nil,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			org := &Organization{FoodPreferences: tt.preferences}
			assert.Equal(t, tt.want, org.AcceptsAny(tt.categories))
		})
	}
}

func TestOrganization_Accepts(t *testing.T) {
	t.Parallel()

	org := &Organization{FoodPreferences: []FoodCategory{CategoryVegetables, CategoryBakery}}
	assert.True(t, org.Accepts(CategoryVegetables))
	assert.False(t, org.Accepts(CategoryDairy))

	// Strict membership: an empty preference set grants no credit.
	empty := &Organization{}
	assert.False(t, empty.Accepts(CategoryVegetables))
}
