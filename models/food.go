package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Food is a catalog entry. Tags stores FoodGroup ids as a jsonb array;
// responses swap the ids for names without touching the stored row.
type Food struct {
	gorm.Model
	Name              string                     `gorm:"not null;index" json:"name"`
	Nutriscore        float64                    `json:"nutriscore"`
	Tags              datatypes.JSONSlice[int64] `gorm:"type:jsonb" json:"tags"`
	Grade             string                     `gorm:"size:1" json:"grade"`
	Type              string                     `gorm:"size:32" json:"type"`
	Calories          float64                    `json:"calories"`
	Fat               float64                    `json:"fat"`
	Sugar             float64                    `json:"sugar"`
	Fiber             float64                    `json:"fiber"`
	Protein           float64                    `json:"protein"`
	Natrium           float64                    `json:"natrium"`
	Vegetable         float64                    `json:"vegetable"`
	ImageURL          string                     `gorm:"column:image_url" json:"image_url"`
	ImageNutritionURL string                     `gorm:"column:image_nutrition_url" json:"image_nutrition_url"`
}

// FoodGroup maps a tag id to its label, e.g. 2 -> "Dairy".
type FoodGroup struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
