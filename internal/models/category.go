package models

// Category is the first level of the expense taxonomy.
type Category struct {
	Base
	Name          string        `gorm:"not null;uniqueIndex" json:"name"`
	Position      int           `gorm:"not null" json:"position"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID" json:"subcategories"`
}

// Subcategory is the second, mandatory level of the expense taxonomy. Names
// are unique within their category only.
type Subcategory struct {
	Base
	CategoryID string `gorm:"type:uuid;not null;uniqueIndex:uq_subcategories_category_name" json:"category_id"`
	Name       string `gorm:"not null;uniqueIndex:uq_subcategories_category_name" json:"name"`
	Position   int    `gorm:"not null" json:"position"`
}
