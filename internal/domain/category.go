package domain

// Category Model
type Category struct {
	ID          int64  `json:"id" gorm:"primaryKey"`                  // Primary key
	UserID      string `json:"userId" gorm:"size:160;not null;index"` // Owner of the category
	Title       string `json:"title" gorm:"size:80;not null"`         // Display title
	Description string `json:"description" gorm:"size:255"`           // Free text description
}
