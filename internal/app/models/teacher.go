package models

// Teacher represents a teacher
type Teacher struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"Laura Ortiz"`
}
