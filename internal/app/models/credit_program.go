package models

// CreditProgram represents an academic program grouping students and subjects
type CreditProgram struct {
	ID          int64   `json:"id" db:"id" example:"1"`
	Name        string  `json:"name" db:"name" example:"Systems Engineering"`
	Description *string `json:"description" db:"description" example:"Undergraduate credit program"` // Nullable
}
