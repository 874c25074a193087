package models

// Subject represents a subject that students enroll in and teachers teach
type Subject struct {
	ID              int64  `json:"id" db:"id" example:"1"`
	Name            string `json:"name" db:"name" example:"Calculus I"`
	Credits         int    `json:"credits" db:"credits" example:"3"`
	CreditProgramID *int64 `json:"creditProgramId" db:"credit_program_id" example:"1"` // Nullable
}
