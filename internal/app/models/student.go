package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID              int64  `json:"id" db:"id" example:"1"`
	Name            string `json:"name" db:"name" example:"Ana Gomez"`
	DocumentNumber  string `json:"documentNumber" db:"document_number" example:"1020304050"` // Externally issued, unique
	CreditProgramID *int64 `json:"creditProgramId" db:"credit_program_id" example:"1"`       // Nullable
}

// StudentDetail is the student list/detail projection joined to its credit program
type StudentDetail struct {
	ID                int64   `json:"id" example:"1"`
	Name              string  `json:"name" example:"Ana Gomez"`
	DocumentNumber    string  `json:"documentNumber" example:"1020304050"`
	CreditProgramID   *int64  `json:"creditProgramId" example:"1"`
	CreditProgramName *string `json:"creditProgramName" example:"Systems Engineering"`
}
