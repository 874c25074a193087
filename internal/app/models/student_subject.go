package models

// StudentSubject is one enrollment of a student in a subject
type StudentSubject struct {
	ID        int64 `json:"id" db:"id" example:"1"`
	StudentID int64 `json:"studentId" db:"student_id" example:"1"`
	SubjectID int64 `json:"subjectId" db:"subject_id" example:"2"`
}

// StudentSubjectDetail is an enrollment joined to its student, subject and the
// subject's first assigned teacher
type StudentSubjectDetail struct {
	ID                    int64   `json:"id" example:"1"`
	StudentID             int64   `json:"studentId" example:"1"`
	SubjectID             int64   `json:"subjectId" example:"2"`
	StudentName           string  `json:"studentName" example:"Ana Gomez"`
	StudentDocumentNumber string  `json:"studentDocumentNumber" example:"1020304050"`
	SubjectName           string  `json:"subjectName" example:"Calculus I"`
	TeacherName           *string `json:"teacherName" example:"Laura Ortiz"` // Null when the subject has no teacher
}

// EnrolledStudent is the per-subject roster projection
type EnrolledStudent struct {
	StudentName string `json:"studentName" example:"Ana Gomez"`
}
