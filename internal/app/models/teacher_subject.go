package models

// TeacherSubject assigns a teacher to a subject
type TeacherSubject struct {
	ID        int64 `json:"id" db:"id" example:"1"`
	TeacherID int64 `json:"teacherId" db:"teacher_id" example:"1"`
	SubjectID int64 `json:"subjectId" db:"subject_id" example:"2"`
}

// TeacherSubjectDetail is an assignment joined to teacher and subject names
type TeacherSubjectDetail struct {
	ID          int64  `json:"id" example:"1"`
	TeacherID   int64  `json:"teacherId" example:"1"`
	SubjectID   int64  `json:"subjectId" example:"2"`
	TeacherName string `json:"teacherName" example:"Laura Ortiz"`
	SubjectName string `json:"subjectName" example:"Calculus I"`
}
