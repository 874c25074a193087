package models

// Enrollment and subject defaults shared by services, seeds and the schema
const (
	// MaxSubjectsPerStudent is the number of concurrent enrollments a student may hold
	MaxSubjectsPerStudent = 3
	// DefaultSubjectCredits is stored when a subject is created without credits
	DefaultSubjectCredits = 3
)
