package dto

import "github.com/yigit/enrollment/internal/app/models"

// CreateCreditProgramRequest is the body of POST /CreditPrograms
type CreateCreditProgramRequest struct {
	Name        string  `json:"name" binding:"required,max=100" example:"Systems Engineering"`
	Description *string `json:"description" example:"Undergraduate credit program"`
}

// ToModel converts the request to a credit program
func (r *CreateCreditProgramRequest) ToModel() *models.CreditProgram {
	return &models.CreditProgram{Name: r.Name, Description: r.Description}
}

// StudentRequest is the body of POST and PUT /Students.
// The id is only read by PUT, where it must equal the path id.
type StudentRequest struct {
	ID              int64  `json:"id" binding:"omitempty,gte=0" example:"1"`
	Name            string `json:"name" binding:"required,max=100" example:"Ana Gomez"`
	DocumentNumber  string `json:"documentNumber" binding:"required,max=100" example:"1020304050"`
	CreditProgramID *int64 `json:"creditProgramId" binding:"omitempty,gt=0" example:"1"`
}

// ToModel converts the request to a student
func (r *StudentRequest) ToModel() *models.Student {
	return &models.Student{
		ID:              r.ID,
		Name:            r.Name,
		DocumentNumber:  r.DocumentNumber,
		CreditProgramID: r.CreditProgramID,
	}
}

// CreateSubjectRequest is the body of POST /Subjects
type CreateSubjectRequest struct {
	Name            string `json:"name" binding:"required,max=100" example:"Calculus I"`
	Credits         *int   `json:"credits" binding:"omitempty,gt=0" example:"3"`
	CreditProgramID *int64 `json:"creditProgramId" binding:"omitempty,gt=0" example:"1"`
}

// ToModel converts the request to a subject; missing credits stay zero
func (r *CreateSubjectRequest) ToModel() *models.Subject {
	subject := &models.Subject{Name: r.Name, CreditProgramID: r.CreditProgramID}
	if r.Credits != nil {
		subject.Credits = *r.Credits
	}
	return subject
}

// CreateTeacherRequest is the body of POST /Teachers
type CreateTeacherRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"Laura Ortiz"`
}

// EnrollmentRequest is the body of POST /StudentSubjects
type EnrollmentRequest struct {
	StudentID int64 `json:"studentId" binding:"required,gt=0" example:"1"`
	SubjectID int64 `json:"subjectId" binding:"required,gt=0" example:"2"`
}

// TeacherAssignmentRequest is the body of POST /TeacherSubjects
type TeacherAssignmentRequest struct {
	TeacherID int64 `json:"teacherId" binding:"required,gt=0" example:"1"`
	SubjectID int64 `json:"subjectId" binding:"required,gt=0" example:"2"`
}

// ToModel converts the request to a teacher assignment
func (r *TeacherAssignmentRequest) ToModel() *models.TeacherSubject {
	return &models.TeacherSubject{TeacherID: r.TeacherID, SubjectID: r.SubjectID}
}
