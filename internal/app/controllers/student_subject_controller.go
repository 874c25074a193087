package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/services"
	"github.com/yigit/enrollment/internal/middleware"
)

// StudentSubjectController handles enrollment endpoints
type StudentSubjectController struct {
	enrollmentService services.EnrollmentService
}

// NewStudentSubjectController creates a new StudentSubjectController
func NewStudentSubjectController(enrollmentService services.EnrollmentService) *StudentSubjectController {
	return &StudentSubjectController{
		enrollmentService: enrollmentService,
	}
}

// GetAllEnrollments lists enrollments
// @Summary List enrollments
// @Description Lists every enrollment with student, subject and first teacher names
// @Tags studentSubjects
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.StudentSubjectDetail} "Enrollments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /StudentSubjects [get]
func (c *StudentSubjectController) GetAllEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.ListEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ok(ctx, enrollments)
}

// GetEnrollmentsByStudent lists the enrollments of a student
// @Summary List the enrollments of a student
// @Tags studentSubjects
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.StudentSubjectDetail} "Enrollments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /StudentSubjects/{id} [get]
func (c *StudentSubjectController) GetEnrollmentsByStudent(ctx *gin.Context) {
	studentID, valid := pathID(ctx, "id")
	if !valid {
		return
	}

	enrollments, err := c.enrollmentService.ListEnrollmentsByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ok(ctx, enrollments)
}

// GetStudentsBySubject lists the names of the students enrolled in a subject
// @Summary List the students of a subject
// @Tags studentSubjects
// @Produce json
// @Param subjectId path int true "Subject ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.EnrolledStudent} "Students retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /StudentSubjects/GetStudentSubjectsBySubjectId/{subjectId} [get]
func (c *StudentSubjectController) GetStudentsBySubject(ctx *gin.Context) {
	subjectID, valid := pathID(ctx, "subjectId")
	if !valid {
		return
	}

	students, err := c.enrollmentService.ListStudentsBySubject(ctx, subjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ok(ctx, students)
}

// Enroll enrolls a student in a subject
// @Summary Enroll a student in a subject
// @Description Rejected with 400 when the subject is already taken, the student has 3 subjects,
// @Description the subject has no teacher, or the student already has a subject with that teacher.
// @Tags studentSubjects
// @Accept json
// @Produce json
// @Param request body dto.EnrollmentRequest true "Enrollment"
// @Success 201 {object} dto.APIResponse{data=models.StudentSubject} "Student enrolled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or enrollment rejected"
// @Failure 409 {object} dto.ErrorResponse "Concurrent modification"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /StudentSubjects [post]
func (c *StudentSubjectController) Enroll(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx, req.StudentID, req.SubjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created(ctx, fmt.Sprintf("/api/StudentSubjects/%d", enrollment.StudentID), enrollment)
}

// DeleteEnrollment removes an enrollment
// @Summary Delete an enrollment
// @Tags studentSubjects
// @Param id path int true "Enrollment ID" Format(int64) minimum(1)
// @Success 204 "Enrollment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /StudentSubjects/{id} [delete]
func (c *StudentSubjectController) DeleteEnrollment(ctx *gin.Context) {
	id, valid := pathID(ctx, "id")
	if !valid {
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
