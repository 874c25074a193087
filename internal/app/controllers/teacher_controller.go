package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/services"
	"github.com/yigit/enrollment/internal/middleware"
)

// TeacherController handles teacher and teacher assignment endpoints
type TeacherController struct {
	teacherService    services.TeacherService
	assignmentService services.TeacherAssignmentService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService, assignmentService services.TeacherAssignmentService) *TeacherController {
	return &TeacherController{
		teacherService:    teacherService,
		assignmentService: assignmentService,
	}
}

// GetAllTeachers lists teachers
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher} "Teachers retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /Teachers [get]
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ok(ctx, teachers)
}

// GetTeacherByID retrieves a teacher
// @Summary Get a teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /Teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, valid := pathID(ctx, "id")
	if !valid {
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ok(ctx, teacher)
}

// CreateTeacher creates a teacher
// @Summary Create a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=models.Teacher} "Teacher created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /Teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	teacher := &models.Teacher{Name: req.Name}
	id, err := c.teacherService.CreateTeacher(ctx, teacher)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	teacher.ID = id
	created(ctx, fmt.Sprintf("/api/Teachers/%d", id), teacher)
}

// DeleteTeacher removes a teacher
// @Summary Delete a teacher
// @Description Teachers assigned to subjects cannot be deleted
// @Tags teachers
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 204 "Teacher deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 409 {object} dto.ErrorResponse "Teacher in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /Teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, valid := pathID(ctx, "id")
	if !valid {
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetAllAssignments lists teacher assignments
// @Summary List teacher assignments
// @Tags teacherSubjects
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.TeacherSubjectDetail} "Assignments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /TeacherSubjects [get]
func (c *TeacherController) GetAllAssignments(ctx *gin.Context) {
	assignments, err := c.assignmentService.GetAllAssignments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ok(ctx, assignments)
}

// AssignTeacher assigns a teacher to a subject
// @Summary Assign a teacher to a subject
// @Tags teacherSubjects
// @Accept json
// @Produce json
// @Param request body dto.TeacherAssignmentRequest true "Assignment"
// @Success 201 {object} dto.APIResponse{data=models.TeacherSubject} "Teacher assigned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown teacher/subject"
// @Failure 409 {object} dto.ErrorResponse "Teacher already assigned to the subject"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /TeacherSubjects [post]
func (c *TeacherController) AssignTeacher(ctx *gin.Context) {
	var req dto.TeacherAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	assignment := req.ToModel()
	id, err := c.assignmentService.AssignTeacher(ctx, assignment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	assignment.ID = id
	created(ctx, "", assignment)
}

// DeleteAssignment removes a teacher assignment
// @Summary Delete a teacher assignment
// @Tags teacherSubjects
// @Param id path int true "Assignment ID" Format(int64) minimum(1)
// @Success 204 "Assignment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /TeacherSubjects/{id} [delete]
func (c *TeacherController) DeleteAssignment(ctx *gin.Context) {
	id, valid := pathID(ctx, "id")
	if !valid {
		return
	}

	if err := c.assignmentService.DeleteAssignment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
