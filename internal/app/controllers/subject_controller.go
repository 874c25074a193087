package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/services"
	"github.com/yigit/enrollment/internal/middleware"
)

// SubjectController handles subject endpoints
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// GetAllSubjects lists subjects
// @Summary List subjects
// @Tags subjects
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /Subjects [get]
func (c *SubjectController) GetAllSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.GetAllSubjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ok(ctx, subjects)
}

// GetSubjectsByCreditProgram lists the subjects of a credit program
// @Summary List the subjects of a credit program
// @Tags subjects
// @Produce json
// @Param creditProgramId path int true "Credit program ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid credit program ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /Subjects/{creditProgramId} [get]
func (c *SubjectController) GetSubjectsByCreditProgram(ctx *gin.Context) {
	creditProgramID, valid := pathID(ctx, "id")
	if !valid {
		return
	}

	subjects, err := c.subjectService.GetSubjectsByCreditProgram(ctx, creditProgramID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ok(ctx, subjects)
}

// CreateSubject creates a subject
// @Summary Create a subject
// @Description Credits default to 3 when omitted
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=models.Subject} "Subject created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /Subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	subject := req.ToModel()
	id, err := c.subjectService.CreateSubject(ctx, subject)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	subject.ID = id
	created(ctx, "", subject)
}

// DeleteSubject removes a subject
// @Summary Delete a subject
// @Description Subjects with enrollments or teacher assignments cannot be deleted
// @Tags subjects
// @Param id path int true "Subject ID" Format(int64) minimum(1)
// @Success 204 "Subject deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 409 {object} dto.ErrorResponse "Subject in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /Subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, valid := pathID(ctx, "id")
	if !valid {
		return
	}

	if err := c.subjectService.DeleteSubject(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
