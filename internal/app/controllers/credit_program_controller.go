package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/services"
	"github.com/yigit/enrollment/internal/middleware"
)

// CreditProgramController handles credit program endpoints
type CreditProgramController struct {
	creditProgramService services.CreditProgramService
}

// NewCreditProgramController creates a new CreditProgramController
func NewCreditProgramController(creditProgramService services.CreditProgramService) *CreditProgramController {
	return &CreditProgramController{
		creditProgramService: creditProgramService,
	}
}

// GetAllCreditPrograms lists credit programs
// @Summary List credit programs
// @Tags creditPrograms
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CreditProgram} "Credit programs retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /CreditPrograms [get]
func (c *CreditProgramController) GetAllCreditPrograms(ctx *gin.Context) {
	programs, err := c.creditProgramService.GetAllCreditPrograms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ok(ctx, programs)
}

// GetCreditProgramByID retrieves a credit program
// @Summary Get a credit program
// @Tags creditPrograms
// @Produce json
// @Param id path int true "Credit program ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.CreditProgram} "Credit program retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid credit program ID"
// @Failure 404 {object} dto.ErrorResponse "Credit program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /CreditPrograms/{id} [get]
func (c *CreditProgramController) GetCreditProgramByID(ctx *gin.Context) {
	id, valid := pathID(ctx, "id")
	if !valid {
		return
	}

	program, err := c.creditProgramService.GetCreditProgramByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ok(ctx, program)
}

// CreateCreditProgram creates a credit program
// @Summary Create a credit program
// @Tags creditPrograms
// @Accept json
// @Produce json
// @Param request body dto.CreateCreditProgramRequest true "Credit program information"
// @Success 201 {object} dto.APIResponse{data=models.CreditProgram} "Credit program created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /CreditPrograms [post]
func (c *CreditProgramController) CreateCreditProgram(ctx *gin.Context) {
	var req dto.CreateCreditProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	program := req.ToModel()
	id, err := c.creditProgramService.CreateCreditProgram(ctx, program)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	program.ID = id
	created(ctx, fmt.Sprintf("/api/CreditPrograms/%d", id), program)
}

// DeleteCreditProgram removes a credit program
// @Summary Delete a credit program
// @Description Programs still referenced by students or subjects cannot be deleted
// @Tags creditPrograms
// @Param id path int true "Credit program ID" Format(int64) minimum(1)
// @Success 204 "Credit program deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid credit program ID"
// @Failure 404 {object} dto.ErrorResponse "Credit program not found"
// @Failure 409 {object} dto.ErrorResponse "Credit program in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /CreditPrograms/{id} [delete]
func (c *CreditProgramController) DeleteCreditProgram(ctx *gin.Context) {
	id, valid := pathID(ctx, "id")
	if !valid {
		return
	}

	if err := c.creditProgramService.DeleteCreditProgram(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
