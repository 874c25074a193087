package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/middleware"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/helpers"
)

// pathID reads a positive id path parameter, answering 400 when it is not one
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := helpers.ParseIDParam(ctx, name)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(name, err.Error()))
		return 0, false
	}
	return id, true
}

// created answers 201 with data, pointing Location at the new resource when location is set
func created(ctx *gin.Context, location string, data interface{}) {
	if location != "" {
		ctx.Header("Location", location)
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

func ok(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}
