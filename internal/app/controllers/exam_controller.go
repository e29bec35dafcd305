package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/takeo/dojomaster/internal/app/models/dto"
	"github.com/takeo/dojomaster/internal/app/services"
	"github.com/takeo/dojomaster/internal/middleware"
)

// ExamController handles exam registration and listing.
type ExamController struct {
	examService services.ExamService
}

// NewExamController creates a new ExamController.
func NewExamController(examService services.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// ListExams returns the full exam collection.
func (c *ExamController) ListExams(ctx *gin.Context) {
	exams, err := c.examService.ListExams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exams))
}

// CreateExam appends an evaluation event. A Passed outcome promotes the
// referenced student to the examined rank as a side effect.
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	exam, err := c.examService.CreateExam(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(exam))
}
