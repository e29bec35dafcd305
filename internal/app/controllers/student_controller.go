package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/takeo/dojomaster/internal/app/models/dto"
	"github.com/takeo/dojomaster/internal/app/services"
	"github.com/takeo/dojomaster/internal/middleware"
)

// StudentController handles the administrator's student CRUD panel.
type StudentController struct {
	studentService services.StudentService
	rankService    services.RankService
	examService    services.ExamService
}

// NewStudentController creates a new StudentController.
func NewStudentController(
	studentService services.StudentService,
	rankService services.RankService,
	examService services.ExamService,
) *StudentController {
	return &StudentController{
		studentService: studentService,
		rankService:    rankService,
		examService:    examService,
	}
}

// ListStudents returns the full student collection.
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// ListUsers returns every login account as its API view, the administrator's
// own and orphan accounts left behind by student deletion included.
func (c *StudentController) ListUsers(ctx *gin.Context) {
	users, err := c.studentService.ListUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, dto.NewUserResponse(u))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// CreateStudent appends a new student together with its login account.
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, student, err := c.studentService.CreateStudent(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.CreateStudentResponse{
		User:    dto.NewUserResponse(*user),
		Student: *student,
	}))
}

// UpdateStudent merges the patch onto the stored record.
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var patch dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, ctx.Param("id"), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// DeleteStudent removes the student profile. The login account stays; orphan
// users are the documented behavior.
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Student deleted"}))
}

// StudentExams returns one student's exam history, most recent first.
func (c *StudentController) StudentExams(ctx *gin.Context) {
	exams, err := c.examService.History(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exams))
}

// StudentNextRank resolves the student's next ladder rung; null when there is
// none.
func (c *StudentController) StudentNextRank(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	next, err := c.rankService.NextRank(ctx, student.CurrentRank)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NextRankResponse{
		CurrentRank: student.CurrentRank,
		NextRank:    next,
	}))
}
