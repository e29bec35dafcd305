package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/takeo/dojomaster/internal/app/models/dto"
	"github.com/takeo/dojomaster/internal/app/services"
	"github.com/takeo/dojomaster/internal/middleware"
	"github.com/takeo/dojomaster/internal/pkg/auth"
)

// MeController serves the student's own panel: profile, ladder position and
// exam history. All routes require a Student-role session.
type MeController struct {
	studentService services.StudentService
	rankService    services.RankService
	examService    services.ExamService
}

// NewMeController creates a new MeController.
func NewMeController(
	studentService services.StudentService,
	rankService services.RankService,
	examService services.ExamService,
) *MeController {
	return &MeController{
		studentService: studentService,
		rankService:    rankService,
		examService:    examService,
	}
}

// studentSession extracts the session and its student profile, or writes the
// error response itself.
func (c *MeController) studentSession(ctx *gin.Context) (auth.Session, bool) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok || session.Student == nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeProfileMissing, "No student record for this session")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return auth.Session{}, false
	}
	return session, true
}

// Profile returns the current student record, re-read so promotions applied
// since login are visible.
func (c *MeController) Profile(ctx *gin.Context) {
	session, ok := c.studentSession(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudent(ctx, session.Student.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// NextRank reports the rung the student is working toward, with the ladder's
// requirement text; null when the student is on the last rung.
func (c *MeController) NextRank(ctx *gin.Context) {
	session, ok := c.studentSession(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudent(ctx, session.Student.ID)
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

// Exams returns the student's own exam history, most recent first.
func (c *MeController) Exams(ctx *gin.Context) {
	session, ok := c.studentSession(ctx)
	if !ok {
		return
	}

	exams, err := c.examService.History(ctx, session.Student.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exams))
}
