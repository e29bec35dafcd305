package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/takeo/dojomaster/internal/app/models/dto"
	"github.com/takeo/dojomaster/internal/app/services"
	"github.com/takeo/dojomaster/internal/middleware"
)

// AuthController handles login, logout and session introspection.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates a credential pair for the selected role and returns a
// session id. A Student-role login also returns the student profile.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.authService.Login(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LoginResponse{
		SessionID: session.ID,
		User:      dto.NewUserResponse(session.User),
		Student:   session.Student,
	}))
}

// Logout drops the caller's session.
func (c *AuthController) Logout(ctx *gin.Context) {
	session, ok := middleware.SessionFromContext(ctx)
	if ok {
		c.authService.Logout(session.ID)
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Logged out"}))
}

// Me returns the authenticated user and, for students, their profile.
func (c *AuthController) Me(ctx *gin.Context) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LoginResponse{
		SessionID: session.ID,
		User:      dto.NewUserResponse(session.User),
		Student:   session.Student,
	}))
}
