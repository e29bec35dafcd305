package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/takeo/dojomaster/internal/app/controllers"
	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	rankController *controllers.RankController,
	examController *controllers.ExamController,
	meController *controllers.MeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/me", authController.Me)

		// Ladder is visible to both panels.
		authenticated.GET("/ranks", rankController.ListRanks)

		// Student self panel.
		me := authenticated.Group("/me")
		me.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			me.GET("/profile", meController.Profile)
			me.GET("/next-rank", meController.NextRank)
			me.GET("/exams", meController.Exams)
		}

		// Administrator panel.
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdministrator))
		{
			admin.GET("/users", studentController.ListUsers)
			admin.GET("/students", studentController.ListStudents)
			admin.POST("/students", studentController.CreateStudent)
			admin.PUT("/students/:id", studentController.UpdateStudent)
			admin.DELETE("/students/:id", studentController.DeleteStudent)
			admin.GET("/students/:id/exams", studentController.StudentExams)
			admin.GET("/students/:id/next-rank", studentController.StudentNextRank)

			admin.PUT("/ranks/:id", rankController.UpdateRank)

			admin.GET("/exams", examController.ListExams)
			admin.POST("/exams", examController.CreateExam)
		}
	}
}
