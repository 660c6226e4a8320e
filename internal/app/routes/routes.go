package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tutorhub/backend/internal/app/controllers"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	classController *controllers.ClassController,
	subjectController *controllers.SubjectController,
	resourceController *controllers.ResourceController,
	postController *controllers.PostController,
	messageController *controllers.MessageController,
	timetableController *controllers.TimetableController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.Authenticate())

	adminOnly := authMiddleware.RequireRole(models.RoleAdmin)
	tutorOrAdmin := authMiddleware.RequireRole(models.RoleAdmin, models.RoleTutor)
	studentOnly := authMiddleware.RequireRole(models.RoleStudent)

	// User and account routes
	users := authenticated.Group("/users")
	{
		users.GET("/me", userController.GetProfile)
		users.PUT("/me", userController.UpdateProfile)
		users.PUT("/me/specialization", userController.UpdateSpecialization)
		users.GET("/:id", userController.GetUser)

		usersAdmin := users.Group("")
		usersAdmin.Use(adminOnly)
		{
			usersAdmin.GET("", userController.ListUsers)
			usersAdmin.PUT("/:id/role", userController.AssignRole)
			usersAdmin.DELETE("/:id", userController.DeleteUser)
		}
	}
	authenticated.GET("/tutors", userController.ListTutors)
	authenticated.GET("/students", tutorOrAdmin, userController.ListStudents)

	// Class and enrollment routes
	classes := authenticated.Group("/classes")
	{
		classes.GET("", classController.ListClasses)
		classes.GET("/me", studentOnly, classController.ListMyClasses)
		classes.GET("/:id", classController.GetClass)
		classes.GET("/:id/students", tutorOrAdmin, classController.ListClassStudents)
		classes.GET("/:id/subjects", subjectController.ListSubjectsByClass)

		classesTutor := classes.Group("")
		classesTutor.Use(tutorOrAdmin)
		{
			classesTutor.POST("", classController.CreateClass)
			classesTutor.PUT("/:id", classController.UpdateClass)
			classesTutor.DELETE("/:id", classController.DeleteClass)
			classesTutor.POST("/:id/students", classController.EnrollStudent)
			classesTutor.DELETE("/:id/students/:studentId", classController.UnenrollStudent)
		}
	}

	// Subject and grading routes
	subjects := authenticated.Group("/subjects")
	{
		subjects.GET("/me", studentOnly, subjectController.ListMySubjects)
		subjects.GET("/:id", subjectController.GetSubject)

		subjectsTutor := subjects.Group("")
		subjectsTutor.Use(tutorOrAdmin)
		{
			subjectsTutor.POST("", subjectController.CreateSubject)
			subjectsTutor.PUT("/:id", subjectController.UpdateSubject)
			subjectsTutor.DELETE("/:id", subjectController.DeleteSubject)
			subjectsTutor.GET("/:id/students", subjectController.ListSubjectStudents)
			subjectsTutor.POST("/:id/students", subjectController.AssignStudent)
			subjectsTutor.DELETE("/:id/students/:studentId", subjectController.RemoveStudent)
			subjectsTutor.PUT("/:id/students/:studentId/grade", subjectController.Grade)
		}
	}

	// Resource routes
	resources := authenticated.Group("/resources")
	{
		resources.GET("", resourceController.ListResources)
		resources.GET("/:id", resourceController.GetResource)
		resources.GET("/:id/file", resourceController.DownloadResource)

		resourcesTutor := resources.Group("")
		resourcesTutor.Use(tutorOrAdmin)
		{
			resourcesTutor.POST("", resourceController.CreateResource)
			resourcesTutor.PUT("/:id", resourceController.UpdateResource)
			resourcesTutor.DELETE("/:id", resourceController.DeleteResource)
		}
	}

	// Community feed routes
	posts := authenticated.Group("/posts")
	{
		posts.GET("", postController.ListPosts)
		posts.POST("", postController.CreatePost)
		posts.GET("/:id", postController.GetPost)
		posts.PUT("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)
		posts.POST("/:id/like", postController.ToggleLike)
		posts.POST("/:id/comments", postController.AddComment)
	}
	authenticated.DELETE("/comments/:commentId", postController.DeleteComment)

	// Messaging routes
	messages := authenticated.Group("/messages")
	{
		messages.POST("", messageController.SendMessage)
		messages.GET("/conversations", messageController.ListConversations)
		messages.GET("/unread", messageController.CountUnread)
		messages.GET("/:userId", messageController.GetThread)
	}

	// Timetable routes
	timetables := authenticated.Group("/timetables")
	{
		timetables.GET("", timetableController.ListEntries)
		timetables.GET("/me", studentOnly, timetableController.ListMyEntries)
		timetables.GET("/:id", timetableController.GetEntry)

		timetablesTutor := timetables.Group("")
		timetablesTutor.Use(tutorOrAdmin)
		{
			timetablesTutor.POST("", timetableController.CreateEntry)
			timetablesTutor.PUT("/:id", timetableController.UpdateEntry)
			timetablesTutor.DELETE("/:id", timetableController.DeleteEntry)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})
}
