package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// AI advisory routes are stateless and take their data in the body,
	// so they sit outside the auth group.
	ai := controllers.NewAIController(services.NewAIService())
	r.POST("/ai-coach", ai.Coach)
	r.POST("/ai-predict", ai.Predict)
	r.POST("/ai-recommend", ai.Recommend)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
	}

	habits := r.Group("/habits")
	habits.Use(middlewares.AuthMiddleware())
	{
		habits.GET("", controllers.ListHabits)
		habits.POST("", controllers.CreateHabit)
		habits.DELETE("/:id", controllers.DeleteHabit)
	}

	logs := r.Group("/logs")
	logs.Use(middlewares.AuthMiddleware())
	{
		logs.GET("", controllers.ListHabitLogs)
		logs.POST("", controllers.LogHabitStatus)
	}

	tasks := r.Group("/tasks")
	tasks.Use(middlewares.AuthMiddleware())
	{
		tasks.GET("", controllers.ListTasks)
		tasks.POST("", controllers.CreateTask)
		tasks.PATCH("/:id", controllers.ToggleTask)
		tasks.DELETE("/:id", controllers.DeleteTask)
	}

	progress := r.Group("/progress")
	progress.Use(middlewares.AuthMiddleware())
	{
		progress.GET("/summary", controllers.GetProgressSummary)
		progress.GET("/daily", controllers.GetDailyProgress)
		progress.GET("/weekly", controllers.GetWeeklyProgress)
		progress.GET("/monthly", controllers.GetMonthlyProgress)
		progress.GET("/heatmap", controllers.GetHeatmap)
		progress.GET("/habits", controllers.GetHabitStrips)
	}

	badges := r.Group("/badges")
	badges.Use(middlewares.AuthMiddleware())
	{
		badges.GET("", controllers.GetBadges)
	}

	reminders := r.Group("/reminders")
	reminders.Use(middlewares.AuthMiddleware())
	{
		reminders.POST("/check", controllers.CheckReminders)
	}

	dc := controllers.NewDeviceController(push)
	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("", dc.Register)
	}

	rc := controllers.NewRealtimeController(hub)
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", rc.AlertsWS)
	}

	return r
}
