package routes

import (
	"github.com/RaG1ng9107/diet-connectivity/controllers"
	"github.com/RaG1ng9107/diet-connectivity/middlewares"
	"github.com/RaG1ng9107/diet-connectivity/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, logger *zap.SugaredLogger, hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	authSvc := services.NewAuthService(db)
	userSvc := services.NewUserService(db)
	foodSvc := services.NewFoodService(db)
	mealSvc := services.NewMealService(db, foodSvc, hub)
	macroSvc := services.NewMacroService(db, mealSvc)
	feedbackSvc := services.NewFeedbackService(db, hub)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(userSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	macroCtl := controllers.NewMacroController(macroSvc)
	feedbackCtl := controllers.NewFeedbackController(feedbackSvc)
	studentCtl := controllers.NewStudentController(userSvc, mealSvc, macroSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	logger.Infow("router configured")

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(db))
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", userCtl.GetProfile)
			user.PUT("/profile", userCtl.UpdateProfile)
			user.POST("/goal-suggestion", userCtl.SuggestGoals)
		}

		food := protected.Group("/food")
		{
			food.GET("", foodCtl.ListFoods)
			food.POST("", foodCtl.CreateFood)
			food.GET("/:id", foodCtl.GetFood)
			food.DELETE("/:id", foodCtl.DeleteFood)
		}

		meals := protected.Group("/meals")
		{
			meals.GET("", mealCtl.ListMeals)
			meals.POST("", mealCtl.LogMeal)
			meals.GET("/recent", mealCtl.ListRecentMeals)
			meals.PUT("/:id", mealCtl.UpdateMeal)
			meals.DELETE("/:id", mealCtl.DeleteMeal)
		}

		macros := protected.Group("/macros")
		{
			macros.GET("/summary", macroCtl.GetSummary)
			macros.GET("/goals", macroCtl.GetGoals)
		}

		feedback := protected.Group("/feedback")
		{
			feedback.GET("", feedbackCtl.ListMyFeedback)
			feedback.POST("", feedbackCtl.AddFeedback)
		}

		students := protected.Group("/students")
		{
			students.GET("", studentCtl.ListStudents)
			students.GET("/:id/meals", studentCtl.ListStudentMeals)
			students.GET("/:id/summary", studentCtl.GetStudentSummary)
			students.GET("/:id/feedback", feedbackCtl.ListStudentFeedback)
		}

		admin := protected.Group("/admin")
		{
			admin.GET("/users", userCtl.ListUsers)
			admin.PUT("/users/:id/disabled", userCtl.SetUserDisabled)
			admin.PUT("/students/:id/trainer", userCtl.AssignTrainer)
		}

		protected.GET("/ws/events", realtimeCtl.EventsWS)
	}

	return r
}
