package routes

import (
	"net/http"

	"github.com/HifricAldar/cloud-computing/controllers"
	"github.com/HifricAldar/cloud-computing/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter wires every controller onto the engine. All dependencies
// arrive here explicitly; nothing reaches for globals.
func SetupRouter(
	jwtSecret string,
	userCtl *controllers.UserController,
	authCtl *controllers.AuthController,
	foodCtl *controllers.FoodController,
	pointCtl *controllers.PointController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	guard := middlewares.AuthMiddleware(jwtSecret)

	// Public auth routes
	user := r.Group("/user")
	{
		user.POST("/register", userCtl.Register)
		user.POST("/login", userCtl.Login)
		user.POST("/otp/verify", userCtl.VerifyOtp)
		user.POST("/otp/resend", userCtl.ResendOtp)
		user.GET("/email/:email", guard, userCtl.GetUserByEmail)
	}

	auth := r.Group("/auth")
	{
		auth.GET("/google", authCtl.GoogleLogin)
		auth.GET("/google/callback", authCtl.GoogleCallback)
	}

	food := r.Group("/food")
	food.Use(guard)
	{
		food.GET("", foodCtl.GetFoods)
		food.GET("/news", foodCtl.News)
		food.GET("/:id", foodCtl.GetFoodByID)
		food.POST("", foodCtl.SaveFood)
		food.POST("/:id/image", foodCtl.UpdateFoodImage)
		food.POST("/rate/:id", foodCtl.RateFood)
		food.POST("/analyze", foodCtl.Analyze)
	}

	point := r.Group("/point")
	point.Use(guard)
	{
		point.GET("/history", pointCtl.History)
		point.GET("/gifts", pointCtl.Gifts)
	}

	return r
}
