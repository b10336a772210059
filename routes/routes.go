package routes

import (
	"os"
	"strings"
	"venuefinder-backend/config"
	"venuefinder-backend/controllers"
	"venuefinder-backend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins := strings.Split(env, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		return origins
	}
	return []string{"http://localhost:3000"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)

			auth.Use(middleware.RequireAuth())
			auth.POST("/logout", controllers.Logout)
			auth.GET("/me", controllers.Me)
		}

		api.GET("/categories", controllers.GetCategories)
		api.GET("/search", middleware.OptionalAuth(), controllers.SearchVenues)
		api.GET("/venues/:id", controllers.GetVenueDetail)
		api.GET("/search-history", middleware.RequireAuth(), controllers.GetSearchHistory)
	}

	return r
}
