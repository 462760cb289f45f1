package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub_backend/internal/auth"
	"mentorhub_backend/internal/handlers"
	"mentorhub_backend/internal/middleware"
)

// Register wires every route group onto the engine.
func Register(r *gin.Engine, h *handlers.AppHandlers, tokens *auth.TokenManager) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the mentorship service")
	})

	user := r.Group("/api/user")
	{
		user.POST("/signup", h.Auth.Signup)
		user.POST("/login", h.Auth.Login)

		// Availability lookups are public so visitors can browse a
		// mentor's slots before signing up.
		user.GET("/mentor-ava/:userId", h.Availability.GetNext4Days)

		authed := user.Group("")
		authed.Use(middleware.AuthMiddleware(tokens))
		{
			authed.POST("/logout", h.Auth.Logout)
			authed.GET("/check-auth", h.Auth.CheckAuth)
			authed.POST("/update-profile", h.Profile.UpdateProfile)
			authed.GET("/profile/:userId", h.Profile.GetProfile)
			authed.POST("/mentor/c/availability", h.Availability.Create)
		}
	}
}
