package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	careershandler "clinic_backend/internal/feature/careers/transport/handler"
	useradminhandler "clinic_backend/internal/feature/useradmin/transport/handler"
	"clinic_backend/internal/platform/http/handler"
	"clinic_backend/internal/shared/ratelimiter"
)

// NewRouter wires the HTTP routes. adminOnly is the AccessGuard
// middleware applied to every mutating or listing route; the website
// itself only needs the public careers route and CORS.
func NewRouter(users *useradminhandler.UserAdminHandler, careers *careershandler.CareersHandler,
	adminOnly gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// The admin dashboard is served from a different origin, so CORS is
	// deliberately permissive.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "apikey"},
	}))

	// No auth required. The careers form is the only unauthenticated
	// write, so it gets a coarse submission throttle.
	submitLimit := ratelimiter.NewRateLimiter(30, time.Minute)
	r.GET("/healthz", handler.Health)
	r.OPTIONS("/create-user", users.Options)
	r.OPTIONS("/manage-users", users.Options)
	r.POST("/careers-application", submitLimit.Middleware(), careers.Submit)

	// Admin-only routes
	admin := r.Group("/")
	admin.Use(adminOnly)
	{
		admin.POST("/create-user", users.CreateUser)
		admin.GET("/manage-users", users.ListUsers)
		admin.POST("/manage-users", users.CreateManaged)
		admin.PUT("/manage-users", users.UpdateUser)
		admin.DELETE("/manage-users", users.DeleteUser)
		admin.GET("/careers-applications", careers.List)
	}

	return r
}
