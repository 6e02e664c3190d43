package routes

import (
	"net/http"
	"time"

	"counselhub/handlers"
	"counselhub/middleware"
	"counselhub/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps bundles the endpoint handlers and shared middleware for registration.
type Deps struct {
	Auth          *handlers.AuthHandler
	Counselors    *handlers.CounselorHandler
	Appointments  *handlers.AppointmentHandler
	Notes         *handlers.NoteHandler
	Chats         *handlers.ChatHandler
	Payments      *handlers.PaymentHandler
	Communication *handlers.CommunicationHandler

	// Authenticate validates the bearer token and sets the caller identity.
	Authenticate gin.HandlerFunc
	// AllowedOrigin configures CORS; "*" in development.
	AllowedOrigin string
}

// RegisterClientRoutes registers client account endpoints.
func RegisterClientRoutes(r *gin.Engine, d *Deps) {
	api := r.Group("/api/clients")
	{
		api.POST("/register", d.Auth.Register(models.RoleClient))
		api.POST("/login", d.Auth.Login(models.RoleClient))

		protected := api.Group("")
		protected.Use(d.Authenticate, middleware.RequireRole(models.RoleClient))
		protected.GET("/payments", d.Payments.ListMine)
		protected.POST("/payments/checkout-session", d.Payments.CreateCheckoutSession)
	}
}

// RegisterCounselorRoutes registers counselor account, discovery and
// availability endpoints.
func RegisterCounselorRoutes(r *gin.Engine, d *Deps) {
	api := r.Group("/api/counselors")
	{
		api.POST("/register", d.Auth.Register(models.RoleCounselor))
		api.POST("/login", d.Auth.Login(models.RoleCounselor))

		// Discovery endpoints are public so clients can browse before booking.
		api.GET("", d.Counselors.List)
		api.GET("/:id", d.Counselors.GetProfile)
		api.GET("/:id/availability", d.Counselors.GetAvailability)

		protected := api.Group("")
		protected.Use(d.Authenticate, middleware.RequireRole(models.RoleCounselor))
		protected.PUT("/availability", d.Counselors.SetAvailability)
	}
}

// RegisterAuthRoutes registers session endpoints shared by both roles.
func RegisterAuthRoutes(r *gin.Engine, d *Deps) {
	api := r.Group("/api/auth")
	api.Use(d.Authenticate)
	{
		api.GET("/verify", d.Auth.VerifyToken)
		api.GET("/profile", d.Auth.Profile)
		api.POST("/logout", d.Auth.Logout)
	}
}

// RegisterAppointmentRoutes registers booking, note, chat and video call
// endpoints. All of them require authentication.
func RegisterAppointmentRoutes(r *gin.Engine, d *Deps) {
	api := r.Group("/api/appointments")
	api.Use(d.Authenticate)
	{
		api.POST("", middleware.RequireRole(models.RoleClient), d.Appointments.Schedule)
		api.GET("", d.Appointments.ListMine)
		api.GET("/:id", d.Appointments.Get)
		api.PATCH("/:id/status", d.Appointments.UpdateStatus)

		api.GET("/:id/note", d.Notes.Get)
		api.PUT("/:id/note", middleware.RequireRole(models.RoleCounselor), d.Notes.Upsert)

		api.GET("/:id/chat", d.Chats.Thread)
		api.POST("/:id/chat/messages", d.Chats.Post)

		api.GET("/:id/video-call", d.Communication.VideoCallLink)
	}
}

// RegisterCommunicationRoutes registers the email delivery endpoint.
func RegisterCommunicationRoutes(r *gin.Engine, d *Deps) {
	api := r.Group("/api/communications")
	api.Use(d.Authenticate)
	{
		api.POST("/email", d.Communication.SendEmail)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, d *Deps) {
	origin := d.AllowedOrigin
	if origin == "" {
		origin = "*"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterClientRoutes(r, d)
	RegisterCounselorRoutes(r, d)
	RegisterAuthRoutes(r, d)
	RegisterAppointmentRoutes(r, d)
	RegisterCommunicationRoutes(r, d)
	RegisterHealthRoute(r)
}
