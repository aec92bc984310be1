package routes

import (
	"net/http"
	"time"

	"barberbook/handlers"
	"barberbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers staff registration and login.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterStaffHandler)
		api.POST("/login", hb.Auth.LoginStaffHandler)
	}
}

// RegisterEstablishmentRoutes registers tenant management endpoints.
func RegisterEstablishmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/establishments")
	{
		// Public discovery endpoints.
		api.POST("", hb.Establishment.CreateEstablishmentHandler)
		api.GET("", hb.Establishment.ListEstablishmentsHandler)
		api.GET("/:establishmentId", hb.Establishment.GetEstablishmentHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthStaffMiddleware())
		protected.PUT("/:establishmentId", hb.Establishment.UpdateEstablishmentHandler)
	}
}

// RegisterAvailabilityRoutes registers the public scheduling read surface:
// the slot grid and the single-interval conflict check.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/establishments/:establishmentId")
	{
		api.GET("/slots", hb.Availability.GetSlotsHandler)
		api.POST("/conflicts/check", hb.Availability.CheckConflictsHandler)
	}
}

// RegisterAppointmentRoutes registers the booking lifecycle and walk-in queue.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/establishments/:establishmentId")
	{
		// Clients book without staff credentials.
		api.POST("/appointments", hb.Appointment.CreateAppointmentHandler)
		api.POST("/queue", hb.Appointment.EnqueueHandler)
		api.GET("/queue", hb.Appointment.QueueLengthHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthStaffMiddleware())
		protected.GET("/appointments", hb.Appointment.ListAppointmentsHandler)
		protected.GET("/appointments/:id", hb.Appointment.GetAppointmentHandler)
		protected.PUT("/appointments/:id/schedule", hb.Appointment.RescheduleAppointmentHandler)
		protected.PUT("/appointments/:id/status", hb.Appointment.UpdateAppointmentStatusHandler)
		protected.DELETE("/appointments/:id", hb.Appointment.CancelAppointmentHandler)
		protected.POST("/queue/next", hb.Appointment.CallNextHandler)
	}
}

// RegisterScheduleManagementRoutes registers breaks, time blocks, barbers,
// offerings and clients. All of these mutate scheduling inputs, so they
// require staff credentials.
func RegisterScheduleManagementRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/establishments/:establishmentId")
	api.Use(middleware.JWTAuthStaffMiddleware())
	{
		api.POST("/breaks", hb.BreakRule.CreateBreakRuleHandler)
		api.GET("/breaks", hb.BreakRule.ListBreakRulesHandler)
		api.PUT("/breaks/:id", hb.BreakRule.UpdateBreakRuleHandler)
		api.DELETE("/breaks/:id", hb.BreakRule.DeactivateBreakRuleHandler)

		api.POST("/blocks", hb.TimeBlock.CreateTimeBlockHandler)
		api.GET("/blocks", hb.TimeBlock.ListTimeBlocksHandler)
		api.DELETE("/blocks/:id", hb.TimeBlock.DeleteTimeBlockHandler)

		api.POST("/barbers", hb.Barber.CreateBarberHandler)
		api.GET("/barbers", hb.Barber.ListBarbersHandler)
		api.PUT("/barbers/:id", hb.Barber.UpdateBarberHandler)
		api.DELETE("/barbers/:id", hb.Barber.DeactivateBarberHandler)

		api.POST("/offerings", hb.Offering.CreateOfferingHandler)
		api.GET("/offerings", hb.Offering.ListOfferingsHandler)
		api.PUT("/offerings/:id", hb.Offering.UpdateOfferingHandler)
		api.DELETE("/offerings/:id", hb.Offering.DeactivateOfferingHandler)

		api.POST("/clients", hb.Client.CreateClientHandler)
		api.GET("/clients", hb.Client.ListClientsHandler)
		api.GET("/clients/:id", hb.Client.GetClientHandler)
		api.PUT("/clients/:id", hb.Client.UpdateClientHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BarberBook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterEstablishmentRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterScheduleManagementRoutes(r, hb)
	RegisterHealthRoute(r)
}
