package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberbook/config"
	"barberbook/cron"
	"barberbook/database"
	appointmentRepo "barberbook/database/repository/appointment"
	barberRepo "barberbook/database/repository/barber"
	breakRepo "barberbook/database/repository/breakrule"
	clientRepo "barberbook/database/repository/client"
	establishmentRepo "barberbook/database/repository/establishment"
	offeringRepo "barberbook/database/repository/offering"
	staffRepo "barberbook/database/repository/staff"
	timeblockRepo "barberbook/database/repository/timeblock"
	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/routes"
	"barberbook/services/booking"
	"barberbook/services/notification"
	"barberbook/services/scheduling"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitLockClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	estRepo := establishmentRepo.NewMongoEstablishmentRepo()
	barbers := barberRepo.NewMongoBarberRepo()
	clients := clientRepo.NewMongoClientRepo()
	offerings := offeringRepo.NewMongoOfferingRepo()
	staff := staffRepo.NewMongoStaffRepo()
	breaks := breakRepo.NewMongoBreakRepo()
	blocks := timeblockRepo.NewMongoTimeBlockRepo()
	appts := appointmentRepo.NewMongoAppointmentRepo()

	if err := appts.EnsureIndexes(context.Background()); err != nil {
		logger.Sugar().Warnf("main: could not ensure appointment indexes: %v", err)
	}

	// services.
	engine := &scheduling.Engine{
		Breaks:       breaks,
		TimeBlocks:   blocks,
		Appointments: appts,
	}

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})
	defer taskClient.Close()

	dispatcher := &notification.DefaultDispatcher{
		Tasks:        taskClient,
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadMin) * time.Minute,
	}

	bookingService := &booking.DefaultBookingService{
		Engine:       engine,
		Appointments: appts,
		Offerings:    offerings,
		Locker:       &booking.RedisLocker{Client: utils.GetLockClient()},
		Notifier:     dispatcher,
	}

	// Background delivery of confirmations and reminders, plus the hourly
	// no-show sweep.
	cron.InitNotificationWorker(clients, notification.LogMessenger{})
	sweeper := cron.InitNoShowSweep(appts)
	defer sweeper.Stop()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:          handlers.NewAuthHandler(staff),
		Establishment: handlers.NewEstablishmentHandler(estRepo),
		Barber:        handlers.NewBarberHandler(barbers),
		Client:        handlers.NewClientHandler(clients),
		Offering:      handlers.NewOfferingHandler(offerings),
		BreakRule:     handlers.NewBreakRuleHandler(breaks),
		TimeBlock:     handlers.NewTimeBlockHandler(blocks),
		Availability:  handlers.NewAvailabilityHandler(engine, estRepo),
		Appointment:   handlers.NewAppointmentHandler(bookingService, appts),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
