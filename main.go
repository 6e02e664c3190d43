package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"counselhub/config"
	"counselhub/cron"
	"counselhub/database"
	appointmentRepoPkg "counselhub/database/repository/appointment"
	chatRepoPkg "counselhub/database/repository/chat"
	clientRepoPkg "counselhub/database/repository/client"
	counselorRepoPkg "counselhub/database/repository/counselor"
	paymentRepoPkg "counselhub/database/repository/payment"
	noteRepoPkg "counselhub/database/repository/sessionnote"
	"counselhub/handlers"
	"counselhub/middleware"
	"counselhub/routes"
	"counselhub/services/auth"
	"counselhub/services/availability"
	"counselhub/services/chat"
	"counselhub/services/notes"
	"counselhub/services/notification"
	"counselhub/services/payment"
	"counselhub/services/scheduling"
	"counselhub/services/storage"
	"counselhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	cfg := config.Load()
	utils.InitializeLogger(cfg.Env)
	logger := utils.GetLogger()

	database.InitDB(cfg.DatabaseURL, cfg.DatabaseName)
	utils.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisAuthDB)
	stripe.Key = cfg.StripeKey

	storageService, err := storage.NewCloudinaryService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize file storage: %v", err)
	}
	emailSender, err := notification.NewBrevoSender(cfg.BrevoAPIKey, cfg.EmailSender, cfg.EmailSenderName)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize email sender: %v", err)
	}

	// Repositories.
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	counselorRepo := counselorRepoPkg.NewMongoCounselorRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	noteRepo := noteRepoPkg.NewMongoNoteRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// Reminder queue and worker share the Redis queue database.
	queueOpts := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
	reminderQueue := cron.NewReminderQueue(queueOpts)
	reminderWorker := &cron.ReminderWorker{
		Appointments: appointmentRepo,
		Clients:      clientRepo,
		Counselors:   counselorRepo,
		Email:        emailSender,
	}
	reminderWorker.Start(queueOpts)

	// Services.
	tokens := utils.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenExpiryHours)*time.Hour)
	authService := &auth.DefaultAuthService{
		Clients:    clientRepo,
		Counselors: counselorRepo,
		Tokens:     tokens,
	}
	availabilityService := &availability.DefaultAvailabilityService{
		Counselors: counselorRepo,
	}
	schedulingService := &scheduling.DefaultSchedulingService{
		Appointments: appointmentRepo,
		Counselors:   counselorRepo,
		Clients:      clientRepo,
		Reminders:    reminderQueue,
	}
	noteService := &notes.DefaultNoteService{
		Notes:        noteRepo,
		Appointments: appointmentRepo,
		Storage:      storageService,
	}
	chatService := &chat.DefaultChatService{
		Chats:        chatRepo,
		Appointments: appointmentRepo,
	}
	paymentService := &payment.DefaultPaymentService{
		Payments:   paymentRepo,
		SuccessURL: cfg.PaymentSuccessURL,
		CancelURL:  cfg.PaymentCancelURL,
	}

	// Router.
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimit(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, &routes.Deps{
		Auth:          &handlers.AuthHandler{Auth: authService},
		Counselors:    &handlers.CounselorHandler{Auth: authService, Availability: availabilityService},
		Appointments:  &handlers.AppointmentHandler{Scheduler: schedulingService},
		Notes:         &handlers.NoteHandler{Notes: noteService, Storage: storageService},
		Chats:         &handlers.ChatHandler{Chats: chatService},
		Payments:      &handlers.PaymentHandler{Payments: paymentService},
		Communication: &handlers.CommunicationHandler{Email: emailSender, VideoCallBaseURL: cfg.VideoCallBaseURL},
		Authenticate:  middleware.AuthRequired(tokens, clientRepo, counselorRepo),
		AllowedOrigin: cfg.AllowedOrigin,
	})

	port := cfg.AppPort
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
