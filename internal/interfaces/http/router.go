package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUC "helpdesk/internal/application/auth/usecases"
	ticketUC "helpdesk/internal/application/ticket/usecases"
	infraauth "helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/cache"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/realtime"
	"helpdesk/internal/infrastructure/repository"
	analyticsHandler "helpdesk/internal/interfaces/http/handlers/analytics"
	authHandler "helpdesk/internal/interfaces/http/handlers/auth"
	notificationHandler "helpdesk/internal/interfaces/http/handlers/notification"
	ticketHandler "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	authHandler    *authHandler.AuthHandler
	ticketHandler  *ticketHandler.TicketHandler
	statsHandler   *analyticsHandler.StatsHandler
	hubHandler     *notificationHandler.HubHandler
	authMiddleware *middleware.AuthMiddleware
	allowedOrigins []string
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, hub *realtime.Hub, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	tokenService := infraauth.NewSessionTokenService(cfg.Auth.Session.Secret, cfg.Auth.Session.ExpHours)

	otpStore := cache.NewOTPStore(redisClient, cfg.Auth.OTP.TTLSeconds)

	// A nil interface here disables the read-through cache entirely. Passing
	// a typed nil pointer would defeat the use case nil checks.
	var ticketCache ticketUC.TicketCacheStore
	if cfg.Cache.Enabled {
		ticketCache = cache.NewTicketCache(
			redisClient,
			cfg.Cache.TicketTTLSeconds,
			cfg.Cache.CreateTTLSeconds,
			cfg.Cache.ListTTLSeconds,
		)
	}

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})

	sendOTPUC := authUC.NewSendOTPUseCase(otpStore, emailService, log)
	verifyOTPUC := authUC.NewVerifyOTPUseCase(otpStore, log)
	registerUC := authUC.NewRegisterUseCase(userRepo, otpStore, hasher, tokenService, cfg.Auth.OTP, log)
	loginUC := authUC.NewLoginUseCase(userRepo, hasher, tokenService, log)
	getCurrentUserUC := authUC.NewGetCurrentUserUseCase(userRepo, log)

	createTicketUC := ticketUC.NewCreateTicketUseCase(ticketRepo, userRepo, ticketCache, hub, log)
	getTicketUC := ticketUC.NewGetTicketUseCase(ticketRepo, userRepo, ticketCache, log)
	listTicketsUC := ticketUC.NewListTicketsUseCase(ticketRepo, userRepo, ticketCache, log)
	changeStatusUC := ticketUC.NewChangeStatusUseCase(ticketRepo, userRepo, ticketCache, hub, log)
	addCommentUC := ticketUC.NewAddCommentUseCase(ticketRepo, userRepo, ticketCache, hub, log)
	getStatsUC := ticketUC.NewGetTicketStatsUseCase(ticketRepo, log)

	return &Router{
		engine: engine,
		authHandler: authHandler.NewAuthHandler(
			sendOTPUC, verifyOTPUC, registerUC, loginUC, getCurrentUserUC,
			cfg.Auth, log,
		),
		ticketHandler: ticketHandler.NewTicketHandler(
			createTicketUC, getTicketUC, listTicketsUC, changeStatusUC, addCommentUC, log,
		),
		statsHandler:   analyticsHandler.NewStatsHandler(getStatsUC, log),
		hubHandler:     notificationHandler.NewHubHandler(hub, log),
		authMiddleware: middleware.NewAuthMiddleware(tokenService, userRepo, cfg.Auth.Session.CookieName, log),
		allowedOrigins: cfg.Server.AllowedOrigins,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.engine.GET("/ws", r.hubHandler.ServeWS)

	api := r.engine.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/send-otp", r.authHandler.SendOTP)
		auth.POST("/verify-otp", r.authHandler.VerifyOTP)
		auth.POST("/complete-registration", r.authHandler.CompleteRegistration)
		auth.POST("/register", r.authHandler.LegacyRegister)
		auth.POST("/login", r.authHandler.Login)
		// Logout only clears the cookie, so it stays open: a second call
		// with no session must still succeed.
		auth.POST("/logout", r.authHandler.Logout)

		auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
	}

	tickets := api.Group("/tickets")
	tickets.Use(r.authMiddleware.RequireAuth())
	{
		tickets.POST("", r.ticketHandler.Create)
		tickets.GET("/my", r.ticketHandler.ListMy)
		tickets.GET("/:id", r.ticketHandler.Get)
		tickets.POST("/:id/comments", r.ticketHandler.AddComment)

		admin := tickets.Group("")
		admin.Use(r.authMiddleware.RequireAdmin())
		{
			admin.GET("", r.ticketHandler.ListAll)
			admin.GET("/admin/:id", r.ticketHandler.GetAdmin)
			admin.PATCH("/:id", r.ticketHandler.UpdateStatus)
		}
	}

	api.GET("/analytics", r.authMiddleware.RequireAuth(), r.authMiddleware.RequireAdmin(), r.statsHandler.GetStats)
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
