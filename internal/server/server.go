package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/MohammedShoaib-dev/FitMate/internal/activity"
	"github.com/MohammedShoaib-dev/FitMate/internal/auth"
	"github.com/MohammedShoaib-dev/FitMate/internal/booking"
	"github.com/MohammedShoaib-dev/FitMate/internal/class"
	"github.com/MohammedShoaib-dev/FitMate/internal/config"
	"github.com/MohammedShoaib-dev/FitMate/internal/event"
	"github.com/MohammedShoaib-dev/FitMate/internal/feedback"
	"github.com/MohammedShoaib-dev/FitMate/internal/occupancy"
	"github.com/MohammedShoaib-dev/FitMate/internal/planner"
	"github.com/MohammedShoaib-dev/FitMate/internal/user"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(
	database *sqlx.DB,
	cfg *config.Config,
	estimator *occupancy.Estimator,
	recorder *activity.Recorder,
	bus *event.Bus,
	planService *planner.Service,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	if cfg.RateLimitRPS > 0 {
		router.Use(RateLimitMiddleware(float64(cfg.RateLimitRPS), cfg.RateLimitBurst))
	}

	userRepo := user.NewRepository(database)
	var touch user.ActivityRecorder
	if recorder != nil {
		touch = recorder
	}
	userHandler := user.NewHandler(userRepo, cfg.JWTSecret, touch)

	classRepo := class.NewRepository(database)
	classService := class.NewService(classRepo, bus)
	classHandler := class.NewHandler(classService)

	bookingRepo := booking.NewRepository(database)
	bookingService := booking.NewService(bookingRepo, classRepo, bus)
	bookingHandler := booking.NewHandler(bookingService)

	feedbackRepo := feedback.NewRepository(database)
	feedbackHandler := feedback.NewHandler(feedbackRepo)

	occupancyHandler := occupancy.NewHandler(estimator)
	plannerHandler := planner.NewHandler(planService)

	// The occupancy widget on the landing page polls this before login.
	router.GET("/occupancy", occupancyHandler.GetOccupancy)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
	}

	authMiddleware := auth.Middleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware, activityMiddleware(recorder))
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/classes", classHandler.ListClasses)
		protected.POST("/classes/:classID/book", bookingHandler.Book)
		protected.POST("/classes/:classID/cancel", bookingHandler.Cancel)
		protected.GET("/bookings", bookingHandler.ListMyBookings)
		protected.GET("/bookings/details", bookingHandler.ListMyBookingDetails)
		protected.POST("/feedback", feedbackHandler.Submit)
		protected.POST("/ai/workout", plannerHandler.WorkoutPlan)
		protected.POST("/ai/diet", plannerHandler.DietPlan)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole("admin"))
	{
		admin.POST("/create-user", userHandler.CreateUser)
		admin.POST("/create-class", classHandler.CreateClass)
		admin.GET("/classes/:classID/attendance", bookingHandler.GetClassAttendance)
		admin.GET("/feedback", feedbackHandler.List)
		admin.PATCH("/feedback/:feedbackID/status", feedbackHandler.UpdateStatus)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     database,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.srv = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			// Preflight replies with an empty 200 body.
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
