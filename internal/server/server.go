package server

import (
	"context"
	"net/http"

	"fitzone/internal/class"
	"fitzone/internal/config"
	"fitzone/internal/report"
	"fitzone/internal/subscription"
	"fitzone/internal/trainer"

	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

func New(
	cfg *config.Config,
	classService class.Service,
	trainerService trainer.Service,
	subscriptionService subscription.Service,
	reportService report.Service,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	classHandler := class.NewHandler(classService)
	trainerHandler := trainer.NewHandler(trainerService)
	subscriptionHandler := subscription.NewHandler(subscriptionService)
	reportHandler := report.NewHandler(reportService)

	classes := router.Group("/classes")
	{
		classes.POST("", classHandler.CreateClass)
		classes.GET("", classHandler.ListClasses)
		classes.GET("/:name", classHandler.GetClass)
	}

	trainers := router.Group("/trainers")
	{
		trainers.POST("", trainerHandler.CreateTrainer)
		trainers.GET("", trainerHandler.ListTrainers)
		trainers.GET("/:trainerID", trainerHandler.GetTrainer)
	}

	subscriptions := router.Group("/subscriptions")
	{
		subscriptions.POST("", subscriptionHandler.CreateSubscription)
		subscriptions.GET("", subscriptionHandler.ListSubscriptions)
	}

	router.GET("/report", reportHandler.GetReport)
	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		config: cfg,
	}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
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

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
