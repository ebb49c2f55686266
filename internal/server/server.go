package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Emizy/fitness-club-manager-api/internal/checkin"
	"github.com/Emizy/fitness-club-manager-api/internal/club"
	"github.com/Emizy/fitness-club-manager-api/internal/config"
	"github.com/Emizy/fitness-club-manager-api/internal/email"
	"github.com/Emizy/fitness-club-manager-api/internal/invoice"
	"github.com/Emizy/fitness-club-manager-api/internal/membership"
	"github.com/Emizy/fitness-club-manager-api/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(50, 100))

	userRepo := user.NewRepository(db)
	membershipRepo := membership.NewRepository(db)
	clubRepo := club.NewRepository(db)
	invoiceRepo := invoice.NewRepository(db)
	checkinRepo := checkin.NewRepository(db)

	invoiceManager := invoice.NewManager(invoiceRepo, cfg.ReactivateOnInvoice)

	userHandler := user.NewHandler(user.NewService(userRepo, emailService))
	membershipHandler := membership.NewHandler(membership.NewService(membershipRepo))
	clubHandler := club.NewHandler(club.NewService(clubRepo))
	invoiceHandler := invoice.NewHandler(invoice.NewService(
		invoiceRepo, membershipRepo, userRepo, invoiceManager, emailService,
	))
	checkinHandler := checkin.NewHandler(checkin.NewService(
		checkinRepo, userRepo, clubRepo, membershipRepo, invoiceRepo, invoiceManager, cfg.MonthlyCharge,
	))

	api := router.Group("/api")
	{
		api.POST("/user", userHandler.Create)
		api.GET("/user", userHandler.List)
		api.GET("/user/:id", userHandler.Get)

		api.GET("/membership", membershipHandler.List)
		api.GET("/membership/:id", membershipHandler.Get)
		api.PUT("/membership/:id/cancel", membershipHandler.Cancel)

		api.POST("/fitnessclub", clubHandler.Create)
		api.GET("/fitnessclub", clubHandler.List)
		api.GET("/fitnessclub/:id", clubHandler.Get)

		api.POST("/checkin", checkinHandler.Create)
		api.GET("/checkin", checkinHandler.List)

		api.POST("/invoice", invoiceHandler.Create)
		api.GET("/invoice", invoiceHandler.List)
		api.GET("/invoice/:id", invoiceHandler.Get)
		api.PUT("/invoice/:id/add_row", invoiceHandler.AddRow)
		api.PUT("/invoice/:id/void", invoiceHandler.Void)
		api.DELETE("/invoice/:id", invoiceHandler.Delete)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
