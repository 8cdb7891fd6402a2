package httpapi

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookinggo/internal/http/handlers"
	"bookinggo/internal/http/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func readOriginsEnv(key, def string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		log.Printf("[config] %s not set, using default", key)
		raw = def
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

func NewRouter(
	products *handlers.ProductsHandler,
	bookings *handlers.BookingsHandler,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	// ---- CORS (from ENV) ----
	allowOrigins := readOriginsEnv("CORS_ALLOW_ORIGINS", "*")
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	// A bare "*" has to go through AllowAllOrigins; as an AllowOrigins
	// entry it is not treated as allow-everything.
	if containsWildcard(allowOrigins) {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", handlers.Health)

	r.GET("/products", products.List)
	r.GET("/bookings/:booking_id", bookings.Get)
	r.POST("/book", bookings.Book)
	r.POST("/user_bookings", bookings.ListByUser)

	// Swagger
	r.GET("/docs/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/docs/doc.json"),
	))

	return r
}
