package api

import (
	"time"

	"trade_journal/internal/config"     // Application configuration
	"trade_journal/internal/middleware" // JWT middleware
	"trade_journal/internal/utils"      // Upload URL prefix

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// NewRouter builds the gin engine with the full route table registered.
// Uploaded screenshots are served statically under /uploads; everything
// else lives under /api, with the trade and stats routes behind the JWT
// bearer gate.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default() // Gin router instance with logging and recovery

	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour

	// Static serving for uploaded chart screenshots
	r.Static(utils.UploadURLPrefix, cfg.UploadDir)

	apiGroup := r.Group("/api")

	// Auth routes (public)
	apiGroup.POST("/auth/register", RegisterHandler(db))                    // Registration endpoint
	apiGroup.POST("/auth/login", LoginHandler(db, cfg.JWTSecret, tokenTTL)) // Login endpoint

	// Protected routes (JWT bearer token required)
	protected := apiGroup.Group("")
	protected.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	protected.GET("/trades", ListTradesHandler(db))                  // List trades endpoint
	protected.POST("/trades", CreateTradeHandler(db, cfg.UploadDir)) // Create trade endpoint
	protected.DELETE("/trades/:id", DeleteTradeHandler(db))          // Delete trade endpoint
	protected.GET("/stats", StatsHandler(db))                        // Statistics endpoint

	return r
}
