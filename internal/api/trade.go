package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"trade_journal/internal/domain" // Importing domain models
	"trade_journal/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"       // Gin web framework
	"github.com/shopspring/decimal"  // Exact decimal arithmetic
	"github.com/sirupsen/logrus"     // Logging library
	"gorm.io/gorm"                   // GORM ORM library
)

// CreateTradeRequest represents a new trade entry. Entry is a pointer so a
// missing field is distinguishable from an explicit zero.
type CreateTradeRequest struct {
	Pair   string           `json:"pair"`   // Instrument symbol
	Side   string           `json:"side"`   // BUY or SELL
	Entry  *decimal.Decimal `json:"entry"`  // Entry price
	SL     *decimal.Decimal `json:"sl"`     // Stop loss, optional
	TP     *decimal.Decimal `json:"tp"`     // Take profit, optional
	Result *decimal.Decimal `json:"result"` // Realized P&L, defaults to 0
	Note   string           `json:"note"`   // Free-form note, optional
}

// parseFormDecimal parses an optional decimal form field. Returns ok=false
// when the field is present but not a valid number.
func parseFormDecimal(c *gin.Context, field string) (*decimal.Decimal, bool) {
	v := strings.TrimSpace(c.PostForm(field))
	if v == "" {
		return nil, true
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, false
	}
	return &d, true
}

// bindCreateTrade fills a CreateTradeRequest from either a multipart form or
// a JSON body, depending on the request content type.
func bindCreateTrade(c *gin.Context, req *CreateTradeRequest) bool {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		req.Pair = strings.TrimSpace(c.PostForm("pair"))
		req.Side = c.PostForm("side")
		req.Note = c.PostForm("note")
		var ok bool
		if req.Entry, ok = parseFormDecimal(c, "entry"); !ok {
			return false
		}
		if req.SL, ok = parseFormDecimal(c, "sl"); !ok {
			return false
		}
		if req.TP, ok = parseFormDecimal(c, "tp"); !ok {
			return false
		}
		if req.Result, ok = parseFormDecimal(c, "result"); !ok {
			return false
		}
		return true
	}
	return c.ShouldBindJSON(req) == nil
}

// CreateTradeHandler records a new trade for the authenticated user.
// Accepts JSON or multipart form data; a multipart request may carry an
// optional "image" file stored via the attachment handler. If validation or
// the insert fails after the attachment was stored, the file is removed so
// no orphaned uploads accumulate.
func CreateTradeHandler(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Store the attachment first, if one was supplied
		imageURL := ""
		if file, err := c.FormFile("image"); err == nil && file != nil {
			url, err := utils.SaveUpload(c, file, uploadDir)
			if err != nil {
				switch err {
				case utils.ErrUploadTooLarge, utils.ErrUploadType:
					c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				default:
					logrus.WithFields(logrus.Fields{
						"user_id": userID,      // User ID
						"error":   err.Error(), // Error message
					}).Error("Failed to store attachment")
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store attachment"})
				}
				return
			}
			imageURL = url
		}
		// cleanup removes the stored attachment when the trade is not inserted
		cleanup := func() {
			if imageURL != "" {
				_ = utils.RemoveUpload(imageURL, uploadDir)
			}
		}
		var req CreateTradeRequest // Normalized request fields
		if !bindCreateTrade(c, &req) {
			cleanup()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate required fields
		if req.Pair == "" || req.Side == "" || req.Entry == nil {
			cleanup()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pair, side, and entry are required"})
			return
		}
		side := strings.ToUpper(req.Side)
		if side != domain.SideBuy && side != domain.SideSell {
			cleanup()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Side must be BUY or SELL"})
			return
		}
		// Result defaults to zero P&L
		result := decimal.Zero
		if req.Result != nil {
			result = *req.Result
		}
		trade := domain.Trade{
			UserID:   userID.(uint), // Owner
			Pair:     req.Pair,      // Instrument symbol
			Side:     side,          // Normalized side
			Entry:    *req.Entry,    // Entry price
			SL:       req.SL,        // Stop loss
			TP:       req.TP,        // Take profit
			Result:   result,        // Realized P&L
			Note:     req.Note,      // Note
			ImageURL: imageURL,      // Attachment reference, if any
		}
		// Insert the trade
		if err := db.Create(&trade).Error; err != nil {
			cleanup()
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"pair":    req.Pair,    // Instrument symbol
				"error":   err.Error(), // Error message
			}).Error("Failed to add trade") // Log insert failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add trade"})
			return
		}
		// Log successful trade creation
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,   // User ID
			"trade_id": trade.ID, // New trade ID
			"pair":     trade.Pair,
			"side":     trade.Side,
		}).Info("Trade added")
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "Trade added successfully", "tradeId": trade.ID})
	}
}

// ListTradesHandler returns all trades owned by the authenticated user,
// newest first
func ListTradesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		trades := make([]domain.Trade, 0) // Empty list, not null, when the user has no trades
		if err := db.Where("user_id = ?", userID).
			Order("created_at DESC, id DESC").
			Find(&trades).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trades"})
			return
		}
		c.JSON(http.StatusOK, trades) // Return the trade list
	}
}

// DeleteTradeHandler deletes a trade by ID, scoped to the authenticated
// owner. A trade that does not exist and a trade owned by someone else both
// return 404, so existence never leaks across users.
func DeleteTradeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		tradeID := c.Param("id") // Trade ID from the path
		res := db.Where("id = ? AND user_id = ?", tradeID, userID).Delete(&domain.Trade{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trade"})
			return
		}
		// Zero rows deleted: absent or not owned by the caller
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found or unauthorized"})
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,  // User ID
			"trade_id": tradeID, // Deleted trade ID
		}).Info("Trade deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Trade deleted successfully"})
	}
}
