package api

import (
	"net/http" // HTTP status codes

	"trade_journal/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact decimal arithmetic
	"gorm.io/gorm"                  // GORM ORM library
)

// StatsHandler computes win/loss statistics over the authenticated user's
// trades, fresh on every call. Aggregation runs on exact decimals so the
// P&L total carries no binary floating-point drift.
func StatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var results []decimal.Decimal // Result column of every owned trade
		if err := db.Model(&domain.Trade{}).
			Where("user_id = ?", userID).
			Pluck("result", &results).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		total := len(results)
		wins, losses := 0, 0
		totalPnl := decimal.Zero
		for _, r := range results {
			totalPnl = totalPnl.Add(r)
			switch r.Sign() {
			case 1:
				wins++ // Strictly positive result
			case -1:
				losses++ // Strictly negative result
			}
			// Break-even trades count toward neither side
		}
		// Win rate as a percentage, rounded to 2 decimal places; 0 when the
		// user has no trades
		winrate := decimal.Zero
		if total > 0 {
			winrate = decimal.NewFromInt(int64(wins) * 100).
				Div(decimal.NewFromInt(int64(total))).
				Round(2)
		}
		c.JSON(http.StatusOK, gin.H{
			"totalTrades": total,    // All recorded trades
			"wins":        wins,     // result > 0
			"losses":      losses,   // result < 0
			"winrate":     winrate,  // wins / total * 100
			"totalPnl":    totalPnl, // Exact sum of results
		})
	}
}
