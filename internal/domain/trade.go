package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Price and P&L fields go out as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Trade sides
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// Trade Model
type Trade struct {
	ID        uint             `gorm:"primaryKey" json:"id"`             // Primary key
	UserID    uint             `gorm:"not null;index" json:"user_id"`    // Foreign key to the owning User
	Pair      string           `gorm:"not null" json:"pair"`             // Instrument symbol, e.g. EURUSD
	Side      string           `gorm:"not null" json:"side"`             // BUY or SELL
	Entry     decimal.Decimal  `gorm:"type:numeric(20,8);not null" json:"entry"` // Entry price
	SL        *decimal.Decimal `gorm:"type:numeric(20,8)" json:"sl"`     // Stop loss, optional
	TP        *decimal.Decimal `gorm:"type:numeric(20,8)" json:"tp"`     // Take profit, optional
	Result    decimal.Decimal  `gorm:"type:numeric(20,8);not null;default:0" json:"result"` // Realized P&L
	Note      string           `json:"note"`                             // Free-form note, optional
	ImageURL  string           `json:"image_url"`                        // Relative URL of an uploaded chart screenshot
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"` // Timestamp of creation
}

// TableName overrides the table name used by GORM
func (Trade) TableName() string {
	return "trades"
}
