package main

import (
	"trade_journal/internal/config" // Custom import path (Config)
	"trade_journal/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg)            // Create or update the schema
}
