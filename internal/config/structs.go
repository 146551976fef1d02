package config

import (
	"github.com/bananabr/discourse/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	DB        DB
	CDN       CDN
	Log       logger.Log
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Port         int    // listening port for the webserver
	URL          string // base url for the webserver
	ShutDownTime int    // wait time for shutdown
}

// CDN holds the content delivery settings used to build public upload URLs.
type CDN struct {
	// BaseURL is prefixed to upload paths; empty serves canonical URLs.
	BaseURL string
}
