package model

import "time"

const (
	GreetingMessage = "Merhaba Aleyna"
	StatusSuccess   = "success"
)

// TestResponse is the fixed body of GET /test.
type TestResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
}
