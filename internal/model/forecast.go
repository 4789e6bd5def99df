package model

import "github.com/deppfellow/transitsim/internal/binding"

const (
	ModelLSTM    = "LSTM"
	ModelProphet = "Prophet"
)

// ForecastRequest is the body of the forecast endpoints. No field is read.
type ForecastRequest struct{}

func (r *ForecastRequest) Bind(binding.Fields) {}

type Forecast struct {
	NextWeekPassengers int     `json:"next_week_passengers"`
	PeakHour           string  `json:"peak_hour"`
	BusiestRoute       string  `json:"busiest_route"`
	Confidence         float64 `json:"confidence"`
}

type ForecastResponse struct {
	Success  bool     `json:"success"`
	Model    string   `json:"model"`
	Accuracy float64  `json:"accuracy"`
	Forecast Forecast `json:"forecast"`
}
