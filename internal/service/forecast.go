package service

import (
	"context"

	"github.com/deppfellow/transitsim/internal/config"
	"github.com/deppfellow/transitsim/internal/model"
)

type ForecastService struct {
	base
	latency config.LatencyConfig
}

func NewForecastService(b base, latency config.LatencyConfig) *ForecastService {
	return &ForecastService{base: b, latency: latency}
}

// LSTM forecasts next week's ridership with the morning peak.
func (s *ForecastService) LSTM(ctx context.Context) *model.ForecastResponse {
	s.pause(ctx, "lstm_forecast", s.latency.LSTMForecast)

	return &model.ForecastResponse{
		Success:  true,
		Model:    model.ModelLSTM,
		Accuracy: s.sampler.Uniform(88, 94, 1),
		Forecast: model.Forecast{
			NextWeekPassengers: s.sampler.IntBetween(2500000, 3000000),
			PeakHour:           "08:00-09:00",
			BusiestRoute:       "101 Kızılay-Çankaya",
			Confidence:         s.sampler.Uniform(85, 95, 1),
		},
	}
}

// Prophet forecasts next week's ridership with the evening peak.
func (s *ForecastService) Prophet(ctx context.Context) *model.ForecastResponse {
	s.pause(ctx, "prophet_forecast", s.latency.ProphetForecast)

	return &model.ForecastResponse{
		Success:  true,
		Model:    model.ModelProphet,
		Accuracy: s.sampler.Uniform(85, 91, 1),
		Forecast: model.Forecast{
			NextWeekPassengers: s.sampler.IntBetween(2400000, 2900000),
			PeakHour:           "17:00-18:00",
			BusiestRoute:       "102 Ulus-Bahçelievler",
			Confidence:         s.sampler.Uniform(80, 90, 1),
		},
	}
}
