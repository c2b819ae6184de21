package main

import (
	"encoding/json"
	"net/http"
	"time"

	pricemath "github.com/drakos74/price-serve/internal/math"
	"github.com/drakos74/price-serve/internal/metrics"
	"github.com/drakos74/price-serve/internal/predict"
	"github.com/drakos74/price-serve/internal/server"
	"github.com/rs/zerolog/log"
)

// Prediction is the response payload of the predict route.
type Prediction struct {
	Price float64 `json:"price"`
}

func predictHandler(p *predict.Predictor) server.Handler {
	return func(r *http.Request) ([]byte, int, error) {
		var record map[string]float64
		if err := server.JsonRead(r, false, &record); err != nil {
			metrics.Observer.Increment("error")
			return nil, http.StatusBadRequest, err
		}

		start := time.Now()
		price, err := p.Price(record)
		metrics.Observer.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.Observer.Increment("error")
			return nil, http.StatusBadRequest, err
		}
		metrics.Observer.Increment("ok")
		log.Debug().
			Int("features", len(record)).
			Str("price", pricemath.Format(price)).
			Msg("served prediction")

		b, err := json.Marshal(Prediction{Price: price})
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return b, http.StatusOK, nil
	}
}

func statsHandler(p *predict.Predictor) server.Handler {
	return func(r *http.Request) ([]byte, int, error) {
		b, err := json.Marshal(p.Summary())
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return b, http.StatusOK, nil
	}
}

func infoHandler(p *predict.Predictor) server.Handler {
	return func(r *http.Request) ([]byte, int, error) {
		b, err := json.Marshal(p.Info())
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return b, http.StatusOK, nil
	}
}
