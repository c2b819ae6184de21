package predict

import (
	"fmt"
	"math"

	"github.com/drakos74/price-serve/internal/buffer"
	pricemath "github.com/drakos74/price-serve/internal/math"
	"github.com/drakos74/price-serve/internal/ml"
)

// Predictor bundles the fitted scaler and the trained model
// into a single inference call.
type Predictor struct {
	scaler *ml.Scaler
	model  *ml.Regressor
	stats  *buffer.Stats
}

// New creates a predictor for the given artifacts.
func New(scaler *ml.Scaler, model *ml.Regressor) *Predictor {
	return &Predictor{
		scaler: scaler,
		model:  model,
		stats:  buffer.NewStats(),
	}
}

// Price predicts the price for the given raw feature record.
// the model was trained on log1p(price) , so the output is mapped back with expm1.
func (p *Predictor) Price(record map[string]float64) (float64, error) {
	x, err := p.scaler.Transform(p.scaler.Vectorize(record))
	if err != nil {
		return 0, fmt.Errorf("could not scale record: %w", err)
	}
	logPrice, err := p.model.Predict(x)
	if err != nil {
		return 0, fmt.Errorf("could not run inference: %w", err)
	}
	price := math.Expm1(logPrice)
	if !pricemath.IsFinite(price) {
		return 0, fmt.Errorf("non-finite prediction for record %+v", record)
	}
	price = pricemath.Round2(price)
	p.stats.Push(price)
	return price, nil
}

// Summary is a snapshot of the predictions served so far.
type Summary struct {
	Count int     `json:"count"`
	Avg   float64 `json:"avg"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	StDev float64 `json:"std"`
	Last  float64 `json:"last"`
}

// Summary returns the stats of the predictions served so far.
func (p *Predictor) Summary() Summary {
	if p.stats.Count() == 0 {
		return Summary{}
	}
	return Summary{
		Count: p.stats.Count(),
		Avg:   p.stats.Avg(),
		Min:   p.stats.Min(),
		Max:   p.stats.Max(),
		StDev: p.stats.StDev(),
		Last:  p.stats.Last(),
	}
}

// Info describes the loaded artifacts.
type Info struct {
	Features []string `json:"features"`
	Shape    []int    `json:"shape"`
}

// Info returns the shape of the loaded artifacts.
func (p *Predictor) Info() Info {
	return Info{
		Features: p.scaler.Features(),
		Shape:    p.model.Shape(),
	}
}
