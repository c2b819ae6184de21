package predict

import (
	"math"
	"testing"

	"github.com/drakos74/price-serve/internal/ml"
	"github.com/stretchr/testify/assert"
)

func newTestPredictor(t *testing.T) *Predictor {
	// identity scaler , so the model sees the raw values
	scaler, err := ml.NewScaler(ml.ScalerArtifact{
		Features: []string{"area", "bedrooms"},
		Mean:     []float64{0, 0},
		Scale:    []float64{1, 1},
	})
	assert.NoError(t, err)

	// log-price is just the sum of the inputs
	model, err := ml.NewRegressor(ml.ModelArtifact{
		Layers: []ml.LayerArtifact{
			{
				Weights:    [][]float64{{1, 1}},
				Biases:     []float64{0},
				Activation: ml.Linear,
			},
		},
	})
	assert.NoError(t, err)

	return New(scaler, model)
}

func TestPredictor_Price(t *testing.T) {

	type test struct {
		record map[string]float64
		price  float64
	}

	tests := map[string]test{
		"full-record": {
			record: map[string]float64{"area": 1, "bedrooms": 1},
			price:  6.39, // round2(expm1(2))
		},
		"missing-feature-zero-filled": {
			record: map[string]float64{"area": 1},
			price:  1.72, // round2(expm1(1))
		},
		"unknown-field-ignored": {
			record: map[string]float64{"area": 1, "garden": 1000},
			price:  1.72,
		},
		"empty-record": {
			record: map[string]float64{},
			price:  0, // round2(expm1(0))
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := newTestPredictor(t)
			price, err := p.Price(tt.record)
			assert.NoError(t, err)
			assert.Equal(t, tt.price, price)
		})
	}
}

func TestPredictor_Price_Positive(t *testing.T) {
	p := newTestPredictor(t)
	price, err := p.Price(map[string]float64{"area": 8.5, "bedrooms": 3})
	assert.NoError(t, err)
	assert.True(t, price > 0)
	assert.Equal(t, price, math.Round(price*100)/100)
}

func TestPredictor_Price_NonFinite(t *testing.T) {
	p := newTestPredictor(t)
	// expm1 overflows for large log-space outputs
	_, err := p.Price(map[string]float64{"area": 1e6})
	assert.Error(t, err)
	// failed predictions should not pollute the stats
	assert.Equal(t, 0, p.Summary().Count)
}

func TestPredictor_Summary(t *testing.T) {

	p := newTestPredictor(t)
	assert.Equal(t, Summary{}, p.Summary())

	_, err := p.Price(map[string]float64{"area": 1, "bedrooms": 1})
	assert.NoError(t, err)
	_, err = p.Price(map[string]float64{"area": 1})
	assert.NoError(t, err)

	summary := p.Summary()
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 6.39, summary.Max)
	assert.Equal(t, 1.72, summary.Min)
	assert.Equal(t, 1.72, summary.Last)
	assert.InDelta(t, 4.055, summary.Avg, 1e-9)
}

func TestPredictor_Info(t *testing.T) {
	p := newTestPredictor(t)
	info := p.Info()
	assert.Equal(t, []string{"area", "bedrooms"}, info.Features)
	assert.Equal(t, []int{1}, info.Shape)
}
