package ml

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	Relu   = "relu"
	Linear = "linear"
)

// LayerArtifact is the serialised form of a dense layer.
// weights hold one row per output unit.
type LayerArtifact struct {
	Weights    [][]float64 `json:"weights"`
	Biases     []float64   `json:"biases"`
	Activation string      `json:"activation"`
}

// ModelArtifact is the serialised form of a trained regression network.
type ModelArtifact struct {
	Layers []LayerArtifact `json:"layers"`
}

type layer struct {
	w          *mat.Dense
	b          *mat.VecDense
	activation string
}

// Regressor is a dense feed-forward network with a single output unit.
type Regressor struct {
	in     int
	layers []layer
}

// NewRegressor creates a regressor from the given artifact,
// verifying that the layer dimensions chain up to a single output.
func NewRegressor(artifact ModelArtifact) (*Regressor, error) {
	if len(artifact.Layers) == 0 {
		return nil, fmt.Errorf("model has no layers")
	}
	layers := make([]layer, len(artifact.Layers))
	in := 0
	for i, l := range artifact.Layers {
		rows := len(l.Weights)
		if rows == 0 {
			return nil, fmt.Errorf("layer %d has no weights", i)
		}
		cols := len(l.Weights[0])
		if cols == 0 {
			return nil, fmt.Errorf("layer %d has empty weight rows", i)
		}
		data := make([]float64, 0, rows*cols)
		for r, row := range l.Weights {
			if len(row) != cols {
				return nil, fmt.Errorf("layer %d has ragged weights at row %d", i, r)
			}
			data = append(data, row...)
		}
		if len(l.Biases) != rows {
			return nil, fmt.Errorf("layer %d has %d biases for %d units", i, len(l.Biases), rows)
		}
		switch l.Activation {
		case Relu, Linear:
		default:
			return nil, fmt.Errorf("layer %d has unknown activation '%s'", i, l.Activation)
		}
		if i == 0 {
			in = cols
		} else if lastOut := layers[i-1].b.Len(); cols != lastOut {
			return nil, fmt.Errorf("layer %d expects %d inputs but layer %d produces %d", i, cols, i-1, lastOut)
		}
		layers[i] = layer{
			w:          mat.NewDense(rows, cols, data),
			b:          mat.NewVecDense(rows, append([]float64{}, l.Biases...)),
			activation: l.Activation,
		}
	}
	if out := layers[len(layers)-1].b.Len(); out != 1 {
		return nil, fmt.Errorf("model produces %d outputs instead of 1", out)
	}
	return &Regressor{
		in:     in,
		layers: layers,
	}, nil
}

// In returns the expected input vector size.
func (n *Regressor) In() int {
	return n.in
}

// Shape returns the output size of each layer.
func (n *Regressor) Shape() []int {
	shape := make([]int, len(n.layers))
	for i, l := range n.layers {
		shape[i] = l.b.Len()
	}
	return shape
}

// Predict runs the forward pass and returns the raw network output.
func (n *Regressor) Predict(x []float64) (float64, error) {
	if len(x) != n.in {
		return 0, fmt.Errorf("inconsistent input size: %d vs %d", len(x), n.in)
	}
	v := mat.NewVecDense(len(x), append([]float64{}, x...))
	for _, l := range n.layers {
		rows, _ := l.w.Dims()
		out := mat.NewVecDense(rows, nil)
		out.MulVec(l.w, v)
		out.AddVec(out, l.b)
		if l.activation == Relu {
			for i := 0; i < out.Len(); i++ {
				out.SetVec(i, math.Max(0, out.AtVec(i)))
			}
		}
		v = out
	}
	return v.AtVec(0), nil
}
