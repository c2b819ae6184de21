package ml

import (
	"fmt"

	"github.com/drakos74/price-serve/internal/storage"
	"github.com/rs/zerolog/log"
)

// LoadArtifacts loads the trained model and the fitted scaler through the given loader.
func LoadArtifacts(loader storage.Loader, scalerFile, modelFile string) (*Scaler, *Regressor, error) {

	var scalerArtifact ScalerArtifact
	if err := loader.Load(scalerFile, &scalerArtifact); err != nil {
		return nil, nil, fmt.Errorf("could not load scaler: %w", err)
	}
	scaler, err := NewScaler(scalerArtifact)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid scaler artifact '%s': %w", scalerFile, err)
	}

	var modelArtifact ModelArtifact
	if err := loader.Load(modelFile, &modelArtifact); err != nil {
		return nil, nil, fmt.Errorf("could not load model: %w", err)
	}
	model, err := NewRegressor(modelArtifact)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid model artifact '%s': %w", modelFile, err)
	}

	if scaler.Size() != model.In() {
		return nil, nil, fmt.Errorf("scaler and model disagree on features: %d vs %d", scaler.Size(), model.In())
	}

	log.Info().
		Int("features", scaler.Size()).
		Ints("shape", model.Shape()).
		Msg("loaded artifacts")

	return scaler, model, nil
}
