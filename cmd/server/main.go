package main

import (
	"github.com/drakos74/price-serve/infra/config"
	"github.com/drakos74/price-serve/internal/ml"
	"github.com/drakos74/price-serve/internal/predict"
	"github.com/drakos74/price-serve/internal/server"
	jsonstore "github.com/drakos74/price-serve/internal/storage/file/json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

type Config struct {
	Port      int `json:"port"`
	Artifacts struct {
		Dir    string `json:"dir"`
		Scaler string `json:"scaler"`
		Model  string `json:"model"`
	} `json:"artifacts"`
}

func main() {

	var cfg Config
	config.MustLoad("server", &cfg)

	scaler, model, err := ml.LoadArtifacts(jsonstore.NewLocal(cfg.Artifacts.Dir), cfg.Artifacts.Scaler, cfg.Artifacts.Model)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load artifacts")
	}

	predictor := predict.New(scaler, model)

	srv := server.NewServer("price-serve", cfg.Port).
		Add(server.Live()).
		AddRoute(server.POST, "predict", predictHandler(predictor)).
		AddRoute(server.GET, "stats", statsHandler(predictor)).
		AddRoute(server.GET, "model", infoHandler(predictor)).
		Handle("/metrics", promhttp.Handler())

	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
