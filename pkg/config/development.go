package config

import (
	"os"
	"strconv"
	"time"
)

func loadDevelopmentConfig(cfg *Config) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err == nil {
		cfg.ServerPort = port
	}

	cfg.ServerHost = "127.0.0.1"
}

func loadTestConfig(cfg *Config) {
	cfg.ServerHost = "127.0.0.1"
	cfg.ServerPort = 0
	cfg.RequestTimeout = 5 * time.Second
}

func loadProductionConfig(cfg *Config) {
	cfg.ServerHost = "0.0.0.0"
	cfg.RequestTimeout = time.Minute
}
