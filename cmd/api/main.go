package main

import (
	"context"
	"net"
	"net/http"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/robinjoseph08/golib/signals"
	"github.com/storagebrowser/storage/pkg/config"
	"github.com/storagebrowser/storage/pkg/server"
	"github.com/storagebrowser/storage/pkg/version"
)

func main() {
	ctx := context.Background()
	log := logger.New()

	log.Info("starting storage", logger.Data{"version": version.Version})

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}
	log.Info("config loaded", logger.Data{
		"root_directory":   cfg.RootDirectory,
		"page_size":        cfg.PageSize,
		"preview_types":    cfg.PreviewTypes,
		"exclude_patterns": cfg.ExcludePatterns,
	})

	srv, err := server.New(cfg)
	if err != nil {
		log.Err(err).Fatal("server error")
	}

	graceful := signals.Setup()

	go func() {
		lc := net.ListenConfig{}
		listener, err := lc.Listen(ctx, "tcp", srv.Addr)
		if err != nil {
			log.Err(err).Fatal("failed to bind port")
		}

		// Report the bound port, which differs from the configured one when it is 0.
		actualPort := listener.Addr().(*net.TCPAddr).Port
		log.Info("server started", logger.Data{"port": actualPort})

		err = srv.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Err(err).Fatal("server stopped")
		}
		log.Info("server stopped")
	}()

	<-graceful
	log.Info("starting graceful shutdown")

	err = srv.Shutdown(ctx)
	if err != nil {
		log.Err(err).Error("server shutdown error")
	}
	log.Info("server shutdown")
}
