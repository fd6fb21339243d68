package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/storagebrowser/storage/pkg/binder"
	"github.com/storagebrowser/storage/pkg/browse"
	"github.com/storagebrowser/storage/pkg/config"
	"github.com/storagebrowser/storage/pkg/errcodes"
	"github.com/storagebrowser/storage/pkg/filetype"
)

func New(cfg *config.Config) (*http.Server, error) {
	e, err := NewEcho(cfg)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

// NewEcho builds the router with every route and middleware registered.
func NewEcho(cfg *config.Config) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())
	if cfg.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
			Timeout: cfg.RequestTimeout,
		}))
	}

	health.RegisterRoutes(e)

	browseService, err := NewBrowseService(cfg)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	browse.RegisterRoutes(e, browseService)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	return e, nil
}

// NewBrowseService assembles the page reader described by cfg.
func NewBrowseService(cfg *config.Config) (*browse.Service, error) {
	registry, err := filetype.NewRegistryFromNames(cfg.PreviewTypes)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	formatter := browse.NewFormatter(filetype.NewClassifier(registry))

	return browse.NewService(
		browse.NewRootFs(cfg.RootDirectory),
		formatter,
		browse.NewExcludeFilter(cfg.ExcludePatterns),
		cfg.PageSize,
	), nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
