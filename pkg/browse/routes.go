package browse

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, browseService *Service) {
	h := &handler{
		browseService: browseService,
	}

	g := e.Group("/browse")
	g.GET("/getFiles", h.getFiles)
}
