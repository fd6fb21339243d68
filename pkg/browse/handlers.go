package browse

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/storagebrowser/storage/pkg/cursor"
	"github.com/storagebrowser/storage/pkg/errcodes"
	"github.com/storagebrowser/storage/pkg/pathref"
)

type handler struct {
	browseService *Service
}

func (h *handler) getFiles(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind query params.
	params := BrowseQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	dir, err := pathref.Decode(params.Directory)
	if err != nil {
		return errcodes.ValidationError(`"directory" is not a valid path reference`)
	}

	position, err := cursor.Decode(params.Token)
	if err != nil {
		return errcodes.MalformedCursor()
	}

	page, err := h.browseService.ReadPage(ctx, dir, position, h.browseService.PageSize())
	if err != nil {
		switch {
		case errors.Is(err, ErrDirectoryNotFound):
			return errcodes.NotFound("Directory")
		case errors.Is(err, ErrDirectoryAccess):
			return errcodes.Forbidden("this directory")
		}
		return errors.WithStack(err)
	}

	resp := BrowseResponse{
		Items:     page.Items,
		NextToken: cursor.Encode(page.NextPosition),
		HasMore:   page.HasMore,
		Dir:       dir,
	}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}
