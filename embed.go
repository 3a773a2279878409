package journal

import (
	"embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

// assets contains the default stylesheet shipped with the engine. Sites can
// layer their own styles on top from the static dir.
//
//go:embed assets/journal.css
var assets embed.FS

func (a *App) handleStylesheet(c echo.Context) error {
	data, err := assets.ReadFile("assets/journal.css")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", data)
}
