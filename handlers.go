package journal

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mvanek/journal/views"
)

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.lister.ListPosts()
	if err != nil {
		return err
	}
	tags := ListTags(posts)

	query := c.QueryParam("q")
	tag := c.QueryParam("tag")
	filtered := FilterPosts(FilterByTag(posts, tag), query)

	if c.Request().Header.Get("HX-Request") == "true" && c.QueryParam("partial") == "posts" {
		return Render(c, views.PostList(filtered, query, tag))
	}
	return Render(c, views.Home(a.site, filtered, query, tag, tags))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Store.GetPost(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.site))
		}
		return err
	}
	posts, err := a.lister.ListPosts()
	if err != nil {
		return err
	}
	related := FilterRelatedPosts(post.Post, posts)
	return Render(c, views.PostPage(a.site, post, related))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.lister.ListPosts()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.lister.ListPosts()
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.site))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
