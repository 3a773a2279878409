// Package journal is a personal blog engine built with Go, Echo, and templ.
// Posts are Markdown files with YAML frontmatter in a content directory;
// the server lists them newest first, renders single posts by slug, and
// filters the listing by free-text query or tag.
package journal

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mvanek/journal/markdown"
	"github.com/mvanek/journal/views"
)

// App is the central journal application. It wires together the content
// store, optional cache, handlers, and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache

	site         views.Site
	lister       PostLister
	sanitize     bool
	customRoutes []func(*App)
	stopWatch    func()
}

// New creates a journal App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		site: views.Site{
			Name:        cfg.Name,
			URL:         cfg.URL,
			Description: cfg.Description,
			Author:      cfg.Author,
		},
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start initializes the store, cache, middleware, and routes, then starts
// the server. It blocks until the server stops.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) init() error {
	var mdOpts []markdown.Option
	if a.sanitize {
		mdOpts = append(mdOpts, markdown.WithSanitizer())
	}

	var storeOpts []StoreOption
	if a.Config.LenientContent {
		storeOpts = append(storeOpts, WithLenientParsing())
	}
	a.Store = NewStore(a.Config.ContentDir, markdown.New(mdOpts...), storeOpts...)
	a.lister = a.Store

	// The cache is an explicit opt-in; without it every request
	// re-scans the content directory.
	if a.Config.CacheEnabled {
		a.Cache = NewPostCache(a.Store, a.Config.CacheTTL)
		stop, err := a.Cache.Watch(a.Config.ContentDir)
		if err != nil {
			return fmt.Errorf("journal: start cache watcher: %w", err)
		}
		a.stopWatch = stop
		a.lister = a.Cache
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/public/journal.css", a.handleStylesheet)
	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/images/:filename", a.handleImage)

	e.GET("/blog", handleBlogRedirect)
	e.GET("/", a.handleHome)
	e.GET("/blog/:slug/", a.handlePost)
}

// Close releases resources held by the App.
func (a *App) Close() error {
	if a.stopWatch != nil {
		a.stopWatch()
	}
	return nil
}
