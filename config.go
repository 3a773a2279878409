package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// SiteConfig holds all configuration for a journal site.
type SiteConfig struct {
	Name        string `toml:"name"`        // site name (default "Learning Journal")
	URL         string `toml:"url"`         // canonical URL (default "http://localhost:3000")
	Description string `toml:"description"` // site description for RSS and meta tags
	Author      string `toml:"author"`      // author name for JSON-LD

	Addr       string `toml:"addr"`        // listen address (default ":3000")
	ContentDir string `toml:"content_dir"` // markdown content directory (default "content")
	StaticDir  string `toml:"static_dir"`  // user static assets (default "public")
	ImagesDir  string `toml:"images_dir"`  // content images (default "images")

	// LenientContent makes the listing skip malformed content files
	// instead of failing the request. Off by default: a bad file is a
	// bug the author should see immediately.
	LenientContent bool `toml:"lenient_content"`

	// CacheEnabled turns on the in-memory post listing cache. Off by
	// default; every request re-scans the content directory.
	CacheEnabled bool          `toml:"cache_enabled"`
	CacheTTL     time.Duration `toml:"-"` // backstop TTL when caching (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Learning Journal"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.ImagesDir == "" {
		c.ImagesDir = "images"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
}

// LoadConfig reads the TOML config file at path if it exists, then applies
// environment variable overrides and defaults. A missing file is not an
// error; a malformed one is.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return SiteConfig{}, fmt.Errorf("journal: read config %s: %w", path, err)
	}
	cfg.applyEnv()
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) applyEnv() {
	c.Name = EnvOr("SITE_NAME", c.Name)
	c.URL = EnvOr("SITE_URL", c.URL)
	c.Description = EnvOr("SITE_DESCRIPTION", c.Description)
	c.Author = EnvOr("SITE_AUTHOR", c.Author)
	c.Addr = EnvOr("ADDR", c.Addr)
	c.ContentDir = EnvOr("CONTENT_DIR", c.ContentDir)
	c.StaticDir = EnvOr("STATIC_DIR", c.StaticDir)
	c.ImagesDir = EnvOr("IMAGES_DIR", c.ImagesDir)
	if strings.EqualFold(os.Getenv("CACHE_ENABLED"), "true") {
		c.CacheEnabled = true
	}
	if strings.EqualFold(os.Getenv("LENIENT_CONTENT"), "true") {
		c.LenientContent = true
	}
}

// EnvOr returns the value of the environment variable key, or fallback if
// empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance. The
// callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithRendererSanitizer enables bluemonday sanitation of rendered post
// bodies.
func WithRendererSanitizer() Option {
	return func(a *App) {
		a.sanitize = true
	}
}
