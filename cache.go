package journal

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mvanek/journal/views"
)

// PostLister produces the post listing the handlers render from. Both the
// Store and the PostCache satisfy it.
type PostLister interface {
	ListPosts() ([]views.Post, error)
}

// PostCache memoizes the post listing. It is an explicit opt-in: the
// default configuration reloads from disk on every request. When enabled,
// the cache invalidates on content directory changes (see Watch) with a TTL
// as a backstop. Rendered post bodies are never cached.
type PostCache struct {
	mu      sync.RWMutex
	posts   []views.Post
	fetched time.Time
	ttl     time.Duration
	source  PostLister
}

// NewPostCache creates a PostCache over source with the given TTL.
func NewPostCache(source PostLister, ttl time.Duration) *PostCache {
	return &PostCache{source: source, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// ListPosts returns the cached listing, reloading from the source when the
// cache is empty or stale. It tries a read lock first; a write lock is only
// taken when a reload is needed.
func (c *PostCache) ListPosts() ([]views.Post, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	posts, err := c.source.ListPosts()
	if err != nil {
		return nil, err
	}
	c.posts = posts
	c.fetched = time.Now()
	return posts, nil
}

// Watch invalidates the cache whenever a file in dir is created, written,
// removed, or renamed, so a re-scan picks up content changes immediately.
// The returned stop function releases the watcher.
func (c *PostCache) Watch(dir string) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("journal: create content watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("journal: watch %s: %w", dir, err)
	}

	go c.watchLoop(watcher.Events, watcher.Errors)

	return func() { watcher.Close() }, nil
}

// watchLoop drains both watcher channels. Errors must be read alongside
// events or the watcher blocks on the error send and event delivery stops.
func (c *PostCache) watchLoop(events <-chan fsnotify.Event, errs <-chan error) {
	for events != nil || errs != nil {
		select {
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				c.Invalidate()
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Printf("journal: content watcher: %v", err)
		}
	}
}
