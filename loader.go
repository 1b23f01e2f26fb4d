package hostcanvas

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Loader is an asset-loading extension. Test reports whether the loader
// handles url; Load produces the resource and Unload releases it.
type Loader interface {
	Test(url string) bool
	Load(ctx context.Context, url string) (any, error)
	Unload(res any) error
}

type completion struct {
	done func(res any, err error)
	res  any
	err  error
}

// Loaders is an ordered loader registry. The first registered loader whose
// Test accepts a URL serves it.
//
// Load and LoadAll block the caller. LoadAsync runs in the background and
// queues its completion; Pump delivers queued completions on the calling
// goroutine, which keeps adapter state confined to the UI thread.
type Loaders struct {
	mu      sync.Mutex
	list    []Loader
	pending []completion
}

// Register appends ld to the registry.
func (l *Loaders) Register(ld Loader) {
	l.mu.Lock()
	l.list = append(l.list, ld)
	l.mu.Unlock()
}

// Find returns the first loader accepting url, or nil.
func (l *Loaders) Find(url string) Loader {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ld := range l.list {
		if ld.Test(url) {
			return ld
		}
	}
	return nil
}

// Load loads url with the first matching loader. It returns an error matching
// ErrNoLoader when none accepts the URL.
func (l *Loaders) Load(ctx context.Context, url string) (any, error) {
	ld := l.Find(url)
	if ld == nil {
		return nil, fmt.Errorf("load %s: %w", url, ErrNoLoader)
	}
	res, err := ld.Load(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", url, err)
	}
	return res, nil
}

// Unload releases res through the loader that accepts url.
func (l *Loaders) Unload(url string, res any) error {
	ld := l.Find(url)
	if ld == nil {
		return fmt.Errorf("unload %s: %w", url, ErrNoLoader)
	}
	if err := ld.Unload(res); err != nil {
		return fmt.Errorf("unload %s: %w", url, err)
	}
	return nil
}

// LoadAll loads every url concurrently. Results are in the order of urls.
// The first failure cancels the remaining loads and is returned.
func (l *Loaders) LoadAll(ctx context.Context, urls []string) ([]any, error) {
	out := make([]any, len(urls))
	g, ctx := errgroup.WithContext(ctx)
	for i, url := range urls {
		g.Go(func() error {
			res, err := l.Load(ctx, url)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadAsync starts loading url in the background. done is called from a
// later Pump, never from the loading goroutine.
func (l *Loaders) LoadAsync(ctx context.Context, url string, done func(res any, err error)) {
	go func() {
		res, err := l.Load(ctx, url)
		l.mu.Lock()
		l.pending = append(l.pending, completion{done: done, res: res, err: err})
		l.mu.Unlock()
	}()
}

// Pump delivers every queued LoadAsync completion and returns how many ran.
func (l *Loaders) Pump() int {
	l.mu.Lock()
	pending := l.pending
	l.pending = nil
	l.mu.Unlock()
	for _, c := range pending {
		if c.done != nil {
			c.done(c.res, c.err)
		}
	}
	return len(pending)
}
