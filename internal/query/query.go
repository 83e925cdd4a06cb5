// Package query is the read/write layer between screens and the API client.
// Reads are keyed and cached per session; concurrent reads of the same key
// share one request. Mutations invalidate the keys they affect.
package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Key identifies a cached read, e.g. Key{"drivers"} or Key{"driver", "42"}.
type Key []string

func (k Key) String() string { return strings.Join(k, "/") }

// State is what a screen renders from: data, whether a fetch is still
// outstanding, and the error of the last fetch.
type State[T any] struct {
	Data      T
	IsLoading bool
	Err       error
}

type Options struct {
	// StaleTime is how long a result is served without refetching. Zero
	// means every read refetches (still coalesced with concurrent reads).
	StaleTime time.Duration
	// RenderWait bounds how long a read blocks before reporting IsLoading.
	RenderWait time.Duration
	// GCTime is how long an entry nobody reads stays in memory.
	GCTime time.Duration
}

type entry struct {
	value     any
	fetchedAt time.Time
	usedAt    time.Time
}

// run is one executing fetch. The group may already have forgotten it.
type run struct {
	id      string
	started uint64
}

// Cache is shared by the whole process; Scope partitions it per session.
type Cache struct {
	opts  Options
	now   func() time.Time
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]entry
	swept   time.Time
	running map[uint64]run
	runs    uint64
	// epoch counts invalidations; invalidated records the epoch at which a
	// prefix was last invalidated so a fetch started before it is discarded.
	// A record is kept only while some running fetch predates it.
	epoch       uint64
	invalidated map[string]uint64
}

func NewCache(opts Options) *Cache {
	if opts.RenderWait <= 0 {
		opts.RenderWait = 2 * time.Second
	}
	if opts.GCTime <= 0 {
		opts.GCTime = 5 * time.Minute
	}
	return &Cache{
		opts:        opts,
		now:         time.Now,
		entries:     make(map[string]entry),
		running:     make(map[uint64]run),
		invalidated: make(map[string]uint64),
	}
}

// Scope is the view of the cache for one session id.
type Scope struct {
	cache  *Cache
	prefix string
}

func (c *Cache) Scope(sessionID string) *Scope {
	return &Scope{cache: c, prefix: sessionID + "|"}
}

func (s *Scope) id(k Key) string { return s.prefix + k.String() }

// Use reads key through the cache, calling fetch when there is no fresh value.
func Use[T any](ctx context.Context, s *Scope, key Key, fetch func(context.Context) (T, error)) State[T] {
	c := s.cache
	id := s.id(key)

	cached, fresh := c.lookup(id)
	if fresh {
		return State[T]{Data: cached.(T)}
	}

	ch := start(ctx, c, id, key, fetch)

	timer := time.NewTimer(c.opts.RenderWait)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.Err != nil {
			return State[T]{Err: res.Err}
		}
		return State[T]{Data: res.Val.(T)}
	case <-timer.C:
	case <-ctx.Done():
	}

	st := State[T]{IsLoading: true}
	if cached != nil {
		st.Data = cached.(T)
	}
	return st
}

// Get is Use without the render deadline: it blocks until the fetch
// settles or ctx is done. Downloads use it since they have no loading state.
func Get[T any](ctx context.Context, s *Scope, key Key, fetch func(context.Context) (T, error)) (T, error) {
	c := s.cache
	id := s.id(key)

	if cached, fresh := c.lookup(id); fresh {
		return cached.(T), nil
	}

	var zero T
	select {
	case res := <-start(ctx, c, id, key, fetch):
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// start joins or begins the fetch for id. The fetch outlives the request
// if it has to: no abort on navigation.
func start[T any](ctx context.Context, c *Cache, id string, key Key, fetch func(context.Context) (T, error)) <-chan singleflight.Result {
	detached := context.WithoutCancel(ctx)
	return c.group.DoChan(id, func() (any, error) {
		r, started := c.begin(id)
		v, err := fetch(detached)
		c.finish(r, id, started, v, err == nil)
		if err != nil {
			logrus.WithError(err).WithField("key", key.String()).Warn("query fetch failed")
			return nil, err
		}
		return v, nil
	})
}

// Mutate runs fn and, when it succeeds, invalidates every key in invalidate.
// Nothing guards against a double submission here.
func Mutate[In any](ctx context.Context, s *Scope, in In, fn func(context.Context, In) error, invalidate ...Key) error {
	if err := fn(ctx, in); err != nil {
		return err
	}
	for _, k := range invalidate {
		s.Invalidate(k)
	}
	return nil
}

// Invalidate drops every cached key that starts with k and forgets in-flight
// fetches for them, so the next read goes to the network.
func (s *Scope) Invalidate(k Key) {
	s.cache.invalidate(s.id(k))
}

// Drop forgets everything cached for the session.
func (s *Scope) Drop() {
	s.cache.invalidate(s.prefix)
}

func (c *Cache) lookup(id string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.sweep(now)
	e, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	e.usedAt = now
	c.entries[id] = e
	return e.value, c.opts.StaleTime > 0 && now.Sub(e.fetchedAt) < c.opts.StaleTime
}

// sweep drops entries nobody has read for GCTime, at most once per GCTime.
func (c *Cache) sweep(now time.Time) {
	if now.Sub(c.swept) < c.opts.GCTime {
		return
	}
	c.swept = now
	for id, e := range c.entries {
		if now.Sub(e.usedAt) >= c.opts.GCTime {
			delete(c.entries, id)
		}
	}
}

// begin registers a running fetch for id and returns its handle and the
// current epoch.
func (c *Cache) begin(id string) (uint64, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.runs++
	c.running[c.runs] = run{id: id, started: c.epoch}
	return c.runs, c.epoch
}

func (c *Cache) finish(r uint64, id string, started uint64, v any, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.running, r)
	defer c.prune()
	if !ok {
		return
	}
	for prefix, at := range c.invalidated {
		if at > started && matches(id, prefix) {
			return
		}
	}
	now := c.now()
	c.entries[id] = entry{value: v, fetchedAt: now, usedAt: now}
}

func (c *Cache) invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.invalidated[prefix] = c.epoch
	for id := range c.entries {
		if matches(id, prefix) {
			delete(c.entries, id)
		}
	}
	for _, r := range c.running {
		if matches(r.id, prefix) {
			c.group.Forget(r.id)
		}
	}
	c.prune()
}

// prune forgets invalidation records that no running fetch started before.
func (c *Cache) prune() {
	oldest := c.epoch
	for _, r := range c.running {
		if r.started < oldest {
			oldest = r.started
		}
	}
	for prefix, at := range c.invalidated {
		if at <= oldest {
			delete(c.invalidated, prefix)
		}
	}
}

// matches reports whether id is prefix itself or nested under it. A scope
// prefix ends in "|" and matches all of the session's keys.
func matches(id, prefix string) bool {
	if id == prefix {
		return true
	}
	if strings.HasSuffix(prefix, "|") {
		return strings.HasPrefix(id, prefix)
	}
	return strings.HasPrefix(id, prefix+"/")
}
