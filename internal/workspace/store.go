// Package workspace keeps the short-lived editing state of each page view in
// memory. Nothing is persisted; a workspace disappears after a period without
// use.
package workspace

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrforge/internal/payload"
)

// ErrNotFound is returned for unknown or expired workspace IDs.
var ErrNotFound = errors.New("workspace not found")

const keyPrefix = "workspace_"

// Store holds workspaces in a go-cache with sliding expiration.
type Store struct {
	cache *cache.Cache
	opts  payload.Options
	log   *zap.Logger
}

// NewStore returns a Store whose entries expire after ttl of inactivity.
func NewStore(ttl, cleanup time.Duration, opts payload.Options, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	c := cache.New(ttl, cleanup)
	c.OnEvicted(func(key string, _ interface{}) {
		log.Debug("workspace evicted", zap.String("key", key))
	})
	return &Store{cache: c, opts: opts, log: log}
}

// Create starts a new workspace with the default form and style.
func (s *Store) Create() *Workspace {
	w := newWorkspace(uuid.NewString(), s.opts)
	s.cache.Set(keyPrefix+w.ID, w, cache.DefaultExpiration)
	s.log.Debug("workspace created", zap.String("workspace_id", w.ID))
	return w
}

// Get returns the workspace and extends its lifetime.
func (s *Store) Get(id string) (*Workspace, error) {
	key := keyPrefix + id
	data, found := s.cache.Get(key)
	if !found {
		return nil, ErrNotFound
	}
	w, ok := data.(*Workspace)
	if !ok {
		return nil, ErrNotFound
	}
	s.cache.Set(key, w, cache.DefaultExpiration)
	return w, nil
}

func (s *Store) Delete(id string) {
	s.cache.Delete(keyPrefix + id)
}

// Len counts stored workspaces, including expired ones not yet cleaned up.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}
