// Package store provides the session store adapter: MongoDB as the source of
// truth with a Redis read-through cache in front of it.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/scamtrap/honeypot-service/internal/core/cache"
	"github.com/scamtrap/honeypot-service/internal/core/docdb"
	domainerrors "github.com/scamtrap/honeypot-service/internal/domain/errors"
	"github.com/scamtrap/honeypot-service/internal/domain/models"
)

// DefaultCacheTTL is the default TTL for cached session documents.
const DefaultCacheTTL = 3 * time.Minute

// Store persists session aggregates. Saves use an optimistic version check:
// two concurrent turns on the same session cannot silently interleave, the
// loser gets a conflict and the durable state stays consistent.
type Store struct {
	sessions docdb.SessionsCollection
	events   docdb.EventsCollection
	cache    cache.Client
	ttl      time.Duration
}

// Config holds the configuration for the session store.
type Config struct {
	DocDBClient docdb.Client
	CacheClient cache.Client
	TTL         time.Duration
}

// New creates a new session store.
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.DocDBClient == nil {
		return nil, fmt.Errorf("docdb client is required")
	}
	if cfg.CacheClient == nil {
		return nil, fmt.Errorf("cache client is required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}

	return &Store{
		sessions: cfg.DocDBClient.Sessions(),
		events:   cfg.DocDBClient.Events(),
		cache:    cfg.CacheClient,
		ttl:      ttl,
	}, nil
}

// LoadOrCreate returns the session for the given ID, or a fresh unpersisted
// session when none exists. Creation is purely in memory: nothing is written
// until Save, so a turn that fails midway leaves no trace of a new session.
// Metadata binds only when the session is created.
func (s *Store) LoadOrCreate(ctx context.Context, sessionID string, metadata map[string]interface{}) (*models.Session, bool, error) {
	if cached := s.fromCache(ctx, sessionID); cached != nil {
		return cached, false, nil
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, false, domainerrors.NewStoreError("load", err)
	}
	if session != nil {
		return session, false, nil
	}

	return models.NewSession(sessionID, metadata), true, nil
}

// Get returns the session for the given ID, or nil when absent.
func (s *Store) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	if cached := s.fromCache(ctx, sessionID); cached != nil {
		return cached, nil
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, domainerrors.NewStoreError("load", err)
	}
	return session, nil
}

// Save persists the session. A version of zero inserts; anything else
// replaces the document matching the pre-save version. Either way the stored
// document carries version+1, and a lost race surfaces as a conflict.
func (s *Store) Save(ctx context.Context, session *models.Session) error {
	expected := session.Version
	session.Version = expected + 1

	if expected == 0 {
		if err := s.sessions.Insert(ctx, session); err != nil {
			session.Version = expected
			if domainerrors.IsConflict(err) {
				return err
			}
			return domainerrors.NewStoreError("save", err)
		}
	} else {
		matched, err := s.sessions.Replace(ctx, session, expected)
		if err != nil {
			session.Version = expected
			return domainerrors.NewStoreError("save", err)
		}
		if !matched {
			session.Version = expected
			return domainerrors.NewConflictError("session was modified concurrently", session.SessionID)
		}
	}

	s.toCache(ctx, session)
	return nil
}

// RecordEvent stores a turn event. Callers treat failures as best-effort.
func (s *Store) RecordEvent(ctx context.Context, event *models.TurnEvent) error {
	if err := s.events.Insert(ctx, event); err != nil {
		return domainerrors.NewStoreError("record event", err)
	}
	return nil
}

// ListEvents returns turn events for a session, newest first.
func (s *Store) ListEvents(ctx context.Context, sessionID string, limit, skip int64) ([]*models.TurnEvent, error) {
	events, err := s.events.ListBySession(ctx, sessionID, limit, skip)
	if err != nil {
		return nil, domainerrors.NewStoreError("list events", err)
	}
	return events, nil
}

// cacheKey generates the cache key for a session.
func cacheKey(sessionID string) string {
	return "session:" + sessionID
}

// fromCache returns the cached session, or nil on miss or corrupt data.
// Corrupt entries are deleted so the next load hits the source of truth.
func (s *Store) fromCache(ctx context.Context, sessionID string) *models.Session {
	key := cacheKey(sessionID)

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("session cache read failed")
		return nil
	}
	if data == nil {
		return nil
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		_, _ = s.cache.Delete(ctx, key)
		return nil
	}

	return &session
}

// toCache writes the session through to the cache. Failures are logged only;
// mongo already holds the document.
func (s *Store) toCache(ctx context.Context, session *models.Session) {
	data, err := json.Marshal(session)
	if err != nil {
		log.Warn().Err(err).Str("session_id", session.SessionID).Msg("session cache marshal failed")
		return
	}

	if err := s.cache.Set(ctx, cacheKey(session.SessionID), data, s.ttl); err != nil {
		log.Warn().Err(err).Str("session_id", session.SessionID).Msg("session cache write failed")
	}
}
