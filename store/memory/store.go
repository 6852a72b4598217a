// Package memory provides an in-memory Store for tests and development.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xraph/tycoon"
	"github.com/xraph/tycoon/account"
	tycoonstore "github.com/xraph/tycoon/store"
)

// compile-time interface check
var _ tycoonstore.Store = (*Store)(nil)

// Store keeps one deep-copied record per owner, mirroring the replace-the-
// whole-record semantics of the persistent backends.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*account.Account
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		accounts: make(map[string]*account.Account),
	}
}

func (s *Store) CreateAccount(_ context.Context, a *account.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[a.Owner]; exists {
		return tycoon.ErrAccountExists
	}
	s.accounts[a.Owner] = a.Clone()
	return nil
}

func (s *Store) GetAccount(_ context.Context, owner string) (*account.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[owner]
	if !ok {
		return nil, tycoon.ErrAccountNotFound
	}
	return a.Clone(), nil
}

func (s *Store) UpdateAccount(_ context.Context, a *account.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[a.Owner]; !ok {
		return tycoon.ErrAccountNotFound
	}
	s.accounts[a.Owner] = a.Clone()
	return nil
}

func (s *Store) ListAccounts(_ context.Context, opts tycoonstore.ListOpts) ([]*account.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*account.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		result = append(result, a.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].Owner < result[j].Owner
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	// Apply limit/offset
	start := opts.Offset
	if start > len(result) {
		start = len(result)
	}
	end := start + opts.Limit
	if opts.Limit == 0 || end > len(result) {
		end = len(result)
	}
	return result[start:end], nil
}

func (s *Store) ListDueAccounts(_ context.Context, now time.Time, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type due struct {
		owner string
		at    time.Time
	}
	dues := make([]due, 0)
	for owner, a := range s.accounts {
		if a.NextEarningsAt.IsZero() || now.Before(a.NextEarningsAt) {
			continue
		}
		dues = append(dues, due{owner: owner, at: a.NextEarningsAt})
	}
	sort.Slice(dues, func(i, j int) bool {
		if dues[i].at.Equal(dues[j].at) {
			return dues[i].owner < dues[j].owner
		}
		return dues[i].at.Before(dues[j].at)
	})

	if limit > 0 && len(dues) > limit {
		dues = dues[:limit]
	}
	owners := make([]string, len(dues))
	for i, d := range dues {
		owners[i] = d.owner
	}
	return owners, nil
}

// Migrate is a no-op for the in-memory store.
func (s *Store) Migrate(_ context.Context) error { return nil }

// Ping is a no-op for the in-memory store.
func (s *Store) Ping(_ context.Context) error { return nil }

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }
