// Package memory is an in-process implementation of the repository interfaces.
// It enforces the same unique and foreign-key rules as the SQL schema and backs
// service and handler tests.
package memory

import (
	"context"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex // one transaction at a time
	last time.Time

	tables
}

type tables struct {
	users        map[string]entity.User
	categories   map[string]entity.Category
	regions      map[string]entity.Region
	locations    map[string]entity.Location
	universities map[string]entity.University
	departments  map[string]entity.Department
	programs     map[string]entity.Program
	students     map[string]entity.Student
	news         map[string]entity.News
	comments     map[string]entity.Comment
	favorites    map[string]entity.Favorite
}

func (t tables) clone() tables {
	return tables{
		users:        maps.Clone(t.users),
		categories:   maps.Clone(t.categories),
		regions:      maps.Clone(t.regions),
		locations:    maps.Clone(t.locations),
		universities: maps.Clone(t.universities),
		departments:  maps.Clone(t.departments),
		programs:     maps.Clone(t.programs),
		students:     maps.Clone(t.students),
		news:         maps.Clone(t.news),
		comments:     maps.Clone(t.comments),
		favorites:    maps.Clone(t.favorites),
	}
}

func New() *Store {
	return &Store{tables: tables{
		users:        map[string]entity.User{},
		categories:   map[string]entity.Category{},
		regions:      map[string]entity.Region{},
		locations:    map[string]entity.Location{},
		universities: map[string]entity.University{},
		departments:  map[string]entity.Department{},
		programs:     map[string]entity.Program{},
		students:     map[string]entity.Student{},
		news:         map[string]entity.News{},
		comments:     map[string]entity.Comment{},
		favorites:    map[string]entity.Favorite{},
	}}
}

type txKey struct{}

// WithinTx snapshots every table, runs fn and restores the snapshot when fn
// fails or panics. Transactions are serialized; nested calls join the outer one.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snap := s.tables.clone()
	s.mu.RUnlock()

	defer func() {
		if p := recover(); p != nil {
			s.restore(snap)
			panic(p)
		}
		if err != nil {
			s.restore(snap)
		}
	}()
	return fn(context.WithValue(ctx, txKey{}, true))
}

func (s *Store) restore(t tables) {
	s.mu.Lock()
	s.tables = t
	s.mu.Unlock()
}

// now is strictly increasing so "newest first" orderings are deterministic.
// Callers must hold mu.
func (s *Store) now() time.Time {
	t := time.Now().UTC()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

func newID() string { return uuid.NewString() }

func paginate[T any](items []T, p repository.Page) []T {
	p = p.Normalize()
	if p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}

func containsFold(s, sub string) bool {
	sub = strings.TrimSpace(sub)
	return sub == "" || strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func sortByName[T any](items []T, name func(T) string) {
	sort.Slice(items, func(i, j int) bool { return name(items[i]) < name(items[j]) })
}

func sortNewestFirst[T any](items []T, created func(T) time.Time) {
	sort.Slice(items, func(i, j int) bool { return created(items[i]).After(created(items[j])) })
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ repository.TxManager = (*Store)(nil)

// Ping always succeeds; it lets the store stand in for the pool in health checks.
func (s *Store) Ping(context.Context) error { return nil }
