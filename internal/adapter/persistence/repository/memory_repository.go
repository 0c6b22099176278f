package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"monauxiliaire/internal/domain/entities"
	"monauxiliaire/internal/usecase/interfaces"
)

// The in-memory adapters keep everything in keyed maps with per-entity
// incrementing counters. Lifetime is the process lifetime; they exist for
// local development and tests, and as the default backend when no database
// is configured.

type QuoteMemoryRepository struct {
	mu     sync.Mutex
	quotes map[int]entities.Quote
	nextID int
}

var _ interfaces.IQuoteRepository = (*QuoteMemoryRepository)(nil)

func NewQuoteMemoryRepository() *QuoteMemoryRepository {
	return &QuoteMemoryRepository{quotes: make(map[int]entities.Quote), nextID: 1}
}

func (r *QuoteMemoryRepository) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q.ID = r.nextID
	r.nextID++
	q.CreatedAt = time.Now().UTC()
	q.Status = entities.QuoteStatusPending
	r.quotes[q.ID] = q
	return q, nil
}

func (r *QuoteMemoryRepository) GetByID(_ context.Context, id int) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quotes[id], nil
}

func (r *QuoteMemoryRepository) List(_ context.Context) ([]entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.Quote, 0, len(r.quotes))
	for _, q := range r.quotes {
		out = append(out, q)
	}
	sortNewestFirst(out, func(q entities.Quote) (time.Time, int) { return q.CreatedAt, q.ID })
	return out, nil
}

type ContactMemoryRepository struct {
	mu       sync.Mutex
	contacts map[int]entities.Contact
	nextID   int
}

var _ interfaces.IContactRepository = (*ContactMemoryRepository)(nil)

func NewContactMemoryRepository() *ContactMemoryRepository {
	return &ContactMemoryRepository{contacts: make(map[int]entities.Contact), nextID: 1}
}

func (r *ContactMemoryRepository) Create(_ context.Context, c entities.Contact) (entities.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	c.CreatedAt = time.Now().UTC()
	c.Status = entities.ContactStatusUnread
	r.contacts[c.ID] = c
	return c, nil
}

func (r *ContactMemoryRepository) GetByID(_ context.Context, id int) (entities.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contacts[id], nil
}

func (r *ContactMemoryRepository) List(_ context.Context) ([]entities.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		out = append(out, c)
	}
	sortNewestFirst(out, func(c entities.Contact) (time.Time, int) { return c.CreatedAt, c.ID })
	return out, nil
}

type UserMemoryRepository struct {
	mu     sync.Mutex
	users  map[int]entities.User
	nextID int
}

var _ interfaces.IUserRepository = (*UserMemoryRepository)(nil)

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{users: make(map[int]entities.User), nextID: 1}
}

func (r *UserMemoryRepository) Create(_ context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u
	return u, nil
}

func (r *UserMemoryRepository) GetByID(_ context.Context, id int) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *UserMemoryRepository) GetByUsername(_ context.Context, username string) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return entities.User{}, nil
}

// sortNewestFirst orders by creation timestamp descending, breaking ties on
// the higher id so same-instant inserts still list newest-first.
func sortNewestFirst[T any](items []T, key func(T) (time.Time, int)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if ti.Equal(tj) {
			return idi > idj
		}
		return ti.After(tj)
	})
}
