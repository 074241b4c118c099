package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"renovation-tracker/internal/data/entity"
	"renovation-tracker/internal/data/repository"
	"renovation-tracker/pkg/utils"

	"github.com/google/uuid"
)

type stubCustomerRepo struct {
	mu        sync.Mutex
	customers map[uuid.UUID]*entity.Customer
	writes    int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func cloneCustomer(c *entity.Customer) *entity.Customer {
	clone := *c
	if c.Note != nil {
		note := *c.Note
		clone.Note = &note
	}
	return &clone
}

func (r *stubCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[customer.ID] = cloneCustomer(customer)
	r.writes++
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return cloneCustomer(c), nil
}

func (r *stubCustomerRepo) FindAll(_ context.Context) ([]*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, cloneCustomer(c))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *stubCustomerRepo) Stats(_ context.Context) (*entity.CustomerStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &entity.CustomerStats{Total: int64(len(r.customers))}
	for _, c := range r.customers {
		switch c.Status {
		case entity.StatusInProgress:
			stats.InProgress++
		case entity.StatusCompleted:
			stats.Completed++
		}
	}
	return stats, nil
}

func (r *stubCustomerRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.CustomerStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Status = status
	r.writes++
	return nil
}

func (r *stubCustomerRepo) UpdateFields(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[customer.ID]
	if !ok {
		return repository.ErrNotFound
	}
	status := c.Status
	updated := cloneCustomer(customer)
	updated.Status = status
	r.customers[customer.ID] = updated
	r.writes++
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.customers, id)
	r.writes++
	return nil
}

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

type stubSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (r *stubSessionRepo) Create(_ context.Context, session *entity.Session) error {
	clone := *session
	r.sessions[session.Token] = &clone
	return nil
}

func (r *stubSessionRepo) FindValidSession(_ context.Context, token uuid.UUID) (*entity.Session, error) {
	s, ok := r.sessions[token]
	if !ok || !s.Active(time.Now()) {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *stubSessionRepo) Revoke(_ context.Context, token uuid.UUID) error {
	s, ok := r.sessions[token]
	if !ok || s.RevokedAt != nil {
		return repository.ErrNotFound
	}
	now := time.Now()
	s.RevokedAt = &now
	return nil
}

func (r *stubSessionRepo) CleanExpiredSessions(_ context.Context) (int64, error) {
	var n int64
	for token, s := range r.sessions {
		if s.ExpiresAt.Before(time.Now().Add(-7 * 24 * time.Hour)) {
			delete(r.sessions, token)
			n++
		}
	}
	return n, nil
}

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
		Admin:   utils.AdminConfig{Username: "admin", Password: "adminpass"},
	}
}

func newTestRepository() (*repository.Repository, *stubUserRepo, *stubSessionRepo, *stubCustomerRepo) {
	users, sessions, customers := newStubUserRepo(), newStubSessionRepo(), newStubCustomerRepo()
	return &repository.Repository{User: users, Session: sessions, Customer: customers}, users, sessions, customers
}
