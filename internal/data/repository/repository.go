package repository

import (
	"errors"

	"renovation-tracker/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned by writes that matched no row.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Customer CustomerRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Customer: NewCustomerRepository(db, log),
	}
}
