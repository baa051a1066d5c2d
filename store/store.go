// Package store defines the persistence ports the handlers depend on and a
// Postgres implementation of all of them. Handlers only see the interfaces;
// tests substitute in-memory fakes.
package store

import (
	"context"
	"errors"

	"github.com/Dozy-jeff/sellable/models"
)

// ErrNotFound is returned when a keyed record does not exist.
var ErrNotFound = errors.New("store: not found")

type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash, role string) (int64, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id int64) (*models.User, error)
}

// IntakeStore holds one intake document and one readiness result per seller.
// Put replaces the whole record (reset semantics, not merge).
type IntakeStore interface {
	GetIntake(ctx context.Context, userID int64) (*models.SellerIntake, error)
	PutIntake(ctx context.Context, userID int64, intake models.SellerIntake) error
	GetReadiness(ctx context.Context, userID int64) (*models.ReadinessResult, error)
	PutReadiness(ctx context.Context, userID int64, result models.ReadinessResult) error
}

// ProgressStore holds per-seller curriculum progress.
type ProgressStore interface {
	GetProgress(ctx context.Context, userID int64) (*models.StepProgress, error)
	PutProgress(ctx context.Context, userID int64, p models.StepProgress) error
}

// FinancialStore holds the three-statement model, keyed separately from
// curriculum progress.
type FinancialStore interface {
	GetModel(ctx context.Context, userID int64) (*models.FinancialModel, error)
	PutModel(ctx context.Context, userID int64, m models.FinancialModel) error
	DeleteModel(ctx context.Context, userID int64) error
}

type ListingStore interface {
	PublishListing(ctx context.Context, l models.Listing) error
	Listings(ctx context.Context) ([]models.Listing, error)
	ListingByID(ctx context.Context, id string) (*models.Listing, error)
}
