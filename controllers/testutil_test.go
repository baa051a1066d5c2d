package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Dozy-jeff/sellable/models"
	"github.com/Dozy-jeff/sellable/store"
)

// memStore is an in-memory implementation of every store port, substituted
// for Postgres in handler tests.
type memStore struct {
	users      map[int64]*models.User
	intakes    map[int64]models.SellerIntake
	readiness  map[int64]models.ReadinessResult
	progress   map[int64]models.StepProgress
	financials map[int64]models.FinancialModel
	listings   map[string]models.Listing
	nextID     int64
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[int64]*models.User{},
		intakes:    map[int64]models.SellerIntake{},
		readiness:  map[int64]models.ReadinessResult{},
		progress:   map[int64]models.StepProgress{},
		financials: map[int64]models.FinancialModel{},
		listings:   map[string]models.Listing{},
	}
}

func (m *memStore) CreateUser(_ context.Context, name, email, passwordHash, role string) (int64, error) {
	for _, u := range m.users {
		if u.Email == email {
			return 0, errors.New("duplicate email")
		}
	}
	m.nextID++
	m.users[m.nextID] = &models.User{ID: m.nextID, Name: name, Email: email, PasswordHash: passwordHash, Role: role}
	return m.nextID, nil
}

func (m *memStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) UserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, store.ErrNotFound
}

func (m *memStore) GetIntake(_ context.Context, userID int64) (*models.SellerIntake, error) {
	if x, ok := m.intakes[userID]; ok {
		return &x, nil
	}
	return nil, store.ErrNotFound
}

func (m *memStore) PutIntake(_ context.Context, userID int64, intake models.SellerIntake) error {
	m.intakes[userID] = intake
	return nil
}

func (m *memStore) GetReadiness(_ context.Context, userID int64) (*models.ReadinessResult, error) {
	if r, ok := m.readiness[userID]; ok {
		return &r, nil
	}
	return nil, store.ErrNotFound
}

func (m *memStore) PutReadiness(_ context.Context, userID int64, result models.ReadinessResult) error {
	m.readiness[userID] = result
	return nil
}

func (m *memStore) GetProgress(_ context.Context, userID int64) (*models.StepProgress, error) {
	if p, ok := m.progress[userID]; ok {
		return &p, nil
	}
	return nil, store.ErrNotFound
}

func (m *memStore) PutProgress(_ context.Context, userID int64, p models.StepProgress) error {
	m.progress[userID] = p
	return nil
}

func (m *memStore) GetModel(_ context.Context, userID int64) (*models.FinancialModel, error) {
	if fm, ok := m.financials[userID]; ok {
		return &fm, nil
	}
	return nil, store.ErrNotFound
}

func (m *memStore) PutModel(_ context.Context, userID int64, fm models.FinancialModel) error {
	m.financials[userID] = fm
	return nil
}

func (m *memStore) DeleteModel(_ context.Context, userID int64) error {
	delete(m.financials, userID)
	return nil
}

func (m *memStore) PublishListing(_ context.Context, l models.Listing) error {
	m.listings[l.ID] = l
	return nil
}

func (m *memStore) Listings(_ context.Context) ([]models.Listing, error) {
	out := make([]models.Listing, 0, len(m.listings))
	for _, l := range m.listings {
		out = append(out, l)
	}
	return out, nil
}

func (m *memStore) ListingByID(_ context.Context, id string) (*models.Listing, error) {
	if l, ok := m.listings[id]; ok {
		return &l, nil
	}
	return nil, store.ErrNotFound
}

var _ store.UserStore = (*memStore)(nil)
var _ store.IntakeStore = (*memStore)(nil)
var _ store.ProgressStore = (*memStore)(nil)
var _ store.FinancialStore = (*memStore)(nil)
var _ store.ListingStore = (*memStore)(nil)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser stands in for the JWT middleware in handler tests.
func asUser(uid int64) gin.HandlerFunc {
	return func(c *gin.Context) { c.Set("user_id", uid) }
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
