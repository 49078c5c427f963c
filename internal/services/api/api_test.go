package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"

	"mealboard/internal/platform/logger"
	phttp "mealboard/internal/platform/net/http"
	"mealboard/internal/platform/store"
)

// stubDB satisfies store.TxRunner without a backend, routes under test
// never reach it
type stubDB struct{}

type stubTag struct{}

func (stubTag) String() string      { return "" }
func (stubTag) RowsAffected() int64 { return 0 }

type stubRow struct{}

func (stubRow) Scan(...any) error { return errors.New("no backend") }

func (stubDB) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	return stubTag{}, nil
}

func (stubDB) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, errors.New("no backend")
}

func (stubDB) QueryRow(context.Context, string, ...any) store.Row { return stubRow{} }

func (s stubDB) Tx(_ context.Context, fn func(q store.RowQuerier) error) error { return fn(s) }

func TestMountServesHealthOnRootMux(t *testing.T) {
	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), Options{
		Store:  &store.Store{PG: stubDB{}},
		Logger: logger.Get(),
	})

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health = %d, want %d", rec.Code, http.StatusOK)
	}

	// the versioned prefix must not shadow liveness
	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /api/v1/health = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
