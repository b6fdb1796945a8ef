package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akaver/beautycase/internal/api"
	"github.com/akaver/beautycase/internal/auth"
	"github.com/akaver/beautycase/internal/db"
	"github.com/akaver/beautycase/internal/store"
	"github.com/akaver/beautycase/internal/testutil"
)

const testToken = "test-token"

// testEnv wires a real store over an in-memory database behind the full
// router.
type testEnv struct {
	router http.Handler
	store  *store.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.NewTestDB(t)
	snapshots := db.NewSnapshotStore(conn, db.StorageKey)
	s := store.New(snapshots)
	s.Load(context.Background())

	router := api.NewRouter(api.Deps{
		Bearer:     auth.NewBearerMiddleware(testToken),
		Store:      s,
		AppState:   "active",
		SupportURL: "https://example.com/support",
	})
	return &testEnv{router: router, store: s}
}

// request performs an authenticated request against the router, encoding body
// as JSON when non-nil.
func (e *testEnv) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}
