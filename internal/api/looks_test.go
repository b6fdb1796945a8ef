package api_test

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/akaver/beautycase/internal/api"
)

func createCosmetic(t *testing.T, env *testEnv, name, category string) api.CosmeticResponse {
	t.Helper()
	rec := env.request(t, http.MethodPost, "/api/v1/cosmetics", api.CosmeticRequest{
		Name:     name,
		Category: category,
		Status:   "In use",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create cosmetic %q: status %d, body %s", name, rec.Code, rec.Body)
	}
	return decodeBody[api.CosmeticResponse](t, rec)
}

func createLook(t *testing.T, env *testEnv, title string, ids []string) api.LookResponse {
	t.Helper()
	rec := env.request(t, http.MethodPost, "/api/v1/looks", api.LookRequest{Title: title, CosmeticIDs: ids})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create look %q: status %d, body %s", title, rec.Code, rec.Body)
	}
	return decodeBody[api.LookResponse](t, rec)
}

func TestLooks_CreateDedupesIDs(t *testing.T) {
	env := newTestEnv(t)

	a := createCosmetic(t, env, "A", "Lipstick")
	b := createCosmetic(t, env, "B", "Powder")

	look := createLook(t, env, "Party", []string{a.ID, b.ID, a.ID})
	if !reflect.DeepEqual(look.CosmeticIDs, []string{a.ID, b.ID}) {
		t.Errorf("ids = %v, want deduped", look.CosmeticIDs)
	}
}

func TestLooks_CreateBlankTitle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/looks", api.LookRequest{Title: "   "})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLooks_UpdateAndGet(t *testing.T) {
	env := newTestEnv(t)

	look := createLook(t, env, "Old", nil)
	rec := env.request(t, http.MethodPut, "/api/v1/looks/"+look.ID, api.LookRequest{Title: "New", Note: "evening"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", rec.Code, rec.Body)
	}

	rec = env.request(t, http.MethodGet, "/api/v1/looks/"+look.ID, nil)
	got := decodeBody[api.LookResponse](t, rec)
	if got.Title != "New" || got.Note != "evening" {
		t.Errorf("look = %+v", got)
	}

	rec = env.request(t, http.MethodPut, "/api/v1/looks/missing", api.LookRequest{Title: "X"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", rec.Code)
	}
}

func TestLooks_Items(t *testing.T) {
	env := newTestEnv(t)

	a := createCosmetic(t, env, "A", "Lipstick")
	b := createCosmetic(t, env, "B", "Powder")
	look := createLook(t, env, "Full", []string{a.ID, b.ID})

	// deleting an item cascades out of the look's reference list
	env.request(t, http.MethodDelete, "/api/v1/cosmetics/"+b.ID, nil)

	rec := env.request(t, http.MethodGet, "/api/v1/looks/"+look.ID+"/items", nil)
	list := decodeBody[api.CosmeticListResponse](t, rec)
	if len(list.Cosmetics) != 1 || list.Cosmetics[0].ID != a.ID {
		t.Errorf("items = %+v, want just A", list.Cosmetics)
	}

	rec = env.request(t, http.MethodGet, "/api/v1/looks/"+look.ID+"/items?limit=bad", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad limit status = %d, want 400", rec.Code)
	}
}

func TestLooks_DeleteCascadesIntoDays(t *testing.T) {
	env := newTestEnv(t)

	look := createLook(t, env, "Evening", nil)
	env.request(t, http.MethodPost, "/api/v1/days/2025-01-10/looks", api.DayRefRequest{ID: look.ID})

	rec := env.request(t, http.MethodDelete, "/api/v1/looks/"+look.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = env.request(t, http.MethodGet, "/api/v1/days/2025-01-10", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("day status = %d, want 404 after the only reference is gone", rec.Code)
	}
}
