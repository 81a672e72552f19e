package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/app"
	"github.com/Kirankumarvel/FastAPI-Auto-Docs/services/items/application/api"
)

// newTestRouter mounts the item routes on a bare chi router, the same way
// cmd/api does minus the middleware stack.
func newTestRouter() *chi.Mux {
	r := chi.NewRouter()
	api.ItemRoutes(r, &app.Application{})
	return r
}

func do(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestGetItem_withQuery(t *testing.T) {
	rr := do(t, newTestRouter(), http.MethodGet, "/items/42?q=foo", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"item_id":42,"q":"foo"}` {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestGetItem_withoutQuery(t *testing.T) {
	rr := do(t, newTestRouter(), http.MethodGet, "/items/42", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"item_id":42,"q":null}` {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestGetItem_nonIntegerID(t *testing.T) {
	rr := do(t, newTestRouter(), http.MethodGet, "/items/abc", "")

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rr.Code, rr.Body.String())
	}
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Validation failed" {
		t.Errorf("unexpected error: %q", body.Error)
	}
	if body.Fields["item_id"] != "Must be a valid integer" {
		t.Errorf("unexpected fields: %v", body.Fields)
	}
}

func TestPutItem(t *testing.T) {
	rr := do(t, newTestRouter(), http.MethodPut, "/items/7", `{"name":"pen","price":1.5}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"item_name":"pen","item_id":7,"updated_price":1.5}` {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestPutItem_withOfferFlag(t *testing.T) {
	rr := do(t, newTestRouter(), http.MethodPut, "/items/7", `{"name":"pen","price":1.5,"is_offer":true}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	// is_offer is accepted but not echoed by the update response
	if strings.Contains(rr.Body.String(), "is_offer") {
		t.Errorf("is_offer should not appear in response: %s", rr.Body.String())
	}
}

func TestPutItem_nonIntegerID(t *testing.T) {
	rr := do(t, newTestRouter(), http.MethodPut, "/items/seven", `{"name":"pen","price":1.5}`)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestPutItem_malformedJSON(t *testing.T) {
	rr := do(t, newTestRouter(), http.MethodPut, "/items/7", `{bad json`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", rr.Body.String())
	}
}

func TestPutItem_missingFields(t *testing.T) {
	rr := do(t, newTestRouter(), http.MethodPut, "/items/7", `{"name":"pen"}`)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rr.Code, rr.Body.String())
	}
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Fields["price"] != "This field is required" {
		t.Errorf("unexpected fields: %v", body.Fields)
	}
}
