package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	kit "mealboard/internal/platform/testkit"
)

func getSpec(t *testing.T) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	serveDocJSON()(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		return rec.Code, nil
	}
	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("spec not json: %v", err)
	}
	return rec.Code, spec
}

func TestServeDocJSONDefaults(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &docReader, func() string {
		return `{"openapi":"3.0.3","info":{"title":"t","version":"1"},"paths":{}}`
	})
	kit.Swap(t, &mutators, nil)

	code, spec := getSpec(t)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}

	servers, ok := spec["servers"].([]any)
	if !ok || len(servers) != 1 {
		t.Fatalf("servers not defaulted: %+v", spec["servers"])
	}
	if url := servers[0].(map[string]any)["url"]; url != "/api/v1" {
		t.Fatalf("server url = %v want /api/v1", url)
	}

	comps := spec["components"].(map[string]any)
	schemas := comps["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatal("ErrorResponse schema missing")
	}
}

func TestServeDocJSONRunsMutators(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &docReader, func() string {
		return `{"openapi":"3.0.3","info":{"title":"t","version":"1"},"paths":{}}`
	})
	kit.Swap(t, &mutators, nil)

	Register(nil) // ignored
	Register(func(spec map[string]any) { spec["x-flag"] = true })

	_, spec := getSpec(t)
	if spec["x-flag"] != true {
		t.Fatal("mutator did not run")
	}
}

func TestServeDocJSONBadSpec(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &docReader, func() string { return "{" })

	code, _ := getSpec(t)
	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d want 500", code)
	}
}
