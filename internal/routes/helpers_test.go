package routes

import (
	"net/http/httptest"
	"testing"

	pkgrequestctx "tastedive-server/pkg/requestctx"
)

func TestQueryUserID(t *testing.T) {
	r := httptest.NewRequest("GET", "/recommendations?userId=42", nil)
	id, herr := queryUserID(r)
	if herr != nil || id != 42 {
		t.Fatalf("expected 42, got %d (%v)", id, herr)
	}

	r = httptest.NewRequest("GET", "/recommendations", nil)
	id, herr = queryUserID(r)
	if herr != nil || id != 0 {
		t.Fatalf("absent param must be 0, got %d (%v)", id, herr)
	}

	for _, bad := range []string{"abc", "-1", "0", "9999999999999999999999"} {
		r = httptest.NewRequest("GET", "/recommendations?userId="+bad, nil)
		if _, herr := queryUserID(r); herr == nil {
			t.Errorf("expected error for userId=%q", bad)
		}
	}
}

func TestEffectiveUserID(t *testing.T) {
	base := httptest.NewRequest("GET", "/recommendations", nil)

	// no verified identity on the context
	if _, herr := effectiveUserID(base, 0); herr == nil {
		t.Fatal("expected unauthorized without context identity")
	}

	authed := base.WithContext(pkgrequestctx.WithUserID(base.Context(), 7))

	id, herr := effectiveUserID(authed, 0)
	if herr != nil || id != 7 {
		t.Fatalf("expected trusted id 7, got %d (%v)", id, herr)
	}
	id, herr = effectiveUserID(authed, 7)
	if herr != nil || id != 7 {
		t.Fatalf("matching claim must pass, got %d (%v)", id, herr)
	}
	if _, herr = effectiveUserID(authed, 8); herr == nil || herr.StatusCode != 403 {
		t.Fatalf("mismatched claim must be forbidden, got %v", herr)
	}
}
