package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/serroba/webacl/internal/api"
	"github.com/serroba/webacl/internal/storage"
	"github.com/serroba/webacl/internal/ws"
	"github.com/stretchr/testify/require"
)

const (
	testResourcePath = "file.txt"
	testWebID        = "https://carol.example/#me"
)

func newTestHandler() http.Handler {
	server := api.NewServer(api.ServerConfig{
		Store: storage.NewMemoryStore(),
		Hub:   ws.NewHub(),
	})

	return server.Handler()
}

// putACL submits a turtle body and returns the response recorder.
func putACL(handler http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/acl/"+testResourcePath, strings.NewReader(body))
	req.Header.Set("X-Agent-WebID", testWebID)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestServer_RequiresAuth(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/acl/"+testResourcePath, nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for missing auth header, got %d", rec.Code)
	}
}

func TestServer_PutNormalizesAndStores(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	// Two rules with identical applicability; the stored form should
	// collapse them into one.
	body := `
<#r1> rdf:type acl:Authorization .
<#r1> acl:agent <https://alice.example/#me> .
<#r1> acl:accessTo <https://example.org/file.txt> .
<#r1> acl:mode acl:Read .
<#r2> rdf:type acl:Authorization .
<#r2> acl:agent <https://bob.example/#me> .
<#r2> acl:accessTo <https://example.org/file.txt> .
<#r2> acl:mode acl:Write .
`

	rec := putACL(handler, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	stored := rec.Body.String()

	if strings.Count(stored, "acl:Authorization") != 1 {
		t.Errorf("expected a single merged rule, got:\n%s", stored)
	}

	for _, want := range []string{"alice.example", "bob.example", "acl:Read", "acl:Write"} {
		if !strings.Contains(stored, want) {
			t.Errorf("normalized output missing %q:\n%s", want, stored)
		}
	}
}

func TestServer_GetReturnsStoredDocument(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	body := `
<#owner> rdf:type acl:Authorization .
<#owner> acl:agent <https://alice.example/#me> .
<#owner> acl:accessTo <https://example.org/file.txt> .
<#owner> acl:mode acl:Control .
`

	rec := putACL(handler, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/acl/"+testResourcePath, nil)
	req.Header.Set("X-Agent-WebID", testWebID)

	getRec := httptest.NewRecorder()
	handler.ServeHTTP(getRec, req)

	require.Equal(t, http.StatusOK, getRec.Code)

	if getRec.Header().Get("Content-Type") != "text/turtle" {
		t.Errorf("expected text/turtle, got %q", getRec.Header().Get("Content-Type"))
	}

	if getRec.Body.String() != rec.Body.String() {
		t.Errorf("GET body differs from stored PUT response:\n%s\nvs\n%s",
			getRec.Body.String(), rec.Body.String())
	}
}

func TestServer_GetMissingACL(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/acl/absent.txt", nil)
	req.Header.Set("X-Agent-WebID", testWebID)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestServer_PutRejectsUnknownAgentClass(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	body := `
@prefix ex: <http://example.org/> .
<#bad> rdf:type acl:Authorization .
<#bad> acl:agentClass ex:Nonsense .
`

	rec := putACL(handler, body)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for unknown agentClass value, got %d", rec.Code)
	}
}

func TestServer_PutRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	rec := putACL(handler, "<#s> acl:mode .\n")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed triples, got %d", rec.Code)
	}
}

func TestServer_Delete(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	rec := putACL(handler, "<#owner> rdf:type acl:Authorization .\n")
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodDelete, "/acl/"+testResourcePath, nil)
	req.Header.Set("X-Agent-WebID", testWebID)

	delRec := httptest.NewRecorder()
	handler.ServeHTTP(delRec, req)

	if delRec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", delRec.Code)
	}

	again := httptest.NewRecorder()
	handler.ServeHTTP(again, httptest.NewRequest(http.MethodDelete, "/acl/"+testResourcePath, nil))

	if again.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without auth header, got %d", again.Code)
	}
}

func TestServer_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/acl/"+testResourcePath, nil)
	req.Header.Set("X-Agent-WebID", testWebID)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}
