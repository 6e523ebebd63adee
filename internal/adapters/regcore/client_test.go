package regcore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"regstub/internal/application"
)

const djangoErrorPage = `<!DOCTYPE html>
<html>
<body>
<div id="summary">
  <h1>DoesNotExist at /notice/missing</h1>
  <pre class="exception_value">Notice matching query does not exist.</pre>
</div>
<div id="traceback">irrelevant</div>
</body>
</html>`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/regulation/1026", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"versions": [{"version": "n1", "by_date": "2011-12-22"}, {"version": "n2"}]}`))
	})
	mux.HandleFunc("/notice/n1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"a": 1}`))
	})
	mux.HandleFunc("/notice/missing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(djangoErrorPage))
	})
	mux.HandleFunc("/notice/plain", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})
	mux.HandleFunc("/notice/garbage", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		apiBase string
		wantErr bool
	}{
		{"valid base", "http://example.com/api/", false},
		{"base without trailing slash", "http://example.com/api", false},
		{"empty base", "", true},
		{"whitespace base", "   ", true},
		{"relative base", "example.com/api", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.apiBase)
			if tt.wantErr && err == nil {
				t.Errorf("expected error for %q, got nil", tt.apiBase)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for %q: %v", tt.apiBase, err)
			}
		})
	}
}

func TestNewClient_EmptyBaseIsSentinel(t *testing.T) {
	_, err := NewClient("")
	if !errors.Is(err, application.ErrMissingAPIBase) {
		t.Errorf("expected ErrMissingAPIBase, got %v", err)
	}
}

func TestClient_Notices(t *testing.T) {
	srv := newTestServer(t)
	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	notices, err := client.Notices(context.Background(), "1026")
	if err != nil {
		t.Fatalf("Notices failed: %v", err)
	}

	want := []string{"n1", "n2"}
	if !reflect.DeepEqual(notices, want) {
		t.Errorf("Notices = %v, want %v", notices, want)
	}
}

func TestClient_Notices_UnknownRegulation(t *testing.T) {
	srv := newTestServer(t)
	client, _ := NewClient(srv.URL)

	_, err := client.Notices(context.Background(), "9999")
	if err == nil {
		t.Fatal("expected error for unknown regulation")
	}

	var ferr *application.FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
	if ferr.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", ferr.Status)
	}
}

func TestClient_Document(t *testing.T) {
	srv := newTestServer(t)
	client, _ := NewClient(srv.URL)

	doc, err := client.Document(context.Background(), "notice/n1")
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}

	m, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("expected object document, got %T", doc)
	}
	if m["a"] != float64(1) {
		t.Errorf(`expected {"a": 1}, got %v`, m)
	}
}

func TestClient_Document_DjangoErrorPage(t *testing.T) {
	srv := newTestServer(t)
	client, _ := NewClient(srv.URL)

	_, err := client.Document(context.Background(), "notice/missing")

	var ferr *application.FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
	if ferr.Title != "DoesNotExist at /notice/missing" {
		t.Errorf("unexpected title: %q", ferr.Title)
	}
	if ferr.Detail != "Notice matching query does not exist." {
		t.Errorf("unexpected detail: %q", ferr.Detail)
	}
}

func TestClient_Document_PlainErrorFallsBackToStatus(t *testing.T) {
	srv := newTestServer(t)
	client, _ := NewClient(srv.URL)

	_, err := client.Document(context.Background(), "notice/plain")

	var ferr *application.FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
	if ferr.Title != "" {
		t.Errorf("expected no scraped title for a plain error body, got %q", ferr.Title)
	}
	if ferr.Status != http.StatusNotFound || ferr.StatusText != "Not Found" {
		t.Errorf("expected 404 Not Found, got %d %s", ferr.Status, ferr.StatusText)
	}
}

func TestClient_Document_InvalidJSON(t *testing.T) {
	srv := newTestServer(t)
	client, _ := NewClient(srv.URL)

	if _, err := client.Document(context.Background(), "notice/garbage"); err == nil {
		t.Fatal("expected error for a 200 response that is not JSON")
	}
}

func TestClient_ResolvePreservesBasePath(t *testing.T) {
	client, err := NewClient("http://example.com/api/v1")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	got := client.resolve("regulation/1026")
	want := "http://example.com/api/v1/regulation/1026"
	if got != want {
		t.Errorf("resolve = %s, want %s", got, want)
	}
}
