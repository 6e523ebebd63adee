package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"regstub/internal/domain"
)

func openTestManifest(t *testing.T) *Manifest {
	t.Helper()

	m := NewManifest()
	if err := m.Open(t.TempDir()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestOpen_CreatesDatabaseInsideStubBase(t *testing.T) {
	stubBase := t.TempDir()

	m := NewManifest()
	if err := m.Open(stubBase); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer m.Close()

	if _, err := os.Stat(filepath.Join(stubBase, ".regstub", "manifest.db")); err != nil {
		t.Errorf("expected manifest database on disk: %v", err)
	}
}

func TestRecord_AndRecent(t *testing.T) {
	m := openTestManifest(t)

	base := time.Now().Add(-time.Hour)
	records := []domain.FetchRecord{
		{Path: "notice/n1", Regulation: "1026", Notice: "n1", Status: domain.FetchStatusOK, Bytes: 42, FetchedAt: base},
		{Path: "notice/n2", Regulation: "1026", Notice: "n2", Status: domain.FetchStatusFailed, Detail: "error getting notice/n2: 404 Not Found", FetchedAt: base.Add(time.Minute)},
	}
	for _, rec := range records {
		if err := m.Record(rec); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := m.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	// Newest first
	if got[0].Path != "notice/n2" {
		t.Errorf("expected newest record first, got %s", got[0].Path)
	}
	if got[0].Status != domain.FetchStatusFailed {
		t.Errorf("expected failed status, got %s", got[0].Status)
	}
	if got[0].Detail == "" {
		t.Error("expected failure detail preserved")
	}
	if got[1].Bytes != 42 {
		t.Errorf("expected byte count 42, got %d", got[1].Bytes)
	}
}

func TestRecord_UpsertsByPath(t *testing.T) {
	m := openTestManifest(t)

	first := domain.FetchRecord{Path: "notice/n1", Status: domain.FetchStatusFailed, Detail: "404", FetchedAt: time.Now().Add(-time.Minute)}
	second := domain.FetchRecord{Path: "notice/n1", Status: domain.FetchStatusOK, Bytes: 7}

	if err := m.Record(first); err != nil {
		t.Fatalf("first Record failed: %v", err)
	}
	if err := m.Record(second); err != nil {
		t.Fatalf("second Record failed: %v", err)
	}

	got, err := m.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected a single record after re-fetch, got %d", len(got))
	}
	if got[0].Status != domain.FetchStatusOK {
		t.Errorf("expected latest status to win, got %s", got[0].Status)
	}
}

func TestRecord_DefaultsFetchedAt(t *testing.T) {
	m := openTestManifest(t)

	if err := m.Record(domain.FetchRecord{Path: "notice/n1", Status: domain.FetchStatusOK}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := m.Recent(1)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if got[0].FetchedAt.IsZero() {
		t.Error("expected FetchedAt to default to now")
	}
}

func TestByRegulation(t *testing.T) {
	m := openTestManifest(t)

	for _, rec := range []domain.FetchRecord{
		{Path: "notice/n1", Regulation: "1026", Status: domain.FetchStatusOK},
		{Path: "notice/m1", Regulation: "1005", Status: domain.FetchStatusOK},
	} {
		if err := m.Record(rec); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := m.ByRegulation("1026", 10)
	if err != nil {
		t.Fatalf("ByRegulation failed: %v", err)
	}
	if len(got) != 1 || got[0].Path != "notice/n1" {
		t.Errorf("expected only regulation 1026 records, got %v", got)
	}
}

func TestRecent_RespectsLimit(t *testing.T) {
	m := openTestManifest(t)

	for _, p := range []string{"notice/a", "notice/b", "notice/c"} {
		if err := m.Record(domain.FetchRecord{Path: p, Status: domain.FetchStatusOK}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := m.Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 records, got %d", len(got))
	}
}
