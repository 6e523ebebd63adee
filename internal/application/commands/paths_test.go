package commands

import (
	"context"
	"strings"
	"testing"
)

func TestListPathsCommand_Validate(t *testing.T) {
	tests := []struct {
		name       string
		regulation string
		wantErr    bool
		errMsg     string
	}{
		{"valid", "1026", false, ""},
		{"empty", "", true, "regulation part is required"},
		{"slash", "a/b", true, "invalid regulation part"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewListPathsCommand(&fakeAPI{}, tt.regulation)
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestListPathsCommand_Execute(t *testing.T) {
	api := &fakeAPI{notices: map[string][]string{"1026": {"n1", "n2"}}}

	cmd := NewListPathsCommand(api, "1026")
	paths, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(paths) != 30 {
		t.Fatalf("expected 30 paths, got %d", len(paths))
	}
	if paths[0].Path != "regulation/1026/n1" {
		t.Errorf("expected regulation path first, got %s", paths[0].Path)
	}

	// Dry run: nothing fetched beyond the notice list
	if len(api.requested) != 0 {
		t.Errorf("expected no document requests, got %d", len(api.requested))
	}
}

func TestListPathsCommand_DiscoveryFailure(t *testing.T) {
	cmd := NewListPathsCommand(&fakeAPI{}, "9999")

	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Fatal("expected error when the regulation endpoint fails")
	}
}
