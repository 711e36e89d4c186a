package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadUpdatesFile(t *testing.T) {
	t.Run("ordered updates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "updates.yaml")
		content := `
updates:
  - field: Status
    value: Done
  - field: Iteration
    value: "[0]"
  - field: Estimate
    value: "8"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		request, err := readUpdatesFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(request) != 3 {
			t.Fatalf("expected 3 pairs, got %d", len(request))
		}
		if request[0].Name != "Status" || request[0].Value != "Done" {
			t.Errorf("unexpected first pair: %+v", request[0])
		}
		if request[1].Value != "[0]" {
			t.Errorf("unexpected second pair: %+v", request[1])
		}
		if request[2].Name != "Estimate" || request[2].Value != "8" {
			t.Errorf("unexpected third pair: %+v", request[2])
		}
	})

	t.Run("entries without a field name are dropped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "updates.yaml")
		content := `
updates:
  - field: Status
    value: Done
  - value: orphaned
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		request, err := readUpdatesFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(request) != 1 {
			t.Errorf("expected 1 pair, got %d: %+v", len(request), request)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := readUpdatesFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "updates.yaml")
		if err := os.WriteFile(path, []byte("updates: ["), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := readUpdatesFile(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestSplitRepo(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		owner, repo, err := splitRepo("my-org/api")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if owner != "my-org" || repo != "api" {
			t.Errorf("got %q/%q", owner, repo)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{"api", "my-org/", "/api", ""} {
			if _, _, err := splitRepo(raw); err == nil {
				t.Errorf("expected error for %q", raw)
			}
		}
	})
}
