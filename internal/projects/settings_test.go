package projects

import "testing"

func TestNewField(t *testing.T) {
	t.Run("no settings means scalar", func(t *testing.T) {
		for _, raw := range []string{"", "null", "  "} {
			field, err := NewField("F1", "Estimate", raw)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", raw, err)
			}
			if field.Kind != KindScalar {
				t.Errorf("got kind %q for %q, want scalar", field.Kind, raw)
			}
		}
	})

	t.Run("options payload", func(t *testing.T) {
		raw := `{"options":[{"id":"O1","name":"Todo"},{"id":"O2","name":"Done"}]}`
		field, err := NewField("F1", "Status", raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if field.Kind != KindSingleSelect {
			t.Fatalf("got kind %q, want single_select", field.Kind)
		}
		if len(field.Options) != 2 || field.Options[0].ID != "O1" || field.Options[1].Name != "Done" {
			t.Errorf("unexpected options: %+v", field.Options)
		}
	})

	t.Run("iteration configuration payload", func(t *testing.T) {
		raw := `{
			"configuration": {
				"iterations": [{"id":"I9","title":"Sprint 5"}],
				"completed_iterations": [{"id":"I8","title":"Sprint 4"}]
			}
		}`
		field, err := NewField("F2", "Iteration", raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if field.Kind != KindIteration {
			t.Fatalf("got kind %q, want iteration", field.Kind)
		}
		if len(field.Iterations) != 1 || field.Iterations[0].ID != "I9" {
			t.Errorf("unexpected iterations: %+v", field.Iterations)
		}
		if len(field.CompletedIterations) != 1 || field.CompletedIterations[0].Title != "Sprint 4" {
			t.Errorf("unexpected completed iterations: %+v", field.CompletedIterations)
		}
	})

	t.Run("settings without options or iterations stay scalar", func(t *testing.T) {
		field, err := NewField("F3", "Title", `{"width": 320}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if field.Kind != KindScalar {
			t.Errorf("got kind %q, want scalar", field.Kind)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		if _, err := NewField("F1", "Status", `{"options":`); err == nil {
			t.Error("expected parse error")
		}
	})
}
