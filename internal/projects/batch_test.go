package projects

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type updateCall struct {
	projectID string
	itemID    string
	fieldID   string
	value     string
}

// fakeUpdater records update calls and fails the field ids listed in
// fail.
type fakeUpdater struct {
	calls []updateCall
	fail  map[string]error
}

func (f *fakeUpdater) UpdateField(_ context.Context, projectID, itemID, fieldID, value string) (string, error) {
	f.calls = append(f.calls, updateCall{projectID, itemID, fieldID, value})
	if err, ok := f.fail[fieldID]; ok {
		return "", err
	}
	return "ITEM1", nil
}

func schemaFields() []Field {
	return []Field{
		optionField(),    // F1 "Status": Todo/In Progress/Done
		iterationField(), // F2 "Iteration": Sprint 5, Sprint 6 (+ completed)
		{ID: "F3", Name: "Estimate", Kind: KindScalar},
	}
}

func TestApplyAll(t *testing.T) {
	ctx := context.Background()

	t.Run("option and iteration scenario", func(t *testing.T) {
		updater := &fakeUpdater{}
		request := ParseLists("Status,Iteration", "Todo,[0]")

		outcomes := ApplyAll(ctx, updater, "P1", "ITEM1", schemaFields(), request)
		if len(outcomes) != 2 {
			t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
		}

		first := outcomes[0]
		if first.Status != StatusUpdated || first.FieldID != "F1" || first.ResolvedValue != "O1" {
			t.Errorf("unexpected first outcome: %+v", first)
		}
		second := outcomes[1]
		if second.Status != StatusUpdated || second.FieldID != "F2" || second.ResolvedValue != "I9" {
			t.Errorf("unexpected second outcome: %+v", second)
		}
		if len(updater.calls) != 2 {
			t.Fatalf("expected 2 update calls, got %d", len(updater.calls))
		}
		if updater.calls[0].value != "O1" || updater.calls[1].value != "I9" {
			t.Errorf("unexpected resolved values sent: %+v", updater.calls)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		updater := &fakeUpdater{}
		outcomes := ApplyAll(ctx, updater, "P1", "ITEM1", schemaFields(), Request{{Name: "Unknown", Value: "x"}})

		if len(outcomes) != 1 {
			t.Fatalf("expected 1 outcome, got %d", len(outcomes))
		}
		if outcomes[0].Status != StatusFieldNotFound {
			t.Errorf("got status %q, want %q", outcomes[0].Status, StatusFieldNotFound)
		}
		if outcomes[0].FieldName != "Unknown" {
			t.Errorf("got field name %q, want %q", outcomes[0].FieldName, "Unknown")
		}
		if len(updater.calls) != 0 {
			t.Errorf("expected no update calls, got %d", len(updater.calls))
		}
	})

	t.Run("resolution miss skips the update", func(t *testing.T) {
		updater := &fakeUpdater{}
		outcomes := ApplyAll(ctx, updater, "P1", "ITEM1", schemaFields(), Request{{Name: "Status", Value: "Blocked"}})

		if outcomes[0].Status != StatusValueNotFound {
			t.Errorf("got status %q, want %q", outcomes[0].Status, StatusValueNotFound)
		}
		var resErr *ResolutionError
		if !errors.As(outcomes[0].Err, &resErr) {
			t.Errorf("expected ResolutionError, got %v", outcomes[0].Err)
		}
		if len(updater.calls) != 0 {
			t.Errorf("raw value must not be sent for typed fields, got calls %+v", updater.calls)
		}
	})

	t.Run("failures never abort the batch", func(t *testing.T) {
		updater := &fakeUpdater{fail: map[string]error{"F1": fmt.Errorf("boom")}}
		request := ParseLists("Unknown,Status,Estimate", "x,Done,8")

		outcomes := ApplyAll(ctx, updater, "P1", "ITEM1", schemaFields(), request)
		if len(outcomes) != 3 {
			t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
		}

		want := []Status{StatusFieldNotFound, StatusUpdateFailed, StatusUpdated}
		for i, status := range want {
			if outcomes[i].Status != status {
				t.Errorf("outcome %d: got %q, want %q", i, outcomes[i].Status, status)
			}
		}
		if outcomes[1].ErrorDetail == "" {
			t.Error("expected error detail on failed update")
		}
		// The scalar update still went through after the failure.
		if outcomes[2].ResolvedValue != "8" || outcomes[2].ResultID != "ITEM1" {
			t.Errorf("unexpected scalar outcome: %+v", outcomes[2])
		}
	})

	t.Run("one outcome per pair in input order", func(t *testing.T) {
		updater := &fakeUpdater{}
		request := ParseLists("Estimate,Status,Estimate", "1,Todo,2")

		outcomes := ApplyAll(ctx, updater, "P1", "ITEM1", schemaFields(), request)
		if len(outcomes) != 3 {
			t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
		}
		for i, pair := range request {
			if outcomes[i].FieldName != pair.Name || outcomes[i].RawValue != pair.Value {
				t.Errorf("outcome %d out of order: %+v vs pair %+v", i, outcomes[i], pair)
			}
		}
	})
}

func TestUpdated(t *testing.T) {
	outcomes := []Outcome{
		{Status: StatusUpdated},
		{Status: StatusFieldNotFound},
		{Status: StatusUpdated},
		{Status: StatusUpdateFailed},
	}
	if count := Updated(outcomes); count != 2 {
		t.Errorf("got %d, want 2", count)
	}
}
