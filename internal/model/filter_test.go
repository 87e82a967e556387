package model

import "testing"

func filterFixture() []Task {
	return []Task{
		{ID: "t1", Text: "Buy milk", Done: false, Priority: PriorityHigh},
		{ID: "t2", Text: "Ship release", Done: true, Priority: PriorityNormal},
		{ID: "t3", Text: "Milk the feedback form", Done: false, Priority: PriorityLow},
		{ID: "t4", Text: "Water plants", Done: true, Priority: PriorityLow},
	}
}

func TestVisibleActiveKeepsUndoneInOrder(t *testing.T) {
	got := Visible(filterFixture(), FilterActive, "")
	if len(got) != 2 {
		t.Fatalf("expected 2 active tasks, got %d", len(got))
	}
	if got[0].ID != "t1" || got[1].ID != "t3" {
		t.Fatalf("expected original order t1,t3, got %q,%q", got[0].ID, got[1].ID)
	}
}

func TestVisibleCompletedKeepsDone(t *testing.T) {
	got := Visible(filterFixture(), FilterCompleted, "")
	if len(got) != 2 {
		t.Fatalf("expected 2 completed tasks, got %d", len(got))
	}
	for _, task := range got {
		if !task.Done {
			t.Fatalf("expected only done tasks, got %#v", task)
		}
	}
}

func TestVisibleSearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Visible(filterFixture(), FilterAll, "MILK")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for MILK, got %d", len(got))
	}
	if got[0].ID != "t1" || got[1].ID != "t3" {
		t.Fatalf("unexpected match order: %q,%q", got[0].ID, got[1].ID)
	}
}

func TestVisiblePredicatesAreAnded(t *testing.T) {
	got := Visible(filterFixture(), FilterActive, "milk")
	if len(got) != 2 {
		t.Fatalf("expected 2 active milk matches, got %d", len(got))
	}

	got = Visible(filterFixture(), FilterCompleted, "milk")
	if len(got) != 0 {
		t.Fatalf("expected no completed milk matches, got %d", len(got))
	}
}

func TestVisibleEmptySearchMatchesEverything(t *testing.T) {
	got := Visible(filterFixture(), FilterAll, "")
	if len(got) != 4 {
		t.Fatalf("expected all 4 tasks, got %d", len(got))
	}
}

func TestVisibleUnknownFilterBehavesAsAll(t *testing.T) {
	got := Visible(filterFixture(), StatusFilter("archived"), "")
	if len(got) != 4 {
		t.Fatalf("expected unknown filter to keep everything, got %d", len(got))
	}
}

func TestVisibleDoesNotMutateInput(t *testing.T) {
	in := filterFixture()
	_ = Visible(in, FilterActive, "milk")
	if in[0].ID != "t1" || len(in) != 4 {
		t.Fatalf("input slice mutated: %#v", in)
	}
}
