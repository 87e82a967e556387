package todo

import (
	"log/slog"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/avelis/listkeep/internal/model"
	"github.com/avelis/listkeep/internal/storage"
)

func setupRepo(t *testing.T) (*Repository, *storage.KVStore) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "todo-test.db")
	store, err := storage.OpenKVStore(dbPath, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("open kv store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return NewRepository(store, slog.New(slog.DiscardHandler)), store
}

func TestAddPrependsTrimmedTask(t *testing.T) {
	repo, _ := setupRepo(t)

	if _, ok := repo.Add("first", model.PriorityNormal); !ok {
		t.Fatal("expected first add to succeed")
	}
	ev, ok := repo.Add(" Buy milk ", model.PriorityHigh)
	if !ok {
		t.Fatal("expected second add to succeed")
	}
	if ev.Message != "added: Buy milk" {
		t.Fatalf("unexpected event message: %q", ev.Message)
	}

	tasks := repo.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	first := tasks[0]
	if first.Text != "Buy milk" || first.Done || first.Priority != model.PriorityHigh {
		t.Fatalf("unexpected prepended task: %#v", first)
	}
}

func TestAddEmptyTextLeavesCollectionUnchanged(t *testing.T) {
	repo, store := setupRepo(t)
	repo.Add("existing", model.PriorityNormal)
	before := repo.Tasks()

	if _, ok := repo.Add("   ", model.PriorityHigh); ok {
		t.Fatal("expected empty add to be rejected")
	}
	if !reflect.DeepEqual(before, repo.Tasks()) {
		t.Fatalf("expected collection unchanged, got %#v", repo.Tasks())
	}

	persisted := storage.Get(store, storage.KeyTaskList, []model.Task{})
	if len(persisted) != 1 {
		t.Fatalf("expected 1 persisted task, got %d", len(persisted))
	}
}

func TestIDsStayUniqueAcrossOperationSequences(t *testing.T) {
	repo, _ := setupRepo(t)
	repo.Add("one", model.PriorityLow)
	repo.Add("two", model.PriorityNormal)
	repo.Add("three", model.PriorityHigh)

	tasks := repo.Tasks()
	repo.Remove(tasks[1].ID)
	repo.Add("four", model.PriorityNormal)
	text := "two again"
	repo.Update(tasks[2].ID, model.TaskPatch{Text: &text})

	seen := make(map[string]bool)
	for _, task := range repo.Tasks() {
		if seen[task.ID] {
			t.Fatalf("duplicate id in collection: %q", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestUpdateMergesFieldsAndPersists(t *testing.T) {
	repo, store := setupRepo(t)
	repo.Add("draft report", model.PriorityNormal)
	id := repo.Tasks()[0].ID

	priority := model.PriorityHigh
	ev, ok := repo.Update(id, model.TaskPatch{Priority: &priority})
	if !ok {
		t.Fatal("expected update to succeed")
	}
	if ev.Message != "updated: draft report" {
		t.Fatalf("unexpected event message: %q", ev.Message)
	}

	got, ok := repo.Get(id)
	if !ok || got.Priority != model.PriorityHigh || got.Text != "draft report" {
		t.Fatalf("unexpected task after update: %#v", got)
	}

	persisted := storage.Get(store, storage.KeyTaskList, []model.Task{})
	if persisted[0].Priority != model.PriorityHigh {
		t.Fatalf("expected persisted priority high, got %q", persisted[0].Priority)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	repo, _ := setupRepo(t)
	repo.Add("keep", model.PriorityNormal)
	before := repo.Tasks()

	text := "changed"
	if _, ok := repo.Update("nope", model.TaskPatch{Text: &text}); ok {
		t.Fatal("expected unknown id update to be a no-op")
	}
	if !reflect.DeepEqual(before, repo.Tasks()) {
		t.Fatalf("expected collection unchanged, got %#v", repo.Tasks())
	}
}

func TestRemoveUnknownIDLeavesCollectionIdentical(t *testing.T) {
	repo, _ := setupRepo(t)
	repo.Add("alpha", model.PriorityLow)
	repo.Add("beta", model.PriorityHigh)
	before := repo.Tasks()

	if _, ok := repo.Remove("missing-id"); ok {
		t.Fatal("expected unknown id remove to be a no-op")
	}
	if !reflect.DeepEqual(before, repo.Tasks()) {
		t.Fatalf("expected element-wise identical collection, got %#v", repo.Tasks())
	}
}

func TestRemoveDeletesAndPersists(t *testing.T) {
	repo, store := setupRepo(t)
	repo.Add("doomed", model.PriorityNormal)
	repo.Add("survivor", model.PriorityNormal)
	doomed := repo.Tasks()[1]

	ev, ok := repo.Remove(doomed.ID)
	if !ok {
		t.Fatal("expected remove to succeed")
	}
	if ev.Message != "deleted: doomed" {
		t.Fatalf("unexpected event message: %q", ev.Message)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected 1 remaining task, got %d", repo.Len())
	}

	persisted := storage.Get(store, storage.KeyTaskList, []model.Task{})
	if len(persisted) != 1 || persisted[0].Text != "survivor" {
		t.Fatalf("unexpected persisted tasks: %#v", persisted)
	}
}

func TestToggleDoneTwiceIsInvolution(t *testing.T) {
	repo, _ := setupRepo(t)
	repo.Add("flip me", model.PriorityNormal)
	id := repo.Tasks()[0].ID

	ev, ok := repo.ToggleDone(id)
	if !ok {
		t.Fatal("expected first toggle to succeed")
	}
	if ev.Message != "done: flip me" {
		t.Fatalf("unexpected event message: %q", ev.Message)
	}
	if got, _ := repo.Get(id); !got.Done {
		t.Fatal("expected task done after first toggle")
	}

	ev, ok = repo.ToggleDone(id)
	if !ok {
		t.Fatal("expected second toggle to succeed")
	}
	if ev.Message != "reopened: flip me" {
		t.Fatalf("unexpected event message: %q", ev.Message)
	}
	if got, _ := repo.Get(id); got.Done {
		t.Fatal("expected done back to original value")
	}
}

func TestToggleDoneUnknownIDIsNoOp(t *testing.T) {
	repo, _ := setupRepo(t)
	if _, ok := repo.ToggleDone("ghost"); ok {
		t.Fatal("expected unknown id toggle to be a no-op")
	}
}

func TestRepositoryReloadsFromStore(t *testing.T) {
	repo, store := setupRepo(t)
	repo.Add("persisted", model.PriorityHigh)
	repo.ToggleDone(repo.Tasks()[0].ID)

	reloaded := NewRepository(store, slog.New(slog.DiscardHandler))
	tasks := reloaded.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task after reload, got %d", len(tasks))
	}
	if tasks[0].Text != "persisted" || !tasks[0].Done || tasks[0].Priority != model.PriorityHigh {
		t.Fatalf("unexpected reloaded task: %#v", tasks[0])
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	repo, _ := setupRepo(t)
	repo.Add("original", model.PriorityNormal)

	aliased := repo.Tasks()
	aliased[0].Text = "mutated"

	if got := repo.Tasks()[0].Text; got != "original" {
		t.Fatalf("internal state leaked through Tasks(): %q", got)
	}
}
