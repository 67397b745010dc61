package state

import (
	"errors"
	"testing"

	"github.com/Dan9191/unidash/internal/models"
	"github.com/google/go-cmp/cmp"
)

func taskIDs(tasks []models.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

func TestTaskListAdd(t *testing.T) {
	gen := fixedGenerator()
	var list TaskList

	task, err := list.Add(gen, "  Buy milk ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if task.ID != "id-1" || task.Title != "Buy milk" || task.Completed {
		t.Fatalf("unexpected task %+v", task)
	}
	if len(list.Tasks) != 1 || list.Tasks[0] != task {
		t.Fatalf("task not appended: %+v", list.Tasks)
	}

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := list.Add(gen, title); !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("title %q: expected ErrEmptyTitle, got %v", title, err)
		}
	}
	if len(list.Tasks) != 1 {
		t.Fatalf("rejected titles must not be stored, have %d tasks", len(list.Tasks))
	}
}

func TestTaskListToggleTwiceRestores(t *testing.T) {
	gen := fixedGenerator()
	var list TaskList
	a, _ := list.Add(gen, "a")
	_, _ = list.Add(gen, "b")
	before := append([]models.Task(nil), list.Tasks...)

	toggled, ok := list.Toggle(a.ID)
	if !ok || !toggled.Completed {
		t.Fatalf("first toggle: %+v ok=%v", toggled, ok)
	}
	if _, ok := list.Toggle(a.ID); !ok {
		t.Fatal("second toggle failed")
	}
	if diff := cmp.Diff(before, list.Tasks); diff != "" {
		t.Fatalf("double toggle changed state (-want +got):\n%s", diff)
	}

	if _, ok := list.Toggle("missing"); ok {
		t.Fatal("toggle of missing id must report false")
	}
}

func TestTaskListDelete(t *testing.T) {
	gen := fixedGenerator()
	var list TaskList
	a, _ := list.Add(gen, "a")
	b, _ := list.Add(gen, "b")
	c, _ := list.Add(gen, "c")

	if list.Delete("missing") {
		t.Fatal("delete of missing id must report false")
	}
	if len(list.Tasks) != 3 {
		t.Fatalf("delete of missing id changed length to %d", len(list.Tasks))
	}

	if !list.Delete(b.ID) {
		t.Fatal("expected delete to succeed")
	}
	if diff := cmp.Diff([]string{a.ID, c.ID}, taskIDs(list.Tasks)); diff != "" {
		t.Fatalf("unexpected remaining tasks (-want +got):\n%s", diff)
	}
}

func TestTaskListDeleteDoesNotAliasCallerSlice(t *testing.T) {
	gen := fixedGenerator()
	var list TaskList
	_, _ = list.Add(gen, "a")
	b, _ := list.Add(gen, "b")
	_, _ = list.Add(gen, "c")
	snapshot := list.Tasks

	list.Delete(b.ID)
	if snapshot[1].ID != b.ID {
		t.Fatalf("delete mutated a previously returned slice: %v", taskIDs(snapshot))
	}
}

func TestTaskListReorder(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{name: "full permutation", ids: []string{"id-3", "id-1", "id-2"}, want: []string{"id-3", "id-1", "id-2"}},
		{name: "partial keeps rest", ids: []string{"id-2"}, want: []string{"id-2", "id-1", "id-3"}},
		{name: "unknown ignored", ids: []string{"nope", "id-3"}, want: []string{"id-3", "id-1", "id-2"}},
		{name: "duplicates ignored", ids: []string{"id-2", "id-2", "id-1"}, want: []string{"id-2", "id-1", "id-3"}},
		{name: "empty is identity", ids: nil, want: []string{"id-1", "id-2", "id-3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := fixedGenerator()
			var list TaskList
			for _, title := range []string{"a", "b", "c"} {
				if _, err := list.Add(gen, title); err != nil {
					t.Fatalf("add: %v", err)
				}
			}
			list.Reorder(tt.ids)
			if diff := cmp.Diff(tt.want, taskIDs(list.Tasks)); diff != "" {
				t.Fatalf("unexpected order (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTaskListFilter(t *testing.T) {
	gen := fixedGenerator()
	var list TaskList
	_, _ = list.Add(gen, "Write report")
	b, _ := list.Add(gen, "Read book")
	_, _ = list.Add(gen, "write tests")
	list.Toggle(b.ID)

	tests := []struct {
		query, filter string
		want          []string
	}{
		{"", "", []string{"id-1", "id-2", "id-3"}},
		{"WRITE", "all", []string{"id-1", "id-3"}},
		{"", "completed", []string{"id-2"}},
		{"", "pending", []string{"id-1", "id-3"}},
		{"read", "pending", []string{}},
	}
	for _, tt := range tests {
		got, err := list.Filter(tt.query, tt.filter)
		if err != nil {
			t.Fatalf("filter(%q,%q): %v", tt.query, tt.filter, err)
		}
		if diff := cmp.Diff(tt.want, taskIDs(got)); diff != "" {
			t.Fatalf("filter(%q,%q) (-want +got):\n%s", tt.query, tt.filter, diff)
		}
	}

	if _, err := list.Filter("", "archived"); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestTaskListPendingAndTop(t *testing.T) {
	gen := fixedGenerator()
	var list TaskList
	for i := 0; i < 7; i++ {
		if _, err := list.Add(gen, "task"); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	list.Toggle("id-1")
	if got := list.Pending(); got != 6 {
		t.Fatalf("expected 6 pending, got %d", got)
	}
	top := list.Top(MiniListSize)
	if diff := cmp.Diff([]string{"id-1", "id-2", "id-3", "id-4", "id-5"}, taskIDs(top)); diff != "" {
		t.Fatalf("unexpected top (-want +got):\n%s", diff)
	}
	if got := (&TaskList{}).Top(MiniListSize); len(got) != 0 {
		t.Fatalf("expected empty top for empty list, got %v", got)
	}
}
