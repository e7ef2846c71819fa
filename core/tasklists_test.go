package core_test

import (
	"errors"
	"testing"

	"todo-app-backend/core"
)

func TestCreateTaskList_UserNotFound(t *testing.T) {
	t.Parallel()

	_, _, lists, _ := newServices()

	if _, err := lists.CreateTaskList(99, "Groceries", "", ""); !errors.Is(err, core.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateTaskList_EmptyName(t *testing.T) {
	t.Parallel()

	_, users, lists, _ := newServices()
	user := mustCreateUser(t, users, "a@x.com")

	if _, err := lists.CreateTaskList(user.ID, "   ", "", ""); !errors.Is(err, core.ErrTaskListInvalidArgs) {
		t.Fatalf("expected ErrTaskListInvalidArgs, got %v", err)
	}
}

func TestCreateTaskList_ColorFallback(t *testing.T) {
	t.Parallel()

	_, users, lists, _ := newServices()
	user := mustCreateUser(t, users, "a@x.com")

	for _, color := range []string{"", "red", "#12345", "#GGGGGG"} {
		list, err := lists.CreateTaskList(user.ID, "Groceries", "", color)
		if err != nil {
			t.Fatalf("color %q: CreateTaskList returned error: %v", color, err)
		}
		if list.Color != "#007ACC" {
			t.Fatalf("color %q: expected fallback to default, got %q", color, list.Color)
		}
	}

	list, err := lists.CreateTaskList(user.ID, "Colored", "", "#AbCdEf")
	if err != nil {
		t.Fatalf("CreateTaskList returned error: %v", err)
	}
	if list.Color != "#AbCdEf" {
		t.Fatalf("expected valid color to be kept, got %q", list.Color)
	}
}

func TestGetTaskListByIDAndUserID_Forbidden(t *testing.T) {
	t.Parallel()

	_, users, lists, _ := newServices()
	owner := mustCreateUser(t, users, "owner@x.com")
	intruder := mustCreateUser(t, users, "intruder@x.com")
	list := mustCreateList(t, lists, owner.ID, "Private")

	if _, err := lists.GetTaskListByIDAndUserID(list.ID, intruder.ID); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := lists.GetTaskListByIDAndUserID(999, owner.ID); !errors.Is(err, core.ErrTaskListNotFound) {
		t.Fatalf("expected ErrTaskListNotFound, got %v", err)
	}
}

func TestUpdateTaskList_RejectsInvalidColor(t *testing.T) {
	t.Parallel()

	_, users, lists, _ := newServices()
	user := mustCreateUser(t, users, "a@x.com")
	list := mustCreateList(t, lists, user.ID, "Groceries")

	bad := "not-a-color"
	if _, err := lists.UpdateTaskList(list.ID, user.ID, "Groceries", "", &bad); !errors.Is(err, core.ErrTaskListInvalidArgs) {
		t.Fatalf("expected ErrTaskListInvalidArgs, got %v", err)
	}

	// nil color keeps the current one
	updated, err := lists.UpdateTaskList(list.ID, user.ID, "Renamed", "new description", nil)
	if err != nil {
		t.Fatalf("UpdateTaskList returned error: %v", err)
	}
	if updated.Color != list.Color {
		t.Fatalf("expected color %q to be kept, got %q", list.Color, updated.Color)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
}

func TestDeleteTaskList_LastListConflict(t *testing.T) {
	t.Parallel()

	store, users, lists, _ := newServices()
	user := mustCreateUser(t, users, "a@x.com")

	defaults := store.FindTaskListsByUserID(user.ID)
	if len(defaults) != 1 {
		t.Fatalf("expected exactly the default list, got %d", len(defaults))
	}
	defaultList := defaults[0]

	if err := lists.DeleteTaskList(defaultList.ID, user.ID); !errors.Is(err, core.ErrLastTaskList) {
		t.Fatalf("expected ErrLastTaskList, got %v", err)
	}

	second := mustCreateList(t, lists, user.ID, "Second")
	if err := lists.DeleteTaskList(defaultList.ID, user.ID); err != nil {
		t.Fatalf("DeleteTaskList returned error: %v", err)
	}

	remaining := store.FindTaskListsByUserID(user.ID)
	if len(remaining) != 1 || remaining[0].ID != second.ID {
		t.Fatalf("expected only the second list to remain active")
	}
	// soft delete: record still there, inactive
	deleted, ok := store.FindTaskListByID(defaultList.ID)
	if !ok {
		t.Fatalf("expected soft-deleted list to remain stored")
	}
	if deleted.Active {
		t.Fatalf("expected active flag to be false")
	}
}

func TestGetTaskListStats(t *testing.T) {
	t.Parallel()

	_, users, lists, tasks := newServices()
	user := mustCreateUser(t, users, "a@x.com")
	list := mustCreateList(t, lists, user.ID, "Work")

	stats, err := lists.GetTaskListStats(list.ID, user.ID)
	if err != nil {
		t.Fatalf("GetTaskListStats returned error: %v", err)
	}
	if stats.TotalTasks != 0 || stats.CompletionPercentage != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}

	for i := 0; i < 4; i++ {
		mustCreateTask(t, tasks, list.ID, user.ID, "task")
	}
	done := mustCreateTask(t, tasks, list.ID, user.ID, "will complete")
	if _, err := tasks.ToggleTaskCompletion(done.ID, user.ID); err != nil {
		t.Fatalf("ToggleTaskCompletion returned error: %v", err)
	}

	stats, err = lists.GetTaskListStats(list.ID, user.ID)
	if err != nil {
		t.Fatalf("GetTaskListStats returned error: %v", err)
	}
	if stats.TotalTasks != 5 || stats.CompletedTasks != 1 || stats.PendingTasks != 4 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.CompletionPercentage != 20 {
		t.Fatalf("expected 20%% completion, got %v", stats.CompletionPercentage)
	}
}

func TestDuplicateTaskList(t *testing.T) {
	t.Parallel()

	store, users, lists, tasks := newServices()
	user := mustCreateUser(t, users, "a@x.com")
	list, err := lists.CreateTaskList(user.ID, "Original", "weekly errands", "#336699")
	if err != nil {
		t.Fatalf("CreateTaskList returned error: %v", err)
	}

	first := mustCreateTask(t, tasks, list.ID, user.ID, "first")
	second := mustCreateTask(t, tasks, list.ID, user.ID, "second")
	if _, err := tasks.ToggleTaskCompletion(first.ID, user.ID); err != nil {
		t.Fatalf("ToggleTaskCompletion returned error: %v", err)
	}

	copyList, err := lists.DuplicateTaskList(list.ID, user.ID, "")
	if err != nil {
		t.Fatalf("DuplicateTaskList returned error: %v", err)
	}
	if copyList.Name != "Original (Copy)" {
		t.Fatalf("expected default copy name, got %q", copyList.Name)
	}
	if copyList.Description != "weekly errands" || copyList.Color != "#336699" {
		t.Fatalf("expected description and color to be copied, got %+v", copyList)
	}

	copies := store.FindTasksByTaskListID(copyList.ID)
	if len(copies) != 2 {
		t.Fatalf("expected 2 copied tasks, got %d", len(copies))
	}
	for _, task := range copies {
		if task.Completed {
			t.Fatalf("expected copied task %q to be pending", task.Title)
		}
		if task.ID == first.ID || task.ID == second.ID {
			t.Fatalf("expected copies to get fresh ids")
		}
	}

	named, err := lists.DuplicateTaskList(list.ID, user.ID, "Renamed Copy")
	if err != nil {
		t.Fatalf("DuplicateTaskList returned error: %v", err)
	}
	if named.Name != "Renamed Copy" {
		t.Fatalf("expected custom name, got %q", named.Name)
	}
}
