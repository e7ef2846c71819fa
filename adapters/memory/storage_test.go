package memory_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-app-backend/adapters/memory"
	"todo-app-backend/core"
)

func ptr[T any](v T) *T { return &v }

func TestSaveUserAssignsMonotonicIDs(t *testing.T) {
	store := memory.New()

	first := store.SaveUser(core.User{Email: "a@example.com"})
	second := store.SaveUser(core.User{Email: "b@example.com"})

	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)

	// saving a record that already has an id must not advance the generator
	store.SaveUser(first)
	third := store.SaveUser(core.User{Email: "c@example.com"})
	require.Equal(t, int64(3), third.ID)
}

func TestConcurrentSavesAssignUniqueIDs(t *testing.T) {
	store := memory.New()

	const n = 200
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := store.SaveUser(core.User{Email: fmt.Sprintf("user%d@example.com", i)})
			ids <- u.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		require.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
	require.Equal(t, int64(n+1), store.Info().NextUserID)
}

func TestFindUserByEmailCaseInsensitive(t *testing.T) {
	store := memory.New()
	store.SaveUser(core.User{Email: "demo@example.com"})

	u, ok := store.FindUserByEmail("DEMO@Example.COM")
	require.True(t, ok)
	assert.Equal(t, "demo@example.com", u.Email)

	assert.True(t, store.ExistsByEmail("Demo@EXAMPLE.com"))
	assert.False(t, store.ExistsByEmail("other@example.com"))
}

func TestSaveTaskRoundTrip(t *testing.T) {
	store := memory.New()
	due := time.Now().Add(24 * time.Hour)

	saved := store.SaveTask(core.Task{
		TaskListID:  7,
		Title:       "round trip",
		Description: "all fields survive",
		Priority:    core.PriorityHigh,
		DueDate:     &due,
		Important:   true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	})
	require.NotZero(t, saved.ID)

	got, ok := store.FindTaskByID(saved.ID)
	require.True(t, ok)
	assert.Equal(t, saved, got)

	// returned records must not alias the stored ones
	*got.DueDate = got.DueDate.Add(time.Hour)
	again, _ := store.FindTaskByID(saved.ID)
	assert.True(t, again.DueDate.Equal(due))
}

func TestFindTasksByTaskListIDNewestFirst(t *testing.T) {
	store := memory.New()
	base := time.Now()

	old := store.SaveTask(core.Task{TaskListID: 1, Title: "old", CreatedAt: base.Add(-2 * time.Hour)})
	newest := store.SaveTask(core.Task{TaskListID: 1, Title: "newest", CreatedAt: base})
	mid := store.SaveTask(core.Task{TaskListID: 1, Title: "mid", CreatedAt: base.Add(-time.Hour)})
	store.SaveTask(core.Task{TaskListID: 2, Title: "other list", CreatedAt: base})

	got := store.FindTasksByTaskListID(1)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{newest.ID, mid.ID, old.ID}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

func TestFindPendingTasksOrderedByDueDate(t *testing.T) {
	store := memory.New()
	base := time.Now()

	noDue1 := store.SaveTask(core.Task{TaskListID: 1, Title: "no due a", CreatedAt: base})
	late := store.SaveTask(core.Task{TaskListID: 1, Title: "late", DueDate: ptr(base.Add(48 * time.Hour)), CreatedAt: base})
	noDue2 := store.SaveTask(core.Task{TaskListID: 1, Title: "no due b", CreatedAt: base})
	soon := store.SaveTask(core.Task{TaskListID: 1, Title: "soon", DueDate: ptr(base.Add(time.Hour)), CreatedAt: base})
	store.SaveTask(core.Task{TaskListID: 1, Title: "done", Completed: true, CreatedAt: base})

	got := store.FindPendingTasksByTaskListID(1)
	require.Len(t, got, 4)
	assert.Equal(t, soon.ID, got[0].ID)
	assert.Equal(t, late.ID, got[1].ID)
	// tasks without a due date keep creation order at the tail
	assert.Equal(t, noDue1.ID, got[2].ID)
	assert.Equal(t, noDue2.ID, got[3].ID)
}

func TestFindCompletedTasksOrderedByCompletedAt(t *testing.T) {
	store := memory.New()
	base := time.Now()

	earlier := store.SaveTask(core.Task{TaskListID: 1, Title: "earlier", Completed: true, CompletedAt: ptr(base.Add(-time.Hour))})
	latest := store.SaveTask(core.Task{TaskListID: 1, Title: "latest", Completed: true, CompletedAt: ptr(base)})
	store.SaveTask(core.Task{TaskListID: 1, Title: "pending"})

	got := store.FindCompletedTasksByTaskListID(1)
	require.Len(t, got, 2)
	assert.Equal(t, latest.ID, got[0].ID)
	assert.Equal(t, earlier.ID, got[1].ID)
}

func TestFindImportantTasksByUserID(t *testing.T) {
	store := memory.New()
	base := time.Now()

	user := store.SaveUser(core.User{Email: "a@example.com", Active: true})
	list := store.SaveTaskList(core.TaskList{UserID: user.ID, Name: "mine", Active: true})
	otherList := store.SaveTaskList(core.TaskList{UserID: user.ID + 99, Name: "theirs", Active: true})

	urgentNoDue := store.SaveTask(core.Task{TaskListID: list.ID, Title: "urgent no due", Important: true, Priority: core.PriorityUrgent})
	lowNoDue := store.SaveTask(core.Task{TaskListID: list.ID, Title: "low no due", Important: true, Priority: core.PriorityLow})
	withDue := store.SaveTask(core.Task{TaskListID: list.ID, Title: "with due", Important: true, Priority: core.PriorityLow, DueDate: ptr(base.Add(time.Hour))})
	store.SaveTask(core.Task{TaskListID: list.ID, Title: "done", Important: true, Completed: true})
	store.SaveTask(core.Task{TaskListID: list.ID, Title: "not important"})
	store.SaveTask(core.Task{TaskListID: otherList.ID, Title: "someone else", Important: true})

	got := store.FindImportantTasksByUserID(user.ID)
	require.Len(t, got, 3)
	// dated tasks first, then undated ordered by priority descending
	assert.Equal(t, withDue.ID, got[0].ID)
	assert.Equal(t, urgentNoDue.ID, got[1].ID)
	assert.Equal(t, lowNoDue.ID, got[2].ID)
}

func TestSearchTasksByContent(t *testing.T) {
	store := memory.New()

	user := store.SaveUser(core.User{Email: "a@example.com"})
	list := store.SaveTaskList(core.TaskList{UserID: user.ID, Name: "mine", Active: true})
	stranger := store.SaveTaskList(core.TaskList{UserID: user.ID + 1, Name: "theirs", Active: true})

	byTitle := store.SaveTask(core.Task{TaskListID: list.ID, Title: "Buy GROCERIES"})
	byDesc := store.SaveTask(core.Task{TaskListID: list.ID, Title: "errand", Description: "pick up groceries later"})
	store.SaveTask(core.Task{TaskListID: list.ID, Title: "unrelated"})
	store.SaveTask(core.Task{TaskListID: stranger.ID, Title: "groceries too"})

	got := store.SearchTasksByContent(user.ID, "GrOcErIeS")
	require.Len(t, got, 2)
	ids := []int64{got[0].ID, got[1].ID}
	assert.Contains(t, ids, byTitle.ID)
	assert.Contains(t, ids, byDesc.ID)
}

func TestFindTaskListsByUserIDSkipsInactive(t *testing.T) {
	store := memory.New()

	active := store.SaveTaskList(core.TaskList{UserID: 1, Name: "active", Active: true})
	inactive := store.SaveTaskList(core.TaskList{UserID: 1, Name: "deleted", Active: false})
	store.SaveTaskList(core.TaskList{UserID: 2, Name: "other user", Active: true})

	got := store.FindTaskListsByUserID(1)
	require.Len(t, got, 1)
	assert.Equal(t, active.ID, got[0].ID)
	assert.Equal(t, 1, store.CountTaskListsByUserID(1))

	// soft-deleted lists stay reachable by id
	_, ok := store.FindTaskListByID(inactive.ID)
	assert.True(t, ok)
}

func TestClearAllResetsGenerators(t *testing.T) {
	store := memory.New()
	store.Seed()

	info := store.Info()
	require.Equal(t, 1, info.TotalUsers)
	require.Equal(t, 1, info.TotalTaskLists)
	require.Equal(t, 3, info.TotalTasks)
	require.Equal(t, int64(2), info.NextUserID)
	require.Equal(t, int64(2), info.NextTaskListID)
	require.Equal(t, int64(4), info.NextTaskID)

	store.ClearAll()

	info = store.Info()
	assert.Zero(t, info.TotalUsers)
	assert.Zero(t, info.TotalTaskLists)
	assert.Zero(t, info.TotalTasks)
	assert.Equal(t, int64(1), info.NextUserID)
	assert.Equal(t, int64(1), info.NextTaskListID)
	assert.Equal(t, int64(1), info.NextTaskID)

	u := store.SaveUser(core.User{Email: "fresh@example.com"})
	assert.Equal(t, int64(1), u.ID)
}
