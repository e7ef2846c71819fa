package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"todo-app-backend/core"
)

// Storage keeps all records in three independent map collections guarded by a
// single RWMutex. Identifier assignment happens under the write lock, so
// assign-then-insert is one atomic step per entity kind.
type Storage struct {
	mu sync.RWMutex

	nextUserID     int64
	nextTaskListID int64
	nextTaskID     int64

	users     map[int64]core.User
	taskLists map[int64]core.TaskList
	tasks     map[int64]core.Task
}

func New() *Storage {
	return &Storage{
		nextUserID:     1,
		nextTaskListID: 1,
		nextTaskID:     1,
		users:          make(map[int64]core.User),
		taskLists:      make(map[int64]core.TaskList),
		tasks:          make(map[int64]core.Task),
	}
}

// cloneTask copies the pointer fields so callers never share memory with the
// stored record.
func cloneTask(t core.Task) core.Task {
	out := t
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	if t.CompletedAt != nil {
		done := *t.CompletedAt
		out.CompletedAt = &done
	}
	return out
}

// Users

func (s *Storage) SaveUser(u core.User) core.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == 0 {
		u.ID = s.nextUserID
		s.nextUserID++
	}
	s.users[u.ID] = u
	return u
}

func (s *Storage) FindUserByID(id int64) (core.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok
}

func (s *Storage) FindUserByEmail(email string) (core.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return core.User{}, false
}

func (s *Storage) ExistsByEmail(email string) bool {
	_, ok := s.FindUserByEmail(email)
	return ok
}

func (s *Storage) FindAllActiveUsers() []core.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.User, 0, len(s.users))
	for _, u := range s.users {
		if u.Active {
			out = append(out, u)
		}
	}
	sortByID(out, func(u core.User) int64 { return u.ID })
	return out
}

func (s *Storage) CountActiveUsers() int {
	return len(s.FindAllActiveUsers())
}

func (s *Storage) DeleteUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, id)
}

// Task lists

func (s *Storage) SaveTaskList(l core.TaskList) core.TaskList {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l.ID == 0 {
		l.ID = s.nextTaskListID
		s.nextTaskListID++
	}
	s.taskLists[l.ID] = l
	return l
}

func (s *Storage) FindTaskListByID(id int64) (core.TaskList, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.taskLists[id]
	return l, ok
}

func (s *Storage) FindTaskListsByUserID(userID int64) []core.TaskList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.TaskList
	for _, l := range s.taskLists {
		if l.UserID == userID && l.Active {
			out = append(out, l)
		}
	}
	sortByID(out, func(l core.TaskList) int64 { return l.ID })
	return out
}

func (s *Storage) CountTaskListsByUserID(userID int64) int {
	return len(s.FindTaskListsByUserID(userID))
}

func (s *Storage) DeleteTaskList(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.taskLists, id)
}

// Tasks

func (s *Storage) SaveTask(t core.Task) core.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == 0 {
		t.ID = s.nextTaskID
		s.nextTaskID++
	}
	s.tasks[t.ID] = cloneTask(t)
	return cloneTask(t)
}

func (s *Storage) FindTaskByID(id int64) (core.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return core.Task{}, false
	}
	return cloneTask(t), true
}

// collectTasks gathers matching tasks in insertion (id) order so the
// comparator sorts see a deterministic input and stable sorts preserve
// creation order among ties.
func (s *Storage) collectTasks(match func(core.Task) bool) []core.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Task
	for _, t := range s.tasks {
		if match(t) {
			out = append(out, cloneTask(t))
		}
	}
	sortByID(out, func(t core.Task) int64 { return t.ID })
	return out
}

// userListIDs resolves the ownership chain task -> list -> user. Inactive
// lists still belong to their owner, so the active flag is not consulted.
func (s *Storage) userListIDs(userID int64) map[int64]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make(map[int64]struct{})
	for _, l := range s.taskLists {
		if l.UserID == userID {
			ids[l.ID] = struct{}{}
		}
	}
	return ids
}

func (s *Storage) FindTasksByTaskListID(listID int64) []core.Task {
	out := s.collectTasks(func(t core.Task) bool {
		return t.TaskListID == listID
	})
	sortByCreatedDesc(out)
	return out
}

func (s *Storage) FindPendingTasksByTaskListID(listID int64) []core.Task {
	out := s.collectTasks(func(t core.Task) bool {
		return t.TaskListID == listID && !t.Completed
	})
	sort.SliceStable(out, func(i, j int) bool {
		return dueDateBefore(out[i].DueDate, out[j].DueDate)
	})
	return out
}

func (s *Storage) FindCompletedTasksByTaskListID(listID int64) []core.Task {
	out := s.collectTasks(func(t core.Task) bool {
		return t.TaskListID == listID && t.Completed
	})
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CompletedAt, out[j].CompletedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return out
}

func (s *Storage) FindImportantTasksByUserID(userID int64) []core.Task {
	lists := s.userListIDs(userID)
	out := s.collectTasks(func(t core.Task) bool {
		_, owned := lists[t.TaskListID]
		return owned && t.Important && !t.Completed
	})
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DueDate, out[j].DueDate
		if a == nil && b == nil {
			return out[i].Priority.Rank() > out[j].Priority.Rank()
		}
		return dueDateBefore(a, b)
	})
	return out
}

func (s *Storage) FindAllTasksByUserID(userID int64) []core.Task {
	lists := s.userListIDs(userID)
	out := s.collectTasks(func(t core.Task) bool {
		_, owned := lists[t.TaskListID]
		return owned
	})
	sortByCreatedDesc(out)
	return out
}

func (s *Storage) SearchTasksByContent(userID int64, term string) []core.Task {
	lists := s.userListIDs(userID)
	needle := strings.ToLower(term)
	out := s.collectTasks(func(t core.Task) bool {
		if _, owned := lists[t.TaskListID]; !owned {
			return false
		}
		return strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle)
	})
	sortByCreatedDesc(out)
	return out
}

func (s *Storage) DeleteTask(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tasks, id)
}

// Operational

func (s *Storage) Info() core.StorageInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return core.StorageInfo{
		TotalUsers:     len(s.users),
		TotalTaskLists: len(s.taskLists),
		TotalTasks:     len(s.tasks),
		NextUserID:     s.nextUserID,
		NextTaskListID: s.nextTaskListID,
		NextTaskID:     s.nextTaskID,
	}
}

// ClearAll empties every collection and resets the generators, atomically with
// respect to concurrent readers.
func (s *Storage) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[int64]core.User)
	s.taskLists = make(map[int64]core.TaskList)
	s.tasks = make(map[int64]core.Task)
	s.nextUserID = 1
	s.nextTaskListID = 1
	s.nextTaskID = 1
}

// sort helpers

func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool {
		return id(items[i]) < id(items[j])
	})
}

func sortByCreatedDesc(tasks []core.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID > b.ID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// dueDateBefore orders by due date ascending with missing dates after all
// present ones.
func dueDateBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}
