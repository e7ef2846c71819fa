package core

import (
	"strings"
	"time"
)

type TaskService struct {
	store Storage
}

func NewTaskService(store Storage) *TaskService {
	return &TaskService{store: store}
}

// TaskPatch carries the optional fields of an update. Nil means keep the
// current value.
type TaskPatch struct {
	Description *string
	Priority    *Priority
	DueDate     *time.Time
	Important   *bool
}

// validateListAccess resolves a list and checks the requesting user owns it.
func (s *TaskService) validateListAccess(listID, userID int64) (TaskList, error) {
	list, ok := s.store.FindTaskListByID(listID)
	if !ok {
		return TaskList{}, ErrTaskListNotFound
	}
	if list.UserID != userID {
		return TaskList{}, ErrForbidden
	}
	return list, nil
}

func (s *TaskService) CreateTask(listID, userID int64, title, description string, priority Priority, dueDate *time.Time, important bool) (Task, error) {
	list, err := s.validateListAccess(listID, userID)
	if err != nil {
		return Task{}, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrTaskInvalidArgs
	}

	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return Task{}, ErrTaskInvalidArgs
	}

	now := time.Now()
	return s.store.SaveTask(Task{
		TaskListID:  list.ID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Priority:    priority,
		DueDate:     dueDate,
		Important:   important,
		CreatedAt:   now,
		UpdatedAt:   now,
	}), nil
}

func (s *TaskService) GetTasksByListID(listID, userID int64) ([]Task, error) {
	if _, err := s.validateListAccess(listID, userID); err != nil {
		return nil, err
	}
	return s.store.FindTasksByTaskListID(listID), nil
}

func (s *TaskService) GetPendingTasksByListID(listID, userID int64) ([]Task, error) {
	if _, err := s.validateListAccess(listID, userID); err != nil {
		return nil, err
	}
	return s.store.FindPendingTasksByTaskListID(listID), nil
}

func (s *TaskService) GetCompletedTasksByListID(listID, userID int64) ([]Task, error) {
	if _, err := s.validateListAccess(listID, userID); err != nil {
		return nil, err
	}
	return s.store.FindCompletedTasksByTaskListID(listID), nil
}

func (s *TaskService) GetTaskByID(taskID int64) (Task, error) {
	task, ok := s.store.FindTaskByID(taskID)
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	return task, nil
}

// GetTaskByIDAndUserID checks ownership through the task's list.
func (s *TaskService) GetTaskByIDAndUserID(taskID, userID int64) (Task, error) {
	task, err := s.GetTaskByID(taskID)
	if err != nil {
		return Task{}, err
	}

	list, ok := s.store.FindTaskListByID(task.TaskListID)
	if !ok {
		return Task{}, ErrTaskListNotFound
	}
	if list.UserID != userID {
		return Task{}, ErrForbidden
	}
	return task, nil
}

func (s *TaskService) UpdateTask(taskID, userID int64, title string, patch TaskPatch) (Task, error) {
	task, err := s.GetTaskByIDAndUserID(taskID, userID)
	if err != nil {
		return Task{}, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrTaskInvalidArgs
	}

	task.Title = title
	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return Task{}, ErrTaskInvalidArgs
		}
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.Important != nil {
		task.Important = *patch.Important
	}
	task.UpdatedAt = time.Now()

	return s.store.SaveTask(task), nil
}

// ToggleTaskCompletion flips the completed flag and keeps completedAt in sync:
// set when completing, cleared when reopening.
func (s *TaskService) ToggleTaskCompletion(taskID, userID int64) (Task, error) {
	task, err := s.GetTaskByIDAndUserID(taskID, userID)
	if err != nil {
		return Task{}, err
	}

	now := time.Now()
	task.Completed = !task.Completed
	if task.Completed {
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
	task.UpdatedAt = now

	return s.store.SaveTask(task), nil
}

func (s *TaskService) ToggleTaskImportance(taskID, userID int64) (Task, error) {
	task, err := s.GetTaskByIDAndUserID(taskID, userID)
	if err != nil {
		return Task{}, err
	}

	task.Important = !task.Important
	task.UpdatedAt = time.Now()

	return s.store.SaveTask(task), nil
}

// MoveTaskToList re-points a task at another list. Both the task and the
// destination must belong to the user.
func (s *TaskService) MoveTaskToList(taskID, newListID, userID int64) (Task, error) {
	task, err := s.GetTaskByIDAndUserID(taskID, userID)
	if err != nil {
		return Task{}, err
	}
	newList, err := s.validateListAccess(newListID, userID)
	if err != nil {
		return Task{}, err
	}

	task.TaskListID = newList.ID
	task.UpdatedAt = time.Now()

	return s.store.SaveTask(task), nil
}

// DuplicateTask copies a task into the same list, pending and with a fresh id.
func (s *TaskService) DuplicateTask(taskID, userID int64) (Task, error) {
	original, err := s.GetTaskByIDAndUserID(taskID, userID)
	if err != nil {
		return Task{}, err
	}

	now := time.Now()
	return s.store.SaveTask(Task{
		TaskListID:  original.TaskListID,
		Title:       original.Title + " (Copy)",
		Description: original.Description,
		Priority:    original.Priority,
		DueDate:     original.DueDate,
		Important:   original.Important,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}), nil
}

func (s *TaskService) DeleteTask(taskID, userID int64) error {
	if _, err := s.GetTaskByIDAndUserID(taskID, userID); err != nil {
		return err
	}
	s.store.DeleteTask(taskID)
	return nil
}

func (s *TaskService) GetImportantTasks(userID int64) []Task {
	return s.store.FindImportantTasksByUserID(userID)
}

// GetTasksDueToday filters the important-tasks result by today's window.
// Like the overdue query, this sees only important tasks; kept as-is to match
// the established behavior.
func (s *TaskService) GetTasksDueToday(userID int64) []Task {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	var out []Task
	for _, t := range s.store.FindImportantTasksByUserID(userID) {
		if t.DueDate == nil {
			continue
		}
		if t.DueDate.After(start) && t.DueDate.Before(end) {
			out = append(out, t)
		}
	}
	return out
}

// GetOverdueTasks returns important pending tasks whose due date has passed.
func (s *TaskService) GetOverdueTasks(userID int64) []Task {
	now := time.Now()

	var out []Task
	for _, t := range s.store.FindImportantTasksByUserID(userID) {
		if t.DueDate != nil && t.DueDate.Before(now) {
			out = append(out, t)
		}
	}
	return out
}

func (s *TaskService) GetAllTasksByUserID(userID int64) []Task {
	return s.store.FindAllTasksByUserID(userID)
}

func (s *TaskService) SearchTasksByContent(userID int64, term string) []Task {
	return s.store.SearchTasksByContent(userID, term)
}
