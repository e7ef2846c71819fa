package core

import (
	"regexp"
	"strings"
	"time"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func isValidHexColor(color string) bool {
	return hexColorPattern.MatchString(color)
}

type TaskListService struct {
	store Storage
}

func NewTaskListService(store Storage) *TaskListService {
	return &TaskListService{store: store}
}

// CreateTaskList creates a list for an existing user. A missing or invalid
// color silently falls back to the default instead of failing the creation.
func (s *TaskListService) CreateTaskList(userID int64, name, description, color string) (TaskList, error) {
	if _, ok := s.store.FindUserByID(userID); !ok {
		return TaskList{}, ErrUserNotFound
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return TaskList{}, ErrTaskListInvalidArgs
	}

	if !isValidHexColor(color) {
		color = defaultListColor
	}

	now := time.Now()
	return s.store.SaveTaskList(TaskList{
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Color:       color,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}), nil
}

func (s *TaskListService) GetTaskListsByUserID(userID int64) ([]TaskList, error) {
	if _, ok := s.store.FindUserByID(userID); !ok {
		return nil, ErrUserNotFound
	}
	return s.store.FindTaskListsByUserID(userID), nil
}

func (s *TaskListService) GetTaskListByID(id int64) (TaskList, error) {
	list, ok := s.store.FindTaskListByID(id)
	if !ok {
		return TaskList{}, ErrTaskListNotFound
	}
	return list, nil
}

// GetTaskListByIDAndUserID walks the ownership chain: the list must exist and
// belong to the given user.
func (s *TaskListService) GetTaskListByIDAndUserID(listID, userID int64) (TaskList, error) {
	list, err := s.GetTaskListByID(listID)
	if err != nil {
		return TaskList{}, err
	}
	if list.UserID != userID {
		return TaskList{}, ErrForbidden
	}
	return list, nil
}

// UpdateTaskList replaces name and description. Unlike creation, an explicitly
// supplied invalid color is rejected; a nil color keeps the current one.
func (s *TaskListService) UpdateTaskList(listID, userID int64, name, description string, color *string) (TaskList, error) {
	list, err := s.GetTaskListByIDAndUserID(listID, userID)
	if err != nil {
		return TaskList{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return TaskList{}, ErrTaskListInvalidArgs
	}
	if color != nil && !isValidHexColor(*color) {
		return TaskList{}, ErrTaskListInvalidArgs
	}

	list.Name = name
	list.Description = strings.TrimSpace(description)
	if color != nil {
		list.Color = *color
	}
	list.UpdatedAt = time.Now()

	return s.store.SaveTaskList(list), nil
}

// DeleteTaskList soft-deletes a list. A user must always keep at least one
// active list.
func (s *TaskListService) DeleteTaskList(listID, userID int64) error {
	list, err := s.GetTaskListByIDAndUserID(listID, userID)
	if err != nil {
		return err
	}

	if s.store.CountTaskListsByUserID(userID) <= 1 {
		return ErrLastTaskList
	}

	list.Active = false
	list.UpdatedAt = time.Now()
	s.store.SaveTaskList(list)
	return nil
}

func (s *TaskListService) GetTaskListStats(listID, userID int64) (TaskListStats, error) {
	if _, err := s.GetTaskListByIDAndUserID(listID, userID); err != nil {
		return TaskListStats{}, err
	}

	tasks := s.store.FindTasksByTaskListID(listID)
	total := len(tasks)
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	stats := TaskListStats{
		TotalTasks:     total,
		CompletedTasks: completed,
		PendingTasks:   total - completed,
	}
	if total > 0 {
		stats.CompletionPercentage = float64(completed) / float64(total) * 100
	}
	return stats, nil
}

// DuplicateTaskList copies a list and all of its tasks. Copies start pending
// regardless of the originals' completion state, and are created in ascending
// creation order so the new list enumerates like the original.
func (s *TaskListService) DuplicateTaskList(listID, userID int64, newName string) (TaskList, error) {
	original, err := s.GetTaskListByIDAndUserID(listID, userID)
	if err != nil {
		return TaskList{}, err
	}

	name := strings.TrimSpace(newName)
	if name == "" {
		name = original.Name + " (Copy)"
	}

	now := time.Now()
	copyList := s.store.SaveTaskList(TaskList{
		UserID:      original.UserID,
		Name:        name,
		Description: original.Description,
		Color:       original.Color,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	tasks := s.store.FindTasksByTaskListID(original.ID)
	for i := len(tasks) - 1; i >= 0; i-- {
		t := tasks[i]
		s.store.SaveTask(Task{
			TaskListID:  copyList.ID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    t.Priority,
			DueDate:     t.DueDate,
			Important:   t.Important,
			Completed:   false,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return copyList, nil
}
