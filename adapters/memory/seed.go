package memory

import (
	"time"

	"todo-app-backend/core"
)

// Seed loads the demo dataset: one user, a default list and three sample
// tasks. Records go through the Save path so the generators advance normally.
func (s *Storage) Seed() {
	now := time.Now()

	user := s.SaveUser(core.User{
		Email:     "demo@todoapp.com",
		Name:      "Demo User",
		Password:  "demo123",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})

	list := s.SaveTaskList(core.TaskList{
		UserID:      user.ID,
		Name:        "My Tasks",
		Description: "Main task list",
		Color:       "#007ACC",
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	s.SaveTask(core.Task{
		TaskListID:  list.ID,
		Title:       "Try the API",
		Description: "Check that every endpoint responds as expected",
		Priority:    core.PriorityHigh,
		Important:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	s.SaveTask(core.Task{
		TaskListID:  list.ID,
		Title:       "Write the project docs",
		Description: "Put together the delivery documentation",
		Priority:    core.PriorityMedium,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	done := now
	s.SaveTask(core.Task{
		TaskListID:  list.ID,
		Title:       "Review the code",
		Description: "Code review before handing over",
		Priority:    core.PriorityLow,
		Completed:   true,
		CompletedAt: &done,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}
