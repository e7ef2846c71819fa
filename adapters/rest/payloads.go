package rest

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Request shapes and their format validation. Business invariants stay in
// core; this layer only checks that fields are well-formed before the
// services see them, reporting failures as a per-field message map.

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	maxUserNameLength     = 100
	maxListNameLength     = 100
	maxListDescLength     = 500
	maxTaskTitleLength    = 200
	maxTaskDescLength     = 1000
	minimumPasswordLength = 6
)

func checkLength(fields map[string]string, field, value string, max int) {
	if len(value) > max {
		fields[field] = fmt.Sprintf("must be at most %d characters", max)
	}
}

type CreateUserIn struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (in CreateUserIn) Validate() map[string]string {
	fields := map[string]string{}
	if !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		fields["email"] = "must be a valid email address"
	}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "must not be empty"
	}
	checkLength(fields, "name", in.Name, maxUserNameLength)
	if len(in.Password) < minimumPasswordLength {
		fields["password"] = fmt.Sprintf("must be at least %d characters", minimumPasswordLength)
	}
	return fields
}

type UpdateUserIn struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (in UpdateUserIn) Validate() map[string]string {
	fields := map[string]string{}
	if !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		fields["email"] = "must be a valid email address"
	}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "must not be empty"
	}
	checkLength(fields, "name", in.Name, maxUserNameLength)
	return fields
}

type ChangePasswordIn struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type LoginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateTaskListIn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (in CreateTaskListIn) Validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "must not be empty"
	}
	checkLength(fields, "name", in.Name, maxListNameLength)
	checkLength(fields, "description", in.Description, maxListDescLength)
	return fields
}

type UpdateTaskListIn struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       *string `json:"color,omitempty"`
}

func (in UpdateTaskListIn) Validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "must not be empty"
	}
	checkLength(fields, "name", in.Name, maxListNameLength)
	checkLength(fields, "description", in.Description, maxListDescLength)
	return fields
}

type DuplicateTaskListIn struct {
	Name string `json:"name"`
}

type CreateTaskIn struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Important   bool       `json:"important"`
}

func (in CreateTaskIn) Validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "must not be empty"
	}
	checkLength(fields, "title", in.Title, maxTaskTitleLength)
	checkLength(fields, "description", in.Description, maxTaskDescLength)
	return fields
}

type UpdateTaskIn struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Important   *bool      `json:"important,omitempty"`
}

func (in UpdateTaskIn) Validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "must not be empty"
	}
	checkLength(fields, "title", in.Title, maxTaskTitleLength)
	if in.Description != nil {
		checkLength(fields, "description", *in.Description, maxTaskDescLength)
	}
	return fields
}

type MoveTaskIn struct {
	NewListID int64 `json:"new_list_id"`
}
