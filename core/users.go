package core

import (
	"strings"
	"time"
)

const minPasswordLength = 6

// Default list every new account starts with.
const (
	defaultListName        = "My Tasks"
	defaultListDescription = "Main task list"
	defaultListColor       = "#007ACC"
)

type UserService struct {
	store Storage
}

func NewUserService(store Storage) *UserService {
	return &UserService{store: store}
}

// CreateUser registers a new account and cascades into creating its default
// task list. Email uniqueness is checked case-insensitively against all users,
// active or not.
func (s *UserService) CreateUser(email, name, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if s.store.ExistsByEmail(email) {
		return User{}, ErrEmailExists
	}

	now := time.Now()
	user := s.store.SaveUser(User{
		Email:     email,
		Name:      strings.TrimSpace(name),
		Password:  password,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})

	s.store.SaveTaskList(TaskList{
		UserID:      user.ID,
		Name:        defaultListName,
		Description: defaultListDescription,
		Color:       defaultListColor,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	return user, nil
}

func (s *UserService) GetUserByID(id int64) (User, error) {
	user, ok := s.store.FindUserByID(id)
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(email string) (User, error) {
	user, ok := s.store.FindUserByEmail(strings.ToLower(email))
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetAllActiveUsers() []User {
	return s.store.FindAllActiveUsers()
}

// UpdateUser changes name and email. A new email already held by a different
// user is rejected.
func (s *UserService) UpdateUser(id int64, name, email string) (User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return User{}, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if user.Email != email && s.store.ExistsByEmail(email) {
		return User{}, ErrEmailExists
	}

	user.Name = strings.TrimSpace(name)
	user.Email = email
	user.UpdatedAt = time.Now()

	return s.store.SaveUser(user), nil
}

func (s *UserService) ChangePassword(id int64, currentPassword, newPassword string) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	if user.Password != currentPassword {
		return ErrUserInvalidArgs
	}
	if len(newPassword) < minPasswordLength {
		return ErrUserInvalidArgs
	}

	user.Password = newPassword
	user.UpdatedAt = time.Now()
	s.store.SaveUser(user)
	return nil
}

// DeactivateUser flips the active flag (soft delete). Lists and tasks stay in
// place, orphaned but intact.
func (s *UserService) DeactivateUser(id int64) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	user.Active = false
	user.UpdatedAt = time.Now()
	s.store.SaveUser(user)
	return nil
}

// ValidateCredentials reports whether an active user with that email has the
// given password. It never returns an error; bad credentials are just false.
func (s *UserService) ValidateCredentials(email, password string) bool {
	user, ok := s.store.FindUserByEmail(strings.ToLower(email))
	if !ok {
		return false
	}
	return user.Active && user.Password == password
}

// DeleteUser removes the record permanently. Lists and tasks are not cascaded.
func (s *UserService) DeleteUser(id int64) error {
	if _, err := s.GetUserByID(id); err != nil {
		return err
	}
	s.store.DeleteUser(id)
	return nil
}
