package core

// Storage is the single source of truth for all records. Implementations must
// keep identifier assignment atomic with the insert, per entity kind. Lookups
// report absence with a bool instead of an error; business rules live in the
// services, not here.
type Storage interface {
	// users
	SaveUser(u User) User
	FindUserByID(id int64) (User, bool)
	FindUserByEmail(email string) (User, bool)
	ExistsByEmail(email string) bool
	FindAllActiveUsers() []User
	CountActiveUsers() int
	DeleteUser(id int64)

	// task lists
	SaveTaskList(l TaskList) TaskList
	FindTaskListByID(id int64) (TaskList, bool)
	FindTaskListsByUserID(userID int64) []TaskList
	CountTaskListsByUserID(userID int64) int
	DeleteTaskList(id int64)

	// tasks
	SaveTask(t Task) Task
	FindTaskByID(id int64) (Task, bool)
	FindTasksByTaskListID(listID int64) []Task
	FindPendingTasksByTaskListID(listID int64) []Task
	FindCompletedTasksByTaskListID(listID int64) []Task
	FindImportantTasksByUserID(userID int64) []Task
	FindAllTasksByUserID(userID int64) []Task
	SearchTasksByContent(userID int64, term string) []Task
	DeleteTask(id int64)

	// operational
	Info() StorageInfo
	ClearAll()
}
