package constants

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleExecutor Role = "executor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleExecutor:
		return true
	}
	return false
}
