package dto

// LoginRequest leaves email format alone: an address that matches no account is
// reported as "account not found" by the auth service.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Assignee    string `json:"assignee" validate:"max=100"`
	Deadline    string `json:"deadline" validate:"max=100"`
	Location    string `json:"location" validate:"max=200"`
	Priority    string `json:"priority" validate:"omitempty,oneof=high medium low"`
	Category    string `json:"category" validate:"max=100"`
}

type SubmitReportRequest struct {
	PhotoURL string `json:"photo_url" validate:"required"`
}

type CreateUserRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,max=72"`
	Role       string `json:"role" validate:"omitempty,oneof=admin manager executor"`
	Department string `json:"department" validate:"max=100"`
}
