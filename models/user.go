package models

// User types known to the dashboards. Other values are accepted and fall
// back to the admin dashboard.
const (
	UserTypeStudent    = "student"
	UserTypeProfessor  = "professor"
	UserTypeAdmin      = "admin"
	UserTypeUniversity = "university"
	UserTypeHomeowner  = "homeowner"
)

// User is the signed-in account as remembered by the session store.
type User struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	FirstName string  `json:"firstName,omitempty"`
	LastName  string  `json:"lastName,omitempty"`
	Password  string  `json:"password,omitempty"`
	UserType  string  `json:"userType"`
	Avatar    *string `json:"avatar"`
	CreatedAt string  `json:"createdAt"`
	Provider  string  `json:"provider,omitempty"`
}

// AuthResponse is the outcome of a login or registration attempt.
type AuthResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
