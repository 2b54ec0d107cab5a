package domain

// UserRole controls what a back-office user may administer.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleSeller   UserRole = "SELLER"
	RoleReadOnly UserRole = "READ_ONLY"
)

// User is a back-office operator account. Session management is handled
// upstream; this layer only reads the current user's identity per request.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	Active       bool     `json:"active"`
	AuditFields
}
