package models

import "time"

// UserProfile is the free-form identity record of the signed-in operator.
// The console stores and displays it but never relies on particular fields.
type UserProfile map[string]any

// String returns the value of field as a string, or "" when the field is
// missing or not a string.
func (p UserProfile) String(field string) string {
	v, ok := p[field].(string)
	if !ok {
		return ""
	}
	return v
}

// User is an account managed through the console.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// UserInput is the body of a create-user request.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

// UserPatch is the body of a partial user update. Only non-nil fields are sent.
type UserPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil && p.Role == nil && p.Status == nil
}

// Account roles accepted by the user endpoints.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Roles lists the accepted roles in display order.
func Roles() []string {
	return []string{RoleUser, RoleAdmin}
}
