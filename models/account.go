package models

// Role distinguishes the two account types on the platform.
type Role string

const (
	RoleClient    Role = "client"
	RoleCounselor Role = "counselor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleCounselor
}

// Profile is the public projection of an account. Password material is never
// part of it. Counselor-specific fields are omitted for clients.
type Profile struct {
	ID             string             `json:"id"`
	Role           Role               `json:"role"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Specialization string             `json:"specialization,omitempty"`
	Experience     int                `json:"experience,omitempty"`
	Availability   []AvailabilitySlot `json:"availability,omitempty"`
	Verified       bool               `json:"verified,omitempty"`
}

// Account is the capability surface shared by the two account variants.
// It replaces ad hoc role-conditional model selection with an explicit
// tagged union over Client and Counselor.
type Account interface {
	AccountID() string
	AccountRole() Role
	CredentialHash() string
	PublicProfile() Profile
}
