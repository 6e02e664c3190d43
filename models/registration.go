package models

// RegisterRequest carries the fields a registration may supply. The
// counselor-only fields are ignored for client registrations. Experience is a
// pointer so that a missing value is distinguishable from zero years.
type RegisterRequest struct {
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Password       string             `json:"password"`
	Specialization string             `json:"specialization"`
	Experience     *int               `json:"experience"`
	Availability   []AvailabilitySlot `json:"availability"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login: a signed session token plus
// the public profile projection.
type AuthResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}
