package auth

import (
	clientRepo "counselhub/database/repository/client"
	counselorRepo "counselhub/database/repository/counselor"
	"counselhub/models"
	"counselhub/utils"
)

// AuthService covers registration, login and token verification for both
// account roles.
type AuthService interface {
	// Register creates an account under the given role and returns a signed
	// session token plus the public profile.
	Register(role models.Role, req models.RegisterRequest) (*models.AuthResponse, error)
	// Login authenticates credentials under the given role.
	Login(role models.Role, email, password string) (*models.AuthResponse, error)
	// Verify checks a token and resolves the embedded identity to an account.
	Verify(token string) (models.Account, error)
	// Profile returns the public profile for an identity.
	Profile(id string, role models.Role) (*models.Profile, error)
	// ListCounselors returns all counselor profiles, credential-free.
	ListCounselors() ([]models.Profile, error)
	// Revoke invalidates the account's current session token.
	Revoke(id string, role models.Role) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Clients    clientRepo.ClientRepository
	Counselors counselorRepo.CounselorRepository
	Tokens     *utils.TokenManager
}
