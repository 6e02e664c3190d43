package auth

import (
	"strings"

	"counselhub/models"
	"counselhub/services/availability"
	"counselhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an account under the given role. The password is stored
// only after one-way hashing; the response never contains it.
func (s *DefaultAuthService) Register(role models.Role, req models.RegisterRequest) (*models.AuthResponse, error) {
	if !role.Valid() {
		return nil, utils.NewAppError(utils.CodeValidation, "unknown role")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, utils.NewAppError(utils.CodeValidation, "name, email and password are required")
	}
	email := strings.ToLower(req.Email)

	if role == models.RoleCounselor {
		if req.Specialization == "" || req.Experience == nil {
			return nil, utils.NewAppError(utils.CodeValidation, "specialization and experience are required for counselors")
		}
		if len(req.Availability) == 0 {
			return nil, utils.NewAppError(utils.CodeValidation, "availability must be a non-empty list of slots")
		}
		if err := availability.ValidateSlots(req.Availability); err != nil {
			return nil, err
		}
	}

	existing, err := s.lookupByEmail(role, email)
	if err != nil {
		return nil, s.storageFailure("Register: duplicate check failed", err)
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, s.storageFailure("Register: failed to hash password", err)
	}

	var account models.Account
	switch role {
	case models.RoleClient:
		client := &models.Client{
			ID:           uuid.New().String(),
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hashed),
		}
		if err := s.Clients.Create(client); err != nil {
			return nil, s.storageFailure("Register: failed to create client", err)
		}
		account = client
	case models.RoleCounselor:
		counselor := &models.Counselor{
			ID:             uuid.New().String(),
			Name:           req.Name,
			Email:          email,
			PasswordHash:   string(hashed),
			Specialization: req.Specialization,
			Experience:     *req.Experience,
			Availability:   req.Availability,
		}
		if err := s.Counselors.Create(counselor); err != nil {
			return nil, s.storageFailure("Register: failed to create counselor", err)
		}
		account = counselor
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: account.PublicProfile()}, nil
}

// Login authenticates credentials. A missing account and a wrong password are
// indistinguishable to the caller.
func (s *DefaultAuthService) Login(role models.Role, email, password string) (*models.AuthResponse, error) {
	if !role.Valid() {
		return nil, utils.NewAppError(utils.CodeValidation, "unknown role")
	}
	if email == "" || password == "" {
		return nil, utils.NewAppError(utils.CodeValidation, "email and password are required")
	}

	account, err := s.lookupByEmail(role, strings.ToLower(email))
	if err != nil {
		return nil, s.storageFailure("Login: failed to fetch account", err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.CredentialHash()), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: account.PublicProfile()}, nil
}

// Verify checks the token and resolves its identity to a live account.
func (s *DefaultAuthService) Verify(token string) (models.Account, error) {
	identity, err := s.Tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	account, err := s.lookupByID(models.Role(identity.Role), identity.ID)
	if err != nil {
		return nil, s.storageFailure("Verify: failed to resolve identity", err)
	}
	if account == nil {
		return nil, ErrInvalidToken
	}
	return account, nil
}

// Profile returns the public profile for an identity.
func (s *DefaultAuthService) Profile(id string, role models.Role) (*models.Profile, error) {
	account, err := s.lookupByID(role, id)
	if err != nil {
		return nil, s.storageFailure("Profile: failed to fetch account", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	profile := account.PublicProfile()
	return &profile, nil
}

// ListCounselors returns all counselor profiles.
func (s *DefaultAuthService) ListCounselors() ([]models.Profile, error) {
	counselors, err := s.Counselors.GetAll()
	if err != nil {
		return nil, s.storageFailure("ListCounselors: failed to fetch counselors", err)
	}
	profiles := make([]models.Profile, 0, len(counselors))
	for i := range counselors {
		profiles = append(profiles, counselors[i].PublicProfile())
	}
	return profiles, nil
}

// Revoke invalidates the account's current session token.
func (s *DefaultAuthService) Revoke(id string, role models.Role) error {
	var err error
	switch role {
	case models.RoleClient:
		err = s.Clients.UpdateTokenHash(id, "")
	case models.RoleCounselor:
		err = s.Counselors.UpdateTokenHash(id, "")
	default:
		return utils.NewAppError(utils.CodeValidation, "unknown role")
	}
	if err != nil {
		return s.storageFailure("Revoke: failed to clear token hash", err)
	}
	utils.DropTokenHash(id)
	return nil
}

// issueToken signs a token for the account and records its hash, both in the
// account document and in the auth cache.
func (s *DefaultAuthService) issueToken(account models.Account) (string, error) {
	token, err := s.Tokens.Generate(account.AccountID(), string(account.AccountRole()), account.PublicProfile().Email)
	if err != nil {
		return "", s.storageFailure("issueToken: failed to sign token", err)
	}
	tokenHash := utils.HashToken(token)

	switch account.AccountRole() {
	case models.RoleClient:
		err = s.Clients.UpdateTokenHash(account.AccountID(), tokenHash)
	case models.RoleCounselor:
		err = s.Counselors.UpdateTokenHash(account.AccountID(), tokenHash)
	}
	if err != nil {
		return "", s.storageFailure("issueToken: failed to store token hash", err)
	}
	utils.CacheTokenHash(account.AccountID(), tokenHash, s.Tokens.Expiry())
	return token, nil
}

func (s *DefaultAuthService) lookupByEmail(role models.Role, email string) (models.Account, error) {
	switch role {
	case models.RoleClient:
		client, err := s.Clients.GetByEmail(email)
		if err != nil || client == nil {
			return nil, err
		}
		return client, nil
	default:
		counselor, err := s.Counselors.GetByEmail(email)
		if err != nil || counselor == nil {
			return nil, err
		}
		return counselor, nil
	}
}

func (s *DefaultAuthService) lookupByID(role models.Role, id string) (models.Account, error) {
	switch role {
	case models.RoleClient:
		client, err := s.Clients.GetByID(id)
		if err != nil || client == nil {
			return nil, err
		}
		return client, nil
	case models.RoleCounselor:
		counselor, err := s.Counselors.GetByID(id)
		if err != nil || counselor == nil {
			return nil, err
		}
		return counselor, nil
	default:
		return nil, nil
	}
}

func (s *DefaultAuthService) storageFailure(msg string, err error) error {
	utils.GetLogger().Error(msg, zap.Error(err))
	return utils.NewAppError(utils.CodeStorage, "operation failed, please try again")
}
