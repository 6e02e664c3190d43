package auth

import "counselhub/utils"

var (
	// ErrAlreadyExists: an account with the same email exists under the same
	// role. Roles are partitioned, so the same email may register once per role.
	ErrAlreadyExists = utils.NewAppError(utils.CodeAlreadyExists, "an account with this email already exists")

	// ErrInvalidCredentials covers both a missing account and a failed hash
	// comparison, uniformly, to resist account enumeration.
	ErrInvalidCredentials = utils.NewAppError(utils.CodeInvalidCredentials, "invalid email or password")

	// ErrInvalidToken: signature or expiry check failed, or the identity no
	// longer resolves.
	ErrInvalidToken = utils.NewAppError(utils.CodeInvalidToken, "invalid or expired token")

	// ErrAccountNotFound: a profile lookup referenced a missing account.
	ErrAccountNotFound = utils.NewAppError(utils.CodeNotFound, "account not found")
)
