package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/qrlogix/qrlogix-server/internal/config"
	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/internal/store"
	"github.com/qrlogix/qrlogix-server/internal/utils"
	"github.com/qrlogix/qrlogix-server/models"
)

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification, and JWT issuance using a
// UserRepository for persistence and bcrypt for password hashing.
//
// Passwords are stored only as bcrypt hashes. The historical deployment
// compared plaintext; the hashing here is a deliberate behavioral change
// that keeps the external contract (status codes, envelopes) intact.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// userType is the classification written into every identity record
	// created by this instance ("user" or "employee").
	userType string

	// tokenSignKey is the HMAC secret used to sign JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg and the
// deployment's user type from identity.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, identity config.Identity, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		userType:       identity.UserType,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new identity record.
//
// Validation of the four required fields happens before any database access.
// The duplicate-email check runs twice: an optimistic lookup first (the
// common case answers without attempting an insert), then the table's unique
// constraint catches the check-then-insert race and is mapped to the same
// error.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if any required field is empty.
//   - store.ErrEmailAlreadyExists if the email is already registered.
//   - A wrapped storage error if the repository call fails.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	// optimistic duplicate check; the unique constraint is the authority
	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err == nil {
		log.Info().Str("email", req.Email).Msg("signup rejected: email already exists")
		return models.User{}, store.ErrEmailAlreadyExists
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", req.Email).Msg("duplicate email check failed")
		return models.User{}, fmt.Errorf("duplicate email check failed: %w", err)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashedPassword,
		UserType:  a.userType,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, store.ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", registeredUser.UserID).Str("email", registeredUser.Email).Msg("user created successfully")

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Email and Password are non-empty, looks up the
// account by email, and verifies the password against the stored bcrypt
// hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - store.ErrNoUserWasFound if no account matches the email.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, store.ErrNoUserWasFound
		}
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.Password, req.Password) {
		log.Info().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation
// fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
