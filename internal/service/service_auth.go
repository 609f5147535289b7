package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-ride-hail/internal/app"
	"github.com/MKhiriev/go-ride-hail/internal/apperror"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/store"
	"github.com/MKhiriev/go-ride-hail/internal/validators"
	"github.com/MKhiriev/go-ride-hail/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration and credential checks and issues tokens
// through the TokenService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	tokenService TokenService
	validator    validators.Validator
	ids          IDGenerator

	// hashCost is the bcrypt work factor for new passwords.
	hashCost int

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenService TokenService, validator validators.Validator, ids IDGenerator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenService:   tokenService,
		validator:      validator,
		ids:            ids,
		hashCost:       bcrypt.DefaultCost,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new account and signs the caller in.
//
// Returns:
//   - 400 if the payload fails validation.
//   - 409 "Email already registered" if the e-mail is taken.
//   - a wrapped error for storage or hashing faults.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, &request); err != nil {
		log.Debug().Err(err).Str("email", request.Email).Msg("invalid registration data provided")
		return models.AuthResult{}, apperror.Wrap(err, http.StatusBadRequest, err.Error())
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), a.hashCost)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	role := request.Role
	if role == "" {
		role = models.RoleUser
	}

	user := models.User{
		UserID:       a.ids.Generate(),
		Email:        request.Email,
		Name:         request.Name,
		Phone:        request.Phone,
		PasswordHash: string(passwordHash),
		Role:         role,
		CreatedAt:    a.now().UTC(),
	}

	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.AuthResult{}, apperror.Wrap(err, http.StatusConflict, app.MsgEmailAlreadyRegistered)
		}
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	log.Info().Str("user_id", user.UserID).Str("role", user.Role).Msg("user registered")

	return a.signIn(ctx, user)
}

// Login checks credentials. Unknown e-mail and wrong password produce the
// same 401 so that accounts cannot be enumerated.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(credentials.Email))
	if email == "" || credentials.Password == "" {
		return models.AuthResult{}, apperror.NewAuthentication(app.MsgInvalidEmailOrPassword)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", email).Msg("login for unknown email")
			return models.AuthResult{}, apperror.Wrap(err, http.StatusUnauthorized, app.MsgInvalidEmailOrPassword)
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Debug().Str("user_id", user.UserID).Msg("wrong password")
		return models.AuthResult{}, apperror.Wrap(err, http.StatusUnauthorized, app.MsgInvalidEmailOrPassword)
	}

	return a.signIn(ctx, user)
}

func (a *authService) signIn(ctx context.Context, user models.User) (models.AuthResult, error) {
	token, err := a.tokenService.Issue(ctx, user.UserID, user.Email, user.Role)
	if err != nil {
		return models.AuthResult{}, err
	}

	return models.AuthResult{
		Token: token.SignedString,
		User:  user,
	}, nil
}
