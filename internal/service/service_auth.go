package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-novel-hub/internal/config"
	"github.com/MKhiriev/go-novel-hub/internal/crypto"
	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/store"
	"github.com/MKhiriev/go-novel-hub/internal/utils"
	"github.com/MKhiriev/go-novel-hub/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the JWT
// lifecycle using a UserRepository for persistence and a PasswordHasher for
// credentials.
type authService struct {
	// userRepository is the credential store.
	userRepository store.UserRepository

	// hasher turns plaintext passwords into stored digests and verifies them.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// dummyDigest is verified against on unknown usernames so both failed
	// login paths cost one hash comparison.
	dummyDigest     string
	dummyDigestOnce sync.Once

	logger *logger.Logger
}

const dummyPassword = "novel-hub-unknown-user"

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser hashes the plaintext password and stores the user.
//
// Returns the persisted user without any credential fields, or:
//   - ErrInvalidDataProvided if username, email or password is empty.
//   - store.ErrUserAlreadyExists (wrapped) if the username or email is taken.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Email == "" || user.Password == "" {
		log.Warn().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	digest, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}
	user.PasswordHash = digest
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// Login looks the user up by username and verifies the password.
//
// An unknown username and a wrong password both yield ErrWrongCredentials, so
// callers cannot probe which usernames exist.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Warn().Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.Verify(credentials.Password, a.unknownUserDigest())
		log.Warn().Str("username", credentials.Username).Msg("login with unknown username")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(credentials.Password, foundUser.PasswordHash) {
		log.Warn().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser.Public(), nil
}

// unknownUserDigest hashes dummyPassword on first use. A failed hash leaves
// the digest empty and Verify then returns immediately.
func (a *authService) unknownUserDigest() string {
	a.dummyDigestOnce.Do(func() {
		digest, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Err(err).Msg("dummy digest hashing failed")
			return
		}
		a.dummyDigest = digest
	})
	return a.dummyDigest
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string.
//
// Returns ErrTokenMissing for an empty string, ErrTokenExpired once the
// expiry has passed and ErrTokenInvalid for every other failure (signature,
// issuer, malformed payload, non-numeric subject).
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrTokenMissing
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return token, nil
}
