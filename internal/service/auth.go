package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned by Login for an unknown email or
	// a wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned by ParseToken for any token that is
	// malformed, expired or signed with another key.
	ErrInvalidToken = errors.New("invalid session token")
)

// AuthService handles password hashing and session tokens.
//
// Sessions are HS256 JWTs whose subject is the user id.
type AuthService struct {
	queries *QueryService
	secret  []byte
	ttl     time.Duration
	cost    int
	now     func() time.Time
}

func NewAuthService(cfg config.AuthConfig, queries *QueryService) *AuthService {
	return &AuthService{
		queries: queries,
		secret:  []byte(cfg.SecretKey),
		ttl:     cfg.TokenTTL,
		cost:    bcrypt.DefaultCost,
		now:     time.Now,
	}
}

func (a *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (a *AuthService) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs a session token for userID and returns it with its
// expiry.
func (a *AuthService) IssueToken(userID int64) (string, time.Time, error) {
	issuedAt := a.now()
	expiresAt := issuedAt.Add(a.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    config.ServiceName,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseToken verifies token and returns the user id it was issued for.
func (a *AuthService) ParseToken(token string) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(config.ServiceName),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, claims.Subject)
	}
	return userID, nil
}

// Register hashes the password and stores the user.
//
// Store failures (a duplicate email, most commonly) are returned as is
// so the caller can map them with sqlerr.HandleError.
func (a *AuthService) Register(ctx context.Context, input model.NewUser) (*model.User, error) {
	hash, err := a.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	input.Password = hash

	result := a.queries.AddUser(ctx, input)
	if !result.OK() {
		return nil, result.Err
	}
	return result.Value, nil
}

// Login returns the user owning email when password matches.
func (a *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	result := a.queries.GetUserByEmail(ctx, email)
	if !result.OK() {
		return nil, result.Err
	}

	user := result.Value
	if user == nil || !a.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
