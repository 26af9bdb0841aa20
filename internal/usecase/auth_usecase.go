package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/JRossell27/Job-tracker/internal/domain"
	"github.com/JRossell27/Job-tracker/pkg/apperror"
)

const bcryptCost = 10

// usernameChars is the set a canonical username may contain. It mirrors the
// per-user data file naming, so the credential key and the derived file name
// can never diverge between two spellings of the same account.
var usernameChars = regexp.MustCompile(`^[a-z0-9_-]+$`)

type authUsecase struct {
	userRepo  domain.UserRepository
	appRepo   domain.ApplicationRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthUsecase(userRepo domain.UserRepository, appRepo domain.ApplicationRepository, jwtSecret string, tokenTTL time.Duration) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		appRepo:   appRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Login verifies a known username against its stored hash, or registers an
// unknown one on its first attempt. Success issues a session token; a wrong
// password is an authentication failure, not a crash. Usernames are
// case-insensitive: "Alice" and "alice" are the same account.
func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, apperror.BadRequest("Username and password are required")
	}
	if !usernameChars.MatchString(username) {
		return nil, apperror.BadRequest("Username may only contain letters, digits, underscores, and hyphens")
	}

	registered := false
	user, err := u.userRepo.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if err := u.userRepo.Create(ctx, &domain.User{Username: username, PasswordHash: string(hash)}); err != nil {
			return nil, apperror.Internal(err)
		}
		registered = true
	case err != nil:
		return nil, apperror.Internal(err)
	default:
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return nil, apperror.Unauthorized("Invalid username or password")
		}
	}

	// Make sure the user's tracker file exists before the first listing.
	if err := u.appRepo.Init(ctx, username); err != nil {
		return nil, apperror.Internal(err)
	}

	token, err := u.issueToken(username)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.LoginResult{Token: token, Username: username, Registered: registered}, nil
}

func (u *authUsecase) issueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(u.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
}
