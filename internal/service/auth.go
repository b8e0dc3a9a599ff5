package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"splitwise/internal/model"
	"splitwise/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Authorization interface {
	Register(ctx context.Context, name, email, password string) (string, *model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	VerifyToken(token string) (string, bool)
	UserIDFromRequest(r *http.Request) string
}

type Auth struct {
	users      repository.User
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuth(users repository.User, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *Auth {
	return &Auth{
		users:      users,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// Register creates the account and signs a token for it. Email uniqueness
// is enforced by the store's unique index, not a prior lookup, so two
// concurrent registrations cannot both win.
func (a *Auth) Register(ctx context.Context, name, email, password string) (string, *model.User, error) {
	hash, err := a.hashPassword(password)
	if err != nil {
		return "", nil, fmt.Errorf("auth service couldn't hash password: %v", err)
	}

	user := model.User{
		Name:      name,
		Email:     email,
		Password:  hash,
		CreatedAt: time.Now().UTC(),
	}
	if err = a.users.Create(ctx, &user); err != nil {
		return "", nil, err
	}

	token, err := a.generateToken(user.ID.Hex())
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Login fails identically for an unknown email and a wrong password.
func (a *Auth) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if !a.comparePassword(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.generateToken(user.ID.Hex())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// VerifyToken reports the embedded user id. Any failure, malformed token,
// wrong signature, expiry, missing claim, is an ordinary false outcome.
func (a *Auth) VerifyToken(tokenString string) (string, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// UserIDFromRequest extracts the user id from a "Bearer <token>"
// authorization header, or returns an empty string.
func (a *Auth) UserIDFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	userID, ok := a.VerifyToken(parts[1])
	if !ok {
		return ""
	}
	return userID
}

func (a *Auth) generateToken(userID string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = userID
	claims["exp"] = time.Now().Add(a.tokenTTL).Unix()

	tokenString, err := token.SignedString(a.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("auth service couldn't sign token: %v", err)
	}
	return tokenString, nil
}

func (a *Auth) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *Auth) comparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
