package service

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"splitwise/internal/model"
	"splitwise/internal/repository"
	"splitwise/internal/repository/mocks"
)

const (
	testSecret     = "test-secret"
	testTokenTTL   = time.Hour
	testBcryptCost = 4 // min cost keeps the suite fast
)

func TestAuth_RegisterTokenMatchesUser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userID := primitive.NewObjectID()
	userRepo := mocks.NewUser(t)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).ID = userID
		}).
		Return(nil)

	authServ := NewAuth(userRepo, testSecret, testTokenTTL, testBcryptCost)

	token, user, err := authServ.Register(ctx, "Dima", "dima@example.com", "myNewStrongPassword")
	require.NoError(t, err)
	require.Equal(t, userID, user.ID)
	require.NotEqual(t, "myNewStrongPassword", user.Password)

	verifiedID, ok := authServ.VerifyToken(token)
	require.True(t, ok)
	require.Equal(t, userID.Hex(), verifiedID)
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userRepo := mocks.NewUser(t)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Return(repository.ErrDuplicateUser)

	authServ := NewAuth(userRepo, testSecret, testTokenTTL, testBcryptCost)

	_, _, err := authServ.Register(ctx, "Dima", "dima@example.com", "secret")
	require.True(t, errors.Is(err, repository.ErrDuplicateUser))
}

func TestAuth_Login(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userRepo := mocks.NewUser(t)
	authServ := NewAuth(userRepo, testSecret, testTokenTTL, testBcryptCost)

	hash, err := authServ.hashPassword("rightPassword")
	require.NoError(t, err)

	stored := &model.User{
		ID:       primitive.NewObjectID(),
		Name:     "Dima",
		Email:    "dima@example.com",
		Password: hash,
	}
	userRepo.On("GetByEmail", mock.Anything, "dima@example.com").Return(stored, nil)
	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	token, user, err := authServ.Login(ctx, "dima@example.com", "rightPassword")
	require.NoError(t, err)
	require.Equal(t, stored.ID, user.ID)

	verifiedID, ok := authServ.VerifyToken(token)
	require.True(t, ok)
	require.Equal(t, stored.ID.Hex(), verifiedID)

	// wrong password and unknown email fail the same way
	_, _, err = authServ.Login(ctx, "dima@example.com", "wrongPassword")
	require.True(t, errors.Is(err, ErrInvalidCredentials))

	_, _, err = authServ.Login(ctx, "nobody@example.com", "rightPassword")
	require.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuth_VerifyTokenFailures(t *testing.T) {
	userRepo := mocks.NewUser(t)
	authServ := NewAuth(userRepo, testSecret, testTokenTTL, testBcryptCost)

	_, ok := authServ.VerifyToken("not-a-token")
	require.False(t, ok)

	// expired
	expiredServ := NewAuth(userRepo, testSecret, -time.Hour, testBcryptCost)
	token, err := expiredServ.generateToken(primitive.NewObjectID().Hex())
	require.NoError(t, err)
	_, ok = authServ.VerifyToken(token)
	require.False(t, ok)

	// signed with a different secret
	otherServ := NewAuth(userRepo, "other-secret", testTokenTTL, testBcryptCost)
	token, err = otherServ.generateToken(primitive.NewObjectID().Hex())
	require.NoError(t, err)
	_, ok = authServ.VerifyToken(token)
	require.False(t, ok)
}

func TestAuth_UserIDFromRequest(t *testing.T) {
	userRepo := mocks.NewUser(t)
	authServ := NewAuth(userRepo, testSecret, testTokenTTL, testBcryptCost)

	userID := primitive.NewObjectID().Hex()
	token, err := authServ.generateToken(userID)
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/expenses", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	require.Equal(t, userID, authServ.UserIDFromRequest(r))

	r = httptest.NewRequest("GET", "/expenses", nil)
	require.Equal(t, "", authServ.UserIDFromRequest(r))

	r = httptest.NewRequest("GET", "/expenses", nil)
	r.Header.Set("Authorization", token)
	require.Equal(t, "", authServ.UserIDFromRequest(r))

	r = httptest.NewRequest("GET", "/expenses", nil)
	r.Header.Set("Authorization", "Basic "+token)
	require.Equal(t, "", authServ.UserIDFromRequest(r))
}

func TestAuth_HashPasswordSaltedAndComparable(t *testing.T) {
	userRepo := mocks.NewUser(t)
	authServ := NewAuth(userRepo, testSecret, testTokenTTL, testBcryptCost)

	hashOne, err := authServ.hashPassword("myNewStrongPassword")
	require.NoError(t, err)
	hashTwo, err := authServ.hashPassword("myNewStrongPassword")
	require.NoError(t, err)

	// bcrypt salts, so equal inputs hash differently but both verify
	require.NotEqual(t, hashOne, hashTwo)
	require.True(t, authServ.comparePassword("myNewStrongPassword", hashOne))
	require.True(t, authServ.comparePassword("myNewStrongPassword", hashTwo))
	require.False(t, authServ.comparePassword("anotherPassword", hashOne))
}
