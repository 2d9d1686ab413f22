package core

import (
	"context"
	"errors"
	"fmt"

	"contactbook/internal/repository"
	tokenIssuer "contactbook/pkg/jwt"

	"go.uber.org/zap"
)

var ErrInvalidCredentials error = errors.New("invalid credentials")
var ErrUserExists error = errors.New("user already exists")
var ErrUserNotFound error = errors.New("user not found")

const tokenExpiryHours = 2

// Auth orchestrates registration and login over the credential store, the
// password hasher and the token issuer.
type Auth struct {
	logs      *zap.SugaredLogger
	users     UserRepository
	jwtIssuer TokenIssuer
	hasher    PasswordHasher
}

func NewAuth(logger *zap.SugaredLogger, users UserRepository, jwt TokenIssuer, hasher PasswordHasher) *Auth {
	return &Auth{
		logs:      logger,
		users:     users,
		jwtIssuer: jwt,
		hasher:    hasher,
	}
}

// Register creates a new user and issues a token for it. A duplicate
// username fails with ErrUserExists whether it is caught by the lookup or by
// the unique index when two registrations race.
func (a *Auth) Register(ctx context.Context, msg RegisterMessage) (UserRecord, string, error) {
	_, err := a.users.GetUserByUsername(ctx, msg.Username)
	if err == nil {
		return UserRecord{}, "", ErrUserExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return UserRecord{}, "", fmt.Errorf("check existing user: %w", err)
	}

	digest, err := a.hasher.Hash(msg.Password)
	if err != nil {
		return UserRecord{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username:     msg.Username,
		PasswordHash: digest,
		Email:        msg.Email,
		Phone:        msg.Phone,
	}

	id, err := a.users.AddUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return UserRecord{}, "", ErrUserExists
		}
		return UserRecord{}, "", fmt.Errorf("add user: %w", err)
	}

	token, err := a.issueToken(id, msg.Email)
	if err != nil {
		return UserRecord{}, "", err
	}

	a.logs.Infow("user registered", "user_id", id, "username", msg.Username)

	record := UserRecord{
		ID:       id,
		Username: msg.Username,
		Email:    msg.Email,
		Phone:    msg.Phone,
	}
	return record, token, nil
}

// Login verifies the credentials and issues a token. An unknown username and
// a wrong password fail with the same ErrInvalidCredentials so the response
// reveals nothing about which part was wrong.
func (a *Auth) Login(ctx context.Context, msg LoginMessage) (UserRecord, string, error) {
	user, err := a.users.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, "", ErrInvalidCredentials
		}
		return UserRecord{}, "", fmt.Errorf("get user from db: %w", err)
	}

	if !a.hasher.Verify(msg.Password, user.PasswordHash) {
		return UserRecord{}, "", ErrInvalidCredentials
	}

	token, err := a.issueToken(user.ID, user.Email)
	if err != nil {
		return UserRecord{}, "", err
	}

	a.logs.Infow("user logged in", "user_id", user.ID, "username", user.Username)

	return userToRecord(user), token, nil
}

func (a *Auth) GetUsers(ctx context.Context) ([]UserRecord, error) {
	users, err := a.users.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	records := make([]UserRecord, len(users))
	for i, user := range users {
		records[i] = userToRecord(user)
	}
	return records, nil
}

func (a *Auth) GetUser(ctx context.Context, id uint) (UserRecord, error) {
	user, err := a.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user by id: %w", err)
	}

	return userToRecord(user), nil
}

func (a *Auth) issueToken(userID uint, email string) (string, error) {
	token := a.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		UserID:     userID,
		Email:      email,
		Expiration: tokenExpiryHours,
	})

	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func userToRecord(user repository.User) UserRecord {
	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
	}
}
