package core

import (
	"context"

	"contactbook/internal/repository"
	tokenIssuer "contactbook/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserRepository . UserRepository
type UserRepository interface {
	AddUser(ctx context.Context, user repository.User) (uint, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, id uint) (repository.User, error)
	GetUsers(ctx context.Context) ([]repository.User, error)
}

//counterfeiter:generate -o fake -fake-name ContactRepository . ContactRepository
type ContactRepository interface {
	AddContact(ctx context.Context, contact repository.Contact) (uint, error)
	GetContact(ctx context.Context, id uint) (repository.Contact, error)
	GetContacts(ctx context.Context) ([]repository.Contact, error)
	UpdateContact(ctx context.Context, id uint, contact repository.Contact) (uint, error)
	DeleteContact(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}

//counterfeiter:generate -o fake -fake-name PasswordHasher . PasswordHasher
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, digest string) bool
}
