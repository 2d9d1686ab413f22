package handler

import (
	"context"
	"net/http"

	"contactbook/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AuthService . AuthService
type AuthService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.UserRecord, string, error)
	Login(ctx context.Context, msg core.LoginMessage) (core.UserRecord, string, error)
	GetUsers(ctx context.Context) ([]core.UserRecord, error)
	GetUser(ctx context.Context, id uint) (core.UserRecord, error)
}

//counterfeiter:generate -o fake -fake-name ContactService . ContactService
type ContactService interface {
	AddContact(ctx context.Context, rec core.ContactRecord) (uint, error)
	GetContact(ctx context.Context, id uint) (core.ContactRecord, error)
	GetContacts(ctx context.Context) ([]core.ContactRecord, error)
	UpdateContact(ctx context.Context, id uint, rec core.ContactRecord) (uint, error)
	DeleteContact(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
