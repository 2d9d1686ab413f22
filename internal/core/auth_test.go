package core_test

import (
	"context"
	"errors"

	"contactbook/internal/core"
	"contactbook/internal/core/fake"
	"contactbook/internal/repository"
	tokenIssuer "contactbook/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Auth", func() {
	var (
		fakeUsers  *fake.UserRepository
		fakeJWT    *fake.TokenIssuer
		fakeHasher *fake.PasswordHasher
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		auth *core.Auth

		fakeErr error
	)

	BeforeEach(func() {
		fakeUsers = new(fake.UserRepository)
		fakeJWT = new(fake.TokenIssuer)
		fakeHasher = new(fake.PasswordHasher)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		auth = core.NewAuth(fakeLogger, fakeUsers, fakeJWT, fakeHasher)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg      core.RegisterMessage
			user     core.UserRecord
			token    string
			err      error
			genToken *jwt.Token
		)

		BeforeEach(func() {
			genToken = jwt.New(jwt.SigningMethodHS512)

			msg = core.RegisterMessage{
				Username: "alice",
				Email:    "alice@example.com",
				Phone:    "555-0101",
				Password: "testpass",
			}

			fakeUsers.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			fakeHasher.HashReturns("hashed-password", nil)
			fakeUsers.AddUserReturns(7, nil)
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			user, token, err = auth.Register(ctx, msg)
		})

		When("registration succeeds", func() {
			It("should store the user and return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))
				Expect(user.ID).To(Equal(uint(7)))
				Expect(user.Username).To(Equal("alice"))

				Expect(fakeHasher.HashCallCount()).To(Equal(1))
				Expect(fakeHasher.HashArgsForCall(0)).To(Equal("testpass"))

				Expect(fakeUsers.AddUserCallCount()).To(Equal(1))
				_, argUser := fakeUsers.AddUserArgsForCall(0)
				Expect(argUser.Username).To(Equal("alice"))
				Expect(argUser.PasswordHash).To(Equal("hashed-password"))
				Expect(argUser.Email).To(Equal("alice@example.com"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					UserID:     7,
					Email:      "alice@example.com",
					Expiration: 2,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("username is already taken", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByUsernameReturns(repository.User{
					ID:       3,
					Username: "alice",
				}, nil)
			})

			It("should return user exists error without touching the password", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
				Expect(fakeHasher.HashCallCount()).To(Equal(0))
				Expect(fakeUsers.AddUserCallCount()).To(Equal(0))
			})
		})

		When("the insert loses a registration race", func() {
			BeforeEach(func() {
				fakeUsers.AddUserReturns(0, repository.ErrUsernameTaken)
			})

			It("should return user exists error", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the existence check fails", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return the storage error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeUsers.AddUserCallCount()).To(Equal(0))
			})
		})

		When("hashing fails", func() {
			BeforeEach(func() {
				fakeHasher.HashReturns("", fakeErr)
			})

			It("should return the hashing error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeUsers.AddUserCallCount()).To(Equal(0))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			msg      core.LoginMessage
			user     core.UserRecord
			token    string
			err      error
			genToken *jwt.Token
		)

		BeforeEach(func() {
			genToken = jwt.New(jwt.SigningMethodHS512)

			msg = core.LoginMessage{
				Username: "alice",
				Password: "testpass",
			}

			fakeUsers.GetUserByUsernameReturns(repository.User{
				ID:           7,
				Username:     "alice",
				PasswordHash: "hashed-password",
				Email:        "alice@example.com",
			}, nil)
			fakeHasher.VerifyReturns(true)
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			user, token, err = auth.Login(ctx, msg)
		})

		When("credentials are correct", func() {
			It("should return the user and a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))
				Expect(user.ID).To(Equal(uint(7)))
				Expect(user.Username).To(Equal("alice"))

				Expect(fakeHasher.VerifyCallCount()).To(Equal(1))
				argPass, argDigest := fakeHasher.VerifyArgsForCall(0)
				Expect(argPass).To(Equal("testpass"))
				Expect(argDigest).To(Equal("hashed-password"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					UserID:     7,
					Email:      "alice@example.com",
					Expiration: 2,
				}))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeHasher.VerifyCallCount()).To(Equal(0))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeHasher.VerifyReturns(false)
			})

			It("should return the same invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return the storage error, not invalid credentials", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(errors.Is(err, core.ErrInvalidCredentials)).To(BeFalse())
			})
		})
	})

	Describe("GetUsers", func() {
		var (
			records []core.UserRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = auth.GetUsers(ctx)
		})

		When("users exist", func() {
			BeforeEach(func() {
				fakeUsers.GetUsersReturns([]repository.User{
					{ID: 1, Username: "alice", PasswordHash: "h1"},
					{ID: 2, Username: "bob", PasswordHash: "h2"},
				}, nil)
			})

			It("should return records without password hashes", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].Username).To(Equal("alice"))
				Expect(records[1].ID).To(Equal(uint(2)))
			})
		})

		When("the listing fails", func() {
			BeforeEach(func() {
				fakeUsers.GetUsersReturns(nil, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUser", func() {
		var (
			record core.UserRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = auth.GetUser(ctx, 7)
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByIDReturns(repository.User{
					ID:       7,
					Username: "alice",
				}, nil)
			})

			It("should return the user record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(7)))
				_, argID := fakeUsers.GetUserByIDArgsForCall(0)
				Expect(argID).To(Equal(uint(7)))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})
})
