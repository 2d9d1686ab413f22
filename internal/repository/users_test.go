package repository_test

import (
	"context"
	"errors"

	"contactbook/internal/db"
	"contactbook/internal/repository"
	"contactbook/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserRepository", func() {
	var (
		fakeStorage *fake.Storage
		ctx         context.Context

		repo *repository.UserRepository

		fakeErr error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		ctx = context.Background()

		repo = repository.NewUserRepository(fakeStorage)

		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		It("should migrate the users table", func() {
			Expect(repo.Migrate()).To(Succeed())

			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			args := fakeStorage.MigrateTableArgsForCall(0)
			Expect(args).To(HaveLen(1))
			Expect(args[0]).To(BeAssignableToTypeOf(&repository.User{}))
		})

		It("should return migration error", func() {
			fakeStorage.MigrateTableReturns(fakeErr)

			Expect(repo.Migrate()).To(MatchError(fakeErr))
		})
	})

	Describe("AddUser", func() {
		var (
			user repository.User
			id   uint
			err  error
		)

		BeforeEach(func() {
			user = repository.User{
				Username:     "alice",
				PasswordHash: "hashed-password",
				Email:        "alice@example.com",
			}

			fakeStorage.InsertOneCalls(func(_ context.Context, record any) error {
				record.(*repository.User).ID = 42
				return nil
			})
		})

		JustBeforeEach(func() {
			id, err = repo.AddUser(ctx, user)
		})

		When("the insert succeeds", func() {
			It("should return the assigned id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal(uint(42)))

				Expect(fakeStorage.InsertOneCallCount()).To(Equal(1))
				_, argRecord := fakeStorage.InsertOneArgsForCall(0)
				Expect(argRecord.(*repository.User).Username).To(Equal("alice"))
			})
		})

		When("the username collides with the unique index", func() {
			BeforeEach(func() {
				fakeStorage.InsertOneReturns(db.ErrDuplicateKey)
			})

			It("should return username taken error", func() {
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertOneReturns(fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByCalls(func(_ context.Context, _ string, _ any, entity any) error {
					*entity.(*repository.User) = repository.User{ID: 1, Username: "alice"}
					return nil
				})
			})

			It("should look the user up by username", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(1)))

				_, argColumn, argValue, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(argColumn).To(Equal("username"))
				Expect(argValue).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByID", func() {
		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				_, err := repo.GetUserByID(ctx, 9)
				Expect(err).To(MatchError(repository.ErrUserNotFound))

				_, argColumn, argValue, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(argColumn).To(Equal("id"))
				Expect(argValue).To(Equal(uint(9)))
			})
		})
	})

	Describe("GetUsers", func() {
		When("users exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllCalls(func(_ context.Context, entities any) error {
					*entities.(*[]repository.User) = []repository.User{
						{ID: 1, Username: "alice"},
						{ID: 2, Username: "bob"},
					}
					return nil
				})
			})

			It("should return all users", func() {
				users, err := repo.GetUsers(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(HaveLen(2))
			})
		})

		When("the listing fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllReturns(fakeErr)
			})

			It("should return error", func() {
				_, err := repo.GetUsers(ctx)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
