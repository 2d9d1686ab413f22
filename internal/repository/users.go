package repository

import (
	"context"
	"errors"
	"fmt"

	"contactbook/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already taken")

type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Migrate() error {
	err := r.db.MigrateTable(&User{})
	if err != nil {
		return fmt.Errorf("migrate users table: %w", err)
	}

	return nil
}

// AddUser relies on the unique index on username, two racing registrations
// for the same name lose deterministically with ErrUsernameTaken.
func (r *UserRepository) AddUser(ctx context.Context, user User) (uint, error) {
	err := r.db.InsertOne(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return user.ID, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uint) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]User, error) {
	users := []User{}

	err := r.db.GetAll(ctx, &users)
	if err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}

	return users, nil
}
