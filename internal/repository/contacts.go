package repository

import (
	"context"
	"errors"
	"fmt"

	"contactbook/internal/db"
)

var ErrContactNotFound error = errors.New("contact not found")

type ContactRepository struct {
	db Storage
}

func NewContactRepository(db Storage) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

func (r *ContactRepository) Migrate() error {
	err := r.db.MigrateTable(&Contact{})
	if err != nil {
		return fmt.Errorf("migrate contacts table: %w", err)
	}

	return nil
}

func (r *ContactRepository) AddContact(ctx context.Context, contact Contact) (uint, error) {
	contact.ID = 0
	err := r.db.InsertOne(ctx, &contact)
	if err != nil {
		return 0, fmt.Errorf("insert contact: %w", err)
	}

	return contact.ID, nil
}

func (r *ContactRepository) GetContact(ctx context.Context, id uint) (Contact, error) {
	var contact Contact

	err := r.db.GetOneBy(ctx, "id", id, &contact)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Contact{}, ErrContactNotFound
		}
		return Contact{}, fmt.Errorf("get contact by id: %w", err)
	}

	return contact, nil
}

func (r *ContactRepository) GetContacts(ctx context.Context) ([]Contact, error) {
	contacts := []Contact{}

	err := r.db.GetAll(ctx, &contacts)
	if err != nil {
		return nil, fmt.Errorf("get all contacts: %w", err)
	}

	return contacts, nil
}

// UpdateContact replaces the fields of an existing contact. When id does not
// exist the record is inserted as a new contact and the freshly assigned id
// is returned, the missing id is never forced onto the new row.
func (r *ContactRepository) UpdateContact(ctx context.Context, id uint, contact Contact) (uint, error) {
	var existing Contact

	err := r.db.GetOneBy(ctx, "id", id, &existing)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			contact.ID = 0
			if err := r.db.InsertOne(ctx, &contact); err != nil {
				return 0, fmt.Errorf("upsert contact: %w", err)
			}
			return contact.ID, nil
		}
		return 0, fmt.Errorf("get contact by id: %w", err)
	}

	contact.ID = id
	if err := r.db.SaveOne(ctx, &contact); err != nil {
		return 0, fmt.Errorf("update contact: %w", err)
	}

	return id, nil
}

// DeleteContact is idempotent, deleting an absent id is not an error.
func (r *ContactRepository) DeleteContact(ctx context.Context, id uint) error {
	err := r.db.DeleteByID(ctx, &Contact{}, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	return nil
}
