package core

import (
	"context"
	"errors"
	"fmt"

	"contactbook/internal/repository"

	"go.uber.org/zap"
)

var ErrContactNotFound error = errors.New("contact not found")

type Contacts struct {
	logs *zap.SugaredLogger
	repo ContactRepository
}

func NewContacts(logger *zap.SugaredLogger, repo ContactRepository) *Contacts {
	return &Contacts{
		logs: logger,
		repo: repo,
	}
}

func (c *Contacts) AddContact(ctx context.Context, rec ContactRecord) (uint, error) {
	id, err := c.repo.AddContact(ctx, recordToContact(rec))
	if err != nil {
		return 0, fmt.Errorf("add contact: %w", err)
	}

	c.logs.Infow("contact added", "contact_id", id)
	return id, nil
}

func (c *Contacts) GetContact(ctx context.Context, id uint) (ContactRecord, error) {
	contact, err := c.repo.GetContact(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return ContactRecord{}, ErrContactNotFound
		}
		return ContactRecord{}, fmt.Errorf("get contact: %w", err)
	}

	return contactToRecord(contact), nil
}

func (c *Contacts) GetContacts(ctx context.Context) ([]ContactRecord, error) {
	contacts, err := c.repo.GetContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get contacts: %w", err)
	}

	records := make([]ContactRecord, len(contacts))
	for i, contact := range contacts {
		records[i] = contactToRecord(contact)
	}
	return records, nil
}

// UpdateContact returns the id of the stored record, which differs from the
// requested id only when the update fell back to inserting a new contact.
func (c *Contacts) UpdateContact(ctx context.Context, id uint, rec ContactRecord) (uint, error) {
	storedID, err := c.repo.UpdateContact(ctx, id, recordToContact(rec))
	if err != nil {
		return 0, fmt.Errorf("update contact: %w", err)
	}

	if storedID != id {
		c.logs.Infow("contact upserted", "requested_id", id, "contact_id", storedID)
	}
	return storedID, nil
}

func (c *Contacts) DeleteContact(ctx context.Context, id uint) error {
	if err := c.repo.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	c.logs.Infow("contact deleted", "contact_id", id)
	return nil
}

func contactToRecord(contact repository.Contact) ContactRecord {
	return ContactRecord{
		ID:      contact.ID,
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Address: contact.Address,
	}
}

func recordToContact(rec ContactRecord) repository.Contact {
	return repository.Contact{
		ID:      rec.ID,
		Name:    rec.Name,
		Email:   rec.Email,
		Phone:   rec.Phone,
		Address: rec.Address,
	}
}
