package payload

import (
	"contactbook/internal/core"

	"github.com/jellydator/validation"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (c ContactRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.Email, validation.Length(0, 255)),
		validation.Field(&c.Phone, validation.Length(0, 64)),
	)
}

func (c ContactRequest) ToRecord() core.ContactRecord {
	return core.ContactRecord{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}
