package dto

import (
	"hotelier/internal/domains/contact/model"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateContactRequest struct {
	Name    string `json:"name"    validate:"omitempty,max=100"`
	Email   string `json:"email"   validate:"omitempty,email,max=100"`
	Message string `json:"message" validate:"omitempty"`
}

func (c *CreateContactRequest) ToModel() model.Contact {
	return model.Contact{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: timezone.Now(),
	}
}

type UpdateContactRequest struct {
	Name    string `json:"name"    validate:"omitempty,max=100"`
	Email   string `json:"email"   validate:"omitempty,email,max=100"`
	Message string `json:"message" validate:"omitempty"`
}

// ToFields maps every editable column, including blank ones, so an update
// overwrites the full row the way the edit form submits it.
func (u *UpdateContactRequest) ToFields() map[string]any {
	return map[string]any{
		model.FieldName:    u.Name,
		model.FieldEmail:   u.Email,
		model.FieldMessage: u.Message,
	}
}

type ContactResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

func (r *ContactResponse) FromModel(model model.Contact) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Message = model.Message
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetContactsResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}

func (r *GetContactsResponse) FromModels(models []model.Contact) {
	r.Contacts = make([]ContactResponse, len(models))
	for i, mod := range models {
		r.Contacts[i].FromModel(mod)
	}
}
