package request

import "monauxiliaire/internal/domain/entities"

// ContactCreateRequest is the payload of POST /api/contacts.
type ContactCreateRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message" binding:"required"`
}

func (r ContactCreateRequest) ToEntity() entities.Contact {
	return entities.Contact{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		ServiceType: entities.ServiceType(r.ServiceType),
		Message:     r.Message,
	}
}
