package entities

import "time"

// ContactStatus tracks whether the back office has read a contact message.
type ContactStatus string

const (
	ContactStatusUnread ContactStatus = "unread"
)

// ServiceType is the service a contact message asks about.
type ServiceType string

const (
	ServiceTypeResidential ServiceType = "residential"
	ServiceTypeCorporate   ServiceType = "corporate"
	ServiceTypeStorage     ServiceType = "storage"
	ServiceTypePacking     ServiceType = "packing"
	ServiceTypeOther       ServiceType = "other"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceTypeResidential, ServiceTypeCorporate, ServiceTypeStorage, ServiceTypePacking, ServiceTypeOther:
		return true
	}
	return false
}

func (s ServiceType) Label() string {
	switch s {
	case ServiceTypeResidential:
		return "Déménagement résidentiel"
	case ServiceTypeCorporate:
		return "Déménagement entreprise"
	case ServiceTypeStorage:
		return "Stockage"
	case ServiceTypePacking:
		return "Emballage seul"
	case ServiceTypeOther:
		return "Autre"
	}
	return string(s)
}

// Contact is a free-form contact message. As with Quote, the repository
// assigns ID, CreatedAt and the initial Status.
type Contact struct {
	ID          int           `json:"id"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	ServiceType ServiceType   `json:"serviceType"`
	Message     string        `json:"message"`
	CreatedAt   time.Time     `json:"createdAt"`
	Status      ContactStatus `json:"status"`
}
