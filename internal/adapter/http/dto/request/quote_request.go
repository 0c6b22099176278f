package request

import "monauxiliaire/internal/domain/entities"

// QuoteCreateRequest is the payload of POST /api/quotes. Field names match the
// wizard's camelCase draft; `binding` covers presence only, enum membership is
// checked by the use case so the response can name the offending field.
type QuoteCreateRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`

	HousingType string `json:"housingType" binding:"required"`
	Surface     int    `json:"surface"`
	Floor       int    `json:"floor"`
	Bedrooms    int    `json:"bedrooms"`
	LivingRooms int    `json:"livingRooms"`
	Kitchens    int    `json:"kitchens"`
	Bathrooms   int    `json:"bathrooms"`

	FurnitureInventory []string                `json:"furnitureInventory"`
	RoomInventory      *entities.RoomInventory `json:"roomInventory"`

	DepartureAddress       string `json:"departureAddress" binding:"required"`
	DepartureCity          string `json:"departureCity" binding:"required"`
	DeparturePostal        string `json:"departurePostal"`
	DepartureAccessibility string `json:"departureAccessibility"`
	ArrivalAddress         string `json:"arrivalAddress" binding:"required"`
	ArrivalCity            string `json:"arrivalCity" binding:"required"`
	ArrivalPostal          string `json:"arrivalPostal"`
	ArrivalAccessibility   string `json:"arrivalAccessibility"`

	MovingDate      string `json:"movingDate"`
	DateFlexibility string `json:"dateFlexibility"`
	TimeSlot        string `json:"timeSlot"`

	AdditionalServices []string `json:"additionalServices"`
	BudgetRange        string   `json:"budgetRange"`
	AdditionalComments string   `json:"additionalComments"`
}

func (r QuoteCreateRequest) ToEntity() entities.Quote {
	furniture := make([]entities.FurnitureItem, 0, len(r.FurnitureInventory))
	for _, s := range r.FurnitureInventory {
		furniture = append(furniture, entities.FurnitureItem(s))
	}
	services := make([]entities.AdditionalService, 0, len(r.AdditionalServices))
	for _, s := range r.AdditionalServices {
		services = append(services, entities.AdditionalService(s))
	}
	return entities.Quote{
		FirstName:              r.FirstName,
		LastName:               r.LastName,
		Email:                  r.Email,
		Phone:                  r.Phone,
		HousingType:            entities.HousingType(r.HousingType),
		Surface:                r.Surface,
		Floor:                  r.Floor,
		Bedrooms:               r.Bedrooms,
		LivingRooms:            r.LivingRooms,
		Kitchens:               r.Kitchens,
		Bathrooms:              r.Bathrooms,
		FurnitureInventory:     furniture,
		RoomInventory:          r.RoomInventory,
		DepartureAddress:       r.DepartureAddress,
		DepartureCity:          r.DepartureCity,
		DeparturePostal:        r.DeparturePostal,
		DepartureAccessibility: entities.Accessibility(r.DepartureAccessibility),
		ArrivalAddress:         r.ArrivalAddress,
		ArrivalCity:            r.ArrivalCity,
		ArrivalPostal:          r.ArrivalPostal,
		ArrivalAccessibility:   entities.Accessibility(r.ArrivalAccessibility),
		MovingDate:             r.MovingDate,
		DateFlexibility:        entities.DateFlexibility(r.DateFlexibility),
		TimeSlot:               entities.TimeSlot(r.TimeSlot),
		AdditionalServices:     services,
		BudgetRange:            entities.BudgetRange(r.BudgetRange),
		AdditionalComments:     r.AdditionalComments,
	}
}
