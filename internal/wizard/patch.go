package wizard

import "monauxiliaire/internal/domain/entities"

// Patch is a merge-style partial update of the draft: nil fields are left
// untouched, so each step only ever writes the slice of the draft it owns.
type Patch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string

	HousingType *entities.HousingType
	Surface     *int
	Floor       *int
	Bedrooms    *int
	LivingRooms *int
	Kitchens    *int
	Bathrooms   *int

	FurnitureInventory *[]entities.FurnitureItem

	DepartureAddress       *string
	DepartureCity          *string
	DeparturePostal        *string
	DepartureAccessibility *entities.Accessibility
	ArrivalAddress         *string
	ArrivalCity            *string
	ArrivalPostal          *string
	ArrivalAccessibility   *entities.Accessibility

	MovingDate      *string
	DateFlexibility *entities.DateFlexibility
	TimeSlot        *entities.TimeSlot

	AdditionalServices *[]entities.AdditionalService
	BudgetRange        *entities.BudgetRange
	AdditionalComments *string
}

// UpdateDraft shallow-merges a patch into the draft. No cross-field
// validation happens here; the submission API owns shape validation.
func (w *Wizard) UpdateDraft(p Patch) {
	d := &w.draft

	setString(&d.FirstName, p.FirstName)
	setString(&d.LastName, p.LastName)
	setString(&d.Email, p.Email)
	setString(&d.Phone, p.Phone)

	if p.HousingType != nil {
		d.HousingType = *p.HousingType
	}
	setInt(&d.Surface, p.Surface)
	setInt(&d.Floor, p.Floor)
	setInt(&d.Bedrooms, p.Bedrooms)
	setInt(&d.LivingRooms, p.LivingRooms)
	setInt(&d.Kitchens, p.Kitchens)
	setInt(&d.Bathrooms, p.Bathrooms)

	if p.FurnitureInventory != nil {
		d.FurnitureInventory = append([]entities.FurnitureItem(nil), (*p.FurnitureInventory)...)
	}

	setString(&d.DepartureAddress, p.DepartureAddress)
	setString(&d.DepartureCity, p.DepartureCity)
	setString(&d.DeparturePostal, p.DeparturePostal)
	if p.DepartureAccessibility != nil {
		d.DepartureAccessibility = *p.DepartureAccessibility
	}
	setString(&d.ArrivalAddress, p.ArrivalAddress)
	setString(&d.ArrivalCity, p.ArrivalCity)
	setString(&d.ArrivalPostal, p.ArrivalPostal)
	if p.ArrivalAccessibility != nil {
		d.ArrivalAccessibility = *p.ArrivalAccessibility
	}

	setString(&d.MovingDate, p.MovingDate)
	if p.DateFlexibility != nil {
		d.DateFlexibility = *p.DateFlexibility
	}
	if p.TimeSlot != nil {
		d.TimeSlot = *p.TimeSlot
	}

	if p.AdditionalServices != nil {
		d.AdditionalServices = append([]entities.AdditionalService(nil), (*p.AdditionalServices)...)
	}
	if p.BudgetRange != nil {
		d.BudgetRange = *p.BudgetRange
	}
	setString(&d.AdditionalComments, p.AdditionalComments)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// Pointer helpers for building patches.

func String(s string) *string { return &s }

func Int(n int) *int { return &n }
