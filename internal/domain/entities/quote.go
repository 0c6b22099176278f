package entities

import "time"

// QuoteStatus represents the follow-up state of a persisted quote request.
//
// Domain notes:
//   - Quotes are priced manually by the sales team after submission, so the
//     server only ever assigns the initial status; transitions happen in the
//     back office, outside this service.

type QuoteStatus string

const (
	QuoteStatusPending QuoteStatus = "pending"
)

// HousingType enumerates the dwelling kinds offered by the quote funnel.
type HousingType string

const (
	HousingStudio    HousingType = "studio"
	HousingApartment HousingType = "apartment"
	HousingHouse     HousingType = "house"
	HousingVilla     HousingType = "villa"
	HousingOffice    HousingType = "office"
	HousingOther     HousingType = "other"
)

func (h HousingType) Valid() bool {
	switch h {
	case HousingStudio, HousingApartment, HousingHouse, HousingVilla, HousingOffice, HousingOther:
		return true
	}
	return false
}

func (h HousingType) Label() string {
	switch h {
	case HousingStudio:
		return "Studio"
	case HousingApartment:
		return "Appartement"
	case HousingHouse:
		return "Maison"
	case HousingVilla:
		return "Villa"
	case HousingOffice:
		return "Bureau"
	case HousingOther:
		return "Autre"
	}
	return string(h)
}

// Accessibility rates how easily the moving truck can reach an address.
type Accessibility string

const (
	AccessibilityEasy          Accessibility = "easy"
	AccessibilityModerate      Accessibility = "moderate"
	AccessibilityDifficult     Accessibility = "difficult"
	AccessibilityVeryDifficult Accessibility = "very_difficult"
)

func (a Accessibility) Valid() bool {
	switch a {
	case AccessibilityEasy, AccessibilityModerate, AccessibilityDifficult, AccessibilityVeryDifficult:
		return true
	}
	return false
}

func (a Accessibility) Label() string {
	switch a {
	case AccessibilityEasy:
		return "Facile"
	case AccessibilityModerate:
		return "Modéré"
	case AccessibilityDifficult:
		return "Difficile"
	case AccessibilityVeryDifficult:
		return "Très difficile"
	}
	return string(a)
}

// DateFlexibility expresses how negotiable the desired moving date is.
type DateFlexibility string

const (
	FlexibilityExact DateFlexibility = "exact"
	FlexibilityWeek  DateFlexibility = "week"
	FlexibilityMonth DateFlexibility = "month"
)

func (f DateFlexibility) Valid() bool {
	switch f {
	case FlexibilityExact, FlexibilityWeek, FlexibilityMonth:
		return true
	}
	return false
}

func (f DateFlexibility) Label() string {
	switch f {
	case FlexibilityExact:
		return "Date exacte"
	case FlexibilityWeek:
		return "±1 semaine"
	case FlexibilityMonth:
		return "±1 mois"
	}
	return string(f)
}

// TimeSlot is the preferred window on moving day.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotFlexible  TimeSlot = "flexible"
)

func (s TimeSlot) Valid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotFlexible:
		return true
	}
	return false
}

func (s TimeSlot) Label() string {
	switch s {
	case SlotMorning:
		return "Matin"
	case SlotAfternoon:
		return "Après-midi"
	case SlotFlexible:
		return "Flexible"
	}
	return string(s)
}

// BudgetRange buckets the customer's approximate budget in dirhams.
type BudgetRange string

const (
	BudgetUnder2000 BudgetRange = "0-2000"
	Budget2000To5k  BudgetRange = "2000-5000"
	Budget5kTo10k   BudgetRange = "5000-10000"
	BudgetOver10k   BudgetRange = "10000+"
)

func (b BudgetRange) Valid() bool {
	switch b {
	case BudgetUnder2000, Budget2000To5k, Budget5kTo10k, BudgetOver10k:
		return true
	}
	return false
}

// AdditionalService enumerates the optional add-on services.
type AdditionalService string

const (
	ServicePacking   AdditionalService = "packing"
	ServiceUnpacking AdditionalService = "unpacking"
	ServiceStorage   AdditionalService = "storage"
	ServiceCleaning  AdditionalService = "cleaning"
	ServiceAssembly  AdditionalService = "assembly"
	ServiceInsurance AdditionalService = "insurance"
)

func (s AdditionalService) Valid() bool {
	switch s {
	case ServicePacking, ServiceUnpacking, ServiceStorage, ServiceCleaning, ServiceAssembly, ServiceInsurance:
		return true
	}
	return false
}

func (s AdditionalService) Label() string {
	switch s {
	case ServicePacking:
		return "Emballage complet"
	case ServiceUnpacking:
		return "Déballage"
	case ServiceStorage:
		return "Stockage temporaire"
	case ServiceCleaning:
		return "Nettoyage final"
	case ServiceAssembly:
		return "Montage/Démontage"
	case ServiceInsurance:
		return "Assurance renforcée"
	}
	return string(s)
}

// Quote is a quote request persisted by the funnel.
//
// A quote starts as a client-owned draft (ID, CreatedAt and Status all zero);
// the repository assigns those three fields at persistence time and callers
// must never supply them.
type Quote struct {
	ID        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`

	HousingType HousingType `json:"housingType"`
	Surface     int         `json:"surface"`
	Floor       int         `json:"floor"`
	Bedrooms    int         `json:"bedrooms"`
	LivingRooms int         `json:"livingRooms"`
	Kitchens    int         `json:"kitchens"`
	Bathrooms   int         `json:"bathrooms"`

	FurnitureInventory []FurnitureItem `json:"furnitureInventory"`
	RoomInventory      *RoomInventory  `json:"roomInventory,omitempty"`

	DepartureAddress       string        `json:"departureAddress"`
	DepartureCity          string        `json:"departureCity"`
	DeparturePostal        string        `json:"departurePostal"`
	DepartureAccessibility Accessibility `json:"departureAccessibility"`
	ArrivalAddress         string        `json:"arrivalAddress"`
	ArrivalCity            string        `json:"arrivalCity"`
	ArrivalPostal          string        `json:"arrivalPostal"`
	ArrivalAccessibility   Accessibility `json:"arrivalAccessibility"`

	MovingDate      string          `json:"movingDate"`
	DateFlexibility DateFlexibility `json:"dateFlexibility"`
	TimeSlot        TimeSlot        `json:"timeSlot"`

	AdditionalServices []AdditionalService `json:"additionalServices"`
	BudgetRange        BudgetRange         `json:"budgetRange"`
	AdditionalComments string              `json:"additionalComments"`

	CreatedAt time.Time   `json:"createdAt"`
	Status    QuoteStatus `json:"status"`
}

// Inventory returns whichever inventory representation is active on the
// quote. Downstream consumers (email/WhatsApp templates) only ever see line
// items and never need to know which wizard variant produced them.
func (q Quote) Inventory() Inventory {
	if q.RoomInventory != nil {
		return q.RoomInventory
	}
	return FlatInventory(q.FurnitureInventory)
}
