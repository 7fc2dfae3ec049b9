package settings

import "strings"

// Day is one of the seven weekday keys used in business-hour ranges.
type Day string

const (
	Sunday    Day = "sunday"
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
)

var allDays = map[Day]bool{
	Sunday: true, Monday: true, Tuesday: true, Wednesday: true,
	Thursday: true, Friday: true, Saturday: true,
}

func ParseDay(s string) (Day, bool) {
	d := Day(strings.ToLower(strings.TrimSpace(s)))
	return d, allDays[d]
}

// WhatsAppNumbers holds the order-placement numbers per item type.
type WhatsAppNumbers struct {
	Products string `firestore:"products" json:"products"`
	Crafts   string `firestore:"crafts" json:"crafts"`
}

// ForType returns the number configured for an item type collection name.
func (n WhatsAppNumbers) ForType(typ string) string {
	switch typ {
	case "crafts":
		return n.Crafts
	default:
		return n.Products
	}
}

func DefaultWhatsAppNumbers() WhatsAppNumbers {
	return WhatsAppNumbers{}
}

// ContactInfo is the storefront contact card.
type ContactInfo struct {
	Phone          string `firestore:"phone" json:"phone"`
	Email          string `firestore:"email" json:"email"`
	Address        string `firestore:"address" json:"address"`
	AddressAr      string `firestore:"addressAr" json:"addressAr"`
	WhatsappNumber string `firestore:"whatsappNumber" json:"whatsappNumber"`
}

func DefaultContactInfo() ContactInfo {
	return ContactInfo{}
}

// BusinessPeriod is a day-range with an open/close time pair. When IsClosed
// is set the time fields are kept empty.
type BusinessPeriod struct {
	Start    Day    `firestore:"start" json:"start"`
	End      Day    `firestore:"end" json:"end"`
	Open     string `firestore:"open" json:"open"`
	Close    string `firestore:"close" json:"close"`
	IsClosed bool   `firestore:"isClosed" json:"isClosed"`
}

// BusinessHours is the ordered list of periods as displayed; no overlap
// checking is done.
type BusinessHours struct {
	Periods []BusinessPeriod `firestore:"periods" json:"periods"`
}

func DefaultBusinessHours() BusinessHours {
	return BusinessHours{Periods: []BusinessPeriod{{
		Start: Sunday,
		End:   Thursday,
		Open:  "09:00",
		Close: "18:00",
	}}}
}

type WhatsAppNumbersInput struct {
	Products *string `json:"products,omitempty"`
	Crafts   *string `json:"crafts,omitempty"`
}

type ContactInfoInput struct {
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Address        *string `json:"address,omitempty"`
	AddressAr      *string `json:"addressAr,omitempty"`
	WhatsappNumber *string `json:"whatsappNumber,omitempty"`
}

type BusinessHoursInput struct {
	Periods []BusinessPeriod `json:"periods" validate:"required,min=1"`
}
