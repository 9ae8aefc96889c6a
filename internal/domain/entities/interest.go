package entities

// PublicInterest is the first contact form filled by someone who wants to exhibit.
type PublicInterest struct {
	PersonType        PersonType `json:"personType" validate:"oneof=PF PJ"`
	Document          string     `json:"document" validate:"required,cpfcnpj"`
	FullName          string     `json:"fullName" validate:"required,min=2"`
	Email             string     `json:"email" validate:"required,email"`
	Phone             string     `json:"phone" validate:"required,min=8"`
	StallsDescription *string    `json:"stallsDescription,omitempty" validate:"omitempty,min=10"`
}

type PublicInterestResult struct {
	OwnerID string `json:"ownerId" validate:"required"`
}
