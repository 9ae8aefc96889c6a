package request

import "portal_expositor/internal/domain/entities"

// PublicInterestRequest is bound without rules: the use case normalizes the
// masked inputs first and validates afterwards.
type PublicInterestRequest struct {
	PersonType        string  `json:"personType"`
	Document          string  `json:"document"`
	FullName          string  `json:"fullName"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	StallsDescription *string `json:"stallsDescription"`
}

func (r PublicInterestRequest) ToEntity() entities.PublicInterest {
	return entities.PublicInterest{
		PersonType:        entities.PersonType(r.PersonType),
		Document:          r.Document,
		FullName:          r.FullName,
		Email:             r.Email,
		Phone:             r.Phone,
		StallsDescription: r.StallsDescription,
	}
}
