package response

import "portal_expositor/internal/domain/entities"

type AddressResponse struct {
	ZipCode      string `json:"zipCode"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	AddressFull  string `json:"addressFull"`
}

func FromAddress(a entities.Address) AddressResponse {
	return AddressResponse{
		ZipCode:      a.ZipCode,
		Street:       a.Street,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		AddressFull:  a.AddressFull(),
	}
}
