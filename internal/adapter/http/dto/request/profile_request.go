package request

import "portal_expositor/internal/domain/entities"

// UpdateProfileRequest accepts masked values ("(11) 98888-7777", "01310-100").
type UpdateProfileRequest struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	StallsDescription string `json:"stallsDescription"`

	ZipCode       string `json:"zipCode"`
	State         string `json:"state"`
	City          string `json:"city"`
	AddressNumber string `json:"addressNumber"`
	AddressFull   string `json:"addressFull"`

	PixKey             string `json:"pixKey"`
	BankName           string `json:"bankName"`
	BankAgency         string `json:"bankAgency"`
	BankAccount        string `json:"bankAccount"`
	BankHolderName     string `json:"bankHolderName"`
	BankHolderDocument string `json:"bankHolderDocument"`
}

func (r UpdateProfileRequest) ToEntity() entities.UpdateOwnerMe {
	return entities.UpdateOwnerMe{
		Name:               r.Name,
		Phone:              r.Phone,
		StallsDescription:  r.StallsDescription,
		ZipCode:            r.ZipCode,
		State:              r.State,
		City:               r.City,
		AddressNumber:      r.AddressNumber,
		AddressFull:        r.AddressFull,
		PixKey:             r.PixKey,
		BankName:           r.BankName,
		BankAgency:         r.BankAgency,
		BankAccount:        r.BankAccount,
		BankHolderName:     r.BankHolderName,
		BankHolderDocument: r.BankHolderDocument,
	}
}
