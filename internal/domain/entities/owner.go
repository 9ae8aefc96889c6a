package entities

type PersonType string

const (
	PersonTypePF PersonType = "PF"
	PersonTypePJ PersonType = "PJ"
)

type BankAccountType string

const (
	BankAccountCorrente  BankAccountType = "CORRENTE"
	BankAccountPoupanca  BankAccountType = "POUPANCA"
	BankAccountPagamento BankAccountType = "PAGAMENTO"
)

// OwnerMe is the exhibitor profile read from GET /owners/me. Editable fields may
// come back null when the owner never filled them.
type OwnerMe struct {
	ID         string     `json:"id" validate:"required"`
	PersonType PersonType `json:"personType" validate:"oneof=PF PJ"`
	Document   string     `json:"document"`
	Email      *string    `json:"email"`

	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	StallsDescription *string `json:"stallsDescription"`

	ZipCode       *string `json:"zipCode"`
	AddressFull   *string `json:"addressFull"`
	AddressNumber *string `json:"addressNumber"`
	City          *string `json:"city"`
	State         *string `json:"state"`

	PixKey             *string          `json:"pixKey"`
	BankAccountType    *BankAccountType `json:"bankAccountType"`
	BankName           *string          `json:"bankName"`
	BankAgency         *string          `json:"bankAgency"`
	BankAccount        *string          `json:"bankAccount"`
	BankHolderName     *string          `json:"bankHolderName"`
	BankHolderDocument *string          `json:"bankHolderDocument"`
}

// UpdateOwnerMe is the PATCH /owners/me body. The portal never sends an empty
// field: every one of them is required once normalized.
type UpdateOwnerMe struct {
	Name              string `json:"name" validate:"required,min=2"`
	Phone             string `json:"phone" validate:"required,numeric,min=10,max=13"`
	StallsDescription string `json:"stallsDescription" validate:"required"`

	ZipCode       string `json:"zipCode" validate:"required,numeric,len=8"`
	State         string `json:"state" validate:"required,uf"`
	City          string `json:"city" validate:"required"`
	AddressNumber string `json:"addressNumber" validate:"required"`
	AddressFull   string `json:"addressFull" validate:"required"`

	PixKey             string          `json:"pixKey" validate:"required"`
	BankAccountType    BankAccountType `json:"bankAccountType" validate:"oneof=CORRENTE POUPANCA PAGAMENTO"`
	BankName           string          `json:"bankName" validate:"required"`
	BankAgency         string          `json:"bankAgency" validate:"required,numeric,min=3,max=8"`
	BankAccount        string          `json:"bankAccount" validate:"required,numeric,min=4,max=20"`
	BankHolderName     string          `json:"bankHolderName" validate:"required"`
	BankHolderDocument string          `json:"bankHolderDocument" validate:"required,numeric,cpfcnpj"`
}

// Address is the autofill result of a postal code lookup.
type Address struct {
	ZipCode      string `json:"zipCode"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// AddressFull joins street and neighborhood the way the profile stores them.
func (a Address) AddressFull() string {
	switch {
	case a.Street != "" && a.Neighborhood != "":
		return a.Street + " - " + a.Neighborhood
	case a.Street != "":
		return a.Street
	default:
		return a.Neighborhood
	}
}
