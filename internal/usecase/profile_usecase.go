package usecase

import (
	"context"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
	"portal_expositor/pkg/format"
	"portal_expositor/pkg/schema"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	titleProfileInvalid = "Campos obrigatórios pendentes"
	titleProfileSave    = "Erro ao salvar"
	msgProfileReview    = "Revise os campos do formulário."
)

var profileLabels = map[string]string{
	"name":               "Nome / Razão social",
	"phone":              "Telefone",
	"stallsDescription":  "Descrição da operação",
	"zipCode":            "CEP",
	"addressFull":        "Rua / Bairro (compacto)",
	"addressNumber":      "Número",
	"city":               "Cidade",
	"state":              "UF",
	"pixKey":             "Chave Pix",
	"bankAccountType":    "Tipo de conta",
	"bankName":           "Banco",
	"bankAgency":         "Agência",
	"bankAccount":        "Conta",
	"bankHolderName":     "Nome do titular",
	"bankHolderDocument": "Documento do titular",
}

// Fields sent as digits only. A length failure on them reads "inválido", not
// "incompleto".
var profileDigitFields = map[string]bool{
	"phone":              true,
	"zipCode":            true,
	"bankAgency":         true,
	"bankAccount":        true,
	"bankHolderDocument": true,
}

type IProfileUseCase interface {
	Get(ctx context.Context) (entities.OwnerMe, error)
	Update(ctx context.Context, input entities.UpdateOwnerMe) (entities.OwnerMe, error)
}

type ProfileUseCase struct {
	owners interfaces.IOwnerGateway
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(owners interfaces.IOwnerGateway) *ProfileUseCase {
	return &ProfileUseCase{owners: owners}
}

func (u *ProfileUseCase) Get(ctx context.Context) (entities.OwnerMe, error) {
	if _, err := ownerFrom(ctx); err != nil {
		return entities.OwnerMe{}, err
	}
	return u.owners.GetMe(ctx)
}

// Update normalizes and validates the whole profile before sending it. No field
// may be left empty.
func (u *ProfileUseCase) Update(ctx context.Context, input entities.UpdateOwnerMe) (entities.OwnerMe, error) {
	ownerID, err := ownerFrom(ctx)
	if err != nil {
		return entities.OwnerMe{}, err
	}

	input = NormalizeProfile(input)
	if err := schema.Validate(input); err != nil {
		vErr := profileValidationError(err)
		log.Info().Str("owner_id", ownerID).Strs("issues", vErr.Messages).Msg("[profile][usecase] update rejected")
		return entities.OwnerMe{}, vErr
	}

	me, err := u.owners.UpdateMe(ctx, input)
	if err != nil {
		log.Warn().Str("owner_id", ownerID).Err(err).Msg("[profile][usecase] update failed")
		return entities.OwnerMe{}, err
	}
	log.Info().Str("owner_id", ownerID).Msg("[profile][usecase] updated")
	return me, nil
}

// NormalizeProfile trims every text, keeps digits only where the backend
// expects them and upper-cases the UF. The account type is always CORRENTE.
func NormalizeProfile(in entities.UpdateOwnerMe) entities.UpdateOwnerMe {
	return entities.UpdateOwnerMe{
		Name:               strings.TrimSpace(in.Name),
		Phone:              format.OnlyDigits(in.Phone),
		StallsDescription:  strings.TrimSpace(in.StallsDescription),
		ZipCode:            format.OnlyDigits(in.ZipCode),
		State:              strings.ToUpper(strings.TrimSpace(in.State)),
		City:               strings.TrimSpace(in.City),
		AddressNumber:      strings.TrimSpace(in.AddressNumber),
		AddressFull:        strings.TrimSpace(in.AddressFull),
		PixKey:             strings.TrimSpace(in.PixKey),
		BankAccountType:    entities.BankAccountCorrente,
		BankName:           strings.TrimSpace(in.BankName),
		BankAgency:         format.OnlyDigits(in.BankAgency),
		BankAccount:        format.OnlyDigits(in.BankAccount),
		BankHolderName:     strings.TrimSpace(in.BankHolderName),
		BankHolderDocument: format.OnlyDigits(in.BankHolderDocument),
	}
}

func profileValidationError(err error) *ValidationError {
	issues := schema.Issues(err)
	if len(issues) == 0 {
		return &ValidationError{Title: titleProfileSave, Message: msgProfileReview}
	}
	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		messages = append(messages, profileIssueMessage(issue))
	}
	return newValidationError(titleProfileInvalid, messages)
}

func profileIssueMessage(issue schema.Issue) string {
	label, ok := profileLabels[issue.Field]
	if !ok {
		label = issue.Field
	}
	switch {
	case issue.Tag == "required":
		return label + " é obrigatório."
	case issue.Tag == "uf":
		return "UF inválida."
	case issue.Tag == "min" && !profileDigitFields[issue.Field]:
		return label + " está incompleto."
	default:
		return label + " inválido."
	}
}
