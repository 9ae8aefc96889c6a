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

const titleInterestInvalid = "Revise o cadastro"

var interestLabels = map[string]string{
	"personType":        "Tipo de pessoa",
	"document":          "CPF/CNPJ",
	"fullName":          "Nome",
	"email":             "E-mail",
	"phone":             "Telefone",
	"stallsDescription": "Descrição das barracas",
}

type IInterestUseCase interface {
	Register(ctx context.Context, input entities.PublicInterest) (entities.PublicInterestResult, error)
}

// InterestUseCase forwards the public "quero expor" form.
type InterestUseCase struct {
	interests interfaces.IInterestGateway
}

var _ IInterestUseCase = (*InterestUseCase)(nil)

func NewInterestUseCase(interests interfaces.IInterestGateway) *InterestUseCase {
	return &InterestUseCase{interests: interests}
}

func (u *InterestUseCase) Register(ctx context.Context, input entities.PublicInterest) (entities.PublicInterestResult, error) {
	input = NormalizeInterest(input)
	if err := schema.Validate(input); err != nil {
		issues := schema.Issues(err)
		messages := make([]string, 0, len(issues))
		for _, issue := range issues {
			messages = append(messages, interestIssueMessage(issue))
		}
		return entities.PublicInterestResult{}, newValidationError(titleInterestInvalid, messages)
	}

	res, err := u.interests.Upsert(ctx, input)
	if err != nil {
		log.Warn().Int("document_len", len(input.Document)).Err(err).Msg("[interest][usecase] upsert failed")
		return entities.PublicInterestResult{}, err
	}
	log.Info().Str("owner_id", res.OwnerID).Msg("[interest][usecase] registered")
	return res, nil
}

// NormalizeInterest keeps digits only in document and phone, lower-cases the
// e-mail and drops an empty description.
func NormalizeInterest(in entities.PublicInterest) entities.PublicInterest {
	out := entities.PublicInterest{
		PersonType: entities.PersonType(strings.ToUpper(strings.TrimSpace(string(in.PersonType)))),
		Document:   format.OnlyDigits(in.Document),
		FullName:   strings.TrimSpace(in.FullName),
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:      format.OnlyDigits(in.Phone),
	}
	if in.StallsDescription != nil {
		if d := strings.TrimSpace(*in.StallsDescription); d != "" {
			out.StallsDescription = &d
		}
	}
	return out
}

func interestIssueMessage(issue schema.Issue) string {
	label, ok := interestLabels[issue.Field]
	if !ok {
		label = issue.Field
	}
	switch issue.Tag {
	case "required":
		return label + " é obrigatório."
	case "min":
		return label + " está incompleto."
	case "cpfcnpj":
		return "Informe um CPF (11 dígitos) ou CNPJ (14 dígitos)."
	default:
		return label + " inválido."
	}
}
