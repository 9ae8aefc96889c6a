// Package schema holds the shared payload validator. Struct tags on the domain
// types are the declarative contract; this package runs them and turns the
// first failure into a readable message.
package schema

import (
	"errors"
	"fmt"
	"portal_expositor/pkg/format"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var ufPattern = regexp.MustCompile(`^[A-Z]{2}$`)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the process-wide validator with the portal tags registered.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		Register(instance)
	})
	return instance
}

// Register adds the portal tags to v and reports fields by their json name.
// It is also applied to gin's binding engine.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonName)
	_ = v.RegisterValidation("uf", func(fl validator.FieldLevel) bool {
		return ufPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("cpfcnpj", func(fl validator.FieldLevel) bool {
		return format.IsCpfOrCnpj(fl.Field().String())
	})
	_ = v.RegisterValidation("money_br", func(fl validator.FieldLevel) bool {
		return format.LooksLikeMoneyBR(fl.Field().String())
	})
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Validate runs the struct tags of v.
func Validate(v any) error {
	return Validator().Struct(v)
}

// Issue is one failed constraint.
type Issue struct {
	Field string
	Path  string
	Tag   string
	Param string
}

// Issues flattens a validation error. Any other error yields nil.
func Issues(err error) []Issue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Issue{
			Field: fe.Field(),
			Path:  trimRoot(fe.Namespace()),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

func trimRoot(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// Message renders an issue in pt-BR.
func (i Issue) Message() string {
	switch i.Tag {
	case "required":
		return fmt.Sprintf("%s: campo obrigatório.", i.Path)
	case "min", "gte":
		return fmt.Sprintf("%s: valor mínimo %s.", i.Path, i.Param)
	case "max", "lte":
		return fmt.Sprintf("%s: valor máximo %s.", i.Path, i.Param)
	case "len":
		return fmt.Sprintf("%s: tamanho deve ser %s.", i.Path, i.Param)
	case "email":
		return fmt.Sprintf("%s: e-mail inválido.", i.Path)
	case "oneof":
		return fmt.Sprintf("%s: deve ser um de [%s].", i.Path, i.Param)
	case "cpfcnpj":
		return fmt.Sprintf("%s: CPF (11) ou CNPJ (14) dígitos.", i.Path)
	default:
		return fmt.Sprintf("%s: valor inválido.", i.Path)
	}
}

// FirstMessage is the message of the first issue, or err's text when err is
// not a validation error.
func FirstMessage(err error) string {
	if issues := Issues(err); len(issues) > 0 {
		return issues[0].Message()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
