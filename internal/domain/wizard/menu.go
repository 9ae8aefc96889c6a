package wizard

import (
	"fmt"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/pkg/format"
	"slices"
	"strings"
	"unicode/utf8"
)

const exampleMoney = "Ex.: 12,50"

// ValidateMenu checks step 1. Every failure past the first rule names the
// offending category.
func ValidateMenu(cats []CategoryDraft) error {
	if len(cats) == 0 {
		return notice(StepMenu, titleMenu, "Adicione pelo menos 1 categoria para continuar.")
	}
	for _, c := range cats {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return notice(StepMenu, titleMenu, "Existe uma categoria sem nome. Preencha para continuar.")
		}
		if len(c.Products) == 0 {
			return notice(StepMenu, titleMenu, fmt.Sprintf("A categoria %q precisa ter pelo menos 1 produto.", name))
		}
		for _, p := range c.Products {
			pn := strings.TrimSpace(p.Name)
			if pn == "" {
				return notice(StepMenu, titleMenu, fmt.Sprintf("Existe produto sem nome na categoria %q.", name))
			}
			if !fitsProductName(pn) {
				return notice(StepMenu, titleMenu, fmt.Sprintf("Um produto em %q excede 40 caracteres.", name))
			}
			if !format.LooksLikeMoneyBR(p.Price) {
				return notice(StepMenu, titleMenu, fmt.Sprintf("Preço inválido em %q. %s", name, exampleMoney))
			}
		}
	}
	return nil
}

func fitsProductName(name string) bool {
	return utf8.RuneCountInString(name) <= entities.ProductNameMax
}

func validateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return notice(StepMenu, "Informe o nome da categoria", subtitleRequired)
	}
	return nil
}

func validateProduct(p ProductDraft) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return notice(StepMenu, "Preencha o nome do produto", subtitleRequired)
	}
	if !fitsProductName(name) {
		return notice(StepMenu, "Nome do produto muito grande", "Máximo de 40 caracteres.")
	}
	if !format.LooksLikeMoneyBR(p.Price) {
		return notice(StepMenu, "Preço inválido", exampleMoney)
	}
	return nil
}

func trimProduct(p ProductDraft) ProductDraft {
	return ProductDraft{Name: strings.TrimSpace(p.Name), Price: strings.TrimSpace(p.Price)}
}

// AddCategory appends an empty category.
func AddCategory(cats []CategoryDraft, name string) ([]CategoryDraft, error) {
	if err := validateCategoryName(name); err != nil {
		return cats, err
	}
	out := cloneMenu(cats)
	return append(out, CategoryDraft{Name: strings.TrimSpace(name), Products: []ProductDraft{}}), nil
}

func RenameCategory(cats []CategoryDraft, idx int, name string) ([]CategoryDraft, error) {
	if idx < 0 || idx >= len(cats) {
		return cats, ErrIndexOutOfRange
	}
	if err := validateCategoryName(name); err != nil {
		return cats, err
	}
	out := cloneMenu(cats)
	out[idx].Name = strings.TrimSpace(name)
	return out, nil
}

func RemoveCategory(cats []CategoryDraft, idx int) ([]CategoryDraft, error) {
	if idx < 0 || idx >= len(cats) {
		return cats, ErrIndexOutOfRange
	}
	return slices.Delete(cloneMenu(cats), idx, idx+1), nil
}

// AddProducts appends products to a category. Either every product is valid and
// all are added, or none is.
func AddProducts(cats []CategoryDraft, catIdx int, products []ProductDraft) ([]CategoryDraft, error) {
	if catIdx < 0 || catIdx >= len(cats) {
		return cats, ErrIndexOutOfRange
	}
	if len(products) == 0 {
		return cats, notice(StepMenu, "Preencha o nome do produto", subtitleRequired)
	}
	for _, p := range products {
		if err := validateProduct(p); err != nil {
			return cats, err
		}
	}
	out := cloneMenu(cats)
	for _, p := range products {
		out[catIdx].Products = append(out[catIdx].Products, trimProduct(p))
	}
	return out, nil
}

func EditProduct(cats []CategoryDraft, catIdx, prodIdx int, p ProductDraft) ([]CategoryDraft, error) {
	if catIdx < 0 || catIdx >= len(cats) || prodIdx < 0 || prodIdx >= len(cats[catIdx].Products) {
		return cats, ErrIndexOutOfRange
	}
	if err := validateProduct(p); err != nil {
		return cats, err
	}
	out := cloneMenu(cats)
	out[catIdx].Products[prodIdx] = trimProduct(p)
	return out, nil
}

func RemoveProduct(cats []CategoryDraft, catIdx, prodIdx int) ([]CategoryDraft, error) {
	if catIdx < 0 || catIdx >= len(cats) || prodIdx < 0 || prodIdx >= len(cats[catIdx].Products) {
		return cats, ErrIndexOutOfRange
	}
	out := cloneMenu(cats)
	out[catIdx].Products = slices.Delete(out[catIdx].Products, prodIdx, prodIdx+1)
	return out, nil
}
