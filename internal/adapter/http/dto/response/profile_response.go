package response

import (
	"portal_expositor/internal/domain/entities"
	"portal_expositor/pkg/format"
)

// ProfileResponse is the owner profile with the display masks already applied.
type ProfileResponse struct {
	entities.OwnerMe
	DocumentMasked string `json:"documentMasked"`
	PhoneMasked    string `json:"phoneMasked,omitempty"`
}

func FromOwnerMe(o entities.OwnerMe) ProfileResponse {
	res := ProfileResponse{OwnerMe: o, DocumentMasked: format.MaskCpfCnpj(o.Document)}
	if o.Phone != nil {
		res.PhoneMasked = format.MaskPhoneBR(*o.Phone)
	}
	return res
}
