package dto

// ProviderListQuery - query-параметры публичной выдачи
type ProviderListQuery struct {
	Category string `form:"category" validate:"omitempty,is-category"`
	Search   string `form:"search"`
}

// ProviderUpdateRequest - поля, которые провайдер может менять сам.
// Указатели отличают "не прислано" от пустого значения.
type ProviderUpdateRequest struct {
	Name           *string `json:"name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Whatsapp       *string `json:"whatsapp,omitempty"`
	Photo          *string `json:"photo,omitempty"`
	Location       *string `json:"location,omitempty"`
	Description    *string `json:"description,omitempty"`
	Services       *string `json:"services,omitempty"`
	Availability   *string `json:"availability,omitempty"`
	PriceRange     *string `json:"priceRange,omitempty"`
	IsAvailable    *bool   `json:"isAvailable,omitempty"`
	Certifications *string `json:"certifications,omitempty"`
	ServiceArea    *string `json:"serviceArea,omitempty"`
}
