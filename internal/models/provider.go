package models

import "time"

// Provider - исполнитель услуг.
// Инвариант: провайдер виден в публичной выдаче тогда и только тогда,
// когда Status == verified. Для "featured" дополнительно требуются
// IsPremium и IsAvailable.
type Provider struct {
	BaseModel
	Name           string         `gorm:"not null" json:"name"`
	Email          string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string         `gorm:"not null" json:"-"`
	Phone          string         `gorm:"not null" json:"phone"`
	Whatsapp       string         `gorm:"not null" json:"whatsapp"`
	Photo          string         `json:"photo,omitempty"`
	Category       string         `gorm:"not null;index" json:"category"`
	Location       string         `gorm:"not null" json:"location"`
	Description    string         `gorm:"not null" json:"description"`
	Services       string         `gorm:"not null" json:"services"`
	Availability   string         `gorm:"not null" json:"availability"`
	PriceRange     string         `gorm:"not null" json:"priceRange"`
	IsAvailable    bool           `gorm:"default:false" json:"isAvailable"`
	IsPremium      bool           `gorm:"default:false" json:"isPremium"`
	Certifications string         `json:"certifications,omitempty"`
	ServiceArea    string         `json:"serviceArea,omitempty"`
	Rating         float64        `gorm:"default:0" json:"rating"`
	ReviewCount    int            `gorm:"default:0" json:"reviewCount"`
	Status         ProviderStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	VerifiedAt     *time.Time     `json:"verifiedAt,omitempty"`
}

// IsFeatured сообщает, проходит ли провайдер в featured-выдачу
func (p *Provider) IsFeatured() bool {
	return p.IsPremium && p.IsAvailable && p.Status == ProviderStatusVerified
}
