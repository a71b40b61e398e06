// Package models contains data structures for the catalog's domain models.
package models

import (
	"time"
)

// PricingTier is the closed set of cost models a tool can advertise.
type PricingTier string

// Supported pricing tiers
const (
	PricingFree     PricingTier = "free"
	PricingFreemium PricingTier = "freemium"
	PricingPaid     PricingTier = "paid"
	PricingOneTime  PricingTier = "one-time"
)

// PricingTiers lists every valid tier in display order.
var PricingTiers = []PricingTier{PricingFree, PricingFreemium, PricingPaid, PricingOneTime}

// Valid reports whether p is one of the known tiers.
func (p PricingTier) Valid() bool {
	switch p {
	case PricingFree, PricingFreemium, PricingPaid, PricingOneTime:
		return true
	}
	return false
}

// Tool is a catalog entry describing one AI product or service.
type Tool struct {
	ID               string      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name             string      `gorm:"not null" json:"name"`
	Description      string      `gorm:"type:text;not null" json:"description"`
	ShortDescription string      `gorm:"not null" json:"shortDescription"`
	Category         string      `gorm:"not null;index" json:"category"`
	Pricing          PricingTier `gorm:"type:varchar(16);not null;index" json:"pricing"`
	Price            *string     `json:"price"`
	Website          string      `gorm:"not null" json:"website"`
	ImageURL         *string     `json:"imageUrl"`
	Rating           float64     `gorm:"not null;default:0" json:"rating"`
	Featured         bool        `gorm:"not null;default:false;index" json:"featured"`
	SubmittedBy      *string     `json:"submittedBy"`
	CreatedAt        time.Time   `gorm:"index" json:"createdAt"`
}
