package domain

import "time"

// ContactInfo holds the company contact details shown on the site.
// Only the first row by id is ever read or written.
type ContactInfo struct {
	ID           int64     `json:"id,omitempty"`
	Phone1       string    `json:"phone1"`
	Phone2       string    `json:"phone2,omitempty"`
	Email1       string    `json:"email1"`
	Email2       string    `json:"email2,omitempty"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	FacebookURL  string    `json:"facebook_url,omitempty"`
	TwitterURL   string    `json:"twitter_url,omitempty"`
	InstagramURL string    `json:"instagram_url,omitempty"`
	LinkedInURL  string    `json:"linkedin_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ContactInfoForm is the admin submission for the contact details.
type ContactInfoForm struct {
	Phone1       string `json:"phone1" validate:"required,max=50"`
	Phone2       string `json:"phone2" validate:"omitempty,max=50"`
	Email1       string `json:"email1" validate:"required,email"`
	Email2       string `json:"email2" validate:"omitempty,email"`
	AddressLine1 string `json:"address_line1" validate:"required,max=200"`
	AddressLine2 string `json:"address_line2" validate:"omitempty,max=200"`
	FacebookURL  string `json:"facebook_url" validate:"omitempty,url"`
	TwitterURL   string `json:"twitter_url" validate:"omitempty,url"`
	InstagramURL string `json:"instagram_url" validate:"omitempty,url"`
	LinkedInURL  string `json:"linkedin_url" validate:"omitempty,url"`
}

// DefaultContactInfo is served when no contact row can be read.
func DefaultContactInfo(now time.Time) ContactInfo {
	return ContactInfo{
		ID:           1,
		Phone1:       "+123 456 7890",
		Phone2:       "+123 456 7891",
		Email1:       "info@mjclservicios.com",
		Email2:       "ventas@mjclservicios.com",
		AddressLine1: "Av. Principal #123",
		AddressLine2: "Ciudad Capital",
		FacebookURL:  "https://facebook.com/mjclservicios",
		TwitterURL:   "https://twitter.com/mjclservicios",
		InstagramURL: "https://instagram.com/mjclservicios",
		LinkedInURL:  "https://linkedin.com/company/mjclservicios",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
