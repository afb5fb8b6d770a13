package models

import (
	"strings"
	"time"
)

type Preferences struct {
	Currency string `json:"currency"`
	Theme    string `json:"theme"`
}

type UserData struct {
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	IsLoggedIn  bool        `json:"isLoggedIn"`
	LoginTime   time.Time   `json:"loginTime"`
	Preferences Preferences `json:"preferences"`
}

type UserProfile struct {
	Nationality     string `json:"nationality"`
	PassportNumber  string `json:"passportNumber"`
	FrequentFlyerID string `json:"frequentFlyerId"`
	PreferredSeat   string `json:"preferredSeat"`
	PreferredClass  string `json:"preferredClass"`
	PaymentMode     string `json:"paymentMode"`
}

// Dashboard is the identity and profile merged for the profile page.
type Dashboard struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	UserProfile
}

// NameFromEmail uses the local part of an address as a display name.
func NameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}

// DefaultProfile returns the profile shown before anything was saved.
func DefaultProfile() UserProfile {
	return UserProfile{
		PreferredSeat:  "window",
		PreferredClass: string(ClassEconomy),
		PaymentMode:    "credit-card",
	}
}

// Merge overlays the non-empty fields of p onto base.
func (base UserProfile) Merge(p UserProfile) UserProfile {
	if p.Nationality != "" {
		base.Nationality = p.Nationality
	}
	if p.PassportNumber != "" {
		base.PassportNumber = p.PassportNumber
	}
	if p.FrequentFlyerID != "" {
		base.FrequentFlyerID = p.FrequentFlyerID
	}
	if p.PreferredSeat != "" {
		base.PreferredSeat = p.PreferredSeat
	}
	if p.PreferredClass != "" {
		base.PreferredClass = p.PreferredClass
	}
	if p.PaymentMode != "" {
		base.PaymentMode = p.PaymentMode
	}
	return base
}
