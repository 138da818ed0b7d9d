package entity

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	UserTypeCollector = "collector"
	UserTypeDealer    = "dealer"
	UserTypeSociety   = "society"
)

// User is the profile document kept next to the identity provider account.
type User struct {
	ID             string `json:"id" firestore:"id"`
	Email          string `json:"email" firestore:"email"`
	Name           string `json:"name" firestore:"name"`
	UserType       string `json:"user_type" firestore:"userType"`
	Role           string `json:"role" firestore:"role"`
	State          string `json:"state,omitempty" firestore:"state,omitempty"`
	Experience     string `json:"experience,omitempty" firestore:"experience,omitempty"`
	ContactDetails string `json:"contact_details,omitempty" firestore:"contactDetails,omitempty"`
	CanSellStamps  bool   `json:"can_sell_stamps" firestore:"canSellStamps"`
	CanSellCoins   bool   `json:"can_sell_coins" firestore:"canSellCoins"`
	CanSellNotes   bool   `json:"can_sell_notes" firestore:"canSellNotes"`
	PhotoURL       string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
	Provider       string `json:"provider,omitempty" firestore:"provider,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName falls back to the email local part when no name was set.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	for i, r := range u.Email {
		if r == '@' {
			return u.Email[:i]
		}
	}
	return u.Email
}

// Public strips contact details for viewers other than the owner.
func (u *User) Public() *User {
	cp := *u
	cp.ContactDetails = ""
	cp.Email = ""
	return &cp
}

// ProfileUpdate carries the profile form. Nil fields are left untouched.
type ProfileUpdate struct {
	Name           *string
	UserType       *string
	State          *string
	Experience     *string
	ContactDetails *string
	PhotoURL       *string
	CanSellStamps  *bool
	CanSellCoins   *bool
	CanSellNotes   *bool
}

// Merge applies the non-nil, non-empty fields of p onto u.
func (u *User) Merge(p ProfileUpdate) {
	setString := func(dst *string, v *string) {
		if v != nil && *v != "" {
			*dst = *v
		}
	}
	setBool := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}

	setString(&u.Name, p.Name)
	setString(&u.UserType, p.UserType)
	setString(&u.State, p.State)
	setString(&u.Experience, p.Experience)
	setString(&u.ContactDetails, p.ContactDetails)
	setString(&u.PhotoURL, p.PhotoURL)
	setBool(&u.CanSellStamps, p.CanSellStamps)
	setBool(&u.CanSellCoins, p.CanSellCoins)
	setBool(&u.CanSellNotes, p.CanSellNotes)
}
