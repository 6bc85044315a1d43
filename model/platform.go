package model

import (
	"time"
)

// AdminRef is a reference to an admin identity on a platform.
// Only the email is stored in the database, the token lives in the keyring.
type AdminRef struct {
	Email     string `json:"email"`
	IsDefault bool   `json:"is_default,omitempty"`
}

type AdminRefs []AdminRef

// Platform represents a Kids Planet backend this client talks to.
// Admin tokens are stored separately in the system keyring.
type Platform struct {
	Name             string    `json:"name"`
	BaseURL          string    `json:"base_url"`
	AdminRefs        AdminRefs `json:"admin_refs,omitempty"`
	DefaultAdminMail string    `json:"default_admin_email,omitempty"`
	LastLogin        time.Time `json:"last_login,omitempty"`
}

type Platforms []Platform

// GetDefaultAdminRef returns the default admin reference for a platform
func (p *Platform) GetDefaultAdminRef() *AdminRef {
	// If a default email is set, find it
	if p.DefaultAdminMail != "" {
		for i := range p.AdminRefs {
			if p.AdminRefs[i].Email == p.DefaultAdminMail {
				return &p.AdminRefs[i]
			}
		}
	}

	// Otherwise, find first ref marked as default
	for i := range p.AdminRefs {
		if p.AdminRefs[i].IsDefault {
			return &p.AdminRefs[i]
		}
	}

	if len(p.AdminRefs) > 0 {
		return &p.AdminRefs[0]
	}

	return nil
}

// AddOrUpdateAdminRef adds a new admin reference or updates an existing one
// and makes it the default.
// Note: The actual token should be stored separately in the keyring.
func (p *Platform) AddOrUpdateAdminRef(email string) {
	found := false
	for i := range p.AdminRefs {
		if p.AdminRefs[i].Email == email {
			found = true
			break
		}
	}

	if !found {
		p.AdminRefs = append(p.AdminRefs, AdminRef{
			Email: email,
		})
	}

	p.DefaultAdminMail = email
}

// RemoveAdminRef removes an admin reference by email
func (p *Platform) RemoveAdminRef(email string) {
	for i := range p.AdminRefs {
		if p.AdminRefs[i].Email == email {
			p.AdminRefs = append(p.AdminRefs[:i], p.AdminRefs[i+1:]...)
			break
		}
	}

	// If the removed ref was the default, pick a new default
	if p.DefaultAdminMail == email {
		p.DefaultAdminMail = ""
		if len(p.AdminRefs) > 0 {
			p.DefaultAdminMail = p.AdminRefs[0].Email
		}
	}
}

// HasAdminRef checks if an admin reference with the given email exists
func (p *Platform) HasAdminRef(email string) bool {
	for _, ref := range p.AdminRefs {
		if ref.Email == email {
			return true
		}
	}
	return false
}

// AdminEmails returns all admin emails known for this platform
func (p *Platform) AdminEmails() []string {
	emails := make([]string, len(p.AdminRefs))
	for i, ref := range p.AdminRefs {
		emails[i] = ref.Email
	}
	return emails
}
