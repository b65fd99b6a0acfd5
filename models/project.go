package models

import (
	"gorm.io/gorm"
)

// Project groups tasks under an owning admin. Managers is the set of users
// allowed to create and oversee tasks inside the project; a project with no
// managers is valid (unassigned).
type Project struct {
	gorm.Model

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `json:"-"`

	Managers []User `gorm:"many2many:project_managers" json:"managers,omitempty"`
}

// HasManager reports whether the given user already appears in the managers
// set. Used to keep manager assignment idempotent.
func (p *Project) HasManager(userID uint) bool {
	for _, m := range p.Managers {
		if m.ID == userID {
			return true
		}
	}
	return false
}
