package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente del salón, sin login. El id no depende del teléfono.
type Client struct {
	ID string `gorm:"type:uuid;primaryKey" json:"cliente_id"`

	Name     string `gorm:"size:120;not null" json:"nombre"`
	WhatsApp string `gorm:"column:whatsapp;size:30;index" json:"whatsapp"`
	Email    string `gorm:"size:120" json:"email"`
	Notes    string `gorm:"type:text" json:"notas"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// DisplayName renders "Nombre – email", falling back to the name or the id.
func (c Client) DisplayName() string {
	switch {
	case c.Name != "" && c.Email != "":
		return c.Name + " – " + c.Email
	case c.Name != "":
		return c.Name
	case c.ID != "":
		return c.ID
	}
	return "Sin nombre"
}
