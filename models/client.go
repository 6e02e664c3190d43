package models

import "time"

// Client represents a client account. Appointments holds references to the
// appointments the client owns.
type Client struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	Appointments []string  `bson:"appointments,omitempty" json:"appointments,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (c *Client) AccountID() string      { return c.ID }
func (c *Client) AccountRole() Role      { return RoleClient }
func (c *Client) CredentialHash() string { return c.PasswordHash }

func (c *Client) PublicProfile() Profile {
	return Profile{
		ID:    c.ID,
		Role:  RoleClient,
		Name:  c.Name,
		Email: c.Email,
	}
}
