package models

import "time"

// AvailabilitySlot is a counselor-declared interval of availability.
// Times are zero-padded 24-hour "HH:MM" strings so that lexicographic
// comparison matches chronological order; Date is "YYYY-MM-DD".
type AvailabilitySlot struct {
	Date      string `bson:"date" json:"date"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// Covers reports whether the slot covers the given date and time.
func (s AvailabilitySlot) Covers(date, timeOfDay string) bool {
	return s.Date == date && s.StartTime <= timeOfDay && timeOfDay <= s.EndTime
}

// Counselor represents a counselor account. Availability is denormalized
// into the document: per-counselor cardinality is small and slots are always
// read as a full set.
type Counselor struct {
	ID             string             `bson:"id" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	PasswordHash   string             `bson:"passwordHash" json:"-"`
	TokenHash      string             `bson:"tokenHash,omitempty" json:"-"`
	Specialization string             `bson:"specialization" json:"specialization"`
	Experience     int                `bson:"experience" json:"experience"`
	Availability   []AvailabilitySlot `bson:"availability" json:"availability"`
	Verified       bool               `bson:"verified" json:"verified"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (c *Counselor) AccountID() string      { return c.ID }
func (c *Counselor) AccountRole() Role      { return RoleCounselor }
func (c *Counselor) CredentialHash() string { return c.PasswordHash }

func (c *Counselor) PublicProfile() Profile {
	return Profile{
		ID:             c.ID,
		Role:           RoleCounselor,
		Name:           c.Name,
		Email:          c.Email,
		Specialization: c.Specialization,
		Experience:     c.Experience,
		Availability:   c.Availability,
		Verified:       c.Verified,
	}
}
