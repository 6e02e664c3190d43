package models

import "time"

// Session types for an appointment.
const (
	SessionVideoCall = "video_call"
	SessionChat      = "chat"
	SessionEmail     = "email"
)

// Appointment statuses.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
	StatusMissed    = "missed"
)

// ValidSessionType reports whether t is a known session type.
func ValidSessionType(t string) bool {
	return t == SessionVideoCall || t == SessionChat || t == SessionEmail
}

// ValidStatus reports whether s is a known appointment status.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled, StatusMissed:
		return true
	}
	return false
}

// Appointment is a booked session between a client and a counselor.
// Date is "YYYY-MM-DD" and Time is "HH:MM"; the (counselorId, date, time)
// tuple is unique at the storage layer.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	CounselorID string    `bson:"counselorId" json:"counselorId"`
	ClientID    string    `bson:"clientId" json:"clientId"`
	SessionType string    `bson:"sessionType" json:"sessionType"`
	Date        string    `bson:"date" json:"date"`
	Time        string    `bson:"time" json:"time"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// StartsAt combines Date and Time into a wall-clock instant.
func (a Appointment) StartsAt() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.Time, time.Local)
}

// ScheduleRequest is the payload for scheduling an appointment.
type ScheduleRequest struct {
	CounselorID string `json:"counselorId"`
	ClientID    string `json:"clientId"`
	SessionType string `json:"sessionType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}
