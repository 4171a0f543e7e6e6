package models

import "time"

const DefaultDurationMin = 50

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint     `json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	StartTime   time.Time `json:"start_time"`
	DurationMin int       `gorm:"default:50" json:"duration_min"`
	Value       float64   `json:"value"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	Type   string `gorm:"size:20;default:'standard'" json:"type"`

	ReminderSent bool `gorm:"default:false" json:"reminder_sent"`

	Notes        string `gorm:"size:255" json:"notes"`
	CancelReason string `gorm:"size:255" json:"cancel_reason"`

	CancelledAt     *time.Time `json:"cancelled_at"`
	CompletedAt     *time.Time `json:"completed_at"`
	RescheduledToID *uint      `json:"rescheduled_to_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMin) * time.Minute)
}
