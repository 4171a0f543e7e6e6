package dto

import "time"

type AppointmentListDTO struct {
	ID           uint      `json:"id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	DurationMin  int       `json:"duration_min"`
	Status       string    `json:"status"`
	Type         string    `json:"type"`
	ClientName   string    `json:"client_name"`
	ReminderSent bool      `json:"reminder_sent"`
}
