package models

import "time"

// Disponibilidade semanal: flags por dia + duas janelas diárias
// compartilhadas entre todos os dias de atendimento.
type Provider struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	Timezone string `gorm:"size:50" json:"timezone"`

	WorksSunday    bool `json:"works_sunday"`
	WorksMonday    bool `gorm:"default:true" json:"works_monday"`
	WorksTuesday   bool `gorm:"default:true" json:"works_tuesday"`
	WorksWednesday bool `gorm:"default:true" json:"works_wednesday"`
	WorksThursday  bool `gorm:"default:true" json:"works_thursday"`
	WorksFriday    bool `gorm:"default:true" json:"works_friday"`
	WorksSaturday  bool `json:"works_saturday"`

	// Janelas no formato "15:04". Vazio = meio período de folga.
	MorningStart   string `gorm:"size:5" json:"morning_start"`
	MorningEnd     string `gorm:"size:5" json:"morning_end"`
	AfternoonStart string `gorm:"size:5" json:"afternoon_start"`
	AfternoonEnd   string `gorm:"size:5" json:"afternoon_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Provider) WorksOn(weekday time.Weekday) bool {
	switch weekday {
	case time.Sunday:
		return p.WorksSunday
	case time.Monday:
		return p.WorksMonday
	case time.Tuesday:
		return p.WorksTuesday
	case time.Wednesday:
		return p.WorksWednesday
	case time.Thursday:
		return p.WorksThursday
	case time.Friday:
		return p.WorksFriday
	case time.Saturday:
		return p.WorksSaturday
	}
	return false
}
