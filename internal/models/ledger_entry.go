package models

import "time"

// Entrada imutável do ledger de PsicoPontos. Estorno = nova entrada
// com sinal oposto, nunca alteração da original.
type LedgerEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Opcional: ajustes manuais não referenciam sessão alguma. Se a
	// sessão for expurgada a referência vira NULL, o histórico fica.
	AppointmentID *uint        `json:"appointment_id"`
	Appointment   *Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Points int    `gorm:"not null" json:"points"`
	Reason string `gorm:"size:100;not null" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
