package models

import "time"

type Client struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProviderID uint `json:"provider_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	// Contador materializado dos PsicoPontos. Sempre igual à soma
	// das entradas do ledger; atualizado na mesma transação do append.
	Points            int  `gorm:"default:0" json:"psico_pontos"`
	CompletedSessions int  `gorm:"default:0" json:"completed_sessions"`
	Active            bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
