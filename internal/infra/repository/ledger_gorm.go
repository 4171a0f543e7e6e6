package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/psicoagenda/psico-scheduler/internal/models"
)

// --------------------------------------------------
// Ledger (implementa ledger.Store)
// --------------------------------------------------

// AppendEntry insere a entrada e mantém o contador materializado do
// cliente em sincronia, na mesma transação. O saldo nunca deriva do
// contador sozinho; BalanceOf sempre soma as entradas.
func (r *AppointmentGormRepository) AppendEntry(
	ctx context.Context,
	entry *models.LedgerEntry,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		return tx.
			Model(&models.Client{}).
			Where("id = ?", entry.ClientID).
			UpdateColumn(
				"points",
				gorm.Expr("points + ?", entry.Points),
			).Error
	})
}

func (r *AppointmentGormRepository) SumPoints(
	ctx context.Context,
	clientID uint,
) (int, error) {

	var sum int
	if err := r.db.WithContext(ctx).
		Model(&models.LedgerEntry{}).
		Where("client_id = ?", clientID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&sum).Error; err != nil {
		return 0, err
	}

	return sum, nil
}

func (r *AppointmentGormRepository) ListEntries(
	ctx context.Context,
	clientID uint,
) ([]models.LedgerEntry, error) {

	var entries []models.LedgerEntry
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
