package appointment

import (
	"context"
	"time"

	"github.com/psicoagenda/psico-scheduler/internal/domain/ledger"
	"github.com/psicoagenda/psico-scheduler/internal/models"
)

// UnitOfWork abre o escopo transacional do caminho "verifica conflito,
// depois grava". O Repository e o Store recebidos por fn enxergam e
// gravam apenas dentro da transação; erro de fn desfaz tudo.
type UnitOfWork interface {
	InTx(ctx context.Context, fn func(repo Repository, points ledger.Store) error) error
}

type Repository interface {
	// -------- Provider --------
	GetProvider(
		ctx context.Context,
		id uint,
	) (*models.Provider, error)

	// LockProvider serializa agendamentos concorrentes do mesmo
	// profissional (SELECT ... FOR UPDATE dentro da transação).
	LockProvider(
		ctx context.Context,
		id uint,
	) (*models.Provider, error)

	// -------- Client --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	IncrementCompletedSessions(
		ctx context.Context,
		clientID uint,
	) error

	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// LockAppointment relê o agendamento com FOR UPDATE. Toda transição
	// de estado parte desta leitura: transições concorrentes sobre o
	// mesmo registro ficam serializadas na linha.
	LockAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListActiveAround devolve os candidatos a conflito: agendamentos
	// não cancelados do profissional com início em [from, to).
	ListActiveAround(
		ctx context.Context,
		providerID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	ListForPeriod(
		ctx context.Context,
		providerID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	// -------- Reminders --------
	FindDueForReminder(
		ctx context.Context,
		windowStart time.Time,
		windowEnd time.Time,
	) ([]models.Appointment, error)

	MarkReminderSent(
		ctx context.Context,
		appointmentID uint,
	) error
}
