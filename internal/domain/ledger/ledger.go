package ledger

import (
	"context"

	"github.com/psicoagenda/psico-scheduler/internal/httperr"
	"github.com/psicoagenda/psico-scheduler/internal/models"
)

const DefaultRewardThreshold = 10

// Store persiste o histórico append-only de PsicoPontos.
type Store interface {
	// AppendEntry insere a entrada e soma o delta no contador
	// materializado do cliente, na mesma transação.
	AppendEntry(ctx context.Context, entry *models.LedgerEntry) error

	SumPoints(ctx context.Context, clientID uint) (int, error)

	ListEntries(ctx context.Context, clientID uint) ([]models.LedgerEntry, error)
}

// Service concentra as regras do ledger: histórico imutável, saldo
// derivado da soma das entradas e resgate de sessão gratuita.
type Service struct {
	store     Store
	threshold int
}

func NewService(store Store, threshold int) *Service {
	if threshold <= 0 {
		threshold = DefaultRewardThreshold
	}
	return &Service{
		store:     store,
		threshold: threshold,
	}
}

func (s *Service) Threshold() int {
	return s.threshold
}

// Record acrescenta uma entrada ao histórico. Delta zero é rejeitado:
// não existe movimentação nula no extrato.
func (s *Service) Record(
	ctx context.Context,
	clientID uint,
	delta int,
	reason string,
	appointmentID *uint,
) (*models.LedgerEntry, error) {

	if delta == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDelta)
	}

	entry := &models.LedgerEntry{
		ClientID:      clientID,
		AppointmentID: appointmentID,
		Points:        delta,
		Reason:        reason,
	}

	if err := s.store.AppendEntry(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *Service) BalanceOf(ctx context.Context, clientID uint) (int, error) {
	return s.store.SumPoints(ctx, clientID)
}

func (s *Service) IsRewardEligible(ctx context.Context, clientID uint) (bool, error) {
	balance, err := s.BalanceOf(ctx, clientID)
	if err != nil {
		return false, err
	}
	return balance >= s.threshold, nil
}

// Redeem debita o limiar de pontos para uma sessão gratuita. A
// elegibilidade não consome pontos; só o resgate debita.
func (s *Service) Redeem(
	ctx context.Context,
	clientID uint,
	appointmentID uint,
) (*models.LedgerEntry, error) {

	balance, err := s.BalanceOf(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if balance < s.threshold {
		return nil, httperr.ErrBusiness(httperr.CodeInsufficientPoints)
	}

	return s.Record(
		ctx,
		clientID,
		-s.threshold,
		"free session redeemed",
		&appointmentID,
	)
}

// Statement devolve o extrato completo do cliente, mais recente
// primeiro.
func (s *Service) Statement(ctx context.Context, clientID uint) ([]models.LedgerEntry, error) {
	return s.store.ListEntries(ctx, clientID)
}

// AwardCompletion credita o ponto da sessão concluída.
func (s *Service) AwardCompletion(
	ctx context.Context,
	clientID uint,
	appointmentID uint,
) (*models.LedgerEntry, error) {

	return s.Record(
		ctx,
		clientID,
		1,
		"session completed",
		&appointmentID,
	)
}
