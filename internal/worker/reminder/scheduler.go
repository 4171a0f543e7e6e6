package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/psicoagenda/psico-scheduler/internal/audit"
	"github.com/psicoagenda/psico-scheduler/internal/clock"
	"github.com/psicoagenda/psico-scheduler/internal/models"
	"github.com/psicoagenda/psico-scheduler/internal/notify"
)

// AppointmentSource é a fatia do repositório que o agendador consome.
type AppointmentSource interface {
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

// Options controla o ciclo diário do agendador.
type Options struct {
	Hour      int
	Minute    int
	Location  *time.Location
	Backoff   time.Duration
	Lookahead time.Duration
	// Timeout individual por envio; envio estourado falha só aquele
	// agendamento, o lote segue.
	SendTimeout time.Duration
}

// Scheduler é o processo recorrente de lembretes: acorda uma vez por
// dia no horário configurado, seleciona as sessões de amanhã e aciona
// o Sender para cada uma. Nunca derruba o processo — falha de ciclo
// loga, espera o backoff e retoma o cronograma normal.
type Scheduler struct {
	repo   AppointmentSource
	sender notify.Sender
	clk    clock.Clock
	lock   *DispatchLock
	audit  *audit.Dispatcher
	opts   Options
}

func NewScheduler(
	repo AppointmentSource,
	sender notify.Sender,
	clk clock.Clock,
	lock *DispatchLock,
	auditDispatcher *audit.Dispatcher,
	opts Options,
) *Scheduler {

	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Backoff <= 0 {
		opts.Backoff = time.Hour
	}
	if opts.Lookahead <= 0 {
		opts.Lookahead = 24 * time.Hour
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 30 * time.Second
	}

	return &Scheduler{
		repo:   repo,
		sender: sender,
		clk:    clk,
		lock:   lock,
		audit:  auditDispatcher,
		opts:   opts,
	}
}

// NextRunAt devolve a próxima ocorrência do horário configurado
// estritamente depois de now. Se o horário de hoje já passou (ou é
// exatamente agora), a próxima é amanhã.
func NextRunAt(now time.Time, hour, minute int) time.Time {
	next := time.Date(
		now.Year(), now.Month(), now.Day(),
		hour, minute, 0, 0,
		now.Location(),
	)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run mantém o ciclo até o contexto ser cancelado. O cancelamento é
// observado tanto durante a espera quanto entre envios.
func (s *Scheduler) Run(ctx context.Context) {
	log.Printf(
		"reminder scheduler started (daily at %02d:%02d %s)",
		s.opts.Hour, s.opts.Minute, s.opts.Location,
	)

	for {
		now := s.clk.Now().In(s.opts.Location)
		next := NextRunAt(now, s.opts.Hour, s.opts.Minute)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Println("reminder scheduler stopped")
			return
		case <-timer.C:
		}

		if err := s.RunCycle(ctx); err != nil {
			if ctx.Err() != nil {
				log.Println("reminder scheduler stopped")
				return
			}

			log.Printf(
				"reminder cycle failed: %v (resuming in %s)",
				err, s.opts.Backoff,
			)
			select {
			case <-ctx.Done():
				log.Println("reminder scheduler stopped")
				return
			case <-time.After(s.opts.Backoff):
			}
		}
	}
}

// RunCycle executa uma rodada de seleção e envio. Erro de repositório
// sobe para o chamador acionar o backoff; falha de envio é por
// agendamento e não aborta o lote.
func (s *Scheduler) RunCycle(ctx context.Context) error {
	now := s.clk.Now().In(s.opts.Location)
	batchID := uuid.NewString()

	if s.lock != nil {
		ok, err := s.lock.TryAcquire(ctx, now.Format("2006-01-02"))
		if err != nil {
			// lease é best-effort: redis fora não segura os lembretes
			log.Printf("reminder lease unavailable, dispatching anyway: %v", err)
		} else if !ok {
			log.Printf("reminder cycle skipped, lease held elsewhere batch=%s", batchID)
			return nil
		}
	}

	windowStart, windowEnd := Window(now, s.opts.Lookahead)

	apps, err := s.repo.FindDueForReminder(ctx, windowStart, windowEnd)
	if err != nil {
		return fmt.Errorf("list due appointments: %w", err)
	}
	apps = Due(apps, windowStart, windowEnd)

	sent := 0
	for i := range apps {
		if ctx.Err() != nil {
			log.Printf(
				"reminder cycle interrupted batch=%s sent=%d/%d",
				batchID, sent, len(apps),
			)
			return ctx.Err()
		}

		ap := apps[i]

		sendCtx, cancel := context.WithTimeout(ctx, s.opts.SendTimeout)
		err := s.sender.Send(sendCtx, notify.Recipient{
			Name:  ap.Client.Name,
			Phone: ap.Client.Phone,
			Email: ap.Client.Email,
		}, ap)
		cancel()

		if err != nil {
			log.Printf(
				"reminder send failed appointment=%d batch=%s: %v",
				ap.ID, batchID, err,
			)
			continue
		}

		// marca como enviado só depois do transporte confirmar
		if err := s.repo.MarkReminderSent(ctx, ap.ID); err != nil {
			log.Printf(
				"failed to mark reminder sent appointment=%d batch=%s: %v",
				ap.ID, batchID, err,
			)
			continue
		}

		if s.audit != nil {
			id := ap.ID
			s.audit.Dispatch(audit.Event{
				ProviderID: ap.ProviderID,
				Action:     "reminder_sent",
				Entity:     "appointment",
				EntityID:   &id,
				Metadata:   map[string]any{"batch_id": batchID},
			})
		}
		sent++
	}

	log.Printf(
		"reminder cycle done batch=%s selected=%d sent=%d",
		batchID, len(apps), sent,
	)
	return nil
}
