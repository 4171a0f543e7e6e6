package notify

import (
	"context"
	"log"

	"github.com/psicoagenda/psico-scheduler/internal/models"
)

type Recipient struct {
	Name  string
	Phone string
	Email string
}

// Sender é o colaborador externo de notificações, agnóstico de canal.
// O core decide o que enviar e quando; o formato de cada canal
// (e-mail, SMS, WhatsApp) fica do lado de quem implementa.
type Sender interface {
	Send(ctx context.Context, to Recipient, ap models.Appointment) error
}

// LogSender é a implementação padrão quando nenhum transporte está
// configurado: registra o lembrete no log e reporta sucesso.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, to Recipient, ap models.Appointment) error {
	log.Printf(
		"reminder: session at %s for %s (appointment %d)",
		ap.StartTime.Format("2006-01-02 15:04"),
		to.Name,
		ap.ID,
	)
	return nil
}
