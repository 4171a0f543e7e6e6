package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/psicoagenda/psico-scheduler/internal/audit"
	"github.com/psicoagenda/psico-scheduler/internal/domain/ledger"
	"github.com/psicoagenda/psico-scheduler/internal/httperr"
	"github.com/psicoagenda/psico-scheduler/internal/httpresp"
	"github.com/psicoagenda/psico-scheduler/internal/models"
)

type LedgerHandler struct {
	db     *gorm.DB
	ledger *ledger.Service
	audit  *audit.Dispatcher
}

func NewLedgerHandler(
	db *gorm.DB,
	ledgerService *ledger.Service,
	auditDispatcher *audit.Dispatcher,
) *LedgerHandler {
	return &LedgerHandler{
		db:     db,
		ledger: ledgerService,
		audit:  auditDispatcher,
	}
}

func (h *LedgerHandler) Statement(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	entries, err := h.ledger.Statement(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_list_ledger", "Erro ao consultar extrato.")
		return
	}

	httpresp.List(c, entries)
}

type AdjustPointsRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// Adjust lança um ajuste manual no ledger (bônus ou estorno). Ajuste
// não referencia sessão alguma.
func (h *LedgerHandler) Adjust(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var req AdjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	entry, err := h.ledger.Record(
		c.Request.Context(),
		client.ID,
		req.Delta,
		req.Reason,
		nil,
	)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_record_entry", "Erro ao lançar ajuste.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ProviderID: client.ProviderID,
		Action:     "points_adjusted",
		Entity:     "ledger_entry",
		EntityID:   &entry.ID,
		Metadata:   map[string]any{"delta": req.Delta, "reason": req.Reason},
	})

	httpresp.Created(c, entry)
}
