package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/psicoagenda/psico-scheduler/internal/httperr"
	"github.com/psicoagenda/psico-scheduler/internal/httpresp"
	"github.com/psicoagenda/psico-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	providerID, ok := queryUint(c, "provider_id")
	if !ok {
		return
	}

	var logs []models.AuditLog
	if err := h.db.
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	httpresp.List(c, logs)
}
