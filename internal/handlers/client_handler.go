package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/psicoagenda/psico-scheduler/internal/domain/ledger"
	"github.com/psicoagenda/psico-scheduler/internal/httperr"
	"github.com/psicoagenda/psico-scheduler/internal/httpresp"
	"github.com/psicoagenda/psico-scheduler/internal/models"
	"github.com/psicoagenda/psico-scheduler/internal/validators"
)

type ClientHandler struct {
	db     *gorm.DB
	ledger *ledger.Service
}

func NewClientHandler(db *gorm.DB, ledgerService *ledger.Service) *ClientHandler {
	return &ClientHandler{
		db:     db,
		ledger: ledgerService,
	}
}

type CreateClientRequest struct {
	ProviderID uint   `json:"provider_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if email != "" && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	client := models.Client{
		ProviderID: req.ProviderID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      email,
		Active:     true,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	httpresp.Created(c, client)
}

func (h *ClientHandler) List(c *gin.Context) {
	providerID, ok := queryUint(c, "provider_id")
	if !ok {
		return
	}

	var clients []models.Client
	if err := h.db.
		Where("provider_id = ?", providerID).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

// Points devolve o saldo derivado do ledger e a elegibilidade para
// sessão gratuita. O contador materializado vai junto para inspeção.
func (h *ClientHandler) Points(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	balance, err := h.ledger.BalanceOf(c.Request.Context(), client.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_sum_ledger", "Erro ao consultar pontos.")
		return
	}

	eligible, err := h.ledger.IsRewardEligible(c.Request.Context(), client.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_sum_ledger", "Erro ao consultar pontos.")
		return
	}

	httpresp.OK(c, gin.H{
		"client_id":        client.ID,
		"balance":          balance,
		"cached_counter":   client.Points,
		"reward_eligible":  eligible,
		"reward_threshold": h.ledger.Threshold(),
	})
}
