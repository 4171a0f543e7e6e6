package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/psicoagenda/psico-scheduler/internal/httperr"
	"github.com/psicoagenda/psico-scheduler/internal/httpresp"
	"github.com/psicoagenda/psico-scheduler/internal/models"
	ucAppointment "github.com/psicoagenda/psico-scheduler/internal/usecase/appointment"
)

type ProviderHandler struct {
	db           *gorm.DB
	availability *ucAppointment.GetAvailability
}

func NewProviderHandler(
	db *gorm.DB,
	availability *ucAppointment.GetAvailability,
) *ProviderHandler {
	return &ProviderHandler{
		db:           db,
		availability: availability,
	}
}

type CreateProviderRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Timezone string `json:"timezone"`
}

func (h *ProviderHandler) Create(c *gin.Context) {
	var req CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p := models.Provider{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Timezone: req.Timezone,
	}

	if err := h.db.Create(&p).Error; err != nil {
		httperr.Internal(c, "failed_to_create_provider", "Erro ao criar profissional.")
		return
	}

	httpresp.Created(c, p)
}

func (h *ProviderHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var p models.Provider
	if err := h.db.First(&p, id).Error; err != nil {
		httperr.NotFound(c, "provider_not_found", "Profissional não encontrado.")
		return
	}

	httpresp.OK(c, p)
}

type UpdateAvailabilityRequest struct {
	WorksSunday    *bool `json:"works_sunday"`
	WorksMonday    *bool `json:"works_monday"`
	WorksTuesday   *bool `json:"works_tuesday"`
	WorksWednesday *bool `json:"works_wednesday"`
	WorksThursday  *bool `json:"works_thursday"`
	WorksFriday    *bool `json:"works_friday"`
	WorksSaturday  *bool `json:"works_saturday"`

	MorningStart   *string `json:"morning_start"`
	MorningEnd     *string `json:"morning_end"`
	AfternoonStart *string `json:"afternoon_start"`
	AfternoonEnd   *string `json:"afternoon_end"`
}

// UpdateAvailability ajusta flags de dia e janelas. Janelas devem ser
// "15:04" com início antes do fim e sem sobreposição entre manhã e
// tarde; vazio limpa o meio período.
func (h *ProviderHandler) UpdateAvailability(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var p models.Provider
	if err := h.db.First(&p, id).Error; err != nil {
		httperr.NotFound(c, "provider_not_found", "Profissional não encontrado.")
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	applyBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	applyBool(&p.WorksSunday, req.WorksSunday)
	applyBool(&p.WorksMonday, req.WorksMonday)
	applyBool(&p.WorksTuesday, req.WorksTuesday)
	applyBool(&p.WorksWednesday, req.WorksWednesday)
	applyBool(&p.WorksThursday, req.WorksThursday)
	applyBool(&p.WorksFriday, req.WorksFriday)
	applyBool(&p.WorksSaturday, req.WorksSaturday)

	windows := []struct {
		dst *string
		src *string
	}{
		{&p.MorningStart, req.MorningStart},
		{&p.MorningEnd, req.MorningEnd},
		{&p.AfternoonStart, req.AfternoonStart},
		{&p.AfternoonEnd, req.AfternoonEnd},
	}
	for _, w := range windows {
		if w.src == nil {
			continue
		}
		if *w.src != "" && !isValidClockTime(*w.src) {
			httperr.BadRequest(c, "invalid_window", "Janela inválida, use HH:MM.")
			return
		}
		*w.dst = *w.src
	}

	if !windowOrdered(p.MorningStart, p.MorningEnd) ||
		!windowOrdered(p.AfternoonStart, p.AfternoonEnd) {
		httperr.BadRequest(c, "invalid_window", "Início da janela deve preceder o fim.")
		return
	}

	if !windowsDisjoint(p.MorningEnd, p.AfternoonStart) {
		httperr.BadRequest(c, "overlapping_windows", "Janelas da manhã e da tarde se sobrepõem.")
		return
	}

	if err := h.db.Save(&p).Error; err != nil {
		httperr.Internal(c, "failed_to_update_provider", "Erro ao atualizar disponibilidade.")
		return
	}

	httpresp.OK(c, p)
}

func (h *ProviderHandler) Availability(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	duration := 0
	if v := c.Query("duration"); v != "" {
		d, ok := parseIntParam(c, v)
		if !ok {
			return
		}
		duration = d
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		ProviderID:  id,
		Date:        dateStr,
		DurationMin: duration,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_list_availability", "Erro ao listar horários.")
		return
	}

	httpresp.List(c, slots)
}
