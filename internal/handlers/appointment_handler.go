package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psicoagenda/psico-scheduler/internal/httperr"
	"github.com/psicoagenda/psico-scheduler/internal/httpresp"
	ucAppointment "github.com/psicoagenda/psico-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	schedule   *ucAppointment.Schedule
	confirm    *ucAppointment.Confirm
	reschedule *ucAppointment.Reschedule
	cancel     *ucAppointment.Cancel
	complete   *ucAppointment.Complete
	noShow     *ucAppointment.MarkNoShow
	listByDate *ucAppointment.ListByDate
}

func NewAppointmentHandler(
	schedule *ucAppointment.Schedule,
	confirm *ucAppointment.Confirm,
	reschedule *ucAppointment.Reschedule,
	cancel *ucAppointment.Cancel,
	complete *ucAppointment.Complete,
	noShow *ucAppointment.MarkNoShow,
	listByDate *ucAppointment.ListByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		schedule:   schedule,
		confirm:    confirm,
		reschedule: reschedule,
		cancel:     cancel,
		complete:   complete,
		noShow:     noShow,
		listByDate: listByDate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProviderID  uint    `json:"provider_id" binding:"required"`
	ClientID    uint    `json:"client_id" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	DurationMin int     `json:"duration_min"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
	Notes       string  `json:"notes"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.schedule.Execute(c.Request.Context(), ucAppointment.ScheduleInput{
		ProviderID:  req.ProviderID,
		ClientID:    req.ClientID,
		Date:        req.Date,
		Time:        req.Time,
		DurationMin: req.DurationMin,
		Type:        req.Type,
		Value:       req.Value,
		Notes:       req.Notes,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// STATE TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), id)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_confirm", "Erro ao confirmar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleInput{
		AppointmentID: id,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_reschedule", "Erro ao reagendar.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req CancelRequest
	_ = c.ShouldBindJSON(&req)

	ap, err := h.cancel.Execute(c.Request.Context(), id, req.Reason)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_cancel", "Erro ao cancelar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_complete", "Erro ao concluir agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	ap, err := h.noShow.Execute(c.Request.Context(), id)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_mark_no_show", "Erro ao registrar falta.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	providerID, ok := queryUint(c, "provider_id")
	if !ok {
		return
	}

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), providerID, date)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_list", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}
