package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/psicoagenda/psico-scheduler/internal/httperr"
)

// writeBusinessError mapeia códigos de negócio para status HTTP.
// Devolve true quando o erro era uma BusinessError já respondida.
func writeBusinessError(c *gin.Context, err error) bool {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}

	switch {
	case code == httperr.CodeSlotConflict:
		httperr.Conflict(c, code, "Horário em conflito com outro agendamento.")
	case code == httperr.CodeOutsideAvailability:
		httperr.BadRequest(c, code, "Fora das janelas de atendimento.")
	case code == httperr.CodeTooLateToModify:
		httperr.BadRequest(c, code, "Prazo de alteração expirado.")
	case code == httperr.CodeInsufficientPoints:
		httperr.BadRequest(c, code, "PsicoPontos insuficientes.")
	case code == httperr.CodeNotFound || strings.HasSuffix(code, "_not_found"):
		httperr.NotFound(c, code, "Registro não encontrado.")
	default:
		httperr.BadRequest(c, code, "Operação inválida.")
	}
	return true
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(v), true
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		httperr.BadRequest(c, "missing_"+name, "Parâmetro obrigatório: "+name+".")
		return 0, false
	}

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Parâmetro inválido: "+name+".")
		return 0, false
	}
	return uint(v), true
}
