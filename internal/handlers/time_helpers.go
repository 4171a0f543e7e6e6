package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psicoagenda/psico-scheduler/internal/httperr"
)

func isValidClockTime(hm string) bool {
	_, err := time.Parse("15:04", hm)
	return err == nil
}

// windowOrdered aceita janela vazia (meio período de folga) ou com
// início estritamente antes do fim.
func windowOrdered(fromHM, toHM string) bool {
	if fromHM == "" && toHM == "" {
		return true
	}
	if fromHM == "" || toHM == "" {
		return false
	}
	from, err1 := time.Parse("15:04", fromHM)
	to, err2 := time.Parse("15:04", toHM)
	if err1 != nil || err2 != nil {
		return false
	}
	return from.Before(to)
}

// windowsDisjoint mantém manhã e tarde sem sobreposição: quando ambas
// existem, o fim da manhã não pode passar do início da tarde.
func windowsDisjoint(morningEnd, afternoonStart string) bool {
	if morningEnd == "" || afternoonStart == "" {
		return true
	}
	end, err1 := time.Parse("15:04", morningEnd)
	start, err2 := time.Parse("15:04", afternoonStart)
	if err1 != nil || err2 != nil {
		return false
	}
	return !end.After(start)
}

func parseIntParam(c *gin.Context, v string) (int, bool) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
		return 0, false
	}
	return n, true
}
