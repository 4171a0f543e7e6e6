package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWindowOrdered(t *testing.T) {
	assert.True(t, windowOrdered("08:00", "12:00"))
	assert.True(t, windowOrdered("", ""))

	assert.False(t, windowOrdered("12:00", "08:00"))
	assert.False(t, windowOrdered("08:00", "08:00"))
	assert.False(t, windowOrdered("08:00", ""))
	assert.False(t, windowOrdered("", "12:00"))
	assert.False(t, windowOrdered("8h", "12:00"))
}

func TestWindowsDisjoint(t *testing.T) {
	assert.True(t, windowsDisjoint("12:00", "14:00"))
	// encostadas é permitido
	assert.True(t, windowsDisjoint("12:00", "12:00"))
	// meio período de folga nunca sobrepõe
	assert.True(t, windowsDisjoint("", "14:00"))
	assert.True(t, windowsDisjoint("12:00", ""))

	// manhã 08:00-15:00 invadindo a tarde 14:00-18:00
	assert.False(t, windowsDisjoint("15:00", "14:00"))
	assert.False(t, windowsDisjoint("15h", "14:00"))
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, isValidClockTime("08:00"))
	assert.True(t, isValidClockTime("23:59"))

	assert.False(t, isValidClockTime("8:00am"))
	assert.False(t, isValidClockTime("24:00"))
	assert.False(t, isValidClockTime(""))
}

func queryCtx(rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c, w
}

func TestQueryUint(t *testing.T) {
	c, _ := queryCtx("provider_id=7")
	v, ok := queryUint(c, "provider_id")
	assert.True(t, ok)
	assert.Equal(t, uint(7), v)
}

func TestQueryUintMissingVersusInvalid(t *testing.T) {
	// ausente e malformado são erros distintos
	c, w := queryCtx("date=2024-06-10")
	_, ok := queryUint(c, "provider_id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_provider_id")

	c, w = queryCtx("provider_id=abc")
	_, ok = queryUint(c, "provider_id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_provider_id")
}
