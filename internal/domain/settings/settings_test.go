package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBusinessHours(t *testing.T) {
	h := DefaultBusinessHours()
	require.Len(t, h.Periods, 1)
	p := h.Periods[0]
	assert.Equal(t, Sunday, p.Start)
	assert.Equal(t, Thursday, p.End)
	assert.Equal(t, "09:00", p.Open)
	assert.Equal(t, "18:00", p.Close)
	assert.False(t, p.IsClosed)
}

func TestParseDay(t *testing.T) {
	d, ok := ParseDay(" Friday ")
	assert.True(t, ok)
	assert.Equal(t, Friday, d)

	_, ok = ParseDay("someday")
	assert.False(t, ok)
}

func TestNormalizePeriodsClearsClosedTimes(t *testing.T) {
	out, err := NormalizePeriods([]BusinessPeriod{
		{Start: "friday", End: "friday", Open: "10:00", Close: "14:00", IsClosed: true},
		{Start: "Sunday", End: "thursday", Open: "09:00", Close: "18:00"},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Empty(t, out[0].Open)
	assert.Empty(t, out[0].Close)
	assert.True(t, out[0].IsClosed)
	assert.Equal(t, Sunday, out[1].Start)
	assert.Equal(t, "09:00", out[1].Open)
}

func TestNormalizePeriodsRejectsBadInput(t *testing.T) {
	_, err := NormalizePeriods([]BusinessPeriod{{Start: "funday", End: "monday", Open: "09:00", Close: "18:00"}})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = NormalizePeriods([]BusinessPeriod{{Start: "sunday", End: "monday", Open: "9am", Close: "18:00"}})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = NormalizePeriods([]BusinessPeriod{{Start: "sunday", End: "monday", Open: "09:00", Close: "25:00"}})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestWhatsAppNumbersForType(t *testing.T) {
	n := WhatsAppNumbers{Products: "+962771111111", Crafts: "+962772222222"}
	assert.Equal(t, "+962771111111", n.ForType("products"))
	assert.Equal(t, "+962772222222", n.ForType("crafts"))
}
