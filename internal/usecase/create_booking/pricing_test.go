package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "plain integer", raw: "200000", want: 200000},
		{name: "decimal", raw: "150000.50", want: 150000.50},
		{name: "whitespace around", raw: " 75000 ", want: 75000},
		{name: "empty string", raw: "", want: 0},
		{name: "non numeric", raw: "dua ratus ribu", want: 0},
		{name: "negative", raw: "-500", want: 0},
		{name: "nan literal", raw: "NaN", want: 0},
		{name: "infinity literal", raw: "Inf", want: 0},
		{name: "partial number", raw: "100rb", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAmount(tt.raw))
		})
	}
}

func TestResolveTotal_PsychologyMultipliesByHours(t *testing.T) {
	assert.Equal(t, float64(600000), resolveTotal(domain.CategoryPsychology, "200000", 3, ""))
	assert.Equal(t, float64(200000), resolveTotal(domain.CategoryPsychology, "200000", 1, ""))
	// Нечитаемый тариф дает 0 независимо от часов
	assert.Equal(t, float64(0), resolveTotal(domain.CategoryPsychology, "gratis", 5, ""))
}

func TestResolveTotal_ListedPriceAsIs(t *testing.T) {
	assert.Equal(t, float64(350000), resolveTotal(domain.CategoryWorkshop, "", 0, "350000"))
	assert.Equal(t, float64(50000), resolveTotal(domain.CategoryDailyService, "", 0, "50000"))
	assert.Equal(t, float64(0), resolveTotal(domain.CategoryWorkshop, "", 0, ""))
}
