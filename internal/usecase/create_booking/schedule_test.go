package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
)

func TestResolveDate_StrictlyFuture(t *testing.T) {
	weekdays := map[string]time.Weekday{
		"Minggu": time.Sunday,
		"Senin":  time.Monday,
		"Selasa": time.Tuesday,
		"Rabu":   time.Wednesday,
		"Kamis":  time.Thursday,
		"Jumat":  time.Friday,
		"Sabtu":  time.Saturday,
	}

	// Каждый день недели от каждой точки отсчета: результат строго
	// в будущем и не дальше недели вперед
	for offset := 0; offset < 7; offset++ {
		now := referenceNow.AddDate(0, 0, offset)
		for name, want := range weekdays {
			resolved := resolveDate(name, now, nopLogger{})

			parsed, err := time.Parse(domain.DateFormat, resolved)
			require.NoError(t, err, "weekday %s from %s", name, now.Format(domain.DateFormat))

			assert.Equal(t, want, parsed.Weekday(), "weekday %s from %s", name, now.Format(domain.DateFormat))

			delta := int(parsed.Sub(now.Truncate(24*time.Hour)).Hours() / 24)
			assert.Greater(t, delta, 0, "weekday %s from %s must be strictly future", name, now.Format(domain.DateFormat))
			assert.LessOrEqual(t, delta, 7, "weekday %s from %s", name, now.Format(domain.DateFormat))
		}
	}
}

func TestResolveDate_SameWeekdayGoesNextWeek(t *testing.T) {
	// referenceNow - среда; "Rabu" (среда) уходит ровно на неделю вперед
	resolved := resolveDate("Rabu", referenceNow, nopLogger{})
	assert.Equal(t, referenceNow.AddDate(0, 0, 7).Format(domain.DateFormat), resolved)
}

func TestResolveDate_CaseInsensitiveAndApostrophe(t *testing.T) {
	assert.Equal(t,
		resolveDate("Jumat", referenceNow, nopLogger{}),
		resolveDate("jumat", referenceNow, nopLogger{}))
	assert.Equal(t,
		resolveDate("Jumat", referenceNow, nopLogger{}),
		resolveDate("Jum'at", referenceNow, nopLogger{}))
}

func TestResolveDate_EmptyAndUnknownFallBackToToday(t *testing.T) {
	today := referenceNow.Format(domain.DateFormat)

	assert.Equal(t, today, resolveDate("", referenceNow, nopLogger{}))
	assert.Equal(t, today, resolveDate("Mondayish", referenceNow, nopLogger{}))
}

func TestResolveTime_PsychologyKeepsSubmitted(t *testing.T) {
	got, err := resolveTime(domain.CategoryPsychology, "10:00", referenceNow)
	require.NoError(t, err)
	assert.Equal(t, "10:00", got.String())
}

func TestResolveTime_PsychologyRejectsMalformed(t *testing.T) {
	_, err := resolveTime(domain.CategoryPsychology, "25:99", referenceNow)
	require.Error(t, err)
}

func TestResolveTime_OtherCategoriesUseClock(t *testing.T) {
	got, err := resolveTime(domain.CategoryWorkshop, "ignored", referenceNow)
	require.NoError(t, err)
	assert.Equal(t, "09:30:15", got.String())
}
