package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

func TestDayWindow(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)

	day, err := ledger.ParseDay("2024-03-15", manila)
	require.NoError(t, err)

	w := ledger.DayWindow("1000", day, manila)

	assert.Equal(t, "1000", w.StoreCode)
	assert.Equal(t, time.Date(2024, 3, 14, 16, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 3, 15, 16, 0, 0, 0, time.UTC), w.End)
	assert.Equal(t, "2024-03-15", w.Day(manila))

	assert.True(t, w.Contains(w.Start))
	assert.False(t, w.Contains(w.End))
	assert.True(t, w.Contains(time.Date(2024, 3, 15, 15, 59, 59, 0, time.UTC)))
}

func TestParseDay_Invalid(t *testing.T) {
	_, err := ledger.ParseDay("15-03-2024", time.UTC)
	assert.Error(t, err)
}

func TestSameDay(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)

	a := time.Date(2024, 3, 14, 17, 0, 0, 0, time.UTC) // 01:00 on the 15th in Manila
	b := time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC) // 23:00 on the 15th in Manila

	assert.True(t, ledger.SameDay(a, b, manila))
	assert.False(t, ledger.SameDay(a, b, time.UTC))
}
