package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasDateTime(t *testing.T) {
	t.Parallel()
	for _, in := range []string{
		"samedi",
		"demain soir",
		"le 12/06/2026",
		"14 juillet",
		"à 15h",
		"vers 15h30",
		"at 7pm",
		"June 21",
		"18:00",
	} {
		assert.True(t, HasDateTime(in), in)
	}
	for _, in := range []string{"50", "intérieur", "50 habitants", "un mariage"} {
		assert.False(t, HasDateTime(in), in)
	}
}

func TestDateTimesInOrder(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"samedi", "14h"}, DateTimes("Samedi à 14h"))
}

func TestDateRange(t *testing.T) {
	t.Parallel()
	start, end := DateRange("du samedi 14h au dimanche 2h")
	assert.Equal(t, "samedi 14h", start)
	assert.Equal(t, "dimanche 2h", end)

	start, end = DateRange("le 12 juin à 18h")
	assert.Equal(t, "12 juin 18h", start)
	assert.Empty(t, end)

	start, end = DateRange("pas encore décidé")
	assert.Empty(t, start)
	assert.Empty(t, end)
}

func TestClosesRange(t *testing.T) {
	t.Parallel()
	assert.True(t, ClosesRange("jusqu'à dimanche 2h"))
	assert.True(t, ClosesRange("Et jusqu’au lundi"))
	assert.True(t, ClosesRange("until midnight"))
	assert.False(t, ClosesRange("15h"))
	assert.False(t, ClosesRange("samedi au dimanche"))
}
