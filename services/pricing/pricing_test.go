package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"musicschool/models"
)

func TestPriceKnownCombinations(t *testing.T) {
	cases := []struct {
		niveau string
		duree  string
		want   float64
	}{
		{models.NiveauDebutant, models.Duree30Min, 25},
		{models.NiveauDebutant, models.Duree1H, 45},
		{models.NiveauDebutant, models.Duree1H30, 65},
		{models.NiveauDebutant, models.Duree2H, 85},
		{models.NiveauIntermediaire, models.Duree30Min, 30},
		{models.NiveauIntermediaire, models.Duree1H, 50},
		{models.NiveauIntermediaire, models.Duree1H30, 70},
		{models.NiveauIntermediaire, models.Duree2H, 90},
		{models.NiveauAvance, models.Duree30Min, 35},
		{models.NiveauAvance, models.Duree1H, 55},
		{models.NiveauAvance, models.Duree1H30, 75},
		{models.NiveauAvance, models.Duree2H, 95},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Price(tc.niveau, tc.duree, models.TypeIndividuel),
			"individual %s/%s", tc.niveau, tc.duree)
	}
}

func TestGroupDiscountRatio(t *testing.T) {
	for _, niveau := range models.Niveaux {
		for _, duree := range models.Durees {
			individual := Price(niveau, duree, models.TypeIndividuel)
			group := Price(niveau, duree, models.TypeCollectif)
			assert.InDelta(t, individual*GroupDiscountFactor, group, 1e-9,
				"group price for %s/%s", niveau, duree)
		}
	}
}

func TestPriceScenarios(t *testing.T) {
	assert.Equal(t, 45.0, Price(models.NiveauDebutant, models.Duree1H, models.TypeIndividuel))
	assert.InDelta(t, 66.5, Price(models.NiveauAvance, models.Duree2H, models.TypeCollectif), 1e-9)
}

func TestPriceDeterministic(t *testing.T) {
	first := Price(models.NiveauIntermediaire, models.Duree1H30, models.TypeCollectif)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Price(models.NiveauIntermediaire, models.Duree1H30, models.TypeCollectif))
	}
}

func TestPriceFailSafeDefaults(t *testing.T) {
	// Unknown duration falls back to the 1h column.
	assert.Equal(t, Price(models.NiveauAvance, models.Duree1H, models.TypeIndividuel),
		Price(models.NiveauAvance, "45min", models.TypeIndividuel))

	// Unknown level falls back to the beginner row.
	assert.Equal(t, Price(models.NiveauDebutant, models.Duree2H, models.TypeIndividuel),
		Price("expert", models.Duree2H, models.TypeIndividuel))

	// Both unknown: beginner 1h.
	assert.Equal(t, 45.0, Price("expert", "45min", models.TypeIndividuel))
}

func TestGridMatchesPrice(t *testing.T) {
	grid := Grid(models.TypeCollectif)
	for _, niveau := range models.Niveaux {
		for _, duree := range models.Durees {
			assert.Equal(t, Price(niveau, duree, models.TypeCollectif), grid[niveau][duree])
		}
	}
}
