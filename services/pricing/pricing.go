package pricing

import "musicschool/models"

// GroupDiscountFactor is applied to the base price for collective lessons.
const GroupDiscountFactor = 0.7

// basePrices maps level -> duration -> price in euros.
var basePrices = map[string]map[string]float64{
	models.NiveauDebutant: {
		models.Duree30Min: 25,
		models.Duree1H:    45,
		models.Duree1H30:  65,
		models.Duree2H:    85,
	},
	models.NiveauIntermediaire: {
		models.Duree30Min: 30,
		models.Duree1H:    50,
		models.Duree1H30:  70,
		models.Duree2H:    90,
	},
	models.NiveauAvance: {
		models.Duree30Min: 35,
		models.Duree1H:    55,
		models.Duree1H30:  75,
		models.Duree2H:    95,
	},
}

// Price returns the lesson price for a level, duration code and course type.
// Unrecognized inputs fall back deterministically: an unknown level uses the
// beginner row and an unknown duration uses the 1h column. There is no error
// path; the widget mutates the selection field by field and the price must
// stay derivable at every step.
func Price(niveau, duree, courseType string) float64 {
	row, ok := basePrices[niveau]
	if !ok {
		row = basePrices[models.NiveauDebutant]
	}
	price, ok := row[duree]
	if !ok {
		price = row[models.Duree1H]
	}
	if courseType == models.TypeCollectif {
		price *= GroupDiscountFactor
	}
	return price
}

// Grid returns the full level x duration price table for a course type.
// The catalog endpoint serves it so the widget and the backend share one
// source of truth.
func Grid(courseType string) map[string]map[string]float64 {
	grid := make(map[string]map[string]float64, len(models.Niveaux))
	for _, niveau := range models.Niveaux {
		row := make(map[string]float64, len(models.Durees))
		for _, duree := range models.Durees {
			row[duree] = Price(niveau, duree, courseType)
		}
		grid[niveau] = row
	}
	return grid
}
