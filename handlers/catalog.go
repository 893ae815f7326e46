package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"musicschool/models"
	"musicschool/services/pricing"
)

// CatalogHandler returns everything the widget needs to render the course
// selector: instruments, levels, durations, bookable hours and the resolved
// price grids for both course types.
func CatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"instruments": models.Instruments,
		"niveaux":     models.Niveaux,
		"durees":      models.Durees,
		"heures":      models.Heures,
		"prix": gin.H{
			models.TypeIndividuel: pricing.Grid(models.TypeIndividuel),
			models.TypeCollectif:  pricing.Grid(models.TypeCollectif),
		},
	})
}
