package api

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/camivalenzuela/adopciones/internal/services"
	"github.com/gin-gonic/gin"
)

// StatsDiarioHandler returns avisos per day over the last N days.
// Query params: days in [1..365] (default 30).
func StatsDiarioHandler(statsService *services.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
		if err != nil || days < 1 || days > 365 {
			days = 30
		}

		grafico, err := statsService.Diario(days)
		if err != nil {
			log.Printf("Error building daily stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, grafico)
	}
}

// StatsTiposHandler returns avisos per pet kind.
func StatsTiposHandler(statsService *services.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		grafico, err := statsService.PorTipo()
		if err != nil {
			log.Printf("Error building stats by tipo: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, grafico)
	}
}

// StatsMensualHandler returns avisos per month of one year.
// Query params: year (default: current year).
func StatsMensualHandler(statsService *services.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
		if err != nil || year < 2000 || year > 2100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetro 'year' inválido"})
			return
		}

		grafico, err := statsService.Mensual(year)
		if err != nil {
			log.Printf("Error building monthly stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, grafico)
	}
}
