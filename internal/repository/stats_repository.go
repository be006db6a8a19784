package repository

import (
	"fmt"
	"time"

	"github.com/camivalenzuela/adopciones/internal/models"
	"gorm.io/gorm"
)

// RecuentoDia is the number of avisos created on one calendar day.
type RecuentoDia struct {
	Dia   string // YYYY-MM-DD
	Total int
}

// RecuentoTipo is the number of avisos per pet kind.
type RecuentoTipo struct {
	Tipo  string
	Total int
}

// RecuentoMes is the number of avisos created in one month of a year.
type RecuentoMes struct {
	Mes   int // 1..12
	Total int
}

// StatsRepository defines the aggregate queries behind the statistics
// endpoints. All reads observe committed listings only.
type StatsRepository interface {
	PorDia(desde time.Time) ([]RecuentoDia, error)
	PorTipo() ([]RecuentoTipo, error)
	PorMes(year int) ([]RecuentoMes, error)
}

// GormStatsRepository is the StatsRepository implementation using GORM.
type GormStatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates and returns a new GormStatsRepository.
func NewStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// PorDia groups avisos created since desde by calendar day.
func (r *GormStatsRepository) PorDia(desde time.Time) ([]RecuentoDia, error) {
	var filas []RecuentoDia
	err := r.db.Model(&models.AvisoAdopcion{}).
		Select("strftime('%Y-%m-%d', fecha_ingreso) AS dia, COUNT(*) AS total").
		Where("fecha_ingreso >= ?", desde).
		Group("dia").
		Order("dia ASC").
		Scan(&filas).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count avisos per day: %w", err)
	}
	return filas, nil
}

// PorTipo groups all avisos by pet kind.
func (r *GormStatsRepository) PorTipo() ([]RecuentoTipo, error) {
	var filas []RecuentoTipo
	err := r.db.Model(&models.AvisoAdopcion{}).
		Select("tipo, COUNT(*) AS total").
		Group("tipo").
		Order("tipo ASC").
		Scan(&filas).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count avisos per tipo: %w", err)
	}
	return filas, nil
}

// PorMes groups the avisos of one year by month.
func (r *GormStatsRepository) PorMes(year int) ([]RecuentoMes, error) {
	var filas []RecuentoMes
	err := r.db.Model(&models.AvisoAdopcion{}).
		Select("CAST(strftime('%m', fecha_ingreso) AS INTEGER) AS mes, COUNT(*) AS total").
		Where("strftime('%Y', fecha_ingreso) = ?", fmt.Sprintf("%04d", year)).
		Group("mes").
		Order("mes ASC").
		Scan(&filas).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count avisos per month: %w", err)
	}
	return filas, nil
}
