package repository

import (
	"errors"
	"fmt"

	"github.com/camivalenzuela/adopciones/internal/models"
	"gorm.io/gorm"
)

// ComunaRepository defines the lookup methods for the administrative
// area hierarchy. Lookups return (nil, nil) when nothing matches so the
// validator can report "comuna not found" without inspecting errors.
type ComunaRepository interface {
	PorID(id uint) (*models.Comuna, error)
	PorNombre(nombre string) (*models.Comuna, error)
	Regiones() ([]models.Region, error)
	ComunasDeRegion(regionID uint) ([]models.Comuna, error)
}

// GormComunaRepository is the ComunaRepository implementation using GORM.
type GormComunaRepository struct {
	db *gorm.DB
}

// NewComunaRepository creates and returns a new GormComunaRepository.
func NewComunaRepository(db *gorm.DB) *GormComunaRepository {
	return &GormComunaRepository{db: db}
}

// PorID resolves a comuna by primary key.
func (r *GormComunaRepository) PorID(id uint) (*models.Comuna, error) {
	var comuna models.Comuna
	if err := r.db.First(&comuna, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get comuna %d: %w", id, err)
	}
	return &comuna, nil
}

// PorNombre resolves a comuna by exact name match.
func (r *GormComunaRepository) PorNombre(nombre string) (*models.Comuna, error) {
	var comuna models.Comuna
	if err := r.db.Where("nombre = ?", nombre).First(&comuna).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get comuna %q: %w", nombre, err)
	}
	return &comuna, nil
}

// Regiones lists every region ordered by name.
func (r *GormComunaRepository) Regiones() ([]models.Region, error) {
	var regiones []models.Region
	if err := r.db.Order("nombre ASC").Find(&regiones).Error; err != nil {
		return nil, fmt.Errorf("failed to list regiones: %w", err)
	}
	return regiones, nil
}

// ComunasDeRegion lists the comunas under one region, ordered by name.
func (r *GormComunaRepository) ComunasDeRegion(regionID uint) ([]models.Comuna, error) {
	var comunas []models.Comuna
	if err := r.db.Where("region_id = ?", regionID).Order("nombre ASC").Find(&comunas).Error; err != nil {
		return nil, fmt.Errorf("failed to list comunas for region %d: %w", regionID, err)
	}
	return comunas, nil
}
