package repository

import (
	"fmt"

	"github.com/camivalenzuela/adopciones/internal/models"
	"gorm.io/gorm"
)

// AvisoRepository defines the data-access methods for avisos. WithTx
// runs fn against a repository bound to one database transaction; any
// error aborts the whole transaction, so the multi-row listing write
// (aviso + contactos + fotos) is never partially visible.
type AvisoRepository interface {
	WithTx(fn func(tx AvisoRepository) error) error
	CreateAviso(aviso *models.AvisoAdopcion) error
	CreateFoto(foto *models.Foto) error
	PorID(id uint) (*models.AvisoAdopcion, error)
	Listar(offset, limit int) ([]models.AvisoAdopcion, error)
	Contar() (int64, error)
	Ultimos(limit int) ([]models.AvisoAdopcion, error)
}

// GormAvisoRepository is the AvisoRepository implementation using GORM.
type GormAvisoRepository struct {
	db *gorm.DB
}

// NewAvisoRepository creates and returns a new GormAvisoRepository.
func NewAvisoRepository(db *gorm.DB) *GormAvisoRepository {
	return &GormAvisoRepository{db: db}
}

// WithTx wraps fn in a single database transaction.
func (r *GormAvisoRepository) WithTx(fn func(tx AvisoRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormAvisoRepository{db: tx})
	})
}

// CreateAviso inserts the aviso row together with its Contactos
// association. The Comuna is referenced by id only, never written.
func (r *GormAvisoRepository) CreateAviso(aviso *models.AvisoAdopcion) error {
	if err := r.db.Omit("Comuna").Create(aviso).Error; err != nil {
		return fmt.Errorf("failed to create aviso: %w", err)
	}
	return nil
}

// CreateFoto inserts one foto row for an already-created aviso.
func (r *GormAvisoRepository) CreateFoto(foto *models.Foto) error {
	if err := r.db.Create(foto).Error; err != nil {
		return fmt.Errorf("failed to create foto: %w", err)
	}
	return nil
}

// PorID fetches one aviso with its comuna, region, fotos and contactos.
// Returns gorm.ErrRecordNotFound when the id doesn't exist.
func (r *GormAvisoRepository) PorID(id uint) (*models.AvisoAdopcion, error) {
	var aviso models.AvisoAdopcion
	err := r.db.
		Preload("Comuna.Region").
		Preload("Fotos").
		Preload("Contactos").
		First(&aviso, id).Error
	if err != nil {
		return nil, err
	}
	return &aviso, nil
}

// Listar returns one page of avisos, most recent first.
func (r *GormAvisoRepository) Listar(offset, limit int) ([]models.AvisoAdopcion, error) {
	var avisos []models.AvisoAdopcion
	err := r.db.
		Preload("Comuna.Region").
		Preload("Fotos").
		Preload("Contactos").
		Order("fecha_ingreso DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&avisos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list avisos: %w", err)
	}
	return avisos, nil
}

// Contar returns the total number of avisos.
func (r *GormAvisoRepository) Contar() (int64, error) {
	var total int64
	if err := r.db.Model(&models.AvisoAdopcion{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count avisos: %w", err)
	}
	return total, nil
}

// Ultimos returns the latest avisos by fecha_ingreso.
func (r *GormAvisoRepository) Ultimos(limit int) ([]models.AvisoAdopcion, error) {
	return r.Listar(0, limit)
}
