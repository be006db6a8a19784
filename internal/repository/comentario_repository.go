package repository

import (
	"fmt"
	"strings"

	"github.com/camivalenzuela/adopciones/internal/models"
	"gorm.io/gorm"
)

// ComentarioRepository defines the data-access methods for comments.
type ComentarioRepository interface {
	Create(comentario *models.Comentario) error
	PorAviso(avisoID uint, limit, offset int, orden string) ([]models.Comentario, error)
	ContarPorAviso(avisoID uint) (int64, error)
}

// GormComentarioRepository is the ComentarioRepository implementation using GORM.
type GormComentarioRepository struct {
	db *gorm.DB
}

// NewComentarioRepository creates and returns a new GormComentarioRepository.
func NewComentarioRepository(db *gorm.DB) *GormComentarioRepository {
	return &GormComentarioRepository{db: db}
}

// Create inserts a new comentario row.
func (r *GormComentarioRepository) Create(comentario *models.Comentario) error {
	if err := r.db.Omit("Aviso").Create(comentario).Error; err != nil {
		return fmt.Errorf("failed to create comentario: %w", err)
	}
	return nil
}

// PorAviso returns one window of comments for an aviso. orden is "asc"
// or "desc" (by creation time, then id).
func (r *GormComentarioRepository) PorAviso(avisoID uint, limit, offset int, orden string) ([]models.Comentario, error) {
	dir := "ASC"
	if strings.EqualFold(orden, "desc") {
		dir = "DESC"
	}
	var comentarios []models.Comentario
	err := r.db.
		Where("aviso_id = ?", avisoID).
		Order(fmt.Sprintf("creado_en %s, id %s", dir, dir)).
		Offset(offset).
		Limit(limit).
		Find(&comentarios).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comentarios for aviso %d: %w", avisoID, err)
	}
	return comentarios, nil
}

// ContarPorAviso counts the comments of one aviso.
func (r *GormComentarioRepository) ContarPorAviso(avisoID uint) (int64, error) {
	var total int64
	if err := r.db.Model(&models.Comentario{}).Where("aviso_id = ?", avisoID).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count comentarios for aviso %d: %w", avisoID, err)
	}
	return total, nil
}
