package services

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	customerrors "github.com/camivalenzuela/adopciones/internal/errors"
	"github.com/camivalenzuela/adopciones/internal/models"
	"github.com/camivalenzuela/adopciones/internal/repository"
	"gorm.io/gorm"
)

// ComentarioService handles the append-only comments of an aviso.
type ComentarioService struct {
	comentarioRepo repository.ComentarioRepository
	avisoRepo      repository.AvisoRepository
}

// NewComentarioService creates and returns a new ComentarioService.
func NewComentarioService(comentarioRepo repository.ComentarioRepository, avisoRepo repository.AvisoRepository) *ComentarioService {
	return &ComentarioService{
		comentarioRepo: comentarioRepo,
		avisoRepo:      avisoRepo,
	}
}

// Crear validates and persists a comment against an existing aviso.
// The creation timestamp is server-assigned. Returns ErrAvisoNotFound
// when the aviso id doesn't exist and *ValidationError on bad fields.
func (s *ComentarioService) Crear(avisoID uint, nombre, texto string) (*models.Comentario, error) {
	nombre = strings.TrimSpace(nombre)
	texto = strings.TrimSpace(texto)

	// limits count characters, not bytes
	var errs []string
	if l := utf8.RuneCountInString(nombre); l < 3 || l > 80 {
		errs = append(errs, "Nombre: 3 a 80 caracteres.")
	}
	if l := utf8.RuneCountInString(texto); l < 5 || l > 300 {
		errs = append(errs, "Texto: 5 a 300 caracteres.")
	}
	if len(errs) > 0 {
		return nil, &customerrors.ValidationError{Errores: errs}
	}

	// a comment can only be created against an existing aviso
	if _, err := s.avisoRepo.PorID(avisoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerrors.ErrAvisoNotFound
		}
		return nil, err
	}

	comentario := &models.Comentario{
		AvisoID:  avisoID,
		Nombre:   nombre,
		Texto:    texto,
		CreadoEn: time.Now(),
	}
	if err := s.comentarioRepo.Create(comentario); err != nil {
		return nil, err
	}
	return comentario, nil
}

// Listar returns one window of comments for an aviso plus the total
// count. orden is "asc" or "desc".
func (s *ComentarioService) Listar(avisoID uint, limit, offset int, orden string) ([]models.Comentario, int64, error) {
	if _, err := s.avisoRepo.PorID(avisoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, customerrors.ErrAvisoNotFound
		}
		return nil, 0, err
	}

	total, err := s.comentarioRepo.ContarPorAviso(avisoID)
	if err != nil {
		return nil, 0, err
	}
	comentarios, err := s.comentarioRepo.PorAviso(avisoID, limit, offset, orden)
	if err != nil {
		return nil, 0, err
	}
	return comentarios, total, nil
}
