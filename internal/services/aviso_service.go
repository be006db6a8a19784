// Package services contains the business logic layer of the adopciones
// backend. Services sit between the HTTP handlers and the repositories.
package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	customerrors "github.com/camivalenzuela/adopciones/internal/errors"
	"github.com/camivalenzuela/adopciones/internal/fotos"
	"github.com/camivalenzuela/adopciones/internal/models"
	"github.com/camivalenzuela/adopciones/internal/repository"
	"github.com/camivalenzuela/adopciones/internal/validation"
	"gorm.io/gorm"
)

// AvisoService orchestrates the submission pipeline: validation, photo
// storage and the atomic multi-row write, plus the read operations.
type AvisoService struct {
	avisoRepo  repository.AvisoRepository
	comunaRepo repository.ComunaRepository
	fotoStore  *fotos.Store
	rutaFotos  string // public path recorded on each foto row, e.g. "/static/uploads"
}

// NewAvisoService creates and returns a new AvisoService.
func NewAvisoService(avisoRepo repository.AvisoRepository, comunaRepo repository.ComunaRepository, fotoStore *fotos.Store, rutaFotos string) *AvisoService {
	return &AvisoService{
		avisoRepo:  avisoRepo,
		comunaRepo: comunaRepo,
		fotoStore:  fotoStore,
		rutaFotos:  rutaFotos,
	}
}

// Crear validates a raw submission and, when valid, persists the aviso
// with its contactos and fotos in one database transaction. Photo bytes
// are written to the file store as each row is inserted; a failure at
// any step aborts the whole transaction. Files already written before
// an abort stay on disk, but no committed row ever references a photo
// that failed to store.
//
// Returns *customerrors.ValidationError when the submission is invalid;
// in that case nothing was written.
func (s *AvisoService) Crear(form validation.AvisoForm, files []*multipart.FileHeader) (*models.AvisoAdopcion, error) {
	data, errs := validation.Validar(form, files, s.comunaRepo)
	if len(errs) > 0 {
		return nil, &customerrors.ValidationError{Errores: errs}
	}

	contactos := make([]models.ContactarPor, 0, len(data.Contactos))
	for _, c := range data.Contactos {
		contactos = append(contactos, models.ContactarPor{
			Nombre:        c.Via,
			Identificador: c.Identificador,
		})
	}

	aviso := &models.AvisoAdopcion{
		FechaIngreso: time.Now(),
		ComunaID:     data.Comuna.ID,
		Sector:       data.Sector,
		Nombre:       data.Nombre,
		Email:        data.Email,
		Celular:      data.Celular,
		Tipo:         data.Tipo,
		Cantidad:     data.Cantidad,
		Edad:         data.Edad,
		UnidadMedida: data.Unidad,
		FechaEntrega: data.FechaEntrega,
		Descripcion:  data.Descripcion,
		Contactos:    contactos,
	}

	err := s.avisoRepo.WithTx(func(tx repository.AvisoRepository) error {
		if err := tx.CreateAviso(aviso); err != nil {
			return err
		}
		for i, fh := range data.Fotos {
			nombre, err := s.fotoStore.Guardar(fh, data.Tipo, data.Edad, data.Unidad, i)
			if err != nil {
				return customerrors.ErrFotoStorage{Nombre: fh.Filename, Reason: err.Error()}
			}
			foto := models.Foto{
				RutaArchivo:   s.rutaFotos,
				NombreArchivo: nombre,
				AvisoID:       aviso.ID,
			}
			if err := tx.CreateFoto(&foto); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist aviso: %w", err)
	}

	// Re-read the committed aviso so the response carries the resolved
	// comuna/region names and the stored foto rows.
	return s.Detalle(aviso.ID)
}

// Detalle fetches one aviso with all its associations.
func (s *AvisoService) Detalle(id uint) (*models.AvisoAdopcion, error) {
	aviso, err := s.avisoRepo.PorID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerrors.ErrAvisoNotFound
		}
		return nil, err
	}
	return aviso, nil
}

// Pagina returns one page of avisos plus the pagination totals.
func (s *AvisoService) Pagina(page, size int) ([]models.AvisoAdopcion, int64, int, error) {
	total, err := s.avisoRepo.Contar()
	if err != nil {
		return nil, 0, 0, err
	}

	offset := (page - 1) * size
	avisos, err := s.avisoRepo.Listar(offset, size)
	if err != nil {
		return nil, 0, 0, err
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return avisos, total, totalPages, nil
}

// Ultimos returns the most recent avisos.
func (s *AvisoService) Ultimos(limit int) ([]models.AvisoAdopcion, error) {
	return s.avisoRepo.Ultimos(limit)
}
