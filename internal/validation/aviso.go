// Package validation implements the aviso submission validator: it
// consumes the raw multipart fields plus the uploaded file list and
// produces either a fully normalized bundle ready for persistence or
// the complete list of field errors. It performs zero writes.
package validation

import (
	"fmt"
	"mime/multipart"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/camivalenzuela/adopciones/internal/fotos"
	"github.com/camivalenzuela/adopciones/internal/models"
	"github.com/camivalenzuela/adopciones/internal/normalize"
)

const (
	MaxFotos     = 5
	MaxContactos = 5
)

var (
	emailRe   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	celularRe = regexp.MustCompile(`^\+\d{2,4}\.\d{6,12}$`) // +569.12345678
)

// AvisoForm is the raw submission as read from the multipart form at
// the HTTP boundary. Every field is a string exactly as submitted;
// normalization and parsing happen here, not in the handler.
type AvisoForm struct {
	ComunaID     string
	ComunaNombre string
	Sector       string
	Nombre       string
	Email        string
	Celular      string
	Tipo         string
	Cantidad     string
	Edad         string
	UnidadMedida string // field-name alias 1
	UnidadEdad   string // field-name alias 2
	FechaEntrega string
	Descripcion  string
	ContactosVia []string // contactos[nombre][]
	ContactosID  []string // contactos[identificador][]
}

// Contacto is one normalized contact entry of the bundle.
type Contacto struct {
	Via           string
	Identificador string
}

// AvisoData is the normalized bundle produced on success. It is ready
// for the persistence orchestrator with no further interpretation.
type AvisoData struct {
	Comuna       *models.Comuna
	Sector       *string
	Nombre       string
	Email        string
	Celular      *string
	Tipo         string // 'gato' | 'perro'
	Cantidad     int
	Edad         int
	Unidad       string // 'm' | 'a'
	FechaEntrega time.Time
	Descripcion  *string
	Contactos    []Contacto
	Fotos        []*multipart.FileHeader
}

// ComunaResolver is the lookup capability the validator needs to
// resolve the submitted administrative area. Implementations return
// (nil, nil) when no comuna matches.
type ComunaResolver interface {
	PorID(id uint) (*models.Comuna, error)
	PorNombre(nombre string) (*models.Comuna, error)
}

// Validar evaluates every rule (no short-circuiting) so the client gets
// the full error list in one pass. On success it returns the bundle and
// an empty list; on failure, nil and at least one message.
func Validar(form AvisoForm, files []*multipart.FileHeader, comunas ComunaResolver) (*AvisoData, []string) {
	var errs []string

	// comuna: by id when supplied, else by exact name
	var comuna *models.Comuna
	if id := strings.TrimSpace(form.ComunaID); id != "" {
		if n, err := strconv.ParseUint(id, 10, 32); err == nil {
			comuna, _ = comunas.PorID(uint(n))
		}
	} else if nombre := strings.TrimSpace(form.ComunaNombre); nombre != "" {
		comuna, _ = comunas.PorNombre(nombre)
	}
	if comuna == nil {
		errs = append(errs, "Comuna no encontrada.")
	}

	// basic fields
	nombre := strings.TrimSpace(form.Nombre)
	email := strings.TrimSpace(form.Email)
	celular := strings.TrimSpace(form.Celular)
	sector := strings.TrimSpace(form.Sector)
	descripcion := strings.TrimSpace(form.Descripcion)

	// length limits count characters, not bytes; accented Spanish
	// input must not burn through a limit twice as fast
	if l := utf8.RuneCountInString(nombre); l < 3 || l > 200 {
		errs = append(errs, "Nombre: 3 a 200 caracteres.")
	}
	if !emailRe.MatchString(email) {
		errs = append(errs, "Email inválido.")
	}
	if utf8.RuneCountInString(email) > 100 {
		errs = append(errs, "Email: máx 100 caracteres.")
	}
	if celular != "" {
		if !celularRe.MatchString(celular) {
			errs = append(errs, "Celular inválido (+NNN.NNNNNNNN).")
		} else if utf8.RuneCountInString(celular) > 15 {
			errs = append(errs, "Celular: máx 15 caracteres.")
		}
	}
	if utf8.RuneCountInString(sector) > 100 {
		errs = append(errs, "Sector máx 100 caracteres.")
	}
	if utf8.RuneCountInString(descripcion) > 500 {
		errs = append(errs, "Descripción máx 500 caracteres.")
	}

	// pet fields: unknown tipo is a hard error, never defaulted
	tipo := normalize.Tipo(form.Tipo)
	if tipo == "" {
		errs = append(errs, "Tipo debe ser gato o perro.")
	}

	cantidad := parseEntero(form.Cantidad)
	if cantidad < 1 {
		errs = append(errs, "Cantidad mínima: 1.")
	}

	edad := parseEntero(form.Edad)
	if edad < 1 {
		errs = append(errs, "Edad mínima: 1.")
	}

	// the front sends either unidad_medida or unidad_edad
	unidadRaw := form.UnidadMedida
	if strings.TrimSpace(unidadRaw) == "" {
		unidadRaw = form.UnidadEdad
	}
	unidad := normalize.Unidad(unidadRaw)
	if unidad == "" {
		errs = append(errs, "Unidad de edad inválida (use 'meses'/'m' o 'años'/'a').")
	}

	fechaEntrega, fechaOK := normalize.ParseFecha(form.FechaEntrega)
	if !fechaOK {
		errs = append(errs, "fecha_entrega inválida (usar YYYY-MM-DDTHH:mm).")
	}

	// contactos: parallel arrays, validated only when present
	var contactos []Contacto
	if len(form.ContactosVia) > 0 || len(form.ContactosID) > 0 {
		if len(form.ContactosVia) != len(form.ContactosID) {
			errs = append(errs, "Contactos desbalanceados.")
		} else {
			if len(form.ContactosVia) > MaxContactos {
				errs = append(errs, "Máximo 5 contactos.")
			}
			for i, via := range form.ContactosVia {
				ident := strings.TrimSpace(form.ContactosID[i])
				if l := utf8.RuneCountInString(ident); l < 4 || l > 150 {
					errs = append(errs, "Cada contacto: 4 a 150 caracteres.")
				}
				contactos = append(contactos, Contacto{Via: normalize.Via(via), Identificador: ident})
			}
		}
	}

	// fotos: drop empty/unnamed entries, then enforce count and extension
	var archivos []*multipart.FileHeader
	for _, f := range files {
		if f != nil && f.Filename != "" {
			archivos = append(archivos, f)
		}
	}
	if len(archivos) < 1 {
		errs = append(errs, "Debes subir al menos 1 foto.")
	}
	if len(archivos) > MaxFotos {
		errs = append(errs, "Máximo 5 fotos.")
	}
	for _, f := range archivos {
		if ext, ok := fotos.ExtensionPermitida(f.Filename); !ok {
			errs = append(errs, fmt.Sprintf("Extensión no permitida: %s. Solo %s.",
				ext, strings.Join(fotos.ExtensionesPermitidas, ", ")))
			break
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &AvisoData{
		Comuna:       comuna,
		Sector:       opcional(sector),
		Nombre:       nombre,
		Email:        email,
		Celular:      opcional(celular),
		Tipo:         tipo,
		Cantidad:     cantidad,
		Edad:         edad,
		Unidad:       unidad,
		FechaEntrega: fechaEntrega,
		Descripcion:  opcional(descripcion),
		Contactos:    contactos,
		Fotos:        archivos,
	}, nil
}

// parseEntero parses an integer field, defaulting to 1 when the field
// is absent and to 0 (rejected by the >=1 checks) when unparseable.
func parseEntero(v string) int {
	v = strings.TrimSpace(v)
	if v == "" {
		v = "1"
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// opcional maps an empty trimmed string to nil for nullable columns.
func opcional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
