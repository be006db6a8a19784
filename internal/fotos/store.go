// Package fotos names and persists uploaded photos on the local file
// store. Filenames keep the human-readable timestamp-kind-age shape
// (e.g. 20250919-150245-gato-3m.jpg) so the upload folder stays
// sortable by name.
package fotos

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExtensionesPermitidas is the extension allow-list for uploaded photos.
// The validator enforces it; this package trusts it.
var ExtensionesPermitidas = []string{".jpg", ".jpeg", ".png"}

// ExtensionPermitida reports whether the filename carries an allowed
// extension, returning the extension lowercased.
func ExtensionPermitida(nombre string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(nombre))
	for _, permitida := range ExtensionesPermitidas {
		if ext == permitida {
			return ext, true
		}
	}
	return ext, false
}

// NombreArchivo builds the stored filename for an uploaded photo:
// <YYYYMMDD-HHMMSS>-<tipo>-<edad><unit letter><ext>. The extension must
// already have passed the allow-list check in the validator; it is not
// re-validated here. indice is the photo's position within its
// submission; photos after the first get a "-2", "-3", ... counter so
// the files of one submission never collide with each other. Across
// submissions the same wall-clock second can still collide; that
// window is an accepted property of the naming scheme.
func NombreArchivo(original, tipo string, edad int, unidad string, indice int) string {
	return nombreConTimestamp(time.Now(), original, tipo, edad, unidad, indice)
}

func nombreConTimestamp(ts time.Time, original, tipo string, edad int, unidad string, indice int) string {
	sufijo := "x"
	if edad > 0 && unidad != "" {
		sufijo = fmt.Sprintf("%d%s", edad, strings.ToLower(unidad[:1]))
	}

	base := fmt.Sprintf("%s-%s-%s", ts.Format("20060102-150405"), sanitizeTipo(tipo), sufijo)
	if indice > 0 {
		base = fmt.Sprintf("%s-%d", base, indice+1)
	}
	return base + strings.ToLower(filepath.Ext(original))
}

// sanitizeTipo keeps only filename-safe characters from the tipo token.
func sanitizeTipo(tipo string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(tipo)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "mascota"
	}
	return b.String()
}

// Store writes uploaded photos into a local folder, creating it if absent.
type Store struct {
	carpeta string
}

func NewStore(carpeta string) *Store {
	return &Store{carpeta: carpeta}
}

// Guardar names the uploaded file and writes its bytes under the store
// folder, returning only the generated filename (not the full path).
// indice is the photo's position within its submission.
func (s *Store) Guardar(fh *multipart.FileHeader, tipo string, edad int, unidad string, indice int) (string, error) {
	if err := os.MkdirAll(s.carpeta, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	nombre := NombreArchivo(fh.Filename, tipo, edad, unidad, indice)
	ruta := filepath.Join(s.carpeta, nombre)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(ruta)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		if cerr := dst.Close(); cerr != nil {
			log.Printf("failed to close file after write error: %v", cerr)
		}
		if rerr := os.Remove(ruta); rerr != nil {
			log.Printf("failed to remove file after write error: %v", rerr)
		}
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		if rerr := os.Remove(ruta); rerr != nil {
			log.Printf("failed to remove file after close error: %v", rerr)
		}
		return "", fmt.Errorf("failed to close file: %w", err)
	}
	return nombre, nil
}
