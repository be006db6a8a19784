package fotos

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionPermitida(t *testing.T) {
	tests := []struct {
		nombre  string
		wantExt string
		wantOK  bool
	}{
		{"foto.jpg", ".jpg", true},
		{"foto.JPG", ".jpg", true},
		{"foto.jpeg", ".jpeg", true},
		{"foto.png", ".png", true},
		{"foto.gif", ".gif", false},
		{"foto.pdf", ".pdf", false},
		{"foto", "", false},
	}
	for _, tt := range tests {
		ext, ok := ExtensionPermitida(tt.nombre)
		assert.Equal(t, tt.wantExt, ext, "ext of %q", tt.nombre)
		assert.Equal(t, tt.wantOK, ok, "ok of %q", tt.nombre)
	}
}

func TestNombreConTimestamp(t *testing.T) {
	ts := time.Date(2025, 9, 19, 15, 2, 45, 0, time.Local)

	assert.Equal(t, "20250919-150245-gato-3m.jpg", nombreConTimestamp(ts, "mi foto.jpg", "gato", 3, "m", 0))
	assert.Equal(t, "20250919-150245-perro-2a.png", nombreConTimestamp(ts, "x.png", "perro", 2, "a", 0))

	// extension is carried over lowercased
	assert.Equal(t, "20250919-150245-gato-3m.jpg", nombreConTimestamp(ts, "FOTO.JPG", "gato", 3, "m", 0))

	// placeholder suffix when age or unit is unknown
	assert.Equal(t, "20250919-150245-gato-x.jpg", nombreConTimestamp(ts, "f.jpg", "gato", 0, "m", 0))
	assert.Equal(t, "20250919-150245-gato-x.jpg", nombreConTimestamp(ts, "f.jpg", "gato", 3, "", 0))

	// tipo token is sanitized for filename use
	assert.Equal(t, "20250919-150245-gato-3m.jpg", nombreConTimestamp(ts, "f.jpg", "  GATO  ", 3, "meses", 0))
	assert.Equal(t, "20250919-150245-mascota-3m.jpg", nombreConTimestamp(ts, "f.jpg", "../?", 3, "m", 0))

	// photos after the first carry a counter so one submission's files
	// never collide within the same second
	assert.Equal(t, "20250919-150245-gato-3m-2.jpg", nombreConTimestamp(ts, "f.jpg", "gato", 3, "m", 1))
	assert.Equal(t, "20250919-150245-gato-3m-3.png", nombreConTimestamp(ts, "f.png", "gato", 3, "m", 2))
}

// fileHeader builds a real multipart.FileHeader the way gin receives it.
func fileHeader(t *testing.T, nombre string, contenido []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("fotos[]", nombre)
	require.NoError(t, err)
	_, err = fw.Write(contenido)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["fotos[]"][0]
}

func TestGuardar(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "uploads")) // folder created on demand

	fh := fileHeader(t, "Mi Mascota.JPG", []byte("fake image bytes"))
	nombre, err := store.Guardar(fh, "gato", 3, "m", 0)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d{8}-\d{6}-gato-3m\.jpg$`), nombre)

	contenido, err := os.ReadFile(filepath.Join(dir, "uploads", nombre))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), contenido)
}

func TestGuardarVariasFotosMismoSegundo(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	primera, err := store.Guardar(fileHeader(t, "a.jpg", []byte("primera")), "gato", 3, "m", 0)
	require.NoError(t, err)
	segunda, err := store.Guardar(fileHeader(t, "b.jpg", []byte("segunda")), "gato", 3, "m", 1)
	require.NoError(t, err)

	assert.NotEqual(t, primera, segunda)

	contenido, err := os.ReadFile(filepath.Join(dir, primera))
	require.NoError(t, err)
	assert.Equal(t, []byte("primera"), contenido)
	contenido, err = os.ReadFile(filepath.Join(dir, segunda))
	require.NoError(t, err)
	assert.Equal(t, []byte("segunda"), contenido)
}

func TestGuardarSinArchivoFisico(t *testing.T) {
	// a FileHeader with no backing content cannot be opened; Guardar
	// must surface the error instead of writing an empty file
	store := NewStore(t.TempDir())
	fh := &multipart.FileHeader{Filename: "f.jpg"}

	_, err := store.Guardar(fh, "gato", 1, "m", 0)
	assert.Error(t, err)
}
