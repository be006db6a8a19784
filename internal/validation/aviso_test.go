package validation

import (
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/camivalenzuela/adopciones/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeComunas resolves against an in-memory set, returning (nil, nil)
// when nothing matches, like the real repository.
type fakeComunas struct {
	comunas []*models.Comuna
}

func (f *fakeComunas) PorID(id uint) (*models.Comuna, error) {
	for _, c := range f.comunas {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeComunas) PorNombre(nombre string) (*models.Comuna, error) {
	for _, c := range f.comunas {
		if c.Nombre == nombre {
			return c, nil
		}
	}
	return nil, nil
}

func resolver() *fakeComunas {
	return &fakeComunas{comunas: []*models.Comuna{
		{ID: 7, Nombre: "Ñuñoa", RegionID: 1},
	}}
}

// formValida is a submission that passes every rule.
func formValida() AvisoForm {
	return AvisoForm{
		ComunaID:     "7",
		Sector:       "Plaza Ñuñoa",
		Nombre:       "María Pérez",
		Email:        "maria@example.com",
		Celular:      "+569.12345678",
		Tipo:         "Gato",
		Cantidad:     "2",
		Edad:         "3",
		UnidadEdad:   "meses",
		FechaEntrega: "2025-10-01T12:00",
		Descripcion:  "Gatitos muy regalones.",
		ContactosVia: []string{"twitter", "whatsapp"},
		ContactosID:  []string{"@maria", "+56912345678"},
	}
}

func fotosJPG(n int) []*multipart.FileHeader {
	files := make([]*multipart.FileHeader, 0, n)
	for i := 0; i < n; i++ {
		files = append(files, &multipart.FileHeader{Filename: "foto.jpg"})
	}
	return files
}

func TestValidarOK(t *testing.T) {
	data, errs := Validar(formValida(), fotosJPG(1), resolver())
	require.Empty(t, errs)
	require.NotNil(t, data)

	assert.Equal(t, uint(7), data.Comuna.ID)
	assert.Equal(t, "gato", data.Tipo)
	assert.Equal(t, 2, data.Cantidad)
	assert.Equal(t, 3, data.Edad)
	assert.Equal(t, "m", data.Unidad)
	assert.Equal(t, time.Date(2025, 10, 1, 12, 0, 0, 0, time.Local), data.FechaEntrega)
	require.NotNil(t, data.Celular)
	assert.Equal(t, "+569.12345678", *data.Celular)
	require.Len(t, data.Contactos, 2)
	assert.Equal(t, "X", data.Contactos[0].Via)
	assert.Equal(t, "whatsapp", data.Contactos[1].Via)
	assert.Len(t, data.Fotos, 1)
}

func TestValidarCamposOpcionalesVacios(t *testing.T) {
	form := formValida()
	form.Sector = ""
	form.Celular = ""
	form.Descripcion = ""
	form.ContactosVia = nil
	form.ContactosID = nil

	data, errs := Validar(form, fotosJPG(1), resolver())
	require.Empty(t, errs)
	assert.Nil(t, data.Sector)
	assert.Nil(t, data.Celular)
	assert.Nil(t, data.Descripcion)
	assert.Empty(t, data.Contactos)
}

func TestValidarComunaNoEncontrada(t *testing.T) {
	form := formValida()
	form.ComunaID = "999"

	data, errs := Validar(form, fotosJPG(1), resolver())
	assert.Nil(t, data)
	assert.Contains(t, errs, "Comuna no encontrada.")
}

func TestValidarComunaPorNombre(t *testing.T) {
	form := formValida()
	form.ComunaID = ""
	form.ComunaNombre = "Ñuñoa"

	data, errs := Validar(form, fotosJPG(1), resolver())
	require.Empty(t, errs)
	assert.Equal(t, uint(7), data.Comuna.ID)

	form.ComunaNombre = "Nunoa" // exact match only
	data, errs = Validar(form, fotosJPG(1), resolver())
	assert.Nil(t, data)
	assert.Contains(t, errs, "Comuna no encontrada.")
}

func TestValidarTipoDesconocidoEsErrorDuro(t *testing.T) {
	form := formValida()
	form.Tipo = "conejo"

	data, errs := Validar(form, fotosJPG(1), resolver())
	assert.Nil(t, data)
	assert.Contains(t, errs, "Tipo debe ser gato o perro.")
}

func TestValidarLimites(t *testing.T) {
	t.Run("edad y cantidad en 0 se rechazan", func(t *testing.T) {
		form := formValida()
		form.Edad = "0"
		form.Cantidad = "0"
		data, errs := Validar(form, fotosJPG(1), resolver())
		assert.Nil(t, data)
		assert.Contains(t, errs, "Edad mínima: 1.")
		assert.Contains(t, errs, "Cantidad mínima: 1.")
	})

	t.Run("edad y cantidad en 1 se aceptan", func(t *testing.T) {
		form := formValida()
		form.Edad = "1"
		form.Cantidad = "1"
		_, errs := Validar(form, fotosJPG(1), resolver())
		assert.Empty(t, errs)
	})

	t.Run("edad y cantidad vacías usan 1", func(t *testing.T) {
		form := formValida()
		form.Edad = ""
		form.Cantidad = ""
		data, errs := Validar(form, fotosJPG(1), resolver())
		require.Empty(t, errs)
		assert.Equal(t, 1, data.Edad)
		assert.Equal(t, 1, data.Cantidad)
	})

	t.Run("edad no numérica se rechaza", func(t *testing.T) {
		form := formValida()
		form.Edad = "tres"
		_, errs := Validar(form, fotosJPG(1), resolver())
		assert.Contains(t, errs, "Edad mínima: 1.")
	})

	t.Run("descripción de 300 se acepta, 501 se rechaza", func(t *testing.T) {
		form := formValida()
		form.Descripcion = strings.Repeat("a", 300)
		_, errs := Validar(form, fotosJPG(1), resolver())
		assert.Empty(t, errs)

		form.Descripcion = strings.Repeat("a", 501)
		_, errs = Validar(form, fotosJPG(1), resolver())
		assert.Contains(t, errs, "Descripción máx 500 caracteres.")
	})

	t.Run("nombre corto se rechaza", func(t *testing.T) {
		form := formValida()
		form.Nombre = "Jo"
		_, errs := Validar(form, fotosJPG(1), resolver())
		assert.Contains(t, errs, "Nombre: 3 a 200 caracteres.")
	})
}

func TestValidarEmailYCelular(t *testing.T) {
	form := formValida()
	form.Email = "no-es-email"
	_, errs := Validar(form, fotosJPG(1), resolver())
	assert.Contains(t, errs, "Email inválido.")

	form = formValida()
	form.Celular = "912345678"
	_, errs = Validar(form, fotosJPG(1), resolver())
	assert.Contains(t, errs, "Celular inválido (+NNN.NNNNNNNN).")
}

func TestValidarUnidadAlias(t *testing.T) {
	// unidad_medida takes precedence; unidad_edad is the fallback alias
	form := formValida()
	form.UnidadMedida = "años"
	form.UnidadEdad = ""
	data, errs := Validar(form, fotosJPG(1), resolver())
	require.Empty(t, errs)
	assert.Equal(t, "a", data.Unidad)

	form.UnidadMedida = ""
	form.UnidadEdad = "semanas"
	data, errs = Validar(form, fotosJPG(1), resolver())
	assert.Nil(t, data)
	assert.Contains(t, errs, "Unidad de edad inválida (use 'meses'/'m' o 'años'/'a').")
}

func TestValidarFotos(t *testing.T) {
	t.Run("sin fotos", func(t *testing.T) {
		data, errs := Validar(formValida(), nil, resolver())
		assert.Nil(t, data)
		assert.Contains(t, errs, "Debes subir al menos 1 foto.")
	})

	t.Run("seis fotos", func(t *testing.T) {
		data, errs := Validar(formValida(), fotosJPG(6), resolver())
		assert.Nil(t, data)
		assert.Contains(t, errs, "Máximo 5 fotos.")
	})

	t.Run("entradas sin nombre se descartan", func(t *testing.T) {
		files := []*multipart.FileHeader{nil, {Filename: ""}, {Filename: "foto.png"}}
		data, errs := Validar(formValida(), files, resolver())
		require.Empty(t, errs)
		assert.Len(t, data.Fotos, 1)
	})

	t.Run("extensión no permitida", func(t *testing.T) {
		files := []*multipart.FileHeader{{Filename: "foto.gif"}}
		data, errs := Validar(formValida(), files, resolver())
		assert.Nil(t, data)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], ".gif")
		assert.Contains(t, errs[0], ".jpg, .jpeg, .png")
	})
}

func TestValidarContactosDesbalanceados(t *testing.T) {
	form := formValida()
	form.ContactosVia = []string{"whatsapp", "telegram"}
	form.ContactosID = []string{"+56911112222"}

	data, errs := Validar(form, fotosJPG(1), resolver())
	assert.Nil(t, data)
	assert.Contains(t, errs, "Contactos desbalanceados.")
}

func TestValidarContactos(t *testing.T) {
	t.Run("identificador corto", func(t *testing.T) {
		form := formValida()
		form.ContactosVia = []string{"whatsapp"}
		form.ContactosID = []string{"abc"}
		_, errs := Validar(form, fotosJPG(1), resolver())
		assert.Contains(t, errs, "Cada contacto: 4 a 150 caracteres.")
	})

	t.Run("máximo cinco", func(t *testing.T) {
		form := formValida()
		form.ContactosVia = []string{"a", "b", "c", "d", "e", "f"}
		form.ContactosID = []string{"1111", "2222", "3333", "4444", "5555", "6666"}
		_, errs := Validar(form, fotosJPG(1), resolver())
		assert.Contains(t, errs, "Máximo 5 contactos.")
	})

	t.Run("canal desconocido cae en otra", func(t *testing.T) {
		form := formValida()
		form.ContactosVia = []string{"paloma"}
		form.ContactosID = []string{"algo-valido"}
		data, errs := Validar(form, fotosJPG(1), resolver())
		require.Empty(t, errs)
		assert.Equal(t, "otra", data.Contactos[0].Via)
	})
}

func TestValidarAcumulaErrores(t *testing.T) {
	// every applicable rule runs; the client gets the full list at once
	form := AvisoForm{
		ComunaID:     "999",
		Nombre:       "Jo",
		Email:        "malo",
		Tipo:         "conejo",
		Cantidad:     "0",
		Edad:         "0",
		UnidadEdad:   "semanas",
		FechaEntrega: "mañana",
	}

	data, errs := Validar(form, nil, resolver())
	assert.Nil(t, data)
	assert.GreaterOrEqual(t, len(errs), 8)
}

func TestValidarLongitudesEnCaracteres(t *testing.T) {
	// limits count characters, not bytes; accented text is two bytes
	// per rune in UTF-8
	t.Run("descripcion acentuada dentro del límite", func(t *testing.T) {
		form := formValida()
		form.Descripcion = strings.Repeat("á", 400) // 800 bytes
		_, errs := Validar(form, fotosJPG(1), resolver())
		assert.Empty(t, errs)

		form.Descripcion = strings.Repeat("á", 501)
		_, errs = Validar(form, fotosJPG(1), resolver())
		assert.Contains(t, errs, "Descripción máx 500 caracteres.")
	})

	t.Run("nombre de dos caracteres multibyte", func(t *testing.T) {
		form := formValida()
		form.Nombre = "Ññ" // 4 bytes but only 2 characters
		_, errs := Validar(form, fotosJPG(1), resolver())
		assert.Contains(t, errs, "Nombre: 3 a 200 caracteres.")

		form.Nombre = "Ñña"
		_, errs = Validar(form, fotosJPG(1), resolver())
		assert.Empty(t, errs)
	})

	t.Run("sector y contacto acentuados", func(t *testing.T) {
		form := formValida()
		form.Sector = strings.Repeat("é", 100) // 200 bytes, 100 characters
		form.ContactosVia = []string{"whatsapp"}
		form.ContactosID = []string{strings.Repeat("é", 150)}
		_, errs := Validar(form, fotosJPG(1), resolver())
		assert.Empty(t, errs)
	})
}
