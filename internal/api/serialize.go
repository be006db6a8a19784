package api

import (
	"strings"

	"github.com/camivalenzuela/adopciones/internal/models"
	"github.com/camivalenzuela/adopciones/internal/normalize"
	"github.com/gin-gonic/gin"
)

// fotoURL builds the servable URL for a stored photo: the folder
// normalized to start and end with "/" plus the stored filename.
func fotoURL(ruta, nombre string) string {
	ruta = strings.TrimSpace(ruta)
	nombre = strings.TrimSpace(nombre)
	if ruta == "" || nombre == "" {
		return ""
	}
	if !strings.HasPrefix(ruta, "/") {
		ruta = "/" + ruta
	}
	if !strings.HasSuffix(ruta, "/") {
		ruta = ruta + "/"
	}
	return ruta + nombre
}

// serializeAviso renders the canonical JSON representation of an aviso.
// The aviso must carry its Comuna.Region, Fotos and Contactos.
func serializeAviso(aviso *models.AvisoAdopcion) gin.H {
	fotos := make([]string, 0, len(aviso.Fotos))
	for _, f := range aviso.Fotos {
		if url := fotoURL(f.RutaArchivo, f.NombreArchivo); url != "" {
			fotos = append(fotos, url)
		}
	}

	contactos := make([]gin.H, 0, len(aviso.Contactos))
	for _, c := range aviso.Contactos {
		contactos = append(contactos, gin.H{"via": c.Nombre, "id": c.Identificador})
	}

	return gin.H{
		"id":               aviso.ID,
		"region":           aviso.Comuna.Region.Nombre,
		"comuna":           aviso.Comuna.Nombre,
		"sector":           aviso.Sector,
		"contacto_nombre":  aviso.Nombre,
		"contacto_email":   aviso.Email,
		"contacto_celular": aviso.Celular,
		"contactar_por":    contactos,
		"tipo":             aviso.Tipo,
		"cantidad":         aviso.Cantidad,
		"edad":             aviso.Edad,
		"edad_unidad":      normalize.UnidadLabel(aviso.UnidadMedida),
		"fecha_disponible": normalize.FormatFecha(aviso.FechaEntrega),
		"creado_en":        normalize.FormatFecha(aviso.FechaIngreso),
		"descripcion":      aviso.Descripcion,
		"fotos":            fotos,
	}
}

func serializeComentario(c *models.Comentario) gin.H {
	return gin.H{
		"id":        c.ID,
		"aviso_id":  c.AvisoID,
		"nombre":    c.Nombre,
		"texto":     c.Texto,
		"creado_en": normalize.FormatFecha(c.CreadoEn),
	}
}
