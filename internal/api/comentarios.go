package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	customerrors "github.com/camivalenzuela/adopciones/internal/errors"
	"github.com/camivalenzuela/adopciones/internal/services"
	"github.com/gin-gonic/gin"
)

// CrearComentarioRequest is the JSON body for posting a comment.
type CrearComentarioRequest struct {
	Nombre string `json:"nombre"`
	Texto  string `json:"texto"`
}

// CrearComentarioHandler creates a comment against an existing aviso.
func CrearComentarioHandler(comentarioService *services.ComentarioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		avisoID, ok := parseAvisoID(c)
		if !ok {
			return
		}

		var req CrearComentarioRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errores": []string{"Cuerpo JSON inválido."}})
			return
		}

		comentario, err := comentarioService.Crear(avisoID, req.Nombre, req.Texto)
		if err != nil {
			var verr *customerrors.ValidationError
			switch {
			case errors.As(err, &verr):
				c.JSON(http.StatusBadRequest, gin.H{"errores": verr.Errores})
			case errors.Is(err, customerrors.ErrAvisoNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Aviso no encontrado"})
			default:
				log.Printf("Error creating comentario for aviso %d: %v", avisoID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo agregar el comentario"})
			}
			return
		}

		c.JSON(http.StatusCreated, serializeComentario(comentario))
	}
}

// ListarComentariosHandler returns one window of comments for an aviso.
// Query params: limit in [1..100] (default 20), offset >= 0 (default 0),
// order "asc"|"desc" (default "desc").
func ListarComentariosHandler(comentarioService *services.ComentarioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		avisoID, ok := parseAvisoID(c)
		if !ok {
			return
		}

		limit, errLimit := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, errOffset := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if errLimit != nil || errOffset != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetros inválidos"})
			return
		}
		if limit < 1 || limit > 100 {
			limit = 20
		}
		if offset < 0 {
			offset = 0
		}
		orden := strings.ToLower(c.DefaultQuery("order", "desc"))
		if orden != "asc" {
			orden = "desc"
		}

		comentarios, total, err := comentarioService.Listar(avisoID, limit, offset, orden)
		if err != nil {
			if errors.Is(err, customerrors.ErrAvisoNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Aviso no encontrado"})
				return
			}
			log.Printf("Error listing comentarios for aviso %d: %v", avisoID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		items := make([]gin.H, 0, len(comentarios))
		for i := range comentarios {
			items = append(items, serializeComentario(&comentarios[i]))
		}

		c.JSON(http.StatusOK, gin.H{
			"items":  items,
			"total":  total,
			"offset": offset,
			"limit":  limit,
			"order":  orden,
		})
	}
}
