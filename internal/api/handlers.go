package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	customerrors "github.com/camivalenzuela/adopciones/internal/errors"
	"github.com/camivalenzuela/adopciones/internal/repository"
	"github.com/camivalenzuela/adopciones/internal/services"
	"github.com/camivalenzuela/adopciones/internal/validation"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all Gin API routes and injects the services.
func SetupRoutes(router *gin.Engine, avisoService *services.AvisoService, comentarioService *services.ComentarioService, statsService *services.StatsService, comunaRepo repository.ComunaRepository) {
	// Health check route - used for monitoring service availability
	router.GET("/health", HealthCheckHandler)

	api := router.Group("/api")
	{
		api.GET("/avisos", ListarAvisosHandler(avisoService))
		api.GET("/avisos/latest", UltimosAvisosHandler(avisoService))
		api.GET("/avisos/:id", DetalleAvisoHandler(avisoService))
		api.POST("/avisos", CrearAvisoHandler(avisoService))

		api.GET("/avisos/:id/comentarios", ListarComentariosHandler(comentarioService))
		api.POST("/avisos/:id/comentarios", CrearComentarioHandler(comentarioService))

		api.GET("/regiones", ListarRegionesHandler(comunaRepo))
		api.GET("/regiones/:id/comunas", ListarComunasHandler(comunaRepo))

		api.GET("/stats/daily", StatsDiarioHandler(statsService))
		api.GET("/stats/tipos", StatsTiposHandler(statsService))
		api.GET("/stats/mensual", StatsMensualHandler(statsService))
	}
}

// HealthCheckHandler handles the /health route to verify service status.
func HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseAvisoID reads the :id path parameter. A non-numeric id is
// indistinguishable from a missing aviso for the client.
func parseAvisoID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aviso no encontrado"})
		return 0, false
	}
	return uint(id), true
}

// ListarAvisosHandler returns one page of the aviso listing.
// Query params: page >= 1 (default 1), size in [1..50] (default 5).
func ListarAvisosHandler(avisoService *services.AvisoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, errPage := strconv.Atoi(c.DefaultQuery("page", "1"))
		size, errSize := strconv.Atoi(c.DefaultQuery("size", "5"))
		if errPage != nil || errSize != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetros inválidos"})
			return
		}
		if page < 1 {
			page = 1
		}
		if size < 1 || size > 50 {
			size = 5
		}

		avisos, totalItems, totalPages, err := avisoService.Pagina(page, size)
		if err != nil {
			log.Printf("Error listing avisos: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		data := make([]gin.H, 0, len(avisos))
		for i := range avisos {
			data = append(data, serializeAviso(&avisos[i]))
		}

		c.JSON(http.StatusOK, gin.H{
			"data":        data,
			"page":        page,
			"size":        size,
			"total_items": totalItems,
			"total_pages": totalPages,
		})
	}
}

// UltimosAvisosHandler returns the latest avisos.
// Query params: limit in [1..10] (default 5).
func UltimosAvisosHandler(avisoService *services.AvisoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetro 'limit' inválido"})
			return
		}
		if limit < 1 {
			limit = 1
		}
		if limit > 10 {
			limit = 10
		}

		avisos, err := avisoService.Ultimos(limit)
		if err != nil {
			log.Printf("Error retrieving latest avisos: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		data := make([]gin.H, 0, len(avisos))
		for i := range avisos {
			data = append(data, serializeAviso(&avisos[i]))
		}
		c.JSON(http.StatusOK, gin.H{"data": data})
	}
}

// DetalleAvisoHandler returns one aviso by id.
func DetalleAvisoHandler(avisoService *services.AvisoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseAvisoID(c)
		if !ok {
			return
		}

		aviso, err := avisoService.Detalle(id)
		if err != nil {
			if errors.Is(err, customerrors.ErrAvisoNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Aviso no encontrado"})
				return
			}
			log.Printf("Error retrieving aviso %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, serializeAviso(aviso))
	}
}

// CrearAvisoHandler handles the multipart submission of a new aviso.
// The raw form is packed into an explicit AvisoForm at this boundary;
// all interpretation happens in the validator.
func CrearAvisoHandler(avisoService *services.AvisoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errores": []string{"Formulario multipart inválido."}})
			return
		}

		avisoForm := validation.AvisoForm{
			ComunaID:     c.PostForm("comuna_id"),
			ComunaNombre: c.PostForm("comuna_nombre"),
			Sector:       c.PostForm("sector"),
			Nombre:       c.PostForm("nombre"),
			Email:        c.PostForm("email"),
			Celular:      c.PostForm("celular"),
			Tipo:         c.PostForm("tipo"),
			Cantidad:     c.PostForm("cantidad"),
			Edad:         c.PostForm("edad"),
			UnidadMedida: c.PostForm("unidad_medida"),
			UnidadEdad:   c.PostForm("unidad_edad"),
			FechaEntrega: c.PostForm("fecha_entrega"),
			Descripcion:  c.PostForm("descripcion"),
			ContactosVia: c.PostFormArray("contactos[nombre][]"),
			ContactosID:  c.PostFormArray("contactos[identificador][]"),
		}

		aviso, err := avisoService.Crear(avisoForm, form.File["fotos[]"])
		if err != nil {
			var verr *customerrors.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"errores": verr.Errores})
				return
			}
			log.Printf("Error creating aviso: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el aviso"})
			return
		}

		c.JSON(http.StatusCreated, serializeAviso(aviso))
	}
}

// ListarRegionesHandler lists every region.
func ListarRegionesHandler(comunaRepo repository.ComunaRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		regiones, err := comunaRepo.Regiones()
		if err != nil {
			log.Printf("Error listing regiones: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		data := make([]gin.H, 0, len(regiones))
		for _, r := range regiones {
			data = append(data, gin.H{"id": r.ID, "nombre": r.Nombre})
		}
		c.JSON(http.StatusOK, gin.H{"data": data})
	}
}

// ListarComunasHandler lists the comunas of one region.
func ListarComunasHandler(comunaRepo repository.ComunaRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		regionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetro 'id' inválido"})
			return
		}

		comunas, err := comunaRepo.ComunasDeRegion(uint(regionID))
		if err != nil {
			log.Printf("Error listing comunas for region %d: %v", regionID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		data := make([]gin.H, 0, len(comunas))
		for _, co := range comunas {
			data = append(data, gin.H{"id": co.ID, "nombre": co.Nombre})
		}
		c.JSON(http.StatusOK, gin.H{"data": data})
	}
}
