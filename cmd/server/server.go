package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camivalenzuela/adopciones/cmd"
	"github.com/camivalenzuela/adopciones/internal/api"
	"github.com/camivalenzuela/adopciones/internal/config"
	"github.com/camivalenzuela/adopciones/internal/fotos"
	"github.com/camivalenzuela/adopciones/internal/models"
	"github.com/camivalenzuela/adopciones/internal/repository"
	"github.com/camivalenzuela/adopciones/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// RunServerCmd represents the 'run-server' command. It initializes the
// database, wires repositories and services, and starts the HTTP server.
var RunServerCmd = &cobra.Command{
	Use:   "run-server",
	Short: "Starts the adopciones API server.",
	Long: `This command initializes the database, configures the API routes
and starts the HTTP server, shutting down gracefully on SIGINT/SIGTERM.`,
	Run: func(cobraCmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		db, err := gorm.Open(sqlite.Open(cfg.Database.Name), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := db.AutoMigrate(
			&models.Region{},
			&models.Comuna{},
			&models.AvisoAdopcion{},
			&models.Foto{},
			&models.ContactarPor{},
			&models.Comentario{},
		); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		comunaRepo := repository.NewComunaRepository(db)
		avisoRepo := repository.NewAvisoRepository(db)
		comentarioRepo := repository.NewComentarioRepository(db)
		statsRepo := repository.NewStatsRepository(db)
		log.Println("Repositories initialized.")

		fotoStore := fotos.NewStore(cfg.Uploads.Folder)

		// foto rows record the public path, not the on-disk folder, so
		// stored URLs keep resolving when the two diverge
		avisoService := services.NewAvisoService(avisoRepo, comunaRepo, fotoStore, cfg.Uploads.PublicPath)
		comentarioService := services.NewComentarioService(comentarioRepo, avisoRepo)
		statsService := services.NewStatsService(statsRepo)
		log.Println("Services initialized.")

		router := gin.Default()
		router.MaxMultipartMemory = int64(cfg.Uploads.MaxSizeMB) << 20

		// Stored photo URLs point under the public path; serve the
		// upload folder there so they resolve.
		router.Static(cfg.Uploads.PublicPath, cfg.Uploads.Folder)

		api.SetupRoutes(router, avisoService, comentarioService, statsService, comunaRepo)
		log.Println("API routes configured.")

		serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
		srv := &http.Server{
			Addr:         serverAddr,
			Handler:      router,
			ReadTimeout:  60 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		go func() {
			log.Printf("Starting server on %s", serverAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Failed to start server: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutdown signal received. Stopping server...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		log.Println("Server stopped cleanly.")
	},
}

func init() {
	cmd.RootCmd.AddCommand(RunServerCmd)
}
