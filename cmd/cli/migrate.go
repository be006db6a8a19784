package cli

import (
	"fmt"
	"log"

	"github.com/camivalenzuela/adopciones/cmd"
	"github.com/camivalenzuela/adopciones/internal/config"
	"github.com/camivalenzuela/adopciones/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// MigrateCmd represents the 'migrate' command. It creates or updates
// the database schema and seeds the administrative areas when the
// region table is empty, so a fresh deployment can resolve comunas
// immediately.
var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Executes database migrations and seeds regiones/comunas.",
	Long: `This command connects to the configured SQLite database, runs GORM
automatic migrations for all entities and, when the region table is
empty, seeds a set of Chilean regiones and comunas.`,
	Run: func(cobraCmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		db, err := gorm.Open(sqlite.Open(cfg.Database.Name), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("FATAL: Failed to get underlying SQL database: %v", err)
		}
		defer sqlDB.Close()

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

		if err := seedAreas(db); err != nil {
			log.Fatalf("Failed to seed regiones/comunas: %v", err)
		}

		fmt.Println("Database migrations executed successfully.")
	},
}

// seedAreas inserts the regiones and comunas only when none exist yet.
func seedAreas(db *gorm.DB) error {
	var total int64
	if err := db.Model(&models.Region{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	seed := map[string][]string{
		"Región Metropolitana de Santiago": {"Santiago", "Providencia", "Ñuñoa", "Maipú", "La Florida", "Puente Alto"},
		"Valparaíso":                       {"Valparaíso", "Viña del Mar", "Quilpué", "Concón"},
		"Biobío":                           {"Concepción", "Talcahuano", "Chiguayante"},
		"La Araucanía":                     {"Temuco", "Villarrica", "Pucón"},
		"Coquimbo":                         {"La Serena", "Coquimbo", "Ovalle"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for nombre, comunas := range seed {
			region := models.Region{Nombre: nombre}
			if err := tx.Create(&region).Error; err != nil {
				return err
			}
			for _, comuna := range comunas {
				if err := tx.Create(&models.Comuna{Nombre: comuna, RegionID: region.ID}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func init() {
	cmd.RootCmd.AddCommand(MigrateCmd)
}
