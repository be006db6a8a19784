package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/camivalenzuela/adopciones/cmd"
	"github.com/camivalenzuela/adopciones/internal/config"
	"github.com/camivalenzuela/adopciones/internal/repository"
	"github.com/camivalenzuela/adopciones/internal/services"
	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// StatsCmd represents the 'stats' command: it prints the number of
// published avisos, in total and per pet kind.
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aviso statistics",
	Long:  `Prints the total number of avisos and the breakdown per tipo and per month of the current year.`,
	Run:   runStats,
}

func init() {
	cmd.RootCmd.AddCommand(StatsCmd)
}

func runStats(cobraCmd *cobra.Command, args []string) {
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

	avisoRepo := repository.NewAvisoRepository(db)
	statsService := services.NewStatsService(repository.NewStatsRepository(db))

	total, err := avisoRepo.Contar()
	if err != nil {
		log.Fatalf("Failed to count avisos: %v", err)
	}

	porTipo, err := statsService.PorTipo()
	if err != nil {
		log.Fatalf("Failed to build stats by tipo: %v", err)
	}

	year := time.Now().Year()
	mensual, err := statsService.Mensual(year)
	if err != nil {
		log.Fatalf("Failed to build monthly stats: %v", err)
	}

	fmt.Printf("Avisos publicados: %d\n", total)
	for i, label := range porTipo.Labels {
		fmt.Printf("  %s: %d\n", label, porTipo.Datasets[0].Data[i])
	}
	fmt.Printf("Por mes (%d):\n", year)
	for i, label := range mensual.Labels {
		fmt.Printf("  %s: %d\n", label, mensual.Datasets[0].Data[i])
	}
}
