package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/camivalenzuela/adopciones/internal/config"
	"github.com/spf13/cobra"
)

// Cfg is the global variable that will contain the loaded configuration.
// It is accessible to all Cobra commands throughout the application.
var Cfg *config.Config

// RootCmd is the base command for the CLI application.
// Subcommands (run-server, migrate, stats) register themselves via
// their own init() functions; this prevents import cycles.
var RootCmd = &cobra.Command{
	Use:   "adopciones",
	Short: "Backend for the pet-adoption listings site",
	Long: `A classifieds-style backend for pet-adoption listings: paginated
listings with photos and contact methods, comments and aggregate
statistics, served through a JSON API.`,
}

// Execute is the main entry point for the Cobra application.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Load configuration before any command executes.
	cobra.OnInitialize(initConfig)
}

// initConfig loads the application configuration. It runs at the
// beginning of every command thanks to cobra.OnInitialize above.
func initConfig() {
	var err error
	Cfg, err = config.LoadConfig()
	if err != nil {
		log.Printf("Warning: Problem loading configuration: %v. Using default values.", err)
	}
}
