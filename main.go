package main

import (
	"github.com/camivalenzuela/adopciones/cmd"

	// Commands register themselves on the root command via init().
	_ "github.com/camivalenzuela/adopciones/cmd/cli"
	_ "github.com/camivalenzuela/adopciones/cmd/server"
)

func main() {
	cmd.Execute()
}
