package main

import (
	"fmt"
	"os"

	"medguardian/internal/cli"
)

// @title medguardian API
// @version 1.0
// @description Registro de medicamentos, tomas, avisos a familiares y adherencia.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
