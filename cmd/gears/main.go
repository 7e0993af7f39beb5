package main

import (
	"github.com/joho/godotenv"

	"github.com/tacogips/gears/internal/cli"
)

func main() {
	// GEARS_* overrides may live in a .env next to the project; real
	// environment variables win.
	_ = godotenv.Load()

	cli.Execute()
}
