package main

import (
	"os"

	"github.com/sqve/gitfu/internal/app"
)

func main() {
	os.Exit(app.Execute())
}
