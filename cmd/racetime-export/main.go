package main

import (
	"github.com/akarlsons/racetime-export/internal/cli"
)

func main() {
	cli.Execute()
}
