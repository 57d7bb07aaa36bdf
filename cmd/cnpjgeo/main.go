package main

import (
	"github.com/nexconsult/cnpj-geo/internal/cli"

	_ "github.com/nexconsult/cnpj-geo/docs"
)

func main() {
	cli.Execute()
}
