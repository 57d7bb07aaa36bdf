package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nexconsult/cnpj-geo/internal/app"
)

func serveCmd() *cobra.Command {
	var envFile string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			// a missing .env is fine, the environment is used as is
			_ = godotenv.Load(envFile)
			return app.Run()
		},
	}

	c.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading configuration")
	return c
}
