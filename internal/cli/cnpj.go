package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexconsult/cnpj-geo/internal/cnpj"
	"github.com/nexconsult/cnpj-geo/internal/logger"
	"github.com/nexconsult/cnpj-geo/internal/services"
)

// sampleCNPJs is validated when `cnpj validate` gets no arguments
var sampleCNPJs = []string{
	"12.345.678/0001-95",
	"12345678000195",
	"48.724.911/0001-99",
	"18.781.203/0001-28",
	"61.611.250/0001-52",
	"57720021000107",
	"19.583.866/0001-09",
	"14779454000117",
	"53.597.206/0001-07",
	"30.843.829/0001-17",
	"68965122000156",
	"66.231.013/0001-80",
}

func cnpjCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "cnpj",
		Short: "Validate, generate and extract CNPJs",
	}

	c.AddCommand(cnpjValidateCmd())
	c.AddCommand(cnpjGenerateCmd())
	c.AddCommand(cnpjExtractCmd())
	return c
}

func cnpjValidateCmd() *cobra.Command {
	var strict bool

	c := &cobra.Command{
		Use:   "validate [cnpj...]",
		Short: "Validate CNPJs (a built-in sample list when none are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := args
			if len(values) == 0 {
				values = sampleCNPJs
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for i, v := range values {
				res := cnpj.Validate(v)
				if res.Valid {
					fmt.Fprintf(out, "CNPJ %2d (%-18s) is valid\n", i+1, v)
					continue
				}
				invalid++
				fmt.Fprintf(out, "CNPJ %2d (%-18s) is invalid (%s)\n", i+1, v, res.Reason)
			}

			if strict && invalid > 0 {
				return fmt.Errorf("%d of %d CNPJs are invalid", invalid, len(values))
			}
			return nil
		},
	}

	c.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any CNPJ is invalid")
	return c
}

func cnpjGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <base>",
		Short: "Complete a 12-digit base with its check digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			full, err := cnpj.Complete(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", full, cnpj.Format(full))
			return nil
		},
	}
}

func cnpjExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file>",
		Short: "List the valid CNPJs found in an HTML or text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			extractor := services.NewExtractorService(logger.Discard())

			var found []string
			if services.IsHTML("", body) {
				found, err = extractor.ExtractFromHTML(body)
				if err != nil {
					return err
				}
			} else {
				found = extractor.ExtractFromText(body)
			}

			out := cmd.OutOrStdout()
			for _, c := range found {
				info := cnpj.Analyze(c)
				fmt.Fprintf(out, "%s %s\n", info.Formatted, info.Kind)
			}
			return nil
		},
	}
}
