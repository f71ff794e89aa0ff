package cmd

import (
	"github.com/expki/go-dataminer/compute"
	"github.com/spf13/cobra"
)

func newMultiplyCmd(g *globals) *cobra.Command {
	var (
		format    string
		precision int
	)

	cmd := &cobra.Command{
		Use:   "multiply <x.csv> <y.csv>",
		Short: "Dense matrix product x·y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := readMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			y, err := readMatrix(cmd, args[1])
			if err != nil {
				return err
			}
			product, err := compute.MatrixMultiply(x, y)
			if err != nil {
				return err
			}
			return writeMatrix(cmd.OutOrStdout(), "product", product, format, precision)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, csv, json")
	cmd.Flags().IntVarP(&precision, "precision", "p", -1, "Decimals printed (negative for shortest exact)")
	return cmd
}
