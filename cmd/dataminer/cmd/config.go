package cmd

import (
	"github.com/expki/go-dataminer/config"
	"github.com/spf13/cobra"
)

func newSampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample-config <path>",
		Short: "Write a sample JSON configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.CreateSample(args[0]); err != nil {
				return err
			}
			cmd.Printf("sample configuration written to %s\n", args[0])
			return nil
		},
	}
}
