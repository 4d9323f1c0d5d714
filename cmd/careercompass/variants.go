package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"careercompass-api/pkg/careercompass"
)

// NewVariantsCmd creates the variants command.
// It prints the search phrases a request expands to without contacting any platform.
func NewVariantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants",
		Short: "Print the search phrases for the given terms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := requestFromFlags(cmd)
			if err != nil {
				return err
			}

			client, err := careercompass.NewClient(careercompass.WithQuietMode())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range client.Variants(req) {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}

	return cmd
}
