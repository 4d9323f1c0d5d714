package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "careercompass",
		Short: "Find course links on Coursera, Udemy, Skillshare and Udacity",
		Long: `careercompass expands skills, interests and an industry into search phrases,
queries each learning platform in turn and prints the deduplicated course links.

Platforms that cannot be reached contribute a link to their own search page.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringSliceP("skill", "s", nil, "Skill to search for (repeatable, most relevant first)")
	cmd.PersistentFlags().StringSliceP("interest", "i", nil, "Interest to search for (repeatable)")
	cmd.PersistentFlags().String("industry", "", "Target industry")

	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewVariantsCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
