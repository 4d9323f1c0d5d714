package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"careercompass-api/infrastructure/logger/logrus"
	"careercompass-api/pkg/careercompass"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a smart search and print the course links",
		Long: `Search queries every platform for every search phrase, waiting between
requests, and prints at most max(6, limit) unique links.

Examples:
  # Courses for one skill
  careercompass search --skill python

  # Skills combined with interests, as JSON
  careercompass search -s python -s sql -i data --industry finance --json`,
		RunE: runSearch,
	}

	cmd.Flags().Int("limit", 36, "Maximum number of links (at least 6 are allowed)")
	cmd.Flags().Duration("delay", 350*time.Millisecond, "Pause between platform requests")
	cmd.Flags().Duration("timeout", 7*time.Second, "Timeout for each platform request")
	cmd.Flags().String("user-agent", "", "Override the browser identity sent to platforms")
	cmd.Flags().Bool("json", false, "Print results as JSON")

	return cmd
}

func runSearch(cmd *cobra.Command, _ []string) error {
	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}
	if len(req.Skills) == 0 && len(req.Interests) == 0 && req.Industry == "" {
		return errors.New("at least one --skill, --interest or --industry is required")
	}

	req.Limit, _ = cmd.Flags().GetInt("limit")
	delay, _ := cmd.Flags().GetDuration("delay")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	userAgent, _ := cmd.Flags().GetString("user-agent")
	asJSON, _ := cmd.Flags().GetBool("json")

	opts := []careercompass.Option{
		careercompass.WithPoliteDelay(delay),
		careercompass.WithFetchTimeout(timeout),
		careercompass.WithUserAgent(userAgent),
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts = append(opts, careercompass.WithLogger(logrus.NewLogger(logrus.Options{Level: "debug"})))
	} else {
		opts = append(opts, careercompass.WithQuietMode())
	}

	client, err := careercompass.NewClient(opts...)
	if err != nil {
		return err
	}

	resp := client.Search(cmd.Context(), req)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if len(resp.Items) == 0 {
		fmt.Fprintln(out, "No results")
		return nil
	}
	for i, item := range resp.Items {
		fmt.Fprintf(out, "%2d. [%s] %s\n    %s\n", i+1, item.Platform, item.Title, item.URL)
	}
	return nil
}

// requestFromFlags reads the search terms shared by every subcommand
func requestFromFlags(cmd *cobra.Command) (careercompass.SearchRequest, error) {
	var req careercompass.SearchRequest
	var err error

	if req.Skills, err = cmd.Flags().GetStringSlice("skill"); err != nil {
		return req, err
	}
	if req.Interests, err = cmd.Flags().GetStringSlice("interest"); err != nil {
		return req, err
	}
	if req.Industry, err = cmd.Flags().GetString("industry"); err != nil {
		return req, err
	}
	return req, nil
}
