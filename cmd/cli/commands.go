package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(tournamentCmd)
	rootCmd.AddCommand(fixturesCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(advanceCmd)
	rootCmd.AddCommand(titlesCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health")
	},
}

var tournamentCmd = &cobra.Command{
	Use:   "tournament",
	Short: "Show the running tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/tournament")
	},
}

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List the fixtures of the running tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/tournament/fixtures")
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the league table of the running tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/tournament/standings")
	},
}

var advanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Simulate fixtures up to the user's next match",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/tournament/advance")
	},
}

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Show archived championship counts per team",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/archive/titles")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics")
	},
}

func performRequest(method, endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
