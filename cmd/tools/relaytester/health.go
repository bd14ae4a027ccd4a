package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func healthCmd() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Query /health of a running relay API",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: 10 * time.Second}
			resp, err := client.Get(strings.TrimRight(apiURL, "/") + "/health")
			if err != nil {
				return fmt.Errorf("query health: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("health endpoint returned status %d", resp.StatusCode)
			}

			var body struct {
				Status            string `json:"status"`
				WebhookConfigured bool   `json:"webhook_configured"`
				Timestamp         string `json:"timestamp"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				return fmt.Errorf("decode health response: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\nwebhook configured: %t\ntimestamp: %s\n", body.Status, body.WebhookConfigured, body.Timestamp)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "http://localhost:8000", "relay API base URL")
	return cmd
}
