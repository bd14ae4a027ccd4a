package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhouzirui/article-relay/backend/internal/config"
	"github.com/zhouzirui/article-relay/backend/internal/model/article"
	"github.com/zhouzirui/article-relay/backend/internal/service/relay"
)

func sendCmd() *cobra.Command {
	var (
		email      string
		articleURL string
		webhookURL string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Post one article request straight to the workflow webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			if webhookURL == "" {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("load configuration: %w", err)
				}
				webhookURL = cfg.Webhook.URL
			}

			svc := relay.NewService(webhookURL, relay.WithTimeout(timeout))
			resp, err := svc.Process(context.Background(), article.Request{Email: email, ArticleURL: articleURL})
			if err != nil {
				var relayErr *relay.Error
				if errors.As(err, &relayErr) {
					return fmt.Errorf("%s failure (HTTP %d): %w", relayErr.Kind, relayErr.StatusCode(), err)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\nsession: %s\nmessage: %s\n", resp.Status, resp.SessionID, resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "recipient email address")
	cmd.Flags().StringVar(&articleURL, "url", "", "article URL to process")
	cmd.Flags().StringVar(&webhookURL, "webhook", "", "webhook URL (default N8N_WEBHOOK_URL)")
	cmd.Flags().DurationVar(&timeout, "timeout", relay.DefaultTimeout, "webhook call timeout")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}
