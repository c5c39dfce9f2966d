package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const llmPingTimeout = 30 * time.Second

func newLLMCommand(ctx *commandContext) *cobra.Command {
	llmCmd := &cobra.Command{
		Use:   "llm",
		Short: "Model fallback utilities",
	}
	llmCmd.AddCommand(newLLMPingCommand(ctx))
	return llmCmd
}

func newLLMPingCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the configured model answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			backend, err := newModelBackend(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if backend == nil {
				return errors.New("llm.provider is none; nothing to ping")
			}

			pingCtx, cancel := context.WithTimeout(cmd.Context(), llmPingTimeout)
			defer cancel()
			start := time.Now()
			if err := backend.HealthCheck(pingCtx); err != nil {
				return fmt.Errorf("%s (%s): %w", cfg.LLM.Provider, cfg.LLM.Model, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "LLM reachable: provider=%s model=%s (%s)\n",
				cfg.LLM.Provider, cfg.LLM.Model, time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}
