package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"krk/internal/chat"
	"krk/internal/logging"
)

type chatOptions struct {
	user            string
	localOnly       bool
	showModelOutput bool
}

func bindChatFlags(cmd *cobra.Command, opts *chatOptions) {
	cmd.Flags().StringVarP(&opts.user, "user", "u", "", "Name to chat as (skips the name prompt)")
	cmd.Flags().BoolVar(&opts.localOnly, "local-only", false, "Use vocabulary matching only; never call the model")
	cmd.Flags().BoolVar(&opts.showModelOutput, "show-model-output", false, "Print the raw model reply when the fallback runs")
}

func newChatCommand(ctx *commandContext) *cobra.Command {
	opts := &chatOptions{}
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive preference conversation (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, ctx, opts)
		},
	}
	bindChatFlags(cmd, opts)
	return cmd
}

func runChat(cmd *cobra.Command, ctx *commandContext, opts *chatOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.logger()
	if err != nil {
		return err
	}
	v, err := ctx.loadVocabulary()
	if err != nil {
		return err
	}

	runCtx := cmd.Context()
	processor := ctx.buildPipeline(runCtx, v, logger, opts.localOnly, cmd.ErrOrStderr())

	options := chat.Options{
		In:              cmd.InOrStdin(),
		Out:             cmd.OutOrStdout(),
		Processor:       processor,
		Vocabulary:      v,
		Defaults:        cfg.SessionDefaults(),
		User:            opts.user,
		ShowModelOutput: cfg.Session.ShowModelOutput || opts.showModelOutput,
		Color:           chat.IsTerminal(cmd.OutOrStdout()),
		Logger:          logger,
	}

	if recommender, err := ctx.recommender(logger); err == nil {
		options.Recommender = recommender
	} else {
		logger.Info("catalog disabled",
			logging.String(logging.FieldEventType, "catalog_disabled"),
			logging.String("reason", err.Error()),
		)
	}

	if cfg.Session.Persist {
		store, err := ctx.openStore(runCtx)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Acquire(); err != nil {
			return err
		}
		options.Store = store
	}

	err = chat.New(options).Run(runCtx)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}
	if err != nil {
		logging.ErrorWithContext(logger, "chat session ended with error", "chat_failed", logging.Error(err))
	}
	return err
}
