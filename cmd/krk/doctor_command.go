package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"krk/internal/chat"
	"krk/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check vocabulary, directories, and external services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var targets preflight.Targets
			if client, err := ctx.catalogClient(); err == nil {
				targets.Catalog = client
			}
			backend, backendErr := newModelBackend(cmd.Context(), cfg)
			if backendErr == nil && backend != nil {
				targets.Model = backend
			}

			results := preflight.RunAll(cmd.Context(), cfg, targets)
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				status := "OK"
				switch {
				case r.Skipped:
					status = "SKIP"
				case !r.Passed:
					status = "FAIL"
				}
				detail := r.Detail
				if r.Skipped && r.Name != "TMDB" && backendErr != nil {
					detail = backendErr.Error()
				}
				rows = append(rows, []string{r.Name, status, detail})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config: %s\n", ctx.configPath)
			fmt.Fprintln(out, chat.Table([]string{"Check", "Status", "Detail"}, rows))
			if preflight.Failed(results) {
				return errors.New("one or more checks failed")
			}
			return nil
		},
	}
}
