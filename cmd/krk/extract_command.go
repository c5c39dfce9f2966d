package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"krk/internal/chat"
	"krk/internal/pipeline"
	"krk/internal/prefs"
)

const defaultUser = "You"

type extractOutput struct {
	Text         string            `json:"text" yaml:"text"`
	Inferred     map[string]string `json:"inferred" yaml:"inferred"`
	Parsed       map[string]string `json:"parsed,omitempty" yaml:"parsed,omitempty"`
	UsedFallback bool              `json:"used_fallback" yaml:"used_fallback"`
	RawOutput    string            `json:"raw_output,omitempty" yaml:"raw_output,omitempty"`
	Changed      []string          `json:"changed" yaml:"changed"`
	Preferences  prefs.Session     `json:"preferences" yaml:"preferences"`
	DurationMS   int64             `json:"duration_ms" yaml:"duration_ms"`
}

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var user string
	var localOnly bool
	var format string

	cmd := &cobra.Command{
		Use:   "extract <text>",
		Short: "Resolve one sentence into preferences and print the result",
		Long: "Runs a single turn through local inference (and the model fallback when it is enabled) " +
			"starting from the default session, or from the saved session of --user when persistence is enabled.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := normalizeFormat(format)
			if err != nil {
				return err
			}
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
			session, _, err := ctx.startingSession(runCtx, user)
			if err != nil {
				return err
			}
			processor := ctx.buildPipeline(runCtx, v, logger, localOnly, cmd.ErrOrStderr())
			turn, err := processor.Process(runCtx, strings.Join(args, " "), &session)
			if err != nil {
				return err
			}

			if cfg.Session.Persist && strings.TrimSpace(user) != "" {
				store, err := ctx.openStore(runCtx)
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.Save(runCtx, user, session); err != nil {
					return err
				}
			}

			out := newExtractOutput(turn)
			if handled, err := writeStructured(cmd, format, out); handled {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Inferred: %s\n", displayResult(turn.Inferred))
			if turn.UsedFallback {
				fmt.Fprintf(w, "Model:    %s\n", displayResult(turn.Parsed))
			}
			fmt.Fprintf(w, "Changed:  %s\n", displayList(out.Changed))
			rows := make([][]string, 0, len(prefs.Fields))
			for _, row := range chat.PreferenceRows(prefs.Describe(session, v)) {
				rows = append(rows, []string{row[0], row[1]})
			}
			fmt.Fprintln(w, chat.Table([]string{"Preference", "Value"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Start from and update this user's saved session")
	cmd.Flags().BoolVar(&localOnly, "local-only", false, "Use vocabulary matching only; never call the model")
	addFormatFlag(cmd, &format)
	return cmd
}

func newExtractOutput(turn pipeline.Turn) extractOutput {
	out := extractOutput{
		Text:         turn.Text,
		Inferred:     turn.Inferred.Map(),
		UsedFallback: turn.UsedFallback,
		RawOutput:    strings.TrimSpace(turn.RawOutput),
		Changed:      make([]string, 0, len(turn.Changed)),
		Preferences:  turn.After,
		DurationMS:   turn.Duration.Milliseconds(),
	}
	if turn.UsedFallback {
		out.Parsed = turn.Parsed.Map()
	}
	for _, f := range turn.Changed {
		out.Changed = append(out.Changed, f.Name())
	}
	return out
}

func displayResult(r prefs.Result) string {
	if r.Len() == 0 {
		return "(nothing)"
	}
	return r.String()
}

func displayList(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
