package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"krk/internal/catalog"
	"krk/internal/chat"
	"krk/internal/prefs"
)

type recommendOutput struct {
	Preferences     prefs.Session            `json:"preferences" yaml:"preferences"`
	Recommendations []catalog.Recommendation `json:"recommendations" yaml:"recommendations"`
}

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var user string
	var format string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Query TMDB with saved or default preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := normalizeFormat(format)
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			recommender, err := ctx.recommender(logger)
			if err != nil {
				return err
			}

			runCtx := cmd.Context()
			session, _, err := ctx.startingSession(runCtx, user)
			if err != nil {
				return err
			}
			recs, err := recommender.Recommend(runCtx, session)
			if err != nil {
				return err
			}

			if recs == nil {
				recs = []catalog.Recommendation{}
			}
			if handled, err := writeStructured(cmd, format, recommendOutput{Preferences: session, Recommendations: recs}); handled {
				return err
			}

			w := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(w, "No results found with current preferences.")
				return nil
			}
			fmt.Fprintln(w, chat.RecommendationTable(recs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", defaultUser, "Use this user's saved preferences when persistence is enabled")
	addFormatFlag(cmd, &format)
	return cmd
}
