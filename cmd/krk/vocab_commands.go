package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"krk/internal/catalog"
	"krk/internal/chat"
	"krk/internal/vocab"
)

func newVocabCommand(ctx *commandContext) *cobra.Command {
	vocabCmd := &cobra.Command{
		Use:   "vocab",
		Short: "Manage the alias vocabulary files",
	}

	vocabCmd.AddCommand(newVocabInitCommand(ctx))
	vocabCmd.AddCommand(newVocabCheckCommand(ctx))
	vocabCmd.AddCommand(newVocabSyncGenresCommand(ctx))

	return vocabCmd
}

func newVocabInitCommand(ctx *commandContext) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the bundled starter vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			written, err := vocab.WriteSeed(cfg.Paths.VocabDir, overwrite)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(written) == 0 {
				fmt.Fprintf(w, "Vocabulary already present in %s (use --overwrite to replace it)\n", cfg.Paths.VocabDir)
				return nil
			}
			for _, path := range written {
				fmt.Fprintf(w, "Wrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing vocabulary files")
	return cmd
}

func newVocabCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the vocabulary and report entry counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			v, err := vocab.LoadDir(cfg.Paths.VocabDir)
			if err != nil {
				return err
			}
			counts := v.Counts()
			rows := make([][]string, 0, len(vocab.Kinds))
			for _, kind := range vocab.Kinds {
				rows = append(rows, []string{
					kind.String(),
					filepath.Join(cfg.Paths.VocabDir, kind.FileName()),
					strconv.Itoa(counts[kind]),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), chat.Table([]string{"Table", "File", "Entries"}, rows, 2))
			return nil
		},
	}
}

func newVocabSyncGenresCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sync-genres",
		Short: "Refresh genre.txt from the TMDB genre list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.catalogClient()
			if err != nil {
				return err
			}
			v, err := vocab.LoadDir(cfg.Paths.VocabDir)
			if err != nil {
				return err
			}

			updated, err := catalog.SyncGenres(cmd.Context(), client, v.Genres)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			path := filepath.Join(cfg.Paths.VocabDir, vocab.KindGenre.FileName())
			if updated.Equal(v.Genres) {
				fmt.Fprintf(w, "%s is already up to date (%d entries)\n", path, updated.Len())
				return nil
			}

			diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(v.Genres.Lines() + "\n"),
				B:        difflib.SplitLines(updated.Lines() + "\n"),
				FromFile: path,
				ToFile:   path + " (tmdb)",
				Context:  1,
			})
			if err != nil {
				return fmt.Errorf("diff genres: %w", err)
			}
			fmt.Fprint(w, diff)

			if dryRun {
				fmt.Fprintln(w, "Dry run; genre.txt not modified")
				return nil
			}
			if err := vocab.WriteMapping(path, updated); err != nil {
				return err
			}
			fmt.Fprintf(w, "Updated %s (%d entries)\n", path, updated.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the changes without writing genre.txt")
	return cmd
}
