package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"krk/internal/chat"
	"krk/internal/language"
	"krk/internal/prefs"
	"krk/internal/sessionstore"
)

func newPrefsCommand(ctx *commandContext) *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect and reset saved preferences",
	}

	prefsCmd.AddCommand(newPrefsShowCommand(ctx))
	prefsCmd.AddCommand(newPrefsListCommand(ctx))
	prefsCmd.AddCommand(newPrefsResetCommand(ctx))

	return prefsCmd
}

func newPrefsShowCommand(ctx *commandContext) *cobra.Command {
	var user string
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved preferences for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := normalizeFormat(format)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ctx.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			rec, ok, err := store.Get(cmd.Context(), user)
			if err != nil {
				return err
			}
			if !ok {
				rec = sessionstore.Record{User: user, Session: cfg.SessionDefaults()}
			}
			if handled, err := writeStructured(cmd, format, rec); handled {
				return err
			}

			w := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintf(w, "No saved preferences for %s; showing defaults\n", user)
			} else {
				fmt.Fprintf(w, "Preferences for %s (%d turns, updated %s)\n", rec.User, rec.Turns, formatTimestamp(rec.UpdatedAt))
			}

			// Labels are best-effort; a missing vocabulary still shows raw ids.
			v, _ := ctx.loadVocabulary()
			rows := make([][]string, 0, len(prefs.Fields))
			for _, row := range chat.PreferenceRows(prefs.Describe(rec.Session, v)) {
				rows = append(rows, []string{row[0], row[1]})
			}
			fmt.Fprintln(w, chat.Table([]string{"Preference", "Value"}, rows))
			if !cfg.Session.Persist {
				fmt.Fprintln(w, "Persistence is disabled (session.persist = false); chats do not update saved preferences.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", defaultUser, "User whose preferences to show")
	addFormatFlag(cmd, &format)
	return cmd
}

func newPrefsListCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := normalizeFormat(format)
			if err != nil {
				return err
			}
			store, err := ctx.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if records == nil {
				records = []sessionstore.Record{}
			}
			if handled, err := writeStructured(cmd, format, records); handled {
				return err
			}

			w := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(w, "No saved sessions")
				return nil
			}
			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.User,
					orAny(rec.Session.ActorID),
					orAny(rec.Session.GenreID),
					language.DisplayName(rec.Session.Language),
					rec.Session.DateFrom + " .. " + rec.Session.DateTo,
					strconv.Itoa(rec.Turns),
					formatTimestamp(rec.UpdatedAt),
				})
			}
			fmt.Fprintln(w, chat.Table([]string{"User", "Actor", "Genre", "Language", "Window", "Turns", "Updated"}, rows, 5))
			return nil
		},
	}

	addFormatFlag(cmd, &format)
	return cmd
}

func newPrefsResetCommand(ctx *commandContext) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved preferences for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Acquire(); err != nil {
				return err
			}
			removed, err := store.Delete(cmd.Context(), user)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if removed {
				fmt.Fprintf(w, "Cleared saved preferences for %s\n", user)
			} else {
				fmt.Fprintf(w, "No saved preferences for %s\n", user)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", defaultUser, "User whose preferences to forget")
	return cmd
}

func orAny(value string) string {
	if value == "" {
		return "Any"
	}
	return value
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format("2006-01-02 15:04")
}
