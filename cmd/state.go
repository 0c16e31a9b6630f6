package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or reset study progress",
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the progress summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		fmt.Fprintln(cmd.OutOrStdout(), a.services.ProgressSummary())
		return nil
	},
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear progress and history, keeping bookmarks",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.services.ResetProgress(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "♻️ Progress reset.")
		return nil
	},
}

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List or clear bookmarked questions",
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print bookmarked questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		out := cmd.OutOrStdout()
		questions := a.services.Bookmarks()
		if len(questions) == 0 {
			fmt.Fprintln(out, "🔖 No bookmarks yet.")
			return nil
		}
		for _, q := range questions {
			fmt.Fprintf(out, "%s\tch %d\t%s\n", q.ID, q.Chapter, q.Prompt)
		}
		return nil
	},
}

var bookmarksClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every bookmark",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		a.services.ClearBookmarks()
		fmt.Fprintln(cmd.OutOrStdout(), "🗑 Bookmarks cleared.")
		return nil
	},
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect stored records",
}

var stateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored records without their payloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.App.Timeout)
		defer cancel()

		infos, err := a.repos.List(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(infos) == 0 {
			fmt.Fprintln(out, "No records stored.")
			return nil
		}
		for _, info := range infos {
			fmt.Fprintf(out, "%-14s v%d  %6d bytes  %s\n",
				info.Key, info.SchemaVersion, info.Size, info.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	progressCmd.AddCommand(progressShowCmd, progressResetCmd)
	bookmarksCmd.AddCommand(bookmarksListCmd, bookmarksClearCmd)
	stateCmd.AddCommand(stateListCmd)
	rootCmd.AddCommand(progressCmd, bookmarksCmd, stateCmd)
}
