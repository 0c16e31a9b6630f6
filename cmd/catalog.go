package main

import (
	"fmt"

	"github.com/simplysrv/WA-Driving-Test-Prep/internal/catalog"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/config"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the question catalog",
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Validate question files",
	Long: `Loads every JSON question file in dir and reports the first invalid
question. Without dir the configured catalog directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		} else {
			cfg, err := config.Init()
			if err != nil {
				return err
			}
			dir = cfg.Catalog.Dir
		}

		c, err := catalog.LoadDir(dir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ %d questions in %s\n", c.Count(), dir)
		for _, ch := range c.Chapters() {
			fmt.Fprintf(out, "  Chapter %d: %d\n", ch, len(c.ByChapter(ch)))
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogCheckCmd)
	rootCmd.AddCommand(catalogCmd)
}
