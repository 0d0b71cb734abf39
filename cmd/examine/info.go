package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mscrnt/examine/pkg/display"
	"github.com/mscrnt/examine/pkg/snapshot"
)

func infoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print system information to stdout",
		Long: `Collect the same snapshot the GUI shows and print every page as text,
or as JSON with --json.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")

			s := snapshot.Collect()

			if jsonOutput {
				data, err := json.MarshalIndent(s, "", "  ")
				if err != nil {
					return fmt.Errorf("encode snapshot: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			for i, p := range display.Pages() {
				if i > 0 {
					fmt.Println()
				}
				printPage(p, s)
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func printPage(p display.Page, s *snapshot.Snapshot) {
	title := p.Title()
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", len(title)))

	rows := display.Rows(p, s)
	if len(rows) == 0 {
		fmt.Println("  (no data)")
		return
	}
	for _, row := range rows {
		fmt.Printf("  %s: %s\n", row.Label, row.Value)
	}
}
