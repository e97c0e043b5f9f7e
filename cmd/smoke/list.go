package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-smoke/internal/platform/tui"
	"github.com/vovakirdan/tui-smoke/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered simulations",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	sims := registry.List()
	if len(sims) == 0 {
		_, err := fmt.Fprintln(out, "no simulations registered")
		return err
	}

	_, err := fmt.Fprintf(out, "%s\n\nstart one with: smoke --sim <id>\n", tui.RenderCatalog(sims))
	return err
}
