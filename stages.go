package main

import (
	"fmt"
	"io"

	"github.com/milk9111/chroma/levels"
	"github.com/spf13/cobra"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List and validate the level table",
	Long:  `Loads the level table (embedded or --levels), validates it and prints one line per stage.`,
	RunE:  runStages,
}

func runStages(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}
	printStages(cmd.OutOrStdout(), table)
	return nil
}

func printStages(w io.Writer, table *levels.Table) {
	maxNameLen := 4 // "Name" header
	for i := 0; i < table.Len(); i++ {
		st, _ := table.Stage(i)
		if len(stageName(st)) > maxNameLen {
			maxNameLen = len(stageName(st))
		}
	}

	fmt.Fprintf(w, "  %-3s  %-*s  %5s  %5s  %5s  %s\n", "#", maxNameLen, "Name", "Rects", "Items", "Boxes", "Portal")
	fmt.Fprintf(w, "  %-3s  %-*s  %5s  %5s  %5s  %s\n", "-", maxNameLen, "----", "-----", "-----", "-----", "------")
	for i := 0; i < table.Len(); i++ {
		st, _ := table.Stage(i)
		fmt.Fprintf(w, "  %-3d  %-*s  %5d  %5d  %5d  (%d,%d)\n",
			i, maxNameLen, stageName(st), len(st.Map), len(st.Items), len(st.Boxes), st.Portal.X, st.Portal.Y)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d stages OK. Run 'chroma --stage <n>' to start at a stage.\n", table.Len())
}

func stageName(st levels.Stage) string {
	if st.Name == "" {
		return "-"
	}
	return st.Name
}
