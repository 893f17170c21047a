package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/annodex/annodex/index"
	"github.com/annodex/annodex/internal/cli/ui"
	"github.com/annodex/annodex/internal/fixture"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the classes in the sample index",
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := fixture.Build()
		if err != nil {
			return fmt.Errorf("failed to build sample index: %w", err)
		}

		ui.Header(os.Stdout, "Classes", noColor)
		table := ui.NewTable(os.Stdout, []string{"Name", "Kind", "Fields", "Methods"}, &ui.TableOptions{NoColor: noColor})
		for _, c := range idx.Classes() {
			table.AddRow(
				c.Name().String(),
				classKind(c),
				strconv.Itoa(len(c.Fields())),
				strconv.Itoa(len(c.Methods())),
			)
		}
		table.Render()
		return nil
	},
}

func classKind(c *index.ClassInfo) string {
	switch {
	case c.IsAnnotationType():
		return "annotation"
	case c.IsEnum():
		return "enum"
	case c.IsInterface():
		return "interface"
	}
	return "class"
}
