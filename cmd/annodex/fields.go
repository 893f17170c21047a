package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/annodex/annodex/index"
	"github.com/annodex/annodex/internal/cli/ui"
	"github.com/annodex/annodex/internal/fixture"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields <class>",
	Short: "List the fields of a class in the sample index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := fixture.Build()
		if err != nil {
			return fmt.Errorf("failed to build sample index: %w", err)
		}

		name := index.Name(args[0])
		cls, ok := idx.ClassByName(name)
		if !ok {
			return fmt.Errorf("class not found: %s", name)
		}

		ui.Header(os.Stdout, "Fields of "+name.String(), noColor)
		table := ui.NewTable(os.Stdout, []string{"Name", "Type", "Annotations"}, &ui.TableOptions{NoColor: noColor})
		for _, f := range cls.Fields() {
			annotations := make([]string, 0, len(f.Annotations()))
			for _, a := range f.Annotations() {
				annotations = append(annotations, "@"+a.Name().Local())
			}
			table.AddRow(f.Name(), f.Type().String(), strings.Join(annotations, " "))
		}
		table.Render()
		return nil
	},
}
