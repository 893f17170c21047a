package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/annodex/annodex/index"
	"github.com/annodex/annodex/internal/cli/ui"
	"github.com/annodex/annodex/internal/fixture"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <class> <field> <annotation>",
	Short: "Resolve an annotation on a field, expanding repeatable containers",
	Long: `Resolve the logical occurrences of an annotation type on a field in the
sample index. A directly attached instance is returned as-is; when only the
repeatable container is attached, its values are unwrapped in stored order.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := fixture.Build()
		if err != nil {
			return fmt.Errorf("failed to build sample index: %w", err)
		}

		cls, ok := idx.ClassByName(index.Name(args[0]))
		if !ok {
			return fmt.Errorf("class not found: %s", args[0])
		}
		field, ok := cls.Field(args[1])
		if !ok {
			return fmt.Errorf("field not found: %s.%s", args[0], args[1])
		}

		instances, err := field.AnnotationsWithRepeatable(index.Name(args[2]), idx)
		if err != nil {
			return err
		}

		details := ui.NewKeyValueTable(os.Stdout, noColor)
		details.AddRow("Field", field.String())
		details.AddRow("Annotation", args[2])
		details.AddRow("Occurrences", fmt.Sprintf("%d", len(instances)))
		details.Render()

		for _, inst := range instances {
			fmt.Fprintf(os.Stdout, "  %s\n", inst)
		}
		return nil
	},
}
