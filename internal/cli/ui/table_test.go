package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Field", "Type", "Flags"}, &TableOptions{NoColor: true})

	table.AddRow("id", "java.util.UUID", "private final")
	table.AddRow("name", "java.lang.String", "private")

	table.Render()

	output := buf.String()
	for _, want := range []string{"Field", "Type", "Flags", "id", "java.util.UUID", "private final", "name"} {
		if !strings.Contains(output, want) {
			t.Errorf("Table output missing %q", want)
		}
	}

	// Columns are aligned: every row has the same prefix width up to col 2.
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines (header, separator, 2 rows), got %d", len(lines))
	}
}

func TestTable_NoRows(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Class"}, &TableOptions{NoColor: true})
	table.Render()

	output := buf.String()
	if !strings.Contains(output, "Class") {
		t.Errorf("Table output missing header")
	}
}

func TestKeyValueTable(t *testing.T) {
	var buf bytes.Buffer
	table := NewKeyValueTable(&buf, true)
	table.AddRow("Owner", "com.example.User")
	table.AddRow("Name", "name")

	table.Render()

	output := buf.String()
	if !strings.Contains(output, "Owner:") || !strings.Contains(output, "com.example.User") {
		t.Errorf("KeyValueTable output missing owner row: %q", output)
	}
	if !strings.Contains(output, "Name:") {
		t.Errorf("KeyValueTable output missing name row: %q", output)
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	Header(&buf, "Classes", true)

	output := buf.String()
	if !strings.Contains(output, "Classes") || !strings.Contains(output, "───") {
		t.Errorf("Header output malformed: %q", output)
	}
}
