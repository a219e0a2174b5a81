package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"gonotes/internal/notes/domain/entities"
	apiv1 "gonotes/pkg/api/notes/v1"
)

// Поддерживаемые форматы вывода.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ErrUnknownFormat - неизвестный формат вывода.
const ErrUnknownFormat = "unknown output format"

func printNotes(w io.Writer, format string, notes []*entities.Note) error {
	out := apiv1.FromEntities(notes)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable, "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tCONTENT\tCREATED AT")
		for _, n := range out {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", n.ID, n.Title, n.Content, n.CreatedAt)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("%s: %q", ErrUnknownFormat, format)
	}
}
