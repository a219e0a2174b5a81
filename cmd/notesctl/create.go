package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gonotes/internal/notes/domain/entities"
)

// ErrCreateNote - ошибка создания заметки.
const ErrCreateNote = "failed to create note"

func newCreateCmd(root *rootOptions) *cobra.Command {
	var (
		title   string
		content string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient(cmd, root)
			if err != nil {
				return err
			}

			note, err := c.CreateNote(cmd.Context(), title, content)
			if err != nil {
				return fmt.Errorf("%s: %w", ErrCreateNote, err)
			}

			return printNotes(cmd.OutOrStdout(), format, []*entities.Note{note})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "note title")
	cmd.Flags().StringVar(&content, "content", "", "note content")
	cmd.Flags().StringVarP(&format, "output", "o", FormatTable, "output format: table, json or yaml")

	return cmd
}
