package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ErrListNotes - ошибка получения списка заметок.
const ErrListNotes = "failed to list notes"

func newListCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all notes in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient(cmd, root)
			if err != nil {
				return err
			}

			notes, err := c.ListNotes(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s: %w", ErrListNotes, err)
			}

			return printNotes(cmd.OutOrStdout(), format, notes)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", FormatTable, "output format: table, json or yaml")

	return cmd
}
