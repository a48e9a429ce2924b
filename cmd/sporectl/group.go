package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgunyavoy/sporegraph/idmanager"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Undo-group operations over the real graph",
}

var groupUndoLastCmd = &cobra.Command{
	Use:   "undo-last",
	Short: "group.undo_last: pop and reverse the most recent undo group",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		g, err := s.ids.UndoLast()
		if errors.Is(err, idmanager.ErrNoHistory) {
			fmt.Fprintln(cmd.OutOrStdout(), "no history to undo")
			return nil
		}
		if err != nil {
			return err
		}
		s.g.ApplyUndo(g)

		if err := s.save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "undid group %s (%s): removed %d spores, %d links\n",
			g.ID, g.Reason, len(g.Spores), len(g.Links))
		return nil
	},
}

func init() {
	groupCmd.AddCommand(groupUndoLastCmd)
}
