package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sciframe-io/sciframe/internal/frame"
	"github.com/sciframe-io/sciframe/internal/state"
)

// NewFramesCommand creates the frames command group for managing the frame
// store.
func NewFramesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Manage stored frames",
	}
	cmd.AddCommand(newFramesListCommand())
	cmd.AddCommand(newFramesShowCommand())
	cmd.AddCommand(newFramesRemoveCommand())
	return cmd
}

func newFramesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd)
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			infos, err := store.ListFrames(cmd.Context())
			if err != nil {
				return err
			}

			var ids, names, cols, rows, created []any
			for _, info := range infos {
				ids = append(ids, info.ID)
				names = append(names, info.Name)
				cols = append(cols, info.NumCols)
				rows = append(rows, info.NumRows)
				created = append(created, info.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			f, err := frame.New([]frame.Column{
				{Name: "id", Values: ids},
				{Name: "name", Values: names},
				{Name: "columns", Values: cols},
				{Name: "rows", Values: rows},
				{Name: "created", Values: created},
			}, frame.WithName("frames"))
			if err != nil {
				return err
			}
			return renderFrame(cmd, f, cfg.Output)
		},
	}
}

func newFramesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show a stored frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			f, err := store.LoadFrame(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderFrame(cmd, f, cfg.Output)
		},
	}
}

func newFramesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id|name>",
		Aliases: []string{"remove"},
		Short:   "Remove a stored frame",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteFrame(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed frame %s\n", args[0])
			return nil
		},
	}
}

// openStore opens and migrates the frame store at the configured path.
func openStore(cmd *cobra.Command) (*state.Store, error) {
	cfg := configFrom(cmd)
	store := state.NewStore(loggerFrom(cmd))
	if err := store.Open(cfg.StatePath); err != nil {
		return nil, err
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}
