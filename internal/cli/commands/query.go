package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sciframe-io/sciframe/internal/adapter"
)

// NewQueryCommand creates the query command, which runs SQL against the
// configured target database and materializes the result into a frame.
func NewQueryCommand() *cobra.Command {
	var saveName string

	cmd := &cobra.Command{
		Use:   "query <sql>",
		Short: "Run SQL against the configured target and show the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			logger := loggerFrom(cmd)

			if cfg.Target == nil {
				return fmt.Errorf("no target configured (add a target section to sciframe.yaml)")
			}
			if err := cfg.Target.Validate(); err != nil {
				return err
			}

			db, err := adapter.New(cfg.Target.ToAdapterConfig(), logger)
			if err != nil {
				return err
			}
			if err := db.Connect(cmd.Context(), cfg.Target.ToAdapterConfig()); err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			rows, err := db.Query(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			name := saveName
			if name == "" {
				name = "query"
			}
			f, err := adapter.FrameFromRows(rows, name)
			if err != nil {
				return err
			}
			logger.Debug("query finished", "dialect", db.DialectName(), "rows", f.NumRows())

			if saveName != "" {
				store, err := openStore(cmd)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
				if err := store.SaveFrame(cmd.Context(), f); err != nil {
					return err
				}
			}
			return renderFrame(cmd, f, cfg.Output)
		},
	}

	cmd.Flags().StringVar(&saveName, "save", "", "Persist the result to the frame store under this name")
	return cmd
}
