package commands

import (
	"github.com/spf13/cobra"

	"github.com/sciframe-io/sciframe/internal/editor"
	"github.com/sciframe-io/sciframe/internal/seed"
)

// NewSeedCommand creates the seed command, which loads a CSV seed file
// (with optional YAML frontmatter) into a frame.
func NewSeedCommand() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "seed <file>",
		Short: "Load a CSV seed file into a frame",
		Long: `Load a CSV seed file into a frame. An optional YAML frontmatter block
declares the frame name, dimension columns, units, and metadata.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			logger := loggerFrom(cmd)

			var opts []editor.Option
			if cfg.Encoding != "" {
				opts = append(opts, editor.WithEncoding(cfg.Encoding))
			}
			f, err := seed.LoadFile(args[0], opts...)
			if err != nil {
				return err
			}
			logger.Debug("loaded seed", "path", args[0], "name", f.Name(), "rows", f.NumRows())

			if save {
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

	cmd.Flags().BoolVar(&save, "save", false, "Persist the frame to the frame store")
	return cmd
}
