package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sciframe-io/sciframe/internal/editor"
)

// NewCatCommand creates the cat command, which prints text sources through
// the editor (decompressing and decoding as needed).
func NewCatCommand() *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "cat <file>...",
		Short: "Print text files, decompressing .gz and .bz2 transparently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)

			var opts []editor.Option
			if cfg.Encoding != "" {
				opts = append(opts, editor.WithEncoding(cfg.Encoding))
			}

			for _, path := range args {
				ed, err := editor.FromFile(path, opts...)
				if err != nil {
					return err
				}
				if preview {
					_, _ = fmt.Fprint(cmd.OutOrStdout(), ed.Preview())
				} else {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), ed.String())
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&preview, "preview", "n", false, "Numbered, truncated preview instead of full content")
	return cmd
}
