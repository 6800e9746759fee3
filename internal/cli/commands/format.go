package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sciframe-io/sciframe/internal/editor"
)

// NewFormatCommand creates the format command, which substitutes {name}
// placeholders in a text file.
func NewFormatCommand() *cobra.Command {
	var (
		sets    []string
		inPlace bool
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "format <file> --set key=value...",
		Short: "Substitute {name} placeholders in a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inPlace && outPath != "" {
				return fmt.Errorf("--in-place and --write are mutually exclusive")
			}
			cfg := configFrom(cmd)

			vars := make(map[string]string, len(sets))
			for _, set := range sets {
				key, value, ok := strings.Cut(set, "=")
				if !ok {
					return fmt.Errorf("invalid --set %q, want key=value", set)
				}
				vars[key] = value
			}

			var opts []editor.Option
			if cfg.Encoding != "" {
				opts = append(opts, editor.WithEncoding(cfg.Encoding))
			}
			ed, err := editor.FromFile(args[0], opts...)
			if err != nil {
				return err
			}

			switch {
			case inPlace:
				return ed.FormatInPlace(vars).Write(args[0])
			case outPath != "":
				return ed.Format(vars).Write(outPath)
			default:
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), ed.Format(vars).String())
				return nil
			}
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Placeholder substitution key=value (repeatable)")
	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "Rewrite the input file")
	cmd.Flags().StringVarP(&outPath, "write", "w", "", "Write the result to this path")
	return cmd
}
