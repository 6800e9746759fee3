package commands

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sciframe-io/sciframe/internal/frame"
)

// renderFrame writes a frame to the command's stdout in the configured
// format. Tables are constrained to the terminal width when stdout is one.
func renderFrame(cmd *cobra.Command, f *frame.Frame, format string) error {
	if format == "" || format == "table" {
		return frame.RenderTable(cmd.OutOrStdout(), f, terminalWidth(cmd))
	}
	return frame.Render(cmd.OutOrStdout(), f, format)
}

func terminalWidth(cmd *cobra.Command) int {
	file, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}
