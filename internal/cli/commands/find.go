package commands

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sciframe-io/sciframe/internal/editor"
	"github.com/sciframe-io/sciframe/internal/frame"
)

// fileMatches pairs a searched file with its find result.
type fileMatches struct {
	path  string
	found editor.Found
}

// NewFindCommand creates the find command: multi-pattern substring search
// across one or more files, rendered as a frame.
func NewFindCommand() *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "find <pattern>... -f <file>...",
		Short: "Search files line by line for one or more patterns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, patterns []string) error {
			if len(files) == 0 {
				return fmt.Errorf("at least one --file is required")
			}
			cfg := configFrom(cmd)
			logger := loggerFrom(cmd)

			var opts []editor.Option
			if cfg.Encoding != "" {
				opts = append(opts, editor.WithEncoding(cfg.Encoding))
			}

			// Files are searched concurrently; each editor stays confined
			// to its own goroutine.
			results := make([]fileMatches, len(files))
			var mu sync.Mutex
			g, _ := errgroup.WithContext(cmd.Context())
			for i, path := range files {
				g.Go(func() error {
					ed, err := editor.FromFile(path, opts...)
					if err != nil {
						return err
					}
					found := ed.Find(patterns...)
					mu.Lock()
					results[i] = fileMatches{path: path, found: found}
					mu.Unlock()
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			f, err := matchFrame(results)
			if err != nil {
				return err
			}
			logger.Debug("search finished", "files", len(files), "patterns", len(patterns), "matches", f.NumRows())
			return renderFrame(cmd, f, cfg.Output)
		},
	}

	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "File to search (repeatable)")
	return cmd
}

// matchFrame flattens per-file find results into a frame with one row per
// match, in file order then pattern order then line order.
func matchFrame(results []fileMatches) (*frame.Frame, error) {
	var paths, patterns, nums, texts []any
	for _, r := range results {
		for i := 0; i < r.found.Len(); i++ {
			group := r.found.Group(i)
			for _, m := range group.All() {
				paths = append(paths, r.path)
				patterns = append(patterns, group.Pattern())
				nums = append(nums, m.Num)
				texts = append(texts, m.Text)
			}
		}
	}
	return frame.New([]frame.Column{
		{Name: "file", Values: paths},
		{Name: "pattern", Values: patterns},
		{Name: "line", Values: nums},
		{Name: "text", Values: texts},
	}, frame.WithName("matches"))
}
