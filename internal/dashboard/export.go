package dashboard

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"stocksense/types"

	"github.com/schollz/progressbar/v3"
)

// Export writes one series CSV per ticker symbol into dir and returns the
// written paths. Progress is drawn on progress.
func (e *Engine) Export(ctx context.Context, dir string, r types.Range, progress io.Writer) ([]string, error) {
	quotes, err := e.db.GetQuotes(ctx)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	bar := initProgressBar(len(quotes), progress)
	defer bar.Finish()

	paths := make([]string, 0, len(quotes))
	for _, q := range quotes {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		chart, err := e.db.GetSeries(ctx, q.Symbol, q.Price, r)
		if err != nil {
			return paths, fmt.Errorf("export %s: %w", q.Symbol, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.csv", strings.ToLower(q.Symbol), r))
		if err := writeSeriesCSVFile(path, chart); err != nil {
			return paths, fmt.Errorf("export %s: %w", q.Symbol, err)
		}
		paths = append(paths, path)
		_ = bar.Add(1)
	}

	e.log.Info().Str("dir", dir).Int("files", len(paths)).Msg("Export complete")
	return paths, nil
}

func initProgressBar(maxTicks int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Exporting series..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
