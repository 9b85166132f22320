package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/akarlsons/racetime-export/internal/competition"
	"github.com/akarlsons/racetime-export/internal/export"
	"github.com/akarlsons/racetime-export/internal/logger"
	"github.com/akarlsons/racetime-export/internal/results"
	"github.com/akarlsons/racetime-export/internal/scraper"
	"github.com/akarlsons/racetime-export/internal/urllist"
)

// fetchTable fetches url, extracts its results table and applies the
// cleanup transforms: duplicate rows dropped, Name column stripped of club
// text, columns restricted to the given selection (empty keeps them all).
func fetchTable(client *scraper.Client, url string, columns []string) (*results.Table, error) {
	logger.Debug("fetching page", logger.Fields{"url": url})

	start := time.Now()
	html, err := client.FetchPage(url)
	logger.RecordTiming("fetch", time.Since(start))
	if err != nil {
		return nil, err
	}

	table, err := scraper.ParseResultsTable(html)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed results table", logger.Fields{
		"url":     url,
		"columns": len(table.Header),
		"rows":    len(table.Rows),
	})

	return table.Dedupe().CleanNames().Select(columns), nil
}

// exportSingle runs the pipeline for one URL and writes the table to an
// explicit output path. It returns the number of data rows written.
func exportSingle(client *scraper.Client, url, outPath string, columns []string) (int, error) {
	table, err := fetchTable(client, url, columns)
	if err != nil {
		return 0, err
	}

	if err := export.WriteFile(table, outPath); err != nil {
		return 0, err
	}

	return len(table.Rows), nil
}

// exportCompetition runs the pipeline for one URL in a batch, deriving the
// output file name from the competition's event id.
func exportCompetition(client *scraper.Client, writer *export.Writer, url string, columns []string) (string, int, error) {
	comp, err := competition.Parse(url)
	if err != nil {
		return "", 0, err
	}

	table, err := fetchTable(client, url, columns)
	if err != nil {
		return "", 0, err
	}

	path, err := writer.Write(table, comp.CSVFilename())
	if err != nil {
		return "", 0, err
	}

	return path, len(table.Rows), nil
}

// exportList processes every URL in the list file, writing one CSV per
// competition into outDir. A failing URL is logged and processing continues;
// the returned error reports the aggregate outcome.
func exportList(client *scraper.Client, listPath, outDir string, columns []string, out io.Writer) error {
	reader, err := urllist.Open(listPath)
	if err != nil {
		return err
	}
	defer reader.Close()

	writer, err := export.NewWriter(outDir)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger.Debug("starting batch run", logger.Fields{"run_id": runID, "list": listPath})

	var succeeded, failed int
	for reader.Next() {
		url := reader.URL()

		path, rows, err := exportCompetition(client, writer, url, columns)
		if err != nil {
			failed++
			logger.IncrCounter("urls_failed")

			fields := logger.Fields{"run_id": runID, "url": url}
			if kind := classify(err); kind != "" {
				fields["kind"] = kind
			}
			logger.Error("url failed", fields, err)
			continue
		}

		succeeded++
		logger.IncrCounter("urls_ok")
		logger.AddCounter("rows_written", int64(rows))
		fmt.Fprintf(out, "Wrote %d rows to %s\n", rows, path)
	}
	if err := reader.Err(); err != nil {
		return fmt.Errorf("reading url list: %w", err)
	}

	logger.Info("batch run finished", logger.Fields{
		"run_id":    runID,
		"succeeded": succeeded,
		"failed":    failed,
	})
	if flagVerbose {
		logger.Debug("run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d urls failed", failed, succeeded+failed)
	}

	return nil
}
