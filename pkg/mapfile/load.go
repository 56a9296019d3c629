package mapfile

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/mapforge/mapforge/pkg/errors"
)

// Loader reads map files and aggregates their items.
type Loader struct {
	parser *Parser
	logger *log.Logger
}

// NewLoader creates a loader. If logger is nil, the default logger is used.
func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{parser: NewParser(), logger: logger}
}

// LoadFiles loads every path and concatenates the results, preserving
// file-list order and, within each file, line order. Files are read
// concurrently; a failure to open or read any file fails the whole load.
func (l *Loader) LoadFiles(ctx context.Context, paths []string) (MapItems, error) {
	perFile := make([]MapItems, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items, err := l.LoadFile(path)
			if err != nil {
				return err
			}
			perFile[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var items MapItems
	for _, fileItems := range perFile {
		items = append(items, fileItems...)
	}
	return items, nil
}

// LoadFile loads one map file. Lines that fail to parse are dropped; the
// remaining items keep their original relative order.
func (l *Loader) LoadFile(path string) (MapItems, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "map file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "opening map file %s", path)
	}
	defer f.Close()

	items, err := l.load(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "reading map file %s", path)
	}
	l.logger.Debug("loaded map file", "path", path, "items", len(items))
	return items, nil
}

// LoadReader loads map lines from an in-memory source, such as an uploaded
// file. Semantics match LoadFile.
func (l *Loader) LoadReader(r io.Reader) (MapItems, error) {
	items, err := l.load(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "reading map data")
	}
	return items, nil
}

func (l *Loader) load(r io.Reader) (MapItems, error) {
	var items MapItems

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		item, err := l.parser.Parse(scanner.Text())
		if err != nil {
			// Malformed lines are excluded, never fatal.
			l.logger.Debug("skipping malformed line", "err", err)
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
