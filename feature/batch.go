package feature

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
)

// BatchItem is the result of one file of a batch.
type BatchItem struct {
	Path string
	Result
}

// Batch extracts kind features from every path in order. Unreadable files do
// not stop the batch; they show up as items with a ReadError. Any other
// failure is collected and returned once all paths were visited.
// The items slice only contains paths that did not fail hard.
func (e *Extractor) Batch(ctx context.Context, kind Kind, paths []string) ([]BatchItem, error) {
	var (
		items  = make([]BatchItem, 0, len(paths))
		result *multierror.Error
	)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			result = multierror.Append(result, err)
			break
		}

		res, err := e.Extract(ctx, kind, path)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("unable to extract %v from '%s': %w", kind, path, err))
			continue
		}
		items = append(items, BatchItem{Path: path, Result: res})
	}
	logger.Debugf(ctx, "batch of %d files: %d results", len(paths), len(items))
	return items, result.ErrorOrNil()
}
