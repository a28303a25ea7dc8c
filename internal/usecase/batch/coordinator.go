package batch

import (
	"context"
	"fmt"
)

const DefaultPageSize = 500

// ItemError isolates one failed document of a run.
type ItemError struct {
	Key string
	Err error
}

func (e ItemError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

type Result struct {
	Processed int
	Applied   int
	Errors    []ItemError
}

// Coordinator runs a cursor-paginated scan: fetch a page ordered by a stable
// key, process each document independently, commit the page's accumulated
// mutations in one batch, advance the cursor to the last document, stop on a
// short or empty page. A document failure lands in the error list and never
// aborts the page; a commit failure fails the whole page the same way.
type Coordinator[D any, M any] struct {
	PageSize int
	// FetchPage returns up to limit documents whose key is greater than cursor,
	// ordered by key. An empty cursor starts the scan.
	FetchPage func(ctx context.Context, cursor string, limit int) ([]D, error)
	// Key extracts the stable ordering key of a document.
	Key func(doc D) string
	// Process inspects one document and returns its mutation. apply=false skips
	// the document without error (the mutation is discarded).
	Process func(ctx context.Context, doc D) (mutation M, apply bool, err error)
	// Commit writes one page's accumulated mutations atomically.
	Commit func(ctx context.Context, mutations []M) error
}

func (c *Coordinator[D, M]) Run(ctx context.Context) (*Result, error) {
	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	result := &Result{}
	cursor := ""

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		page, err := c.FetchPage(ctx, cursor, pageSize)
		if err != nil {
			return result, fmt.Errorf("failed to fetch page after %q: %w", cursor, err)
		}
		if len(page) == 0 {
			return result, nil
		}

		mutations := make([]M, 0, len(page))
		keys := make([]string, 0, len(page))
		for _, doc := range page {
			result.Processed++
			mutation, apply, err := c.Process(ctx, doc)
			if err != nil {
				result.Errors = append(result.Errors, ItemError{Key: c.Key(doc), Err: err})
				continue
			}
			if !apply {
				continue
			}
			mutations = append(mutations, mutation)
			keys = append(keys, c.Key(doc))
		}

		if len(mutations) > 0 {
			if err := c.Commit(ctx, mutations); err != nil {
				for _, key := range keys {
					result.Errors = append(result.Errors, ItemError{Key: key, Err: fmt.Errorf("batch commit failed: %w", err)})
				}
			} else {
				result.Applied += len(mutations)
			}
		}

		cursor = c.Key(page[len(page)-1])
		if len(page) < pageSize {
			return result, nil
		}
	}
}
