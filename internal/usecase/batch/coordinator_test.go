package batch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	id    string
	value int
}

func makeDocs(n int) []doc {
	docs := make([]doc, n)
	for i := range docs {
		docs[i] = doc{id: fmt.Sprintf("doc-%04d", i), value: i}
	}
	return docs
}

func slicePager(docs []doc) func(ctx context.Context, cursor string, limit int) ([]doc, error) {
	return func(_ context.Context, cursor string, limit int) ([]doc, error) {
		var page []doc
		for _, d := range docs {
			if d.id > cursor {
				page = append(page, d)
				if len(page) == limit {
					break
				}
			}
		}
		return page, nil
	}
}

func TestCoordinator_ScansAllPages(t *testing.T) {
	docs := makeDocs(12)
	var committed [][]string

	c := &Coordinator[doc, string]{
		PageSize:  5,
		FetchPage: slicePager(docs),
		Key:       func(d doc) string { return d.id },
		Process: func(_ context.Context, d doc) (string, bool, error) {
			return d.id, true, nil
		},
		Commit: func(_ context.Context, mutations []string) error {
			committed = append(committed, mutations)
			return nil
		},
	}

	result, err := c.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, result.Processed)
	assert.Equal(t, 12, result.Applied)
	assert.Empty(t, result.Errors)
	// 5 + 5 + 2, one commit per page
	require.Len(t, committed, 3)
	assert.Len(t, committed[0], 5)
	assert.Len(t, committed[2], 2)
}

func TestCoordinator_StopsOnShortPage(t *testing.T) {
	docs := makeDocs(3)
	fetches := 0
	pager := slicePager(docs)

	c := &Coordinator[doc, string]{
		PageSize: 5,
		FetchPage: func(ctx context.Context, cursor string, limit int) ([]doc, error) {
			fetches++
			return pager(ctx, cursor, limit)
		},
		Key:     func(d doc) string { return d.id },
		Process: func(_ context.Context, d doc) (string, bool, error) { return d.id, true, nil },
		Commit:  func(_ context.Context, _ []string) error { return nil },
	}

	_, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
}

func TestCoordinator_DocumentErrorDoesNotAbortPage(t *testing.T) {
	docs := makeDocs(6)
	var committed []string

	c := &Coordinator[doc, string]{
		PageSize:  10,
		FetchPage: slicePager(docs),
		Key:       func(d doc) string { return d.id },
		Process: func(_ context.Context, d doc) (string, bool, error) {
			if d.value%2 == 0 {
				return "", false, errors.New("boom")
			}
			return d.id, true, nil
		},
		Commit: func(_ context.Context, mutations []string) error {
			committed = append(committed, mutations...)
			return nil
		},
	}

	result, err := c.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, result.Processed)
	assert.Equal(t, 3, result.Applied)
	assert.Len(t, result.Errors, 3)
	assert.Equal(t, []string{"doc-0001", "doc-0003", "doc-0005"}, committed)
}

func TestCoordinator_SkippedDocumentsAreNotCommitted(t *testing.T) {
	docs := makeDocs(4)

	c := &Coordinator[doc, string]{
		PageSize:  10,
		FetchPage: slicePager(docs),
		Key:       func(d doc) string { return d.id },
		Process: func(_ context.Context, d doc) (string, bool, error) {
			return d.id, d.value == 2, nil
		},
		Commit: func(_ context.Context, mutations []string) error {
			assert.Equal(t, []string{"doc-0002"}, mutations)
			return nil
		},
	}

	result, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, result.Processed)
	assert.Equal(t, 1, result.Applied)
	assert.Empty(t, result.Errors)
}

func TestCoordinator_CommitFailureIsIsolatedPerPage(t *testing.T) {
	docs := makeDocs(10)
	page := 0

	c := &Coordinator[doc, string]{
		PageSize:  5,
		FetchPage: slicePager(docs),
		Key:       func(d doc) string { return d.id },
		Process:   func(_ context.Context, d doc) (string, bool, error) { return d.id, true, nil },
		Commit: func(_ context.Context, _ []string) error {
			page++
			if page == 1 {
				return errors.New("storage unavailable")
			}
			return nil
		},
	}

	result, err := c.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, result.Processed)
	assert.Equal(t, 5, result.Applied)
	assert.Len(t, result.Errors, 5)
}

func TestCoordinator_FetchErrorAbortsRun(t *testing.T) {
	c := &Coordinator[doc, string]{
		PageSize: 5,
		FetchPage: func(_ context.Context, _ string, _ int) ([]doc, error) {
			return nil, errors.New("connection refused")
		},
		Key:     func(d doc) string { return d.id },
		Process: func(_ context.Context, d doc) (string, bool, error) { return d.id, true, nil },
		Commit:  func(_ context.Context, _ []string) error { return nil },
	}

	_, err := c.Run(context.Background())
	assert.Error(t, err)
}
