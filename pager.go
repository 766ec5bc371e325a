package slackexport

import (
	"context"
)

// Pagination over the Slack Web API.  Two termination policies exist:
// conversations.list, conversations.members and users.list follow
// response_metadata.next_cursor until it comes back empty, while
// conversations.history continues on the has_more flag and disregards the
// cursor of the last page.

// apiPage is the envelope of a single page of an API response, provided by
// the embedded [slackapi.BaseResponse].
type apiPage interface {
	IsOK() bool
	Err() error
	NextCursor() string
}

// historyPage is a page that terminates on an explicit "more data" flag.
type historyPage interface {
	apiPage
	More() bool
}

// fetchFunc retrieves a single page of results.  An empty cursor requests
// the first page.
type fetchFunc[P apiPage, T any] func(ctx context.Context, cursor string) (P, []T, error)

// collectPages repeatedly calls fetch, accumulating the items of every page,
// until the cursor returned with a page is empty.  A page with the success
// flag unset terminates the iteration with the page's API error.
func collectPages[P apiPage, T any](ctx context.Context, fetch fetchFunc[P, T]) ([]T, error) {
	var all []T
	var cursor string
	for {
		page, items, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		if err := page.Err(); err != nil {
			return nil, err
		}
		all = append(all, items...)
		cursor = page.NextCursor()
		if cursor == "" {
			break
		}
	}
	return all, nil
}

// collectHistory is collectPages for the has_more termination policy:
// iteration stops as soon as a page reports no more data, regardless of the
// cursor value present in that page.
func collectHistory[P historyPage, T any](ctx context.Context, fetch fetchFunc[P, T]) ([]T, error) {
	var all []T
	var cursor string
	for {
		page, items, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		if err := page.Err(); err != nil {
			return nil, err
		}
		all = append(all, items...)
		if !page.More() {
			break
		}
		cursor = page.NextCursor()
	}
	return all, nil
}
