package slackexport

// In this file: message history retrieval.

import (
	"context"
	"fmt"

	"github.com/proelbtn/slack-export-viewer/internal/slackapi"
)

// History fetches the full message history of a single channel in the API
// native, reverse chronological order.  Pagination continues while the
// has_more flag of a page is set.
func (s *Session) History(ctx context.Context, channelID string) ([]slackapi.Message, error) {
	msgs, err := collectHistory(ctx, func(ctx context.Context, cursor string) (*slackapi.ConversationsHistoryResponse, []slackapi.Message, error) {
		resp, err := s.client.ConversationsHistory(ctx, channelID, cursor)
		if err != nil {
			return nil, nil, err
		}
		return resp, resp.Messages, nil
	})
	if err != nil {
		return nil, fmt.Errorf("conversations.history: %w", err)
	}
	return msgs, nil
}
