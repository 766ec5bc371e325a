package slackexport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/proelbtn/slack-export-viewer/internal/slackapi"
)

func TestSession_History(t *testing.T) {
	t.Run("follows has_more, not the cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newMockClienter(ctrl)
		m.EXPECT().ConversationsHistory(gomock.Any(), "C01", "").Return(&slackapi.ConversationsHistoryResponse{
			BaseResponse: okBaseNext("h1"),
			Messages:     []slackapi.Message{{Timestamp: "1700000002.000100", Text: "two"}},
			HasMore:      true,
		}, nil)
		// the final page still carries a cursor, it must be disregarded.
		m.EXPECT().ConversationsHistory(gomock.Any(), "C01", "h1").Return(&slackapi.ConversationsHistoryResponse{
			BaseResponse: okBaseNext("h2"),
			Messages:     []slackapi.Message{{Timestamp: "1700000001.000100", Text: "one"}},
			HasMore:      false,
		}, nil)

		s := New(m, nil)
		msgs, err := s.History(context.Background(), "C01")
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		// retrieval order is preserved, no re-sorting.
		assert.Equal(t, "two", msgs[0].Text)
		assert.Equal(t, "one", msgs[1].Text)
	})

	t.Run("failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newMockClienter(ctrl)
		m.EXPECT().ConversationsHistory(gomock.Any(), "C01", "").Return(&slackapi.ConversationsHistoryResponse{
			BaseResponse: slackapi.BaseResponse{Ok: false, Error: "channel_not_found"},
		}, nil)

		s := New(m, nil)
		_, err := s.History(context.Background(), "C01")
		require.Error(t, err)
	})
}
