package slackapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ConversationsHistory(t *testing.T) {
	cl := newTestClient(t, "xoxb-test", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conversations.history", r.URL.Path)
		assert.Equal(t, "C0123", r.URL.Query().Get("channel"))
		w.Write([]byte(`{
			"ok": true,
			"messages": [
				{"type":"message","ts":"1700000001.000200","user":"U01","text":"later"},
				{"type":"message","ts":"1700000000.000100","user":"U02","text":"earlier",
				 "files":[{"id":"F01","mimetype":"image/png","thumb_64":"https://f/64.png"}]}
			],
			"has_more": true,
			"response_metadata": {"next_cursor": "bmV4dA=="}
		}`))
	})

	resp, err := cl.ConversationsHistory(context.Background(), "C0123", "")
	require.NoError(t, err)
	assert.True(t, resp.More())
	assert.Equal(t, "bmV4dA==", resp.NextCursor())
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "later", resp.Messages[0].Text)
	require.Len(t, resp.Messages[1].Files, 1)
	assert.Equal(t, "https://f/64.png", resp.Messages[1].Files[0].Thumb64)
}

func TestClient_ConversationsJoin(t *testing.T) {
	cl := newTestClient(t, "xoxb-test", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "xoxb-test", r.PostForm.Get("token"))
		assert.Equal(t, "C0123", r.PostForm.Get("channel"))
		w.Write([]byte(`{"ok":true,"channel":{"id":"C0123","name":"general"}}`))
	})

	resp, err := cl.ConversationsJoin(context.Background(), "C0123")
	require.NoError(t, err)
	assert.Equal(t, "general", resp.Channel.Name)
}

// The absent thumbnail sizes must not reappear on re-serialisation: the
// export writes the decoded messages back out as JSON.
func TestFile_thumbnailRoundTrip(t *testing.T) {
	f := File{ID: "F01", Mimetype: "image/png", Thumb64: "https://f/64.png"}
	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "thumb_80")
	assert.Contains(t, string(data), "thumb_64")
}
