// Package slackexport archives the contents of a Slack workspace: channels,
// members, users and message history, fetched through the paginated Web API
// and written as partitioned JSON files.
package slackexport

import (
	"context"
	"log/slog"

	"github.com/proelbtn/slack-export-viewer/fsadapter"
	"github.com/proelbtn/slack-export-viewer/internal/slackapi"
)

//go:generate mockgen -source slackexport.go -destination clienter_mock_test.go -package slackexport -mock_names clienter=mockClienter

// clienter is the narrow part of the [slackapi.Client] surface used by the
// export, with the sole purpose of mocking in tests.
type clienter interface {
	AuthTest(ctx context.Context) (*slackapi.AuthTestResponse, error)
	ConversationsList(ctx context.Context, cursor string) (*slackapi.ConversationsListResponse, error)
	ConversationsMembers(ctx context.Context, channelID, cursor string) (*slackapi.ConversationsMembersResponse, error)
	ConversationsHistory(ctx context.Context, channelID, cursor string) (*slackapi.ConversationsHistoryResponse, error)
	UsersList(ctx context.Context, cursor string) (*slackapi.UsersListResponse, error)
}

// Session is a single export run.  Zero value is not usable, must be
// initialised with New.  A Session is not safe for concurrent use: the run
// is fully sequential, one fetch at a time.
type Session struct {
	client clienter     // Slack Web API client
	fs     fsadapter.FS // target filesystem
	lg     *slog.Logger

	downloadToken string // optional asset download token
}

// Option is the signature of the Session option-setting function.
type Option func(*Session)

// WithLogger sets the logger for the session.  If not given, slog.Default
// is used.
func WithLogger(lg *slog.Logger) Option {
	return func(s *Session) {
		if lg != nil {
			s.lg = lg
		}
	}
}

// WithDownloadToken sets the token that is appended to the thumbnail URLs of
// exported image attachments, so that the exported data can reference the
// assets without the API token.
func WithDownloadToken(token string) Option {
	return func(s *Session) {
		s.downloadToken = token
	}
}

// New creates a new export Session that writes to fs.
func New(client clienter, fs fsadapter.FS, opt ...Option) *Session {
	s := &Session{
		client: client,
		fs:     fs,
		lg:     slog.Default(),
	}
	for _, fn := range opt {
		fn(s)
	}
	return s
}
