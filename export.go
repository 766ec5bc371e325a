package slackexport

import (
	"context"
	"fmt"
	"slices"

	"github.com/proelbtn/slack-export-viewer/internal/slackapi"
)

// Run executes the export: it validates the token, fetches the channels
// with their members and the user directory, fetches the message history of
// every channel the authenticated identity is a member of, and writes the
// result to the session filesystem.  Any failure other than the per-channel
// member leniency (see [Session.Channels]) aborts the run.
func (s *Session) Run(ctx context.Context) error {
	s.lg.InfoContext(ctx, "checking token validity")
	me, err := s.authTest(ctx)
	if err != nil {
		return &AuthError{Err: err}
	}
	s.lg.InfoContext(ctx, "authenticated", "user", me.User, "user_id", me.UserID, "team", me.Team)

	channels, err := s.Channels(ctx)
	if err != nil {
		return err
	}

	users, err := s.Users(ctx)
	if err != nil {
		return err
	}

	s.lg.InfoContext(ctx, "fetching messages")
	histories := make(map[string][]slackapi.Message)
	for _, c := range channels {
		if !slices.Contains(c.Members, me.UserID) {
			continue
		}
		s.lg.InfoContext(ctx, "fetching messages for channel", "channel", c.Name)
		msgs, err := s.History(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("channel %s: %w", c.Name, err)
		}
		histories[c.Name] = msgs
	}

	return s.write(ctx, channels, users, histories)
}

// authTest validates the session token and returns the authenticated
// identity.  The success flag of the response is checked here, not in the
// client.
func (s *Session) authTest(ctx context.Context) (*slackapi.AuthTestResponse, error) {
	resp, err := s.client.AuthTest(ctx)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp, nil
}
