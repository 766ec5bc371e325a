package slackexport

// In this file: user directory retrieval.

import (
	"context"
	"fmt"

	"github.com/proelbtn/slack-export-viewer/internal/slackapi"
)

// Users fetches the full user directory of the workspace.  Unlike member
// retrieval, any failure here is fatal.
func (s *Session) Users(ctx context.Context) ([]slackapi.User, error) {
	s.lg.InfoContext(ctx, "fetching user metadata")
	users, err := collectPages(ctx, func(ctx context.Context, cursor string) (*slackapi.UsersListResponse, []slackapi.User, error) {
		resp, err := s.client.UsersList(ctx, cursor)
		if err != nil {
			return nil, nil, err
		}
		return resp, resp.Members, nil
	})
	if err != nil {
		return nil, fmt.Errorf("users.list: %w", err)
	}
	return users, nil
}
