package slackexport

// In this file: channel and membership retrieval.

import (
	"context"
	"fmt"

	"github.com/proelbtn/slack-export-viewer/internal/slackapi"
)

// Channels fetches all channels of the workspace along with their member
// lists.  Channel metadata failures are fatal.  Member retrieval is best
// effort: archived channels are skipped, and a failure to list the members
// of a single channel, transport or API-level alike, leaves that channel
// with an empty member list and does not abort the run.
func (s *Session) Channels(ctx context.Context) ([]slackapi.Channel, error) {
	s.lg.InfoContext(ctx, "fetching channel metadata")
	channels, err := collectPages(ctx, func(ctx context.Context, cursor string) (*slackapi.ConversationsListResponse, []slackapi.Channel, error) {
		resp, err := s.client.ConversationsList(ctx, cursor)
		if err != nil {
			return nil, nil, err
		}
		return resp, resp.Channels, nil
	})
	if err != nil {
		return nil, fmt.Errorf("conversations.list: %w", err)
	}

	s.lg.InfoContext(ctx, "fetching channel members")
	for i := range channels {
		c := &channels[i]
		c.Members = []string{}
		if c.IsArchived {
			s.lg.InfoContext(ctx, "channel is archived, skipped", "channel", c.Name)
			continue
		}
		members, err := s.members(ctx, c.ID)
		if err != nil {
			s.lg.WarnContext(ctx, "failed to fetch members, leaving the channel empty", "channel", c.Name, "error", err)
			continue
		}
		if len(members) > 0 {
			c.Members = members
		}
	}
	return channels, nil
}

// members fetches the full member list of a single channel.
func (s *Session) members(ctx context.Context, channelID string) ([]string, error) {
	return collectPages(ctx, func(ctx context.Context, cursor string) (*slackapi.ConversationsMembersResponse, []string, error) {
		resp, err := s.client.ConversationsMembers(ctx, channelID, cursor)
		if err != nil {
			return nil, nil, err
		}
		return resp, resp.Members, nil
	})
}
