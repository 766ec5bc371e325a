package slackapi

import (
	"context"
	"net/url"
)

// conversations.* API

// AllChanTypes enumerates the conversation types requested from
// conversations.list.
const AllChanTypes = "public_channel,private_channel,mpim"

// Topic is the topic or purpose of a conversation.
type Topic struct {
	Value   string `json:"value"`
	Creator string `json:"creator"`
	LastSet int64  `json:"last_set"`
}

// Channel is a single conversation: a public or private channel, or a
// multi-party DM.  Members is not part of the conversations.list response,
// it is populated from conversations.members after the channel is fetched
// and stays empty for archived channels.
type Channel struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Created    int64    `json:"created"`
	Creator    string   `json:"creator,omitempty"`
	IsChannel  bool     `json:"is_channel"`
	IsGroup    bool     `json:"is_group"`
	IsMpim     bool     `json:"is_mpim"`
	IsPrivate  bool     `json:"is_private"`
	IsArchived bool     `json:"is_archived"`
	Topic      Topic    `json:"topic,omitempty"`
	Purpose    Topic    `json:"purpose,omitempty"`
	NumMembers int      `json:"num_members,omitempty"`
	Members    []string `json:"members"`
}

// File is a file attached to a message.  Thumbnails are present only on
// image files, and not every size is generated for every image.
type File struct {
	ID                 string `json:"id"`
	Created            int64  `json:"created,omitempty"`
	Name               string `json:"name,omitempty"`
	Title              string `json:"title,omitempty"`
	Mimetype           string `json:"mimetype,omitempty"`
	Filetype           string `json:"filetype,omitempty"`
	User               string `json:"user,omitempty"`
	Size               int64  `json:"size,omitempty"`
	URLPrivate         string `json:"url_private,omitempty"`
	URLPrivateDownload string `json:"url_private_download,omitempty"`
	Permalink          string `json:"permalink,omitempty"`
	Thumb64            string `json:"thumb_64,omitempty"`
	Thumb80            string `json:"thumb_80,omitempty"`
	Thumb160           string `json:"thumb_160,omitempty"`
	Thumb360           string `json:"thumb_360,omitempty"`
	Thumb480           string `json:"thumb_480,omitempty"`
	Thumb720           string `json:"thumb_720,omitempty"`
	Thumb800           string `json:"thumb_800,omitempty"`
	Thumb960           string `json:"thumb_960,omitempty"`
	Thumb1024          string `json:"thumb_1024,omitempty"`
}

// Message is a single history entry of a conversation.
type Message struct {
	Type      string `json:"type"`
	Subtype   string `json:"subtype,omitempty"`
	Timestamp string `json:"ts"`
	ThreadTS  string `json:"thread_ts,omitempty"`
	User      string `json:"user,omitempty"`
	BotID     string `json:"bot_id,omitempty"`
	Text      string `json:"text"`
	Files     []File `json:"files,omitempty"`
}

// ConversationsListResponse is the response of conversations.list.
type ConversationsListResponse struct {
	BaseResponse
	Channels []Channel `json:"channels"`
}

// ConversationsList returns a single page of the conversation listing.  An
// empty cursor requests the first page.
func (c *Client) ConversationsList(ctx context.Context, cursor string) (*ConversationsListResponse, error) {
	form := url.Values{}
	form.Set("types", AllChanTypes)
	if cursor != "" {
		form.Set("cursor", cursor)
	}
	var r ConversationsListResponse
	if err := c.get(ctx, "conversations.list", form, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ConversationsMembersResponse is the response of conversations.members.
type ConversationsMembersResponse struct {
	BaseResponse
	Members []string `json:"members"`
}

// ConversationsMembers returns a single page of member IDs of the channel.
func (c *Client) ConversationsMembers(ctx context.Context, channelID, cursor string) (*ConversationsMembersResponse, error) {
	form := url.Values{}
	form.Set("channel", channelID)
	if cursor != "" {
		form.Set("cursor", cursor)
	}
	var r ConversationsMembersResponse
	if err := c.get(ctx, "conversations.members", form, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ConversationsHistoryResponse is the response of conversations.history.
// Messages are in the API native, reverse chronological order.
type ConversationsHistoryResponse struct {
	BaseResponse
	Messages []Message `json:"messages"`
	HasMore  bool      `json:"has_more"`
	PinCount int       `json:"pin_count,omitempty"`
}

// More reports whether the conversation has more history to fetch.  Unlike
// the cursor-paginated endpoints, history pagination terminates on this
// flag, not on an empty cursor.
func (r ConversationsHistoryResponse) More() bool { return r.HasMore }

// ConversationsHistory returns a single page of the channel message history.
func (c *Client) ConversationsHistory(ctx context.Context, channelID, cursor string) (*ConversationsHistoryResponse, error) {
	form := url.Values{}
	form.Set("channel", channelID)
	if cursor != "" {
		form.Set("cursor", cursor)
	}
	var r ConversationsHistoryResponse
	if err := c.get(ctx, "conversations.history", form, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ConversationsJoinResponse is the response of conversations.join.
type ConversationsJoinResponse struct {
	BaseResponse
	Channel Channel `json:"channel"`
}

// ConversationsJoin joins the channel on behalf of the authenticated user.
// Not used by the export flow, but kept as part of the client contract.
func (c *Client) ConversationsJoin(ctx context.Context, channelID string) (*ConversationsJoinResponse, error) {
	form := url.Values{}
	form.Set("channel", channelID)
	var r ConversationsJoinResponse
	if err := c.postForm(ctx, "conversations.join", form, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
