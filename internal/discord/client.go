// Package discord implements the poll transport on top of discordgo. The SDK
// owns authentication, rate limiting and the HTTP round trip; this package
// only knows the poll endpoints and hands raw response bodies back to the
// poll package for decoding.
package discord

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"nuclight.org/pollwatch/internal/poll"
)

type Client struct {
	session *discordgo.Session
}

// New creates a REST-only client. The gateway is never opened.
func New(token string) (*Client, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return &Client{session: s}, nil
}

// PollAnswerVoters implements poll.Session.
func (c *Client) PollAnswerVoters(ctx context.Context, channelID, messageID string, answerID int, after string, limit int) ([]byte, error) {
	endpoint := endpointPollAnswerVoters(channelID, messageID, answerID)

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if after != "" {
		q.Set("after", after)
	}

	return c.session.RequestWithBucketID(http.MethodGet, endpoint+"?"+q.Encode(),
		nil, bucketPolls(channelID), discordgo.WithContext(ctx))
}

// EndPoll implements poll.Session.
func (c *Client) EndPoll(ctx context.Context, channelID, messageID string) ([]byte, error) {
	return c.session.RequestWithBucketID(http.MethodPost, endpointPollExpire(channelID, messageID),
		nil, bucketPolls(channelID), discordgo.WithContext(ctx))
}

// CreatePollMessage posts a message carrying a poll to the channel and
// returns the raw created-message payload.
func (c *Client) CreatePollMessage(ctx context.Context, channelID, content string, pl poll.CreatePayload) ([]byte, error) {
	body := struct {
		Content string             `json:"content,omitempty"`
		Poll    poll.CreatePayload `json:"poll"`
	}{Content: content, Poll: pl}

	endpoint := discordgo.EndpointChannelMessages(channelID)
	return c.session.RequestWithBucketID(http.MethodPost, endpoint, body, endpoint, discordgo.WithContext(ctx))
}

// CreateMessage posts a plain text message to the channel.
func (c *Client) CreateMessage(ctx context.Context, channelID, content string) ([]byte, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}

	endpoint := discordgo.EndpointChannelMessages(channelID)
	return c.session.RequestWithBucketID(http.MethodPost, endpoint, body, endpoint, discordgo.WithContext(ctx))
}

func endpointPollAnswerVoters(channelID, messageID string, answerID int) string {
	return fmt.Sprintf("%schannels/%s/polls/%s/answers/%d", discordgo.EndpointAPI, channelID, messageID, answerID)
}

func endpointPollExpire(channelID, messageID string) string {
	return fmt.Sprintf("%schannels/%s/polls/%s/expire", discordgo.EndpointAPI, channelID, messageID)
}

// bucketPolls is the rate-limit bucket shared by the poll endpoints of a
// channel; the message and answer ids are major parameters and stay out.
func bucketPolls(channelID string) string {
	return discordgo.EndpointAPI + "channels/" + channelID + "/polls"
}
