package poll

import (
	"context"
	"encoding/json"
	"fmt"
)

// Message is a lightweight handle for the message a poll lives on. It carries
// the session used for network calls; polls, answers and counts reach the
// transport only through their message back-reference.
type Message struct {
	ID        string
	ChannelID string
	Content   string
	Poll      *Poll

	session Session
}

// NewMessage returns a handle for a message that already exists remotely,
// without fetching it.
func NewMessage(s Session, channelID, messageID string) *Message {
	return &Message{ID: messageID, ChannelID: channelID, session: s}
}

// MessageFromPayload reconstructs a message handle and, when present, its
// attached poll.
func MessageFromPayload(s Session, pl MessagePayload) *Message {
	m := &Message{
		ID:        pl.ID,
		ChannelID: pl.ChannelID,
		Content:   pl.Content,
		session:   s,
	}
	if pl.Poll != nil {
		m.Poll = FromPayload(*pl.Poll, m)
	}
	return m
}

// AttachPoll binds a locally built poll to this message, populating the
// back-references on the poll and its answers. This is the draft-to-attached
// transition; it happens once, after the message carrying the poll is posted.
func (m *Message) AttachPoll(p *Poll) {
	p.message = m
	for _, a := range p.answers {
		a.message = m
	}
	m.Poll = p
}

// EndPoll closes the poll on this message ahead of its expiry and returns the
// refreshed message, which carries the finalized poll. The receiver is not
// mutated; callers must read results off the returned message.
func (m *Message) EndPoll(ctx context.Context) (*Message, error) {
	if m.session == nil {
		return nil, fmt.Errorf("end poll: %w", ErrNotAttached)
	}

	raw, err := m.session.EndPoll(ctx, m.ChannelID, m.ID)
	if err != nil {
		return nil, err
	}

	var pl MessagePayload
	if err := json.Unmarshal(raw, &pl); err != nil {
		return nil, fmt.Errorf("decode ended poll message: %w", err)
	}
	return MessageFromPayload(m.session, pl), nil
}
