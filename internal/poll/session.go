package poll

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	// DefaultVoterLimit is the page size used when Voters is called with a
	// zero limit.
	DefaultVoterLimit = 25

	// MaxVoterLimit is the largest page size the API accepts.
	MaxVoterLimit = 100
)

// Session is the transport this package issues its two network calls through.
// Implementations own authentication, rate limiting and the HTTP round trip;
// both methods return the raw response body for this package to decode.
// Errors from the transport are propagated to callers unwrapped.
type Session interface {
	// PollAnswerVoters fetches one page of voters for an answer, starting
	// after the given user id when set.
	PollAnswerVoters(ctx context.Context, channelID, messageID string, answerID int, after string, limit int) ([]byte, error)

	// EndPoll closes the poll on a message ahead of its expiry and returns
	// the refreshed message payload.
	EndPoll(ctx context.Context, channelID, messageID string) ([]byte, error)
}

// fetchVoters is the shared voter-listing path behind Answer.Voters and
// AnswerCount.Voters. Validation happens before the transport is touched.
func fetchVoters(ctx context.Context, m *Message, answerID int, after string, limit int) ([]*User, error) {
	if m == nil || m.session == nil {
		return nil, fmt.Errorf("list answer voters: %w", ErrNotAttached)
	}
	if limit < 0 || limit > MaxVoterLimit {
		return nil, fmt.Errorf("limit %d: %w", limit, ErrVoterLimit)
	}
	if limit == 0 {
		limit = DefaultVoterLimit
	}

	raw, err := m.session.PollAnswerVoters(ctx, m.ChannelID, m.ID, answerID, after, limit)
	if err != nil {
		return nil, err
	}

	var pl voterListPayload
	if err := json.Unmarshal(raw, &pl); err != nil {
		return nil, fmt.Errorf("decode voter list: %w", err)
	}

	users := make([]*User, len(pl.Users))
	for i, upl := range pl.Users {
		users[i] = userFromPayload(upl)
	}
	return users, nil
}
