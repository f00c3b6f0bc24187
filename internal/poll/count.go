package poll

import "context"

// AnswerCount is the server-reported tally for one answer. It exists only on
// polls reconstructed from a payload carrying results; locally authored polls
// never have counts.
type AnswerCount struct {
	ID      int
	Count   int
	MeVoted bool

	message *Message
}

func countFromPayload(pl AnswerCountPayload, msg *Message) *AnswerCount {
	return &AnswerCount{
		ID:      pl.ID,
		Count:   pl.Count,
		MeVoted: pl.MeVoted,
		message: msg,
	}
}

// Original returns the message the owning poll is attached to.
func (c *AnswerCount) Original() *Message {
	return c.message
}

// Poll returns the poll this tally belongs to, nil if the tally is orphaned.
func (c *AnswerCount) Poll() *Poll {
	if c.message == nil {
		return nil
	}
	return c.message.Poll
}

// Voters fetches one page of users who voted for this answer. Same contract
// as Answer.Voters; tallies and answers arrive through different parts of the
// payload, so both expose the listing.
func (c *AnswerCount) Voters(ctx context.Context, after string, limit int) ([]*User, error) {
	return fetchVoters(ctx, c.message, c.ID, after, limit)
}
