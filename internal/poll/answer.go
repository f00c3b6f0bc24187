package poll

import "context"

// Media is the display pair of an answer: a text label of up to 55 characters
// (not enforced locally) and an optional emoji.
type Media struct {
	Text  string
	Emoji *Emoji
}

// Answer is one selectable option of a poll. Its ID is the answer's 1-based
// position, assigned locally by Poll.AddAnswer and confirmed by the server
// for received polls.
type Answer struct {
	ID    int
	Media Media

	// Set when the owning poll is bound to a message; nil for answers of a
	// draft poll. Non-owning, the message owns the poll.
	message *Message
}

func newAnswer(id int, text string, emoji *Emoji, msg *Message) *Answer {
	return &Answer{
		ID:      id,
		Media:   Media{Text: text, Emoji: emoji},
		message: msg,
	}
}

func answerFromPayload(pl AnswerPayload, msg *Message) *Answer {
	var emoji *Emoji
	if pl.Media.Emoji != nil {
		emoji = emojiFromPayload(*pl.Media.Emoji)
	}
	return newAnswer(pl.AnswerID, pl.Media.Text, emoji, msg)
}

func (a *Answer) Text() string {
	return a.Media.Text
}

func (a *Answer) Emoji() *Emoji {
	return a.Media.Emoji
}

// toPayload produces the poll_media body. The answer id is never sent, the
// server assigns ids on submission.
func (a *Answer) toPayload() MediaPayload {
	pl := MediaPayload{Text: a.Media.Text}
	if a.Media.Emoji != nil {
		epl := a.Media.Emoji.toPayload()
		pl.Emoji = &epl
	}
	return pl
}

// Voters fetches one page of users who voted for this answer. after is a user
// id to page from, limit the page size (0 means DefaultVoterLimit, at most
// MaxVoterLimit). Fails with ErrNotAttached when the poll was never bound to
// a message.
func (a *Answer) Voters(ctx context.Context, after string, limit int) ([]*User, error) {
	return fetchVoters(ctx, a.message, a.ID, after, limit)
}
