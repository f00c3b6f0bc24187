package poll

import (
	"context"
	"fmt"
	"time"
)

// Poll is a message's poll: a question, up to the platform's cap of answers,
// an expiry and, once the server has reported results, per-answer tallies.
//
// A poll starts as a draft built with New and AddAnswer. Once the message
// carrying it is posted or fetched, the message layer binds the two with
// Message.AttachPoll (or FromPayload does it on reconstruction) and the poll
// should be treated as read-only; fresh data replaces the whole object.
type Poll struct {
	// Question text, up to 300 characters. Not enforced locally, the server
	// rejects longer ones.
	Question string

	// Duration is the poll lifetime in hours as submitted; the API accepts
	// 1, 4, 8, 24, 72 and 168. Zero for polls reconstructed from a payload,
	// which carry only an absolute expiry.
	Duration int

	Multiselect bool
	Layout      LayoutType

	answers   []*Answer
	expiry    time.Time
	finalized bool
	counts    []*AnswerCount
	message   *Message
}

// New builds a draft poll expiring durationHours from now.
func New(question string, durationHours int) *Poll {
	return &Poll{
		Question: question,
		Duration: durationHours,
		Layout:   LayoutDefault,
		expiry:   time.Now().UTC().Add(time.Duration(durationHours) * time.Hour),
	}
}

// FromPayload reconstructs a poll from a received payload, attached to msg.
// Answers, flags and expiry come verbatim from the wire; when the payload
// carries results, the finalized flag and per-answer counts are populated.
func FromPayload(pl Payload, msg *Message) *Poll {
	p := &Poll{
		Question:    pl.Question.Text,
		Multiselect: pl.AllowMultiselect,
		Layout:      layoutFromPayload(pl.LayoutType),
		expiry:      pl.Expiry,
		message:     msg,
	}

	for _, apl := range pl.Answers {
		p.answers = append(p.answers, answerFromPayload(apl, msg))
	}

	if pl.Results != nil {
		p.finalized = pl.Results.IsFinalized
		for _, cpl := range pl.Results.AnswerCounts {
			p.counts = append(p.counts, countFromPayload(cpl, msg))
		}
	}

	if msg != nil {
		msg.Poll = p
	}
	return p
}

// ToPayload builds the submission payload for this poll. Answer ids are not
// included, the server assigns them in list order.
func (p *Poll) ToPayload() CreatePayload {
	answers := make([]CreateAnswerPayload, len(p.answers))
	for i, a := range p.answers {
		answers[i] = CreateAnswerPayload{Media: a.toPayload()}
	}
	return CreatePayload{
		Question:         MediaPayload{Text: p.Question},
		Answers:          answers,
		Duration:         p.Duration,
		AllowMultiselect: p.Multiselect,
		LayoutType:       int(p.Layout),
	}
}

// AddAnswer appends an answer with the next sequential id (1-based) and
// returns the poll for chaining. A unicode emoji is passed as
// &Emoji{Name: "..."}, a custom one with its ID set; nil means no emoji.
func (p *Poll) AddAnswer(text string, emoji *Emoji) *Poll {
	a := newAnswer(len(p.answers)+1, text, emoji, p.message)
	p.answers = append(p.answers, a)
	return p
}

// Answer returns the answer with the given id, nil if there is none. Lookup
// misses are a normal outcome, never an error.
func (p *Poll) Answer(id int) *Answer {
	if id < 1 || id > len(p.answers) {
		return nil
	}
	return p.answers[id-1]
}

// Answers returns a copy of the answer list in poll order. Mutating the
// returned slice does not affect the poll.
func (p *Poll) Answers() []*Answer {
	if p.answers == nil {
		return nil
	}
	return append([]*Answer(nil), p.answers...)
}

// AnswerCounts returns a copy of the server-reported tallies, or nil for
// polls that never came from a payload with results.
func (p *Poll) AnswerCounts() []*AnswerCount {
	if p.counts == nil {
		return nil
	}
	return append([]*AnswerCount(nil), p.counts...)
}

// Expiry returns when the poll closes: creation time plus duration for
// drafts, the server's timestamp for received polls.
func (p *Poll) Expiry() time.Time {
	return p.expiry
}

// IsFinalized reports whether voting has closed and the tallies are
// authoritative. Always false for drafts.
func (p *Poll) IsFinalized() bool {
	return p.finalized
}

// Message returns the message this poll is attached to, nil for drafts.
func (p *Poll) Message() *Message {
	return p.message
}

// End closes the poll ahead of its expiry and returns the refreshed message
// with authoritative results. This poll is not mutated. Fails with
// ErrNotAttached for drafts.
func (p *Poll) End(ctx context.Context) (*Message, error) {
	if p.message == nil {
		return nil, fmt.Errorf("end poll: %w", ErrNotAttached)
	}
	return p.message.EndPoll(ctx)
}

func (p *Poll) String() string {
	return p.Question
}
