// Package watcher runs the closing loop: every sweep it ends tracked polls
// whose deadline has passed and posts a rendered results summary back to the
// channel the poll lives in.
package watcher

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nuclight.org/pollwatch/internal/poll"
	"nuclight.org/pollwatch/internal/storage"
)

const defaultInterval = time.Minute

// Store is the slice of the poll repository the watcher needs.
type Store interface {
	ListDue(now time.Time) ([]*storage.TrackedPoll, error)
	MarkEnded(id int64, endedAt time.Time) error
}

// Session is the transport: the poll network operations plus posting the
// summary message.
type Session interface {
	poll.Session
	CreateMessage(ctx context.Context, channelID, content string) ([]byte, error)
}

type Watcher struct {
	store    Store
	session  Session
	logger   *slog.Logger
	interval time.Duration
}

func New(store Store, session Session, logger *slog.Logger, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Watcher{
		store:    store,
		session:  session,
		logger:   logger,
		interval: interval,
	}
}

// Run sweeps immediately and then on every tick until the context is
// cancelled.
func (w *Watcher) Run(ctx context.Context) {
	w.logger.Info("watcher started", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Sweep(ctx, time.Now())
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped")
			return
		case now := <-ticker.C:
			w.Sweep(ctx, now)
		}
	}
}

// Sweep closes every tracked poll due at now. A poll that fails to end stays
// due and is retried on the next sweep.
func (w *Watcher) Sweep(ctx context.Context, now time.Time) {
	due, err := w.store.ListDue(now)
	if err != nil {
		w.logger.Error("list due polls", "error", err)
		return
	}

	for _, tp := range due {
		w.closePoll(ctx, tp)
	}
}

func (w *Watcher) closePoll(ctx context.Context, tp *storage.TrackedPoll) {
	log := w.logger.With("channel_id", tp.ChannelID, "message_id", tp.MessageID)

	msg := poll.NewMessage(w.session, tp.ChannelID, tp.MessageID)
	ended, err := msg.EndPoll(ctx)
	if err != nil {
		log.Error("end poll", "error", err)
		return
	}

	if err := w.store.MarkEnded(tp.ID, time.Now()); err != nil {
		log.Error("mark poll ended", "error", err)
	}

	if ended.Poll == nil {
		log.Warn("ended message carries no poll")
		return
	}

	summary, err := poll.RenderResults(ended.Poll)
	if err != nil {
		log.Error("render results", "error", err)
		return
	}
	if _, err := w.session.CreateMessage(ctx, tp.ChannelID, summary); err != nil {
		log.Error("post results summary", "error", err)
	}

	log.Info("poll closed", "question", tp.Question)
	w.logWinnerVoters(ctx, log, ended.Poll)
}

// logWinnerVoters lists who voted for the leading answer, for the audit log
// only; failures here never block the sweep.
func (w *Watcher) logWinnerVoters(ctx context.Context, log *slog.Logger, p *poll.Poll) {
	var top *poll.AnswerCount
	for _, c := range p.AnswerCounts() {
		if top == nil || c.Count > top.Count {
			top = c
		}
	}
	if top == nil || top.Count == 0 {
		return
	}

	voters, err := top.Voters(ctx, "", 0)
	if err != nil {
		log.Debug("list winner voters", "error", err)
		return
	}

	names := make([]string, len(voters))
	for i, u := range voters {
		names[i] = u.DisplayName()
	}
	log.Debug("winning answer voters", "answer_id", top.ID, "voters", strings.Join(names, ", "))
}
