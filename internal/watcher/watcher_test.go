package watcher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"nuclight.org/pollwatch/internal/storage"
)

type mockStore struct {
	due      []*storage.TrackedPoll
	listErr  error
	ended    []int64
	endedErr error
}

func (m *mockStore) ListDue(time.Time) ([]*storage.TrackedPoll, error) {
	return m.due, m.listErr
}

func (m *mockStore) MarkEnded(id int64, _ time.Time) error {
	m.ended = append(m.ended, id)
	return m.endedErr
}

type mockSession struct {
	endResp    []byte
	endErr     error
	votersResp []byte

	endCalls []string
	posted   []string
}

func (m *mockSession) PollAnswerVoters(context.Context, string, string, int, string, int) ([]byte, error) {
	if m.votersResp == nil {
		return []byte(`{"users": []}`), nil
	}
	return m.votersResp, nil
}

func (m *mockSession) EndPoll(_ context.Context, channelID, messageID string) ([]byte, error) {
	m.endCalls = append(m.endCalls, channelID+"/"+messageID)
	return m.endResp, m.endErr
}

func (m *mockSession) CreateMessage(_ context.Context, _, content string) ([]byte, error) {
	m.posted = append(m.posted, content)
	return []byte(`{"id": "333"}`), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const endedMessageJSON = `{
	"id": "222",
	"channel_id": "111",
	"poll": {
		"question": {"text": "Pick one"},
		"answers": [
			{"answer_id": 1, "poll_media": {"text": "A"}},
			{"answer_id": 2, "poll_media": {"text": "B"}}
		],
		"expiry": "2030-01-01T00:00:00+00:00",
		"results": {
			"is_finalized": true,
			"answer_counts": [
				{"id": 1, "me_voted": false, "count": 3},
				{"id": 2, "me_voted": false, "count": 1}
			]
		}
	}
}`

func duePoll() *storage.TrackedPoll {
	return &storage.TrackedPoll{
		ID:        7,
		ChannelID: "111",
		MessageID: "222",
		Question:  "Pick one",
		CloseAt:   time.Now().Add(-time.Minute),
	}
}

func TestWatcher_Sweep(t *testing.T) {
	store := &mockStore{due: []*storage.TrackedPoll{duePoll()}}
	sess := &mockSession{endResp: []byte(endedMessageJSON)}

	w := New(store, sess, discardLogger(), time.Minute)
	w.Sweep(context.Background(), time.Now())

	if len(sess.endCalls) != 1 || sess.endCalls[0] != "111/222" {
		t.Fatalf("end calls = %v, want one call for 111/222", sess.endCalls)
	}
	if len(store.ended) != 1 || store.ended[0] != 7 {
		t.Fatalf("marked ended = %v, want [7]", store.ended)
	}
	if len(sess.posted) != 1 {
		t.Fatalf("posted %d messages, want 1", len(sess.posted))
	}
	summary := sess.posted[0]
	for _, want := range []string{"Pick one", "A — 3", "B — 1"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestWatcher_Sweep_EndFails(t *testing.T) {
	store := &mockStore{due: []*storage.TrackedPoll{duePoll()}}
	sess := &mockSession{endErr: errors.New("HTTP 500")}

	w := New(store, sess, discardLogger(), time.Minute)
	w.Sweep(context.Background(), time.Now())

	if len(store.ended) != 0 {
		t.Errorf("marked ended = %v, want none after a failed end", store.ended)
	}
	if len(sess.posted) != 0 {
		t.Errorf("posted %d messages, want none after a failed end", len(sess.posted))
	}
}

func TestWatcher_Sweep_NothingDue(t *testing.T) {
	store := &mockStore{}
	sess := &mockSession{}

	w := New(store, sess, discardLogger(), time.Minute)
	w.Sweep(context.Background(), time.Now())

	if len(sess.endCalls) != 0 || len(sess.posted) != 0 {
		t.Error("expected no transport activity for an empty sweep")
	}
}

func TestWatcher_Run_StopsOnCancel(t *testing.T) {
	store := &mockStore{}
	sess := &mockSession{}
	w := New(store, sess, discardLogger(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on context cancellation")
	}
}
