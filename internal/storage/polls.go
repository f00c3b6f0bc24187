package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// TrackedPoll is one poll this tool has posted and is responsible for
// closing. CloseAt may be earlier than the poll's own expiry; EndedAt is nil
// until the watcher has successfully ended the poll.
type TrackedPoll struct {
	ID        int64
	ChannelID string
	MessageID string
	Question  string
	CloseAt   time.Time
	EndedAt   *time.Time
	CreatedAt time.Time
}

type PollRepository struct {
	db *DB
}

func NewPollRepository(db *DB) *PollRepository {
	return &PollRepository{db: db}
}

func (r *PollRepository) Create(p *TrackedPoll) error {
	result, err := r.db.db.Exec(`
		INSERT INTO tracked_polls (channel_id, message_id, question, close_at, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, p.ChannelID, p.MessageID, p.Question, p.CloseAt.UTC(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert tracked poll: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	p.ID = id
	return nil
}

// ListDue returns polls whose closing deadline has passed and that have not
// been ended yet, oldest deadline first.
func (r *PollRepository) ListDue(now time.Time) ([]*TrackedPoll, error) {
	rows, err := r.db.db.Query(`
		SELECT id, channel_id, message_id, question, close_at, ended_at, created_at
		FROM tracked_polls
		WHERE close_at <= ? AND ended_at IS NULL
		ORDER BY close_at ASC
	`, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("query due polls: %w", err)
	}
	defer rows.Close()

	var due []*TrackedPoll
	for rows.Next() {
		p, err := scanPoll(rows)
		if err != nil {
			return nil, err
		}
		due = append(due, p)
	}
	return due, rows.Err()
}

func (r *PollRepository) GetByMessage(channelID, messageID string) (*TrackedPoll, error) {
	row := r.db.db.QueryRow(`
		SELECT id, channel_id, message_id, question, close_at, ended_at, created_at
		FROM tracked_polls
		WHERE channel_id = ? AND message_id = ?
	`, channelID, messageID)

	p, err := scanPoll(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *PollRepository) MarkEnded(id int64, endedAt time.Time) error {
	_, err := r.db.db.Exec(`
		UPDATE tracked_polls SET ended_at = ? WHERE id = ?
	`, endedAt.UTC(), id)
	if err != nil {
		return fmt.Errorf("mark poll ended: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPoll(row rowScanner) (*TrackedPoll, error) {
	var p TrackedPoll
	var endedAt sql.NullTime

	err := row.Scan(&p.ID, &p.ChannelID, &p.MessageID, &p.Question, &p.CloseAt, &endedAt, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	if endedAt.Valid {
		p.EndedAt = &endedAt.Time
	}
	return &p, nil
}
