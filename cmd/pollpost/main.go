package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"nuclight.org/pollwatch/internal/config"
	"nuclight.org/pollwatch/internal/discord"
	"nuclight.org/pollwatch/internal/logger"
	"nuclight.org/pollwatch/internal/poll"
	"nuclight.org/pollwatch/internal/storage"
)

// answerFlags collects repeated -answer values. Each value is either plain
// text or "emoji|text", where emoji is a unicode emoji or a custom emoji id.
type answerFlags []string

func (a *answerFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *answerFlags) Set(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("answer text must not be empty")
	}
	*a = append(*a, value)
	return nil
}

func main() {
	var (
		channelID = flag.String("channel", "", "channel id to post the poll in")
		question  = flag.String("question", "", "poll question text")
		hours     = flag.Int("hours", 24, "how many hours the poll stays open")
		multi     = flag.Bool("multi", false, "allow selecting multiple answers")
		content   = flag.String("content", "", "optional message text above the poll")
		closeIn   = flag.Duration("close", 0, "end the poll this long after posting instead of waiting for expiry")
		answers   answerFlags
	)
	flag.Var(&answers, "answer", "poll answer, repeatable; \"emoji|text\" attaches an emoji")
	flag.Parse()

	if *channelID == "" || *question == "" {
		log.Fatal("Both -channel and -question are required")
	}
	if len(answers) < 2 {
		log.Fatal("At least two -answer flags are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	lg := logger.New(slog.LevelInfo)

	db, err := storage.NewDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	client, err := discord.New(cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create discord client: %v", err)
	}

	p := poll.New(*question, *hours)
	p.Multiselect = *multi
	for _, raw := range answers {
		text, emoji := parseAnswer(raw)
		p.AddAnswer(text, emoji)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	body, err := client.CreatePollMessage(ctx, *channelID, *content, p.ToPayload())
	if err != nil {
		log.Fatalf("Failed to post poll: %v", err)
	}

	var created poll.MessagePayload
	if err := json.Unmarshal(body, &created); err != nil {
		log.Fatalf("Failed to decode created message: %v", err)
	}

	closeAt := p.Expiry()
	if *closeIn > 0 {
		if early := time.Now().Add(*closeIn); early.Before(closeAt) {
			closeAt = early
		}
	}

	tracked := &storage.TrackedPoll{
		ChannelID: *channelID,
		MessageID: created.ID,
		Question:  *question,
		CloseAt:   closeAt,
	}
	if err := storage.NewPollRepository(db).Create(tracked); err != nil {
		log.Fatalf("Failed to track poll: %v", err)
	}

	lg.Info("poll posted",
		"message_id", created.ID,
		"channel_id", *channelID,
		"close_at", closeAt.Format(time.RFC3339),
	)
}

// parseAnswer splits "emoji|text" into its parts. A numeric emoji part is
// treated as a custom emoji id, anything else as a unicode emoji.
func parseAnswer(raw string) (string, *poll.Emoji) {
	prefix, text, found := strings.Cut(raw, "|")
	if !found {
		return raw, nil
	}

	prefix = strings.TrimSpace(prefix)
	text = strings.TrimSpace(text)
	if prefix == "" {
		return text, nil
	}

	if id, err := strconv.ParseInt(prefix, 10, 64); err == nil {
		return text, &poll.Emoji{ID: id}
	}
	return text, &poll.Emoji{Name: prefix}
}
