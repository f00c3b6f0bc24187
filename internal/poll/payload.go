package poll

import "time"

// Wire shapes for the poll REST endpoints. Inbound and outbound polls are
// different payloads: the API returns answers with server-assigned ids and an
// absolute expiry, while a poll being submitted carries a duration in hours
// and no ids.

type MediaPayload struct {
	Text  string        `json:"text"`
	Emoji *EmojiPayload `json:"emoji,omitempty"`
}

type EmojiPayload struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

type AnswerPayload struct {
	AnswerID int          `json:"answer_id"`
	Media    MediaPayload `json:"poll_media"`
}

type AnswerCountPayload struct {
	ID      int  `json:"id"`
	MeVoted bool `json:"me_voted"`
	Count   int  `json:"count"`
}

type ResultsPayload struct {
	IsFinalized  bool                 `json:"is_finalized"`
	AnswerCounts []AnswerCountPayload `json:"answer_counts"`
}

// Payload is a poll as returned by the API.
type Payload struct {
	Question         MediaPayload    `json:"question"`
	Answers          []AnswerPayload `json:"answers"`
	AllowMultiselect bool            `json:"allow_multiselect"`
	Expiry           time.Time       `json:"expiry"`
	LayoutType       int             `json:"layout_type"`
	Results          *ResultsPayload `json:"results,omitempty"`
}

// CreatePayload is a poll as submitted with a new message.
type CreatePayload struct {
	Question         MediaPayload          `json:"question"`
	Answers          []CreateAnswerPayload `json:"answers"`
	Duration         int                   `json:"duration"`
	AllowMultiselect bool                  `json:"allow_multiselect"`
	LayoutType       int                   `json:"layout_type"`
}

type CreateAnswerPayload struct {
	Media MediaPayload `json:"poll_media"`
}

type UserPayload struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Bot        bool   `json:"bot"`
}

// MessagePayload is the slice of a message this package cares about.
type MessagePayload struct {
	ID        string   `json:"id"`
	ChannelID string   `json:"channel_id"`
	Content   string   `json:"content"`
	Poll      *Payload `json:"poll,omitempty"`
}

type voterListPayload struct {
	Users []UserPayload `json:"users"`
}
