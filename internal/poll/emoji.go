package poll

// Emoji identifies the emoji shown next to an answer: a custom emoji when ID
// is set, a plain unicode emoji when only Name is set.
type Emoji struct {
	ID   int64
	Name string
}

func (e Emoji) IsCustom() bool {
	return e.ID != 0
}

func (e Emoji) String() string {
	return e.Name
}

// toPayload serializes id and name for custom emojis, name alone for unicode
// ones. The API rejects a null id, so the field is omitted instead.
func (e Emoji) toPayload() EmojiPayload {
	return EmojiPayload{ID: e.ID, Name: e.Name}
}

func emojiFromPayload(pl EmojiPayload) *Emoji {
	return &Emoji{ID: pl.ID, Name: pl.Name}
}
