package domain

import "strconv"

type Message struct {
	ID       int
	ChatID   int64
	UserID   int64
	Username string
	FullName string
	Text     string
}

// IdentityKey returns the key the caller's binding is stored under: the Telegram
// username, or the numeric user ID for accounts without one.
func (m *Message) IdentityKey() string {
	if m.Username != "" {
		return m.Username
	}

	return strconv.FormatInt(m.UserID, 10)
}

// DisplayName is the name used when talking about the caller in a reply.
func (m *Message) DisplayName() string {
	if m.FullName != "" {
		return m.FullName
	}

	if m.Username != "" {
		return "@" + m.Username
	}

	return strconv.FormatInt(m.UserID, 10)
}

type Track struct {
	Title      string
	Album      string
	Artist     string
	ArtworkURL string
	NowPlaying bool
}

type Weather struct {
	Temperature float64
	Description string
	Icon        string
}
