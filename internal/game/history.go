package game

import "time"

const (
	// maxHistory bounds the in-memory transcript; the oldest entries are
	// dropped on overflow.
	maxHistory = 50
	// savedHistory is how much of the transcript survives a save/load
	// round-trip.
	savedHistory = 20
)

// MessageLog is a bounded, oldest-first transcript buffer.
type MessageLog struct {
	messages []Message
}

// Append adds a message and trims the oldest entries beyond the cap.
func (l *MessageLog) Append(text string, isCommand bool) {
	l.messages = append(l.messages, Message{
		Text:      text,
		IsCommand: isCommand,
		Timestamp: time.Now().UTC(),
	})
	if len(l.messages) > maxHistory {
		l.messages = l.messages[len(l.messages)-maxHistory:]
	}
}

// Messages returns the transcript, oldest first. The returned slice is a
// copy; callers may not mutate the log through it.
func (l *MessageLog) Messages() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Recent returns up to the n most recent messages, oldest first.
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.messages) {
		n = len(l.messages)
	}
	out := make([]Message, n)
	copy(out, l.messages[len(l.messages)-n:])
	return out
}

// Len reports the number of buffered messages.
func (l *MessageLog) Len() int {
	return len(l.messages)
}

// Reset empties the transcript.
func (l *MessageLog) Reset() {
	l.messages = nil
}

func (l *MessageLog) restore(msgs []Message) {
	l.messages = make([]Message, len(msgs))
	copy(l.messages, msgs)
	if len(l.messages) > maxHistory {
		l.messages = l.messages[len(l.messages)-maxHistory:]
	}
}
