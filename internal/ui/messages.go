package ui

// MaxMessages is how many lines the message log keeps.
const MaxMessages = 100

// MessageLog is a bounded list of game messages, oldest first.
type MessageLog struct {
	lines []string
}

// NewMessageLog returns an empty log.
func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// Add appends a line, dropping the oldest once the log is full.
func (l *MessageLog) Add(msg string) {
	l.lines = append(l.lines, msg)
	if over := len(l.lines) - MaxMessages; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// Len returns the number of stored lines.
func (l *MessageLog) Len() int {
	return len(l.lines)
}

// Last returns up to n of the most recent lines, oldest first.
func (l *MessageLog) Last(n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(l.lines) {
		n = len(l.lines)
	}
	return l.lines[len(l.lines)-n:]
}
