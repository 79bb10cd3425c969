package server

import (
	"strings"
	"sync"
	"time"
)

const defaultConsoleSize = 200

// ConsoleMessage is one captured log line
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Console keeps the most recent log lines for the web page. It is an
// io.Writer so it can be passed to log.SetSink next to stdout.
type Console struct {
	mu       sync.Mutex
	size     int
	messages []ConsoleMessage
}

// NewConsole creates a console holding at most size lines
func NewConsole(size int) *Console {
	if size <= 0 {
		size = defaultConsoleSize
	}
	return &Console{size: size}
}

// Write splits p into lines and records each non-empty one
func (c *Console) Write(p []byte) (int, error) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, line := range strings.Split(string(p), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		c.messages = append(c.messages, ConsoleMessage{Message: stripColor(line), Timestamp: now})
	}

	// Drop the oldest lines
	if over := len(c.messages) - c.size; over > 0 {
		c.messages = append(c.messages[:0], c.messages[over:]...)
	}

	return len(p), nil
}

// Messages returns a copy of the captured lines, oldest first
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]ConsoleMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// stripColor removes ANSI escape sequences added by the log formatter
func stripColor(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
