package message

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalid = errors.New("invalid message")

const MaxContentLength = 4000

// Message is append-only. Seq is the insertion order and breaks timestamp ties.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Seq       int64     `json:"-"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"timestamp"`
}

func NormalizeContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("%w: content is required", ErrInvalid)
	}
	if len([]rune(content)) > MaxContentLength {
		return "", fmt.Errorf("%w: content is longer than %d characters", ErrInvalid, MaxContentLength)
	}
	return content, nil
}

// SortThread orders messages by timestamp ascending, then insertion order.
func SortThread(msgs []Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		if !msgs[i].CreatedAt.Equal(msgs[j].CreatedAt) {
			return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
		}
		return msgs[i].Seq < msgs[j].Seq
	})
}

// Between reports whether m was exchanged between a and b in either direction.
func (m Message) Between(a, b string) bool {
	return (m.From == a && m.To == b) || (m.From == b && m.To == a)
}
