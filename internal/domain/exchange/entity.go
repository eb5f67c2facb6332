package exchange

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid exchange transition")
	ErrUnknownStatus     = errors.New("unknown exchange status")
)

// Status is the explicit lifecycle tag of a request. There is no rejected or
// cancelled state: a request stays pending until it is accepted.
type Status uint8

const (
	StatusPending Status = iota + 1
	StatusAccepted
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusAccepted:
		return "accepted"
	default:
		return "unknown"
	}
}

func ParseStatus(v string) (Status, error) {
	switch v {
	case "pending":
		return StatusPending, nil
	case "accepted":
		return StatusAccepted, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, v)
	}
}

func (s Status) MarshalText() ([]byte, error) {
	if s != StatusPending && s != StatusAccepted {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, s)
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Request is a proposal from From to To. The To* fields mirror the From*
// fields from the recipient's side.
type Request struct {
	ID               uuid.UUID  `json:"id"`
	From             string     `json:"from"`
	To               string     `json:"to"`
	FromOfferedSkill string     `json:"from_offered_skill"`
	FromWantedSkill  string     `json:"from_wanted_skill"`
	ToOfferedSkill   string     `json:"to_offered_skill"`
	ToWantedSkill    string     `json:"to_wanted_skill"`
	Status           Status     `json:"status"`
	CreatedAt        time.Time  `json:"timestamp"`
	AcceptedAt       *time.Time `json:"accepted_at,omitempty"`
}

func (r Request) IsPending() bool  { return r.Status == StatusPending }
func (r Request) IsAccepted() bool { return r.Status == StatusAccepted }

// Accept moves a pending request to accepted.
func (r Request) Accept(at time.Time) (Request, error) {
	if r.Status != StatusPending {
		return r, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, StatusAccepted)
	}
	r.Status = StatusAccepted
	t := at
	r.AcceptedAt = &t
	return r, nil
}

// Pair is an unordered pair of members.
type Pair struct {
	A string
	B string
}

func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

func (p Pair) Has(member string) bool {
	return p.A == member || p.B == member
}

// Other returns the member of the pair that is not member.
func (p Pair) Other(member string) string {
	if p.A == member {
		return p.B
	}
	return p.A
}

// Authorized derives the relationship predicate from request records: the pair
// is authorized once any request between them, in either direction, has been
// accepted.
func Authorized(requests []Request, a, b string) bool {
	want := NewPair(a, b)
	for _, r := range requests {
		if r.Status == StatusAccepted && NewPair(r.From, r.To) == want {
			return true
		}
	}
	return false
}
