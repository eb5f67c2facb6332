package rating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalid = errors.New("invalid rating")

const (
	MinScore        = 1
	MaxScore        = 5
	MaxReviewLength = 2000
)

// Rating records are never deduplicated; a rater may rate the same member
// more than once and every record counts toward the average.
type Rating struct {
	ID        uuid.UUID `json:"id"`
	Seq       int64     `json:"-"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Score     int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"timestamp"`
}

func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalid, MinScore, MaxScore)
	}
	return nil
}

func NormalizeReview(review string) (string, error) {
	review = strings.TrimSpace(review)
	if len([]rune(review)) > MaxReviewLength {
		return "", fmt.Errorf("%w: review is longer than %d characters", ErrInvalid, MaxReviewLength)
	}
	return review, nil
}

// Summary is the aggregate over all ratings received by a member. Average is
// nil when Count is zero.
type Summary struct {
	Count   int64    `json:"count"`
	Sum     int64    `json:"sum"`
	Average *float64 `json:"average"`
}

func Summarize(count, sum int64) Summary {
	s := Summary{Count: count, Sum: sum}
	if count > 0 {
		avg := float64(sum) / float64(count)
		s.Average = &avg
	}
	return s
}

func SummarizeRatings(list []Rating) Summary {
	var sum int64
	for _, r := range list {
		sum += int64(r.Score)
	}
	return Summarize(int64(len(list)), sum)
}
