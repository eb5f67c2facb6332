package dto

import "skill-swap/internal/domain/rating"

type LeaveRatingRequest struct {
	To     string `json:"to"`
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// AverageRatingResponse carries a null average for an unrated member.
type AverageRatingResponse struct {
	MemberID string   `json:"member_id"`
	Average  *float64 `json:"average"`
	Count    int64    `json:"count"`
}

func NewAverageRating(memberID string, s rating.Summary) AverageRatingResponse {
	return AverageRatingResponse{MemberID: memberID, Average: s.Average, Count: s.Count}
}
