package domain

import "time"

const (
	MinReviewScore         = 1
	MaxReviewScore         = 5
	MaxReviewCommentLength = 1000
)

type Review struct {
	ID         string    `json:"id"`
	CastID     string    `json:"cast_id"`
	IPAddress  string    `json:"-"`
	CuteScore  int       `json:"cute_score"`
	TalkScore  int       `json:"talk_score"`
	PriceScore int       `json:"price_score"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateReviewRequest struct {
	CastID     string  `json:"castId"`
	CuteScore  int     `json:"cuteScore"`
	TalkScore  int     `json:"talkScore"`
	PriceScore int     `json:"priceScore"`
	Comment    *string `json:"comment"`
}

// ReviewSummary contém as médias das avaliações de uma cast
type ReviewSummary struct {
	Count         int     `json:"count"`
	AvgCuteScore  float64 `json:"avg_cute_score"`
	AvgTalkScore  float64 `json:"avg_talk_score"`
	AvgPriceScore float64 `json:"avg_price_score"`
}
