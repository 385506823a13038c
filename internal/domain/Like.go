package domain

import "time"

type Like struct {
	ID        string    `json:"id"`
	CastID    string    `json:"cast_id"`
	IPAddress string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type LikeRequest struct {
	CastID string `json:"castId"`
}

type LikeStatus struct {
	TotalLikes int  `json:"totalLikes"`
	HasLiked   bool `json:"hasLiked"`
}
