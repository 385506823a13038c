package domain

import "time"

type Shop struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AreaID    string    `json:"area_id"`
	Address   *string   `json:"address"`
	Phone     *string   `json:"phone"`
	Website   *string   `json:"website"`
	Area      *Area     `json:"areas,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SaveShopRequest struct {
	ID      string  `json:"-"`
	Name    string  `json:"name"`
	AreaID  string  `json:"area_id"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Website *string `json:"website"`
}

// ShopSummary é a loja resumida retornada junto com a cast
type ShopSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	AreaID string `json:"area_id"`
	Area   *Area  `json:"areas,omitempty"`
}
