package domain

import "time"

type Cast struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ShopID       string       `json:"shop_id"`
	ImageURL     *string      `json:"image_url"`
	InstagramURL *string      `json:"instagram_url"`
	Shop         *ShopSummary `json:"shop,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type SaveCastRequest struct {
	ID           string  `json:"-"`
	Name         string  `json:"name"`
	ShopID       string  `json:"shop_id"`
	ImageURL     *string `json:"image_url"`
	InstagramURL *string `json:"instagram_url"`
}

// CastWithPrice é a cast exibida na listagem da área
type CastWithPrice struct {
	*Cast
	PriceRange   string        `json:"priceRange"`
	PriceDetails *PriceDetails `json:"priceDetails"`
}

// CastDetail reúne tudo o que a página da cast exibe
type CastDetail struct {
	*Cast
	Area          *Area         `json:"area"`
	PriceRange    string        `json:"priceRange"`
	PriceDetails  *PriceDetails `json:"priceDetails"`
	Reviews       []*Review     `json:"reviews"`
	ReviewSummary ReviewSummary `json:"review_summary"`
}

// UploadedImage é o resultado do upload de uma imagem de cast
type UploadedImage struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
