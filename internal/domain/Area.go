package domain

import "time"

// AllPrefectures é o valor do filtro que retorna todas as áreas
const AllPrefectures = "全て"

type Area struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Prefecture string    `json:"prefecture"`
	City       string    `json:"city"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AreaFilter struct {
	Prefecture string
}

type SaveAreaRequest struct {
	ID         string `json:"-"`
	Name       string `json:"name"`
	Prefecture string `json:"prefecture"`
	City       string `json:"city"`
}

// PrefectureGroup agrupa as áreas de uma mesma prefeitura/cidade para listagem
type PrefectureGroup struct {
	Prefecture string  `json:"prefecture"`
	City       string  `json:"city"`
	Areas      []*Area `json:"areas"`
}
