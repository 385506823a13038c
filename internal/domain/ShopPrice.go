package domain

import (
	"time"

	"github.com/vfg2006/castnavi-api/internal/pricing"
)

// DefaultNominationLabel é a categoria gravada quando a indicação é criada
const DefaultNominationLabel = "本指名"

// DefaultTaxCategory é a categoria gravada quando a taxa é criada
const DefaultTaxCategory = "サービス料・税"

// TimePrice é uma faixa de horário com preço fixo por hora
type TimePrice struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shop_id"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Price     int       `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NominationPrice struct {
	ID         string    `json:"id"`
	ShopID     string    `json:"shop_id"`
	Nomination string    `json:"nomination"`
	Price      int       `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ShopTax guarda a taxa de serviço/imposto como fração decimal (0.35 = 35%)
type ShopTax struct {
	ID          string    `json:"id"`
	ShopID      string    `json:"shop_id"`
	TaxCategory string    `json:"tax_category"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ShopPricing é o snapshot da tabela de preços de uma loja.
// Nomination e Tax são nil quando a loja não configurou esses valores.
type ShopPricing struct {
	ShopID     string
	TimePrices []*TimePrice
	Nomination *NominationPrice
	Tax        *ShopTax
}

func (p *ShopPricing) Bands() []pricing.TimeBand {
	bands := make([]pricing.TimeBand, 0, len(p.TimePrices))
	for _, tp := range p.TimePrices {
		bands = append(bands, pricing.TimeBand{
			StartTime: tp.StartTime,
			EndTime:   tp.EndTime,
			Price:     tp.Price,
		})
	}
	return bands
}

func (p *ShopPricing) NominationFee() *pricing.NominationFee {
	if p.Nomination == nil {
		return nil
	}
	return &pricing.NominationFee{Price: p.Nomination.Price}
}

// TaxRate retorna a taxa configurada ou a padrão quando não existe registro
func (p *ShopPricing) TaxRate() float64 {
	if p.Tax == nil {
		return pricing.DefaultTaxRate
	}
	return p.Tax.Price
}

func (p *ShopPricing) PriceRange() pricing.PriceRange {
	return pricing.CalculatePriceRange(p.Bands(), p.NominationFee(), p.TaxRate())
}

// Details monta o detalhamento exibido no card da cast
func (p *ShopPricing) Details() *PriceDetails {
	details := &PriceDetails{
		TimePrices:      p.Bands(),
		TaxRate:         p.TaxRate(),
		CalculatedRange: p.PriceRange(),
	}

	if p.Nomination != nil {
		price := p.Nomination.Price
		details.NominationPrice = &price
	}

	return details
}

type PriceDetails struct {
	TimePrices      []pricing.TimeBand `json:"timePrices"`
	NominationPrice *int               `json:"nominationPrice"`
	TaxRate         float64            `json:"taxRate"`
	CalculatedRange pricing.PriceRange `json:"calculatedRange"`
}

// TimePriceView é a faixa de horário com a duração calculada para o painel
type TimePriceView struct {
	*TimePrice
	DurationHours float64 `json:"duration_hours"`
}

// ShopPrices é a visão administrativa da tabela de preços de uma loja
type ShopPrices struct {
	Shop            *Shop              `json:"shop"`
	TimePrices      []*TimePriceView   `json:"time_prices"`
	Nomination      *NominationPrice   `json:"nomination"`
	Tax             *ShopTax           `json:"tax"`
	TaxRate         float64            `json:"tax_rate"`
	CalculatedRange pricing.PriceRange `json:"calculated_range"`
	PriceRange      string             `json:"price_range"`
}

type SaveTimePriceRequest struct {
	ID        string `json:"-"`
	ShopID    string `json:"-"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Price     int    `json:"price"`
}

type SaveNominationRequest struct {
	Price *int `json:"price"`
}

type SaveTaxRequest struct {
	Price *float64 `json:"price"`
}
