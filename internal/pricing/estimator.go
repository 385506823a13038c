// Package pricing calcula a faixa de preço por hora exibida para cada cast
// a partir da tabela de preços da loja (faixas de horário, taxa de
// indicação e taxa de serviço/imposto).
package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultTaxRate é usada quando a loja não possui taxa configurada (35%)
const DefaultTaxRate = 0.35

// UnsetPriceLabel é exibido quando a loja não possui nenhuma faixa de preço
const UnsetPriceLabel = "料金未設定"

const minutesPerDay = 24 * 60

// TimeBand é o preço fixo por hora para entradas dentro de [StartTime, EndTime).
// EndTime menor que StartTime indica uma faixa que atravessa a meia-noite.
type TimeBand struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Price     int    `json:"price"`
}

// NominationFee é a taxa de indicação somada por hora
type NominationFee struct {
	Price int `json:"price"`
}

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// IsUnset indica que não há preço configurado
func (r PriceRange) IsUnset() bool {
	return r.Min == 0 && r.Max == 0
}

// String formata a faixa para exibição
func (r PriceRange) String() string {
	return FormatPriceRange(r.Min, r.Max)
}

// CalculatePriceRange retorna o menor e o maior preço por hora com indicação
// e imposto incluídos. O preço de cada faixa já é por hora, portanto a
// duração da faixa não entra no cálculo.
//
// O arredondamento é "half away from zero" feito em aritmética decimal exata,
// então valores como 1234.5 nunca sofrem erro de ponto flutuante. Para valores
// negativos isso difere do arredondamento "half up": -0.5 vira -1, não 0.
// Uma taxa NaN ou infinita é tratada como DefaultTaxRate.
func CalculatePriceRange(bands []TimeBand, nomination *NominationFee, taxRate float64) PriceRange {
	if len(bands) == 0 {
		return PriceRange{}
	}

	minPrice, maxPrice := bands[0].Price, bands[0].Price
	for _, band := range bands[1:] {
		if band.Price < minPrice {
			minPrice = band.Price
		}
		if band.Price > maxPrice {
			maxPrice = band.Price
		}
	}

	if nomination != nil {
		minPrice += nomination.Price
		maxPrice += nomination.Price
	}

	if math.IsNaN(taxRate) || math.IsInf(taxRate, 0) {
		taxRate = DefaultTaxRate
	}

	multiplier := decimal.NewFromInt(1).Add(decimal.NewFromFloat(taxRate))

	return PriceRange{
		Min: applyTax(minPrice, multiplier),
		Max: applyTax(maxPrice, multiplier),
	}
}

func applyTax(price int, multiplier decimal.Decimal) int {
	return int(decimal.NewFromInt(int64(price)).Mul(multiplier).Round(0).IntPart())
}

// FormatPriceRange formata a faixa em ienes com separador de milhar
func FormatPriceRange(min, max int) string {
	if min == 0 && max == 0 {
		return UnsetPriceLabel
	}

	p := message.NewPrinter(language.Japanese)
	if min == max {
		return p.Sprintf("%d円", min)
	}

	return p.Sprintf("%d円 ～ %d円", min, max)
}

// ParseTimeToMinutes converte "HH:MM" (ou "HH:MM:SS") em minutos desde 00:00.
// Partes inválidas contam como zero.
func ParseTimeToMinutes(value string) int {
	parts := strings.Split(strings.TrimSpace(value), ":")

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		hours = 0
	}

	minutes := 0
	if len(parts) > 1 {
		if m, err := strconv.Atoi(parts[1]); err == nil {
			minutes = m
		}
	}

	return hours*60 + minutes
}

// CalculateDurationInHours retorna a duração entre dois horários "HH:MM",
// considerando a virada do dia (ex: 21:00 ～ 01:00 = 4h)
func CalculateDurationInHours(startTime, endTime string) float64 {
	start := ParseTimeToMinutes(startTime)
	end := ParseTimeToMinutes(endTime)

	if end < start {
		return float64(minutesPerDay-start+end) / 60
	}

	return float64(end-start) / 60
}
