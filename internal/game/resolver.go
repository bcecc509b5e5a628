package game

import (
	"crypto/rand"
	"errors"
	"math/big"

	"casino_arcade/internal/domain"

	"github.com/shopspring/decimal"
)

var ErrUnknownGameType = errors.New("неизвестный тип игры")

// строка таблицы выплат
type PayoutRule struct {
	Type        domain.GameType `json:"type"`
	Probability float64         `json:"probability"` // 0.0 - 1.0
	Multiplier  decimal.Decimal `json:"multiplier"`
}

// вычисляет выигрыш для ставки: floor(bet * multiplier)
func (r PayoutRule) CalculateWinAmount(bet int64) int64 {
	return decimal.NewFromInt(bet).Mul(r.Multiplier).Floor().IntPart()
}

// ожидаемый возврат на единицу ставки
func (r PayoutRule) ExpectedReturn() float64 {
	m, _ := r.Multiplier.Float64()
	return r.Probability * m
}

// фиксированная таблица вероятностей и выплат
func DefaultPayoutTable() map[domain.GameType]PayoutRule {
	return map[domain.GameType]PayoutRule{
		domain.GameTypeSlots:     {Type: domain.GameTypeSlots, Probability: 0.40, Multiplier: decimal.NewFromInt(2)},
		domain.GameTypeRoulette:  {Type: domain.GameTypeRoulette, Probability: 0.45, Multiplier: decimal.NewFromInt(2)},
		domain.GameTypeBlackjack: {Type: domain.GameTypeBlackjack, Probability: 0.48, Multiplier: decimal.RequireFromString("1.5")},
		domain.GameTypePoker:     {Type: domain.GameTypePoker, Probability: 0.35, Multiplier: decimal.NewFromInt(3)},
	}
}

// Source возвращает равномерное случайное число в [0, 1)
type Source func() float64

// secureRandFloat returns a cryptographically secure random float64 in [0.0, 1.0)
func secureRandFloat() float64 {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<53))
	if err != nil {
		// никогда не должно происходить; 1 - это всегда проигрыш
		return 0.999999
	}
	return float64(n.Int64()) / float64(1<<53)
}

// результат одного розыгрыша
type Outcome struct {
	Won         bool    `json:"won"`
	WinAmount   int64   `json:"win_amount"`
	Probability float64 `json:"probability"`
	Sample      float64 `json:"-"` // клиенту не отдаем
}

// разыгрывает ставку по таблице выплат
type Resolver struct {
	table  map[domain.GameType]PayoutRule
	source Source
}

func NewResolver() *Resolver {
	return NewResolverWithSource(secureRandFloat)
}

// создает резолвер с заданным источником случайности (для тестов)
func NewResolverWithSource(source Source) *Resolver {
	return &Resolver{
		table:  DefaultPayoutTable(),
		source: source,
	}
}

// возвращает правило для типа игры
func (r *Resolver) Rule(t domain.GameType) (PayoutRule, error) {
	rule, ok := r.table[t]
	if !ok {
		return PayoutRule{}, ErrUnknownGameType
	}
	return rule, nil
}

// правила всех игр в порядке domain.GameTypes
func (r *Resolver) Rules() []PayoutRule {
	rules := make([]PayoutRule, 0, len(domain.GameTypes))
	for _, t := range domain.GameTypes {
		if rule, ok := r.table[t]; ok {
			rules = append(rules, rule)
		}
	}
	return rules
}

// одна выборка: выигрыш если sample < probability
func (r *Resolver) Resolve(t domain.GameType, bet int64) (Outcome, error) {
	rule, err := r.Rule(t)
	if err != nil {
		return Outcome{}, err
	}

	sample := r.source()
	out := Outcome{
		Won:         sample < rule.Probability,
		Probability: rule.Probability,
		Sample:      sample,
	}
	if out.Won {
		out.WinAmount = rule.CalculateWinAmount(bet)
	}
	return out, nil
}
