package domain

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidTierRule возвращается при некорректном правиле тарифной таблицы
	ErrInvalidTierRule = errors.New("invalid tier rule")

	// ErrInvalidDurationPolicy возвращается при некорректной политике расчёта длительности
	ErrInvalidDurationPolicy = errors.New("invalid duration policy")
)

// TierRule правило тарифной таблицы: паллеты с накопительным номером до PalletBreak
// включительно оцениваются в TimePerPallet минут каждая
type TierRule struct {
	PalletBreak   int
	TimePerPallet float64
}

// DurationPolicy политика расчёта длительности операции из количества паллет
// Привязана к компании (политика по умолчанию) и опционально переопределяется
// типом транспорта с установленным флагом кастомного расчёта
type DurationPolicy struct {
	MinBookingMinutes int
	Tiers             []TierRule
}

// Validate проверяет политику: неотрицательный минимум, корректные правила,
// строго возрастающие границы после сортировки
func (p DurationPolicy) Validate() error {
	if p.MinBookingMinutes < 0 {
		return fmt.Errorf("%w: negative min booking time %d", ErrInvalidDurationPolicy, p.MinBookingMinutes)
	}

	sorted := p.SortedTiers()
	prevBreak := 0
	for _, tier := range sorted {
		if tier.PalletBreak < 1 {
			return fmt.Errorf("%w: pallet break %d must be >= 1", ErrInvalidTierRule, tier.PalletBreak)
		}
		if tier.TimePerPallet < 0 {
			return fmt.Errorf("%w: negative time per pallet %.2f", ErrInvalidTierRule, tier.TimePerPallet)
		}
		if tier.PalletBreak <= prevBreak {
			return fmt.Errorf("%w: duplicate pallet break %d", ErrInvalidTierRule, tier.PalletBreak)
		}
		prevBreak = tier.PalletBreak
	}

	return nil
}

// SortedTiers возвращает копию правил, отсортированную по возрастанию PalletBreak
// Таблица оценивается только в этом порядке независимо от порядка хранения
func (p DurationPolicy) SortedTiers() []TierRule {
	tiers := make([]TierRule, len(p.Tiers))
	copy(tiers, p.Tiers)
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].PalletBreak < tiers[j].PalletBreak
	})
	return tiers
}
