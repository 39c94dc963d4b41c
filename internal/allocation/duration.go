package allocation

import (
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/WMS-DockService/internal/domain"
)

var (
	// ErrInvalidPalletCount возвращается при неположительном количестве паллет
	ErrInvalidPalletCount = errors.New("allocation: pallet count must be positive")
)

// ComputeDuration вычисляет длительность операции в минутах из количества паллет
//
// Тарифная таблица - ступенчатая функция: правила сортируются по возрастанию
// PalletBreak, каждое правило оценивает паллеты с накопительным номером до своей
// границы включительно.
//
// Паллеты сверх последней границы таблицы время НЕ добавляют - время начисляют
// только явно заданные правила. Поведение закреплено тестом
// TestComputeDuration_PalletsBeyondLastBreak.
//
// Результат не меньше минимальной длительности политики.
func ComputeDuration(palletCount int, policy domain.DurationPolicy) (int, error) {
	if palletCount < domain.MinPalletCount {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPalletCount, palletCount)
	}

	tiers := policy.SortedTiers()

	accounted := 0
	minutes := 0.0

	for _, tier := range tiers {
		if accounted >= palletCount {
			break
		}

		// Паллеты, оцениваемые этим правилом: от уже учтённых до границы правила,
		// но не больше запрошенного количества
		upper := tier.PalletBreak
		if upper > palletCount {
			upper = palletCount
		}

		billed := upper - accounted
		if billed <= 0 {
			continue
		}

		minutes += float64(billed) * tier.TimePerPallet
		accounted = upper
	}

	total := int(math.Ceil(minutes))
	if total < policy.MinBookingMinutes {
		total = policy.MinBookingMinutes
	}

	return total, nil
}

// SelectPolicy выбирает политику расчёта длительности
// Если для типа транспорта задана переопределяющая политика - используется она,
// иначе политика компании по умолчанию
func SelectPolicy(companyPolicy domain.DurationPolicy, vehicleOverride *domain.DurationPolicy) domain.DurationPolicy {
	if vehicleOverride != nil {
		return *vehicleOverride
	}
	return companyPolicy
}
