package companyservice

import "github.com/m04kA/WMS-DockService/internal/domain"

// Company модель компании из CompanyService
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// Политика расчёта длительности по умолчанию
	MinBookingMinutes int        `json:"min_booking_minutes"`
	Tiers             []TierRule `json:"tiers"`
}

// TierRule правило тарифной таблицы в ответе CompanyService
type TierRule struct {
	PalletBreak   int     `json:"pallet_break"`
	TimePerPallet float64 `json:"time_per_pallet"`
}

// Warehouse модель склада из CompanyService
type Warehouse struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Address   string `json:"address"`
}

// VehicleType модель типа транспорта из CompanyService
type VehicleType struct {
	ID         int64  `json:"id"`
	CompanyID  int64  `json:"company_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	MaxPallets int    `json:"max_pallets"`

	// UseCustomCalculation флаг использования собственной политики расчёта
	// вместо политики компании
	UseCustomCalculation bool       `json:"use_custom_calculation"`
	MinBookingMinutes    int        `json:"min_booking_minutes"`
	Tiers                []TierRule `json:"tiers"`
}

// Carrier модель перевозчика из CompanyService
type Carrier struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
}

// ErrorResponse модель ошибки от CompanyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DefaultPolicy возвращает политику расчёта длительности компании
func (c *Company) DefaultPolicy() domain.DurationPolicy {
	return domain.DurationPolicy{
		MinBookingMinutes: c.MinBookingMinutes,
		Tiers:             toDomainTiers(c.Tiers),
	}
}

// OverridePolicy возвращает переопределяющую политику типа транспорта,
// если установлен флаг кастомного расчёта, иначе nil
func (v *VehicleType) OverridePolicy() *domain.DurationPolicy {
	if !v.UseCustomCalculation {
		return nil
	}
	return &domain.DurationPolicy{
		MinBookingMinutes: v.MinBookingMinutes,
		Tiers:             toDomainTiers(v.Tiers),
	}
}

func toDomainTiers(tiers []TierRule) []domain.TierRule {
	result := make([]domain.TierRule, len(tiers))
	for i, tier := range tiers {
		result[i] = domain.TierRule{
			PalletBreak:   tier.PalletBreak,
			TimePerPallet: tier.TimePerPallet,
		}
	}
	return result
}
