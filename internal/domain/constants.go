package domain

// Значения конфигурации по умолчанию
const (
	DefaultSlotIntervalMinutes       = 30
	DefaultConfirmationWindowMinutes = 15
	DefaultAlternativeSlotsLimit     = 5
)

// Константы бизнес-валидации
const (
	MinPalletCount              = 1
	MinDockStartHour            = 0
	MaxDockEndHour              = 24
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxReferenceNumberLength    = 100
)

// Форматы времени и даты
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов бронирований, не занимающих док
// Используется для фильтрации при подсчёте доступных слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusProvisional,
	StatusConfirmed,
	StatusCompleted,
}
