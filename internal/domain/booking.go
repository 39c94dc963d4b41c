package domain

import (
	"time"

	"github.com/m04kA/WMS-DockService/pkg/types"
)

// BookingStatus статус бронирования дока
type BookingStatus string

const (
	StatusProvisional BookingStatus = "provisional"
	StatusConfirmed   BookingStatus = "confirmed"
	StatusCancelled   BookingStatus = "cancelled"
	StatusCompleted   BookingStatus = "completed"
)

// Booking бронирование погрузочного дока
type Booking struct {
	ID              int64
	CompanyID       int64
	WarehouseID     int64
	DockID          int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	PalletCount     int
	VehicleTypeID   int64
	MovementType    MovementType
	Status          BookingStatus

	// Данные provisional-бронирования (заполнены до подтверждения;
	// ConfirmationID сохраняется после подтверждения как квитанция)
	ConfirmationID        *string
	ConfirmationExpiresAt *time.Time

	// Денормализованные данные для истории
	CarrierName     *string
	SenderName      *string
	ReferenceNumber *string
	Notes           *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive проверяет, что бронирование находится в активном статусе
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsProvisional проверяет, что бронирование ожидает подтверждения
func (b *Booking) IsProvisional() bool {
	return b.Status == StatusProvisional
}

// ProvisionalExpired проверяет, что provisional-бронирование просрочено:
// окно подтверждения истекло
func (b *Booking) ProvisionalExpired(now time.Time) bool {
	return b.Status == StatusProvisional &&
		b.ConfirmationExpiresAt != nil &&
		now.After(*b.ConfirmationExpiresAt)
}

// Occupies проверяет, что бронирование занимает свой док
// Отмененные бронирования и просроченные provisional-бронирования док не занимают
func (b *Booking) Occupies(now time.Time) bool {
	if !b.IsActive() {
		return false
	}
	return !b.ProvisionalExpired(now)
}

// CanBeCancelled проверяет, что бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusProvisional || b.Status == StatusConfirmed
}

// IsCancelled проверяет, что бронирование отменено
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsCompleted проверяет, что бронирование завершено
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// CompanyBookingsFilter фильтр для получения бронирований компании
type CompanyBookingsFilter struct {
	CompanyID       int64          // Обязательный параметр
	WarehouseID     *int64         // Фильтр по складу (опционально, если nil - все склады)
	DockID          *int64         // Фильтр по доку (опционально)
	StartDate       *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
