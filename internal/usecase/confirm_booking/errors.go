package confirm_booking

import "errors"

var (
	// ErrUnknownConfirmation возвращается, когда confirmation id неизвестен
	// или бронирование уже финализировано. Клиентская ошибка, не повторяется
	ErrUnknownConfirmation = errors.New("confirm_booking: unknown confirmation id")

	// ErrReservationExpired возвращается, когда окно подтверждения истекло.
	// Provisional-бронирование удаляется, вызывающая сторона запрашивает новое
	ErrReservationExpired = errors.New("confirm_booking: reservation has expired")

	// ErrSlotNoLongerAvailable возвращается, когда повторная проверка перед
	// подтверждением не нашла свободного дока. Provisional-бронирование
	// сохраняется - можно повторить с другим временем в пределах окна
	ErrSlotNoLongerAvailable = errors.New("confirm_booking: slot is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
