package docks

import "errors"

var (
	// ErrDockNotFound возвращается, когда док не найден
	ErrDockNotFound = errors.New("dock not found")

	// ErrAccessDenied возвращается, когда док принадлежит другой компании
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
