package domain

import "github.com/m04kA/WMS-DockService/pkg/types"

// Slot кандидатное время начала операции с признаком доступности
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
}

// EndTime возвращает время окончания слота
// Слоты генерируются в пределах суток, поэтому переполнение невозможно
func (s *Slot) EndTime() types.TimeString {
	end, err := s.StartTime.AddMinutes(s.DurationMinutes)
	if err != nil {
		return s.StartTime
	}
	return end
}
