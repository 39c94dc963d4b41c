// Package interval примитивы для работы с полуоткрытыми минутными интервалами [start, end)
// Используются при подсчёте пересечений бронирований и проверке рабочих часов доков
package interval

// Overlaps проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Интервалы пересекаются, только если начало одного СТРОГО раньше конца другого и наоборот
// Граничащие интервалы (aEnd == bStart) пересечением не считаются
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// Within проверяет, что интервал [start, end) целиком лежит внутри [containerStart, containerEnd)
// Совпадение границ допустимо
func Within(start, end, containerStart, containerEnd int) bool {
	return start >= containerStart && end <= containerEnd
}
