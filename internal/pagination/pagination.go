package pagination

import "math"

// Params - нормализованные параметры страницы
type Params struct {
	Number int
	Size   int
}

// Normalize приводит запрошенные параметры к допустимым значениям:
// номер страницы < 1 трактуется как 1, размер < 1 - как значение по
// умолчанию конкретной операции. Верхней границы размера нет
func Normalize(number, size, defaultSize int) Params {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = defaultSize
	}
	return Params{Number: number, Size: size}
}

// Offset возвращает смещение для SQL-запроса
func (p Params) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages считает число страниц как ceil(total/size);
// при нуле записей получается ноль страниц
func TotalPages(total int64, size int) int {
	return int(math.Ceil(float64(total) / float64(size)))
}
