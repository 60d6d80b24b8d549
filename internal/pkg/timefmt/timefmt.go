// timefmt — человекочитаемое относительное время для отзывов.
//
// Функции чистые: «сейчас» передаётся явно, чтобы поведение было
// детерминированным в тестах.
package timefmt

import (
	"fmt"
	"time"
)

// Пороговые значения шкалы.
const (
	hoursPerDay  = 24
	daysAbsolute = 7 // начиная с 7 полных суток показываем абсолютную дату.
)

// Relative форматирует давность момента t относительно now:
//   - меньше часа            -> "только что";
//   - 1..23 часа             -> "N час(а/ов) назад";
//   - 1..6 полных суток      -> "N день/дня/дней назад";
//   - 7 суток и старше       -> абсолютная дата "02.01.2006".
//
// Будущие метки (t позже now) трактуются как "только что".
func Relative(now, t time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}

	hours := int(diff / time.Hour)

	switch {
	case hours < 1:
		return "только что"
	case hours < hoursPerDay:
		return fmt.Sprintf("%d %s назад", hours, pluralRu(hours, "час", "часа", "часов"))
	case hours < hoursPerDay*daysAbsolute:
		days := hours / hoursPerDay
		return fmt.Sprintf("%d %s назад", days, pluralRu(days, "день", "дня", "дней"))
	default:
		return t.Format("02.01.2006")
	}
}

// pluralRu выбирает форму существительного по правилам русского языка:
// one — 1, 21, 31…; few — 2..4, 22..24…; many — 0, 5..20, 25..30….
func pluralRu(n int, one, few, many string) string {
	n10, n100 := n%10, n%100

	switch {
	case n10 == 1 && n100 != 11:
		return one
	case n10 >= 2 && n10 <= 4 && (n100 < 12 || n100 > 14):
		return few
	default:
		return many
	}
}
