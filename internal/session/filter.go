package session

import (
	"strings"

	"github.com/pribylovaa/go-learning-portal/internal/models"
)

// CategoryAll — значение категории «все материалы»: фильтр по категории выключен.
const CategoryAll = "all"

// FilterMaterials отбирает из items материалы, подходящие одновременно под
// поисковый запрос и категорию (конъюнкция фильтров). Запрос списка ищет
// только в названии и описании: категория — отдельный селектор, подстрочное
// совпадение с ней здесь не учитывается.
//
// Функция чистая и идемпотентная: фильтруется всегда полная коллекция,
// повторное применение тех же фильтров даёт тот же результат. Порядок
// исходной коллекции сохраняется.
func FilterMaterials(items []models.Material, query, category string) []models.Material {
	query = strings.ToLower(strings.TrimSpace(query))
	anyCategory := category == "" || category == CategoryAll

	out := make([]models.Material, 0, len(items))
	for _, m := range items {
		if query != "" &&
			!strings.Contains(strings.ToLower(m.Title), query) &&
			!strings.Contains(strings.ToLower(m.Description), query) {
			continue
		}

		if !anyCategory && m.Category != category {
			continue
		}

		out = append(out, m)
	}

	return out
}

// searchMaterials отбирает материалы по подстроке без учёта регистра
// в названии, описании или категории. Пустой запрос пропускает всё.
func searchMaterials(items []models.Material, query string) []models.Material {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	out := make([]models.Material, 0, len(items))
	for _, m := range items {
		if strings.Contains(strings.ToLower(m.Title), query) ||
			strings.Contains(strings.ToLower(m.Description), query) ||
			strings.Contains(strings.ToLower(m.Category), query) {
			out = append(out, m)
		}
	}

	return out
}
