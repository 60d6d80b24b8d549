// models содержит доменные сущности learning-portal.
// Эти типы используются слоями бизнес-логики, хранилища, сессий и транспорта.
package models

// MaterialType — тип учебного материала.
type MaterialType string

const (
	MaterialArticle  MaterialType = "article"
	MaterialVideo    MaterialType = "video"
	MaterialTutorial MaterialType = "tutorial"
)

// Material — каталожная единица: статья, видео или туториал.
//
// Особенности:
//   - ID — стабильный строковый ключ; используется как первичный ключ каталога,
//     как внешний ключ отзывов и как ключ поиска теста в реестре;
//   - Rating — «авторская» базовая оценка; используется как fallback,
//     пока по материалу нет ни одного загруженного отзыва;
//   - Duration — свободный текст («15 минут», «2 часа»), не машинная величина;
//   - ThumbnailKey — ключ обложки в S3/MinIO; наружу отдаётся presigned URL;
//   - Position — порядок в канонической коллекции (выдача его сохраняет).
//
// Жизненный цикл: материал создаётся источником данных на старте процесса и
// далее неизменяем; удаления в рантайме нет.
type Material struct {
	ID           string
	Title        string
	Description  string
	Type         MaterialType
	Category     string
	Duration     string
	Rating       float64
	ThumbnailKey string
	ThumbnailURL string
	VideoURL     string
	Author       string
	Content      string
	Position     int32
}
