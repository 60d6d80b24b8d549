// seed загружает стартовый каталог (материалы и тесты) из YAML-файла
// и складывает его в хранилище при старте сервиса.
//
// Каталог статичен: файл — единственный источник истины, загрузка
// идемпотентна (upsert по id), порядок материалов в файле задаёт
// порядок показа в списке.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pribylovaa/go-learning-portal/internal/models"
)

// materialSpec — материал в YAML-файле каталога.
type materialSpec struct {
	ID           string  `yaml:"id"`
	Title        string  `yaml:"title"`
	Description  string  `yaml:"description"`
	Type         string  `yaml:"type"`
	Category     string  `yaml:"category"`
	Duration     string  `yaml:"duration"`
	Rating       float64 `yaml:"rating"`
	ThumbnailKey string  `yaml:"thumbnail_key"`
	VideoURL     string  `yaml:"video_url"`
	Author       string  `yaml:"author"`
	Content      string  `yaml:"content"`
}

// assessmentSpec — проверочный тест в YAML-файле каталога.
type assessmentSpec struct {
	ID            string `yaml:"id"`
	MaterialID    string `yaml:"material_id"`
	Title         string `yaml:"title"`
	QuestionCount int32  `yaml:"question_count"`
	PassingScore  int32  `yaml:"passing_score"`
	EstimatedTime string `yaml:"estimated_time"`
}

// file — корень YAML-файла каталога.
type file struct {
	Materials   []materialSpec   `yaml:"materials"`
	Assessments []assessmentSpec `yaml:"assessments"`
}

// Catalog — разобранный и проверенный стартовый каталог.
type Catalog struct {
	Materials   []models.Material
	Assessments []models.Assessment
}

// Load читает и валидирует YAML-файл каталога.
//
// Правила:
//   - id материалов уникальны, тип — один из известных;
//   - title/category обязательны;
//   - тест ссылается на существующий материал, на материал — не больше
//     одного теста.
func Load(path string) (*Catalog, error) {
	const op = "seed/Load"

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: read %q: %w", op, path, err)
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s: parse %q: %w", op, path, err)
	}

	if len(f.Materials) == 0 {
		return nil, fmt.Errorf("%s: %q: materials list is empty", op, path)
	}

	seen := make(map[string]struct{}, len(f.Materials))
	materials := make([]models.Material, 0, len(f.Materials))

	for i, m := range f.Materials {
		if m.ID == "" {
			return nil, fmt.Errorf("%s: materials[%d]: id is required", op, i)
		}
		if _, ok := seen[m.ID]; ok {
			return nil, fmt.Errorf("%s: materials[%d]: duplicate id %q", op, i, m.ID)
		}
		seen[m.ID] = struct{}{}

		if m.Title == "" || m.Category == "" {
			return nil, fmt.Errorf("%s: material %q: title and category are required", op, m.ID)
		}

		mt := models.MaterialType(m.Type)
		switch mt {
		case models.MaterialArticle, models.MaterialVideo, models.MaterialTutorial:
		default:
			return nil, fmt.Errorf("%s: material %q: unknown type %q", op, m.ID, m.Type)
		}

		materials = append(materials, models.Material{
			ID:           m.ID,
			Title:        m.Title,
			Description:  m.Description,
			Type:         mt,
			Category:     m.Category,
			Duration:     m.Duration,
			Rating:       m.Rating,
			ThumbnailKey: m.ThumbnailKey,
			VideoURL:     m.VideoURL,
			Author:       m.Author,
			Content:      m.Content,
			Position:     int32(i),
		})
	}

	assessed := make(map[string]struct{}, len(f.Assessments))
	assessments := make([]models.Assessment, 0, len(f.Assessments))

	for i, a := range f.Assessments {
		if a.ID == "" || a.MaterialID == "" {
			return nil, fmt.Errorf("%s: assessments[%d]: id and material_id are required", op, i)
		}
		if _, ok := seen[a.MaterialID]; !ok {
			return nil, fmt.Errorf("%s: assessment %q: unknown material %q", op, a.ID, a.MaterialID)
		}
		if _, ok := assessed[a.MaterialID]; ok {
			return nil, fmt.Errorf("%s: assessment %q: material %q already has an assessment", op, a.ID, a.MaterialID)
		}
		assessed[a.MaterialID] = struct{}{}

		assessments = append(assessments, models.Assessment{
			ID:            a.ID,
			MaterialID:    a.MaterialID,
			Title:         a.Title,
			QuestionCount: a.QuestionCount,
			PassingScore:  a.PassingScore,
			EstimatedTime: a.EstimatedTime,
		})
	}

	return &Catalog{Materials: materials, Assessments: assessments}, nil
}
