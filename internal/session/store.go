package session

import (
	"context"
	"sync"

	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/pkg/log"
)

// Store — общая для всех сессий коллекция материалов каталога.
//
// Коллекция загружается из источника целиком и после загрузки неизменяема
// (append-only каталог); сессии читают её под RLock. Состояния: загрузка,
// ошибка с человекочитаемым текстом, готовая коллекция (возможно пустая).
type Store struct {
	mu     sync.RWMutex
	source CatalogSource

	loading bool
	loadErr string
	items   []models.Material
}

// NewStore создаёт пустое хранилище каталога поверх источника.
func NewStore(source CatalogSource) *Store {
	return &Store{source: source}
}

// Load загружает коллекцию из источника.
//
// Прежняя ошибка сбрасывается на время загрузки; неудача фиксируется
// человекочитаемым сообщением, прежняя коллекция при этом сохраняется.
// Повторный вызов поверх идущей загрузки — no-op.
func (st *Store) Load(ctx context.Context) {
	st.mu.Lock()
	if st.loading {
		st.mu.Unlock()
		return
	}
	st.loading = true
	st.loadErr = ""
	st.mu.Unlock()

	items, err := st.source.ListMaterials(ctx)

	st.mu.Lock()
	defer st.mu.Unlock()

	st.loading = false

	if err != nil {
		log.From(ctx).Error("catalog_load_failed", "err", err)

		st.loadErr = "не удалось загрузить каталог"
		return
	}

	st.items = items
}

// IsLoading сообщает, идёт ли загрузка коллекции.
func (st *Store) IsLoading() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.loading
}

// Err возвращает текст последней ошибки загрузки (пустая строка — ошибки нет).
func (st *Store) Err() string {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.loadErr
}

// Materials возвращает загруженную коллекцию в исходном порядке.
func (st *Store) Materials() []models.Material {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.items
}

// MaterialByID ищет материал коллекции по id.
func (st *Store) MaterialByID(id string) (*models.Material, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	for i := range st.items {
		if st.items[i].ID == id {
			m := st.items[i]
			return &m, true
		}
	}

	return nil, false
}

// SearchMaterials возвращает материалы, подходящие под поисковый запрос.
func (st *Store) SearchMaterials(query string) []models.Material {
	return searchMaterials(st.Materials(), query)
}
