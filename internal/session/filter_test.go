package session

// Тесты фильтрации и хранилища коллекции (internal/session/filter.go, store.go).

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-learning-portal/internal/models"
)

// wideCatalog — коллекция из 12 материалов, 5 из которых в категории
// algorithms; три из них — про деревья.
func wideCatalog() []models.Material {
	items := []models.Material{
		{ID: "m1", Title: "Двоичное дерево поиска", Category: "algorithms"},
		{ID: "m2", Title: "Сбалансированные деревья", Description: "АВЛ-дерево", Category: "algorithms"},
		{ID: "m3", Title: "Обход графов", Description: "дерево обхода", Category: "algorithms"},
		{ID: "m4", Title: "Сортировки", Category: "algorithms"},
		{ID: "m5", Title: "Динамическое программирование", Category: "algorithms"},
		{ID: "m6", Title: "Дерево каталогов", Description: "файловые системы", Category: "applications"},
	}
	for i := 7; i <= 12; i++ {
		items = append(items, models.Material{
			ID: fmt.Sprintf("m%d", i), Title: fmt.Sprintf("Материал %d", i), Category: "basics",
		})
	}
	return items
}

// Конъюнкция фильтров: категория algorithms и запрос «дерево» отбирают
// ровно материалы категории, в тексте которых есть подстрока.
func TestFilterMaterials_QueryAndCategory(t *testing.T) {
	items := wideCatalog()
	require.Len(t, items, 12)

	got := FilterMaterials(items, "дерево", "algorithms")
	require.Len(t, got, 3)
	require.Equal(t, "m1", got[0].ID)
	require.Equal(t, "m2", got[1].ID)
	require.Equal(t, "m3", got[2].ID)

	// «Дерево каталогов» подходит по запросу, но не по категории.
	for _, m := range got {
		require.NotEqual(t, "m6", m.ID)
	}
}

func TestFilterMaterials_CategoryAll(t *testing.T) {
	items := wideCatalog()

	// пустая категория и «all» эквивалентны.
	require.Len(t, FilterMaterials(items, "", CategoryAll), 12)
	require.Len(t, FilterMaterials(items, "", ""), 12)

	got := FilterMaterials(items, "дерево", CategoryAll)
	require.Len(t, got, 4)
}

// Идемпотентность: фильтр всегда применяется к полной коллекции, и повторное
// применение того же фильтра к результату ничего не меняет.
func TestFilterMaterials_Idempotent(t *testing.T) {
	items := wideCatalog()

	once := FilterMaterials(items, "дерево", "algorithms")
	twice := FilterMaterials(once, "дерево", "algorithms")
	require.Equal(t, once, twice)
}

func TestFilterMaterials_NoMatches(t *testing.T) {
	require.Empty(t, FilterMaterials(wideCatalog(), "квантовая механика", CategoryAll))
}

func TestStore_LoadAndSearch(t *testing.T) {
	src := &fakeSource{items: wideCatalog()}
	st := NewStore(src)

	// До загрузки коллекция пуста, ошибки нет.
	require.Empty(t, st.Materials())
	require.Empty(t, st.Err())
	require.False(t, st.IsLoading())

	st.Load(context.Background())
	require.Len(t, st.Materials(), 12)

	got := st.SearchMaterials("дерево")
	require.Len(t, got, 4)

	// Поиск хранилища смотрит и в категорию; фильтр списка — только
	// в название и описание.
	require.Len(t, st.SearchMaterials("algorithms"), 5)
	require.Empty(t, FilterMaterials(st.Materials(), "algorithms", CategoryAll))

	m, ok := st.MaterialByID("m3")
	require.True(t, ok)
	require.Equal(t, "Обход графов", m.Title)

	_, ok = st.MaterialByID("ghost")
	require.False(t, ok)
}

// Неудачная загрузка: человекочитаемая ошибка, прежняя коллекция сохраняется;
// повторная удачная загрузка ошибку сбрасывает.
func TestStore_LoadFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("db down")}
	st := NewStore(src)

	st.Load(context.Background())
	require.Equal(t, "не удалось загрузить каталог", st.Err())
	require.Empty(t, st.Materials())

	src.mu.Lock()
	src.err = nil
	src.items = wideCatalog()
	src.mu.Unlock()

	st.Load(context.Background())
	require.Empty(t, st.Err())
	require.Len(t, st.Materials(), 12)

	// Неудачная перезагрузка не затирает уже загруженный каталог.
	src.mu.Lock()
	src.err = errors.New("db down again")
	src.mu.Unlock()

	st.Load(context.Background())
	require.Equal(t, "не удалось загрузить каталог", st.Err())
	require.Len(t, st.Materials(), 12)
}

// Пустой список: различаем «каталог пуст» и «ничего не подошло под фильтры».
func TestSession_EmptyKinds(t *testing.T) {
	// каталог пуст вовсе.
	st := NewStore(&fakeSource{items: nil})
	st.Load(context.Background())

	s := New(Options{
		Store:    st,
		Reviews:  newFakeBackend(),
		Registry: &fakeRegistry{byMaterial: map[string]*models.Assessment{}},
		Identity: &fakeIdentity{},
	})
	require.Equal(t, EmptyCatalog, s.Snapshot().Empty)

	// материалы есть, но фильтры ничего не пропустили.
	e := newEnv(t)
	e.session.SetFilter("квантовая механика", CategoryAll)
	require.Equal(t, EmptyNoMatches, e.session.Snapshot().Empty)

	// без фильтров список непуст.
	e.session.SetFilter("", CategoryAll)
	require.Equal(t, EmptyNone, e.session.Snapshot().Empty)
}
