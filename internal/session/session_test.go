package session

// Тесты машины состояний сессии (internal/session).
//
//  Проверяем:
//  - переходы представлений: список -> карточка -> тест -> список,
//    тихий no-op при отсутствии теста, сигнал прокрутки;
//  - stale-response guard: опоздавший ответ загрузки отзывов чужого
//    материала отбрасывается;
//  - порядок валидации отправки отзыва: аутентификация -> оценка -> текст,
//    предупреждения без запроса к бэкенду;
//  - семантику формы: сброс при успехе, сохранение при ошибке,
//    блокировку повторной отправки;
//  - отсутствие кеширования отзывов между открытиями карточки.

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/service"
)

// fakeSource — источник каталога с управляемым результатом.
type fakeSource struct {
	mu    sync.Mutex
	items []models.Material
	err   error
}

func (f *fakeSource) ListMaterials(_ context.Context) ([]models.Material, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items, f.err
}

// fakeBackend — бэкенд отзывов с поканальным управлением задержкой ответа.
type fakeBackend struct {
	mu        sync.Mutex
	reviews   map[string][]models.Review
	listErr   map[string]error
	gates     map[string]chan struct{}
	listCalls []string
	createErr error
	nextID    int64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		reviews: make(map[string][]models.Review),
		listErr: make(map[string]error),
		gates:   make(map[string]chan struct{}),
		nextID:  1,
	}
}

// gate задерживает ответ ReviewsByMaterial для материала до закрытия канала.
func (f *fakeBackend) gate(materialID string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[materialID] = ch
	return ch
}

func (f *fakeBackend) ReviewsByMaterial(_ context.Context, materialID string) ([]models.Review, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, materialID)
	ch := f.gates[materialID]
	items := f.reviews[materialID]
	err := f.listErr[materialID]
	f.mu.Unlock()

	if ch != nil {
		<-ch
	}
	return items, err
}

func (f *fakeBackend) CreateReview(_ context.Context, in service.CreateReviewInput) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	r := models.Review{
		ID:         f.nextID,
		MaterialID: in.MaterialID,
		UserID:     in.UserID,
		AuthorName: in.AuthorName,
		Text:       in.Text,
		Rating:     in.Rating,
		CreatedAt:  time.Now().UTC(),
	}
	f.nextID++
	return &r, nil
}

func (f *fakeBackend) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.listCalls))
	copy(out, f.listCalls)
	return out
}

// fakeRegistry — реестр тестов поверх карты.
type fakeRegistry struct {
	byMaterial map[string]*models.Assessment
}

func (f *fakeRegistry) AssessmentByMaterial(_ context.Context, materialID string) (*models.Assessment, error) {
	a, ok := f.byMaterial[materialID]
	if !ok {
		return nil, service.ErrNotFound
	}
	return a, nil
}

// fakeIdentity — статическая идентификация.
type fakeIdentity struct {
	ident models.Identity
	ok    bool
}

func (f *fakeIdentity) CurrentUser(_ context.Context) (models.Identity, bool) {
	return f.ident, f.ok
}

func testMaterials() []models.Material {
	return []models.Material{
		{ID: "binary-tree", Title: "Двоичное дерево поиска", Category: "algorithms", Rating: 4.8},
		{ID: "hash-tables", Title: "Хеш-таблицы", Category: "basics", Rating: 4.7},
		{ID: "sorting", Title: "Алгоритмы сортировки", Category: "algorithms", Rating: 4.3},
	}
}

type env struct {
	session  *Session
	store    *Store
	backend  *fakeBackend
	registry *fakeRegistry
	identity *fakeIdentity
}

func newEnv(t *testing.T) *env {
	t.Helper()

	store := NewStore(&fakeSource{items: testMaterials()})
	store.Load(context.Background())
	require.Empty(t, store.Err())

	backend := newFakeBackend()
	registry := &fakeRegistry{byMaterial: map[string]*models.Assessment{
		"binary-tree": {ID: "quiz-binary-tree", MaterialID: "binary-tree", QuestionCount: 12},
	}}
	identity := &fakeIdentity{
		ident: models.Identity{UserID: uuid.New(), Username: "user"},
		ok:    true,
	}

	s := New(Options{
		Store:       store,
		Reviews:     backend,
		Registry:    registry,
		Identity:    identity,
		LoadTimeout: time.Second,
		Now:         func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	})

	return &env{session: s, store: store, backend: backend, registry: registry, identity: identity}
}

// waitPane дожидается нужного состояния панели отзывов.
func waitPane(t *testing.T, s *Session, want reviewPaneState) Snapshot {
	t.Helper()

	var snap Snapshot
	require.Eventually(t, func() bool {
		snap = s.Snapshot()
		return snap.ReviewsState == string(want)
	}, 2*time.Second, 5*time.Millisecond)
	return snap
}

// Начальное состояние: список, категория «все», панель отзывов пуста.
func TestSession_InitialState(t *testing.T) {
	e := newEnv(t)

	snap := e.session.Snapshot()
	require.Equal(t, ViewList, snap.View)
	require.Equal(t, CategoryAll, snap.Category)
	require.Len(t, snap.Materials, 3)
	require.Nil(t, snap.Material)
	require.Nil(t, snap.Assessment)
}

// Список -> карточка -> тест -> список; каждый переход двигает ScrollSeq.
func TestSession_Transitions(t *testing.T) {
	e := newEnv(t)

	seq := e.session.Snapshot().ScrollSeq

	require.NoError(t, e.session.SelectMaterial(context.Background(), "binary-tree"))
	snap := e.session.Snapshot()
	require.Equal(t, ViewDetail, snap.View)
	require.Equal(t, "binary-tree", snap.Material.ID)
	require.Greater(t, snap.ScrollSeq, seq)
	seq = snap.ScrollSeq

	require.NoError(t, e.session.TakeAssessment(context.Background()))
	snap = e.session.Snapshot()
	require.Equal(t, ViewAssessment, snap.View)
	require.Equal(t, "quiz-binary-tree", snap.Assessment.ID)
	// Выбор материала и теста взаимоисключающие.
	require.Nil(t, snap.Material)
	require.Greater(t, snap.ScrollSeq, seq)
	seq = snap.ScrollSeq

	// Из теста «назад» ведёт сразу в список, минуя карточку.
	e.session.Back()
	snap = e.session.Snapshot()
	require.Equal(t, ViewList, snap.View)
	require.Nil(t, snap.Assessment)
	require.Greater(t, snap.ScrollSeq, seq)
	seq = snap.ScrollSeq

	// Back из списка — no-op и без сигнала прокрутки.
	e.session.Back()
	require.Equal(t, seq, e.session.Snapshot().ScrollSeq)
}

// Материал без теста: переход — тихий no-op, состояние не меняется,
// уведомлений нет.
func TestSession_TakeAssessment_Absent(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.session.SelectMaterial(context.Background(), "hash-tables"))
	before := e.session.Snapshot()

	require.NoError(t, e.session.TakeAssessment(context.Background()))

	after := e.session.Snapshot()
	require.Equal(t, ViewDetail, after.View)
	require.Equal(t, "hash-tables", after.Material.ID)
	require.Equal(t, before.ScrollSeq, after.ScrollSeq)
	require.Empty(t, after.Notices)
}

// Тест недостижим из списка.
func TestSession_TakeAssessment_FromList(t *testing.T) {
	e := newEnv(t)

	require.ErrorIs(t, e.session.TakeAssessment(context.Background()), ErrNotInDetail)
}

// Выбор неизвестного материала — ошибка, состояние не меняется.
func TestSession_SelectUnknownMaterial(t *testing.T) {
	e := newEnv(t)

	require.ErrorIs(t, e.session.SelectMaterial(context.Background(), "ghost"), ErrNoMaterial)
	require.Equal(t, ViewList, e.session.Snapshot().View)
}

// Stale-response guard: пользователь открыл A, тут же открыл B; ответ A
// пришёл позже и должен быть отброшен — в карточке B только отзывы B.
func TestSession_StaleReviewResponseDiscarded(t *testing.T) {
	e := newEnv(t)

	e.backend.reviews["binary-tree"] = []models.Review{
		{ID: 1, MaterialID: "binary-tree", Text: "про дерево", Rating: 5},
	}
	e.backend.reviews["sorting"] = []models.Review{
		{ID: 2, MaterialID: "sorting", Text: "про сортировки", Rating: 4},
	}

	gateA := e.backend.gate("binary-tree")
	gateB := e.backend.gate("sorting")

	require.NoError(t, e.session.SelectMaterial(context.Background(), "binary-tree"))
	require.NoError(t, e.session.SelectMaterial(context.Background(), "sorting"))

	// Ответ B приходит первым, затем опоздавший ответ A.
	close(gateB)
	snap := waitPane(t, e.session, paneLoaded)
	require.Equal(t, "sorting", snap.Material.ID)
	require.Len(t, snap.Reviews, 1)
	require.EqualValues(t, 2, snap.Reviews[0].Review.ID)

	close(gateA)

	// Опоздавший ответ A не перетирает список B.
	time.Sleep(50 * time.Millisecond)
	snap = e.session.Snapshot()
	require.Equal(t, "sorting", snap.Material.ID)
	require.Len(t, snap.Reviews, 1)
	require.EqualValues(t, 2, snap.Reviews[0].Review.ID)
}

// Повторное открытие карточки всегда перезагружает отзывы: между
// открытиями список не кешируется.
func TestSession_ReviewsNotCachedAcrossReopen(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.session.SelectMaterial(context.Background(), "binary-tree"))
	waitPane(t, e.session, paneLoaded)

	e.session.Back()

	require.NoError(t, e.session.SelectMaterial(context.Background(), "binary-tree"))
	waitPane(t, e.session, paneLoaded)

	require.Equal(t, []string{"binary-tree", "binary-tree"}, e.backend.calls())
}

// Неудачная загрузка отзывов: панель в состоянии ошибки, уведомление
// пользователю, повтор перезапускает загрузку.
func TestSession_ReviewLoadFailure(t *testing.T) {
	e := newEnv(t)

	e.backend.mu.Lock()
	e.backend.listErr["binary-tree"] = errors.New("backend down")
	e.backend.mu.Unlock()

	require.NoError(t, e.session.SelectMaterial(context.Background(), "binary-tree"))
	snap := waitPane(t, e.session, paneLoadFailed)
	require.NotEmpty(t, snap.Notices)
	require.Equal(t, NoticeError, snap.Notices[len(snap.Notices)-1].Kind)

	// Починили бэкенд — повтор загружает список.
	e.backend.mu.Lock()
	delete(e.backend.listErr, "binary-tree")
	e.backend.reviews["binary-tree"] = []models.Review{{ID: 7, MaterialID: "binary-tree", Rating: 5}}
	e.backend.mu.Unlock()

	require.NoError(t, e.session.ReloadReviews(context.Background()))
	snap = waitPane(t, e.session, paneLoaded)
	require.Len(t, snap.Reviews, 1)
}

// Порядок валидации отправки: аутентификация -> оценка -> текст.
// Каждое нарушение — одно предупреждение, бэкенд не вызывается.
func TestSession_SubmitReview_ValidationOrder(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.session.SelectMaterial(context.Background(), "binary-tree"))
	waitPane(t, e.session, paneLoaded)

	// 1) аноним: оценка и текст тоже невалидны, но предупреждение — про вход.
	e.identity.ok = false
	require.NoError(t, e.session.SubmitReview(context.Background(), "   ", 0))
	snap := e.session.Snapshot()
	require.Len(t, snap.Notices, 1)
	require.Equal(t, NoticeWarning, snap.Notices[0].Kind)
	require.Equal(t, "войдите, чтобы оставить отзыв", snap.Notices[0].Message)

	// 2) вход есть, оценка не выбрана: текст всё ещё пуст, предупреждение — про оценку.
	e.identity.ok = true
	require.NoError(t, e.session.SubmitReview(context.Background(), "   ", 0))
	snap = e.session.Snapshot()
	require.Len(t, snap.Notices, 1)
	require.Equal(t, "выберите оценку", snap.Notices[0].Message)

	// 3) оценка есть, текст после обрезки пуст.
	require.NoError(t, e.session.SubmitReview(context.Background(), " \n\t ", 4))
	snap = e.session.Snapshot()
	require.Len(t, snap.Notices, 1)
	require.Equal(t, "отзыв не может быть пустым", snap.Notices[0].Message)

	// Бэкенд не видел ни одной попытки создания.
	require.EqualValues(t, 1, e.backend.nextID)
}

// Успешная отправка: отзыв встаёт в начало списка без перезапроса,
// форма сбрасывается, приходит уведомление об успехе.
func TestSession_SubmitReview_OK(t *testing.T) {
	e := newEnv(t)

	e.backend.reviews["binary-tree"] = []models.Review{
		{ID: 1, MaterialID: "binary-tree", Text: "старый", Rating: 3},
	}

	require.NoError(t, e.session.SelectMaterial(context.Background(), "binary-tree"))
	waitPane(t, e.session, paneLoaded)

	require.NoError(t, e.session.SubmitReview(context.Background(), "  новый отзыв  ", 5))

	snap := e.session.Snapshot()
	require.Len(t, snap.Reviews, 2)
	// Новый отзыв первым, текст нормализован.
	require.Equal(t, "новый отзыв", snap.Reviews[0].Review.Text)
	require.Equal(t, "старый", snap.Reviews[1].Review.Text)
	// Форма сброшена.
	require.Empty(t, snap.Form.Text)
	require.Zero(t, snap.Form.Rating)
	// Список не перезапрашивался: одна загрузка на открытие карточки.
	require.Equal(t, []string{"binary-tree"}, e.backend.calls())
	// Средняя оценка пересчитана по загруженным отзывам: (3+5)/2 = 4.0.
	require.InDelta(t, 4.0, snap.AverageRating, 1e-9)

	var kinds []NoticeKind
	for _, n := range snap.Notices {
		kinds = append(kinds, n.Kind)
	}
	require.Contains(t, kinds, NoticeSuccess)
}

// Ошибка бэкенда при отправке: уведомление об ошибке, форма сохраняется
// для повторной попытки, список не меняется.
func TestSession_SubmitReview_BackendFailure(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.session.SelectMaterial(context.Background(), "binary-tree"))
	waitPane(t, e.session, paneLoaded)

	e.backend.mu.Lock()
	e.backend.createErr = errors.New("backend down")
	e.backend.mu.Unlock()

	require.NoError(t, e.session.SubmitReview(context.Background(), "текст отзыва", 4))

	snap := e.session.Snapshot()
	require.Empty(t, snap.Reviews)
	require.Equal(t, "текст отзыва", snap.Form.Text)
	require.EqualValues(t, 4, snap.Form.Rating)
	require.False(t, snap.Form.Submitting)
	require.NotEmpty(t, snap.Notices)
	require.Equal(t, NoticeError, snap.Notices[len(snap.Notices)-1].Kind)
}

// Пока отзывов нет, показывается базовая оценка материала.
func TestSession_AverageRatingFallback(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.session.SelectMaterial(context.Background(), "binary-tree"))
	snap := waitPane(t, e.session, paneLoaded)
	require.InDelta(t, 4.8, snap.AverageRating, 1e-9)
}

// Фильтры не теряются при заходе в карточку и возврате в список.
func TestSession_FiltersSurviveNavigation(t *testing.T) {
	e := newEnv(t)

	e.session.SetFilter("дерево", "algorithms")

	require.NoError(t, e.session.SelectMaterial(context.Background(), "binary-tree"))
	e.session.Back()

	snap := e.session.Snapshot()
	require.Equal(t, "дерево", snap.Query)
	require.Equal(t, "algorithms", snap.Category)
	require.Len(t, snap.Materials, 1)
	require.Equal(t, "binary-tree", snap.Materials[0].ID)
}
