package services

import (
	"context"
	"testing"

	"pressroom/internal/apperror"
	"pressroom/internal/models"
)

// Мок-репозиторий разделов
type mockSectionRepo struct {
	sections    map[int]*models.Section
	nextID      int
	deleteCalls int
}

func newMockSectionRepo() *mockSectionRepo {
	return &mockSectionRepo{sections: make(map[int]*models.Section), nextID: 1}
}

func (m *mockSectionRepo) Create(_ context.Context, s *models.Section) (int, error) {
	cp := *s
	cp.ID = m.nextID
	m.nextID++
	m.sections[cp.ID] = &cp
	return cp.ID, nil
}

func (m *mockSectionRepo) Update(_ context.Context, s *models.Section) error {
	if _, ok := m.sections[s.ID]; !ok {
		return apperror.New(apperror.KindNotFound, "раздел не найден")
	}
	cp := *s
	m.sections[s.ID] = &cp
	return nil
}

func (m *mockSectionRepo) SetActive(_ context.Context, id int, active bool) error {
	s, ok := m.sections[id]
	if !ok {
		return apperror.New(apperror.KindNotFound, "раздел не найден")
	}
	s.IsActive = active
	return nil
}

func (m *mockSectionRepo) Delete(_ context.Context, id int) error {
	m.deleteCalls++
	if _, ok := m.sections[id]; !ok {
		return apperror.New(apperror.KindNotFound, "раздел не найден")
	}
	delete(m.sections, id)
	return nil
}

func (m *mockSectionRepo) GetByID(_ context.Context, id int) (*models.Section, error) {
	s, ok := m.sections[id]
	if !ok {
		return nil, apperror.New(apperror.KindNotFound, "раздел не найден")
	}
	cp := *s
	return &cp, nil
}

func (m *mockSectionRepo) List(_ context.Context, onlyActive bool) ([]*models.Section, error) {
	var list []*models.Section
	for _, s := range m.sections {
		if onlyActive && !s.IsActive {
			continue
		}
		cp := *s
		list = append(list, &cp)
	}
	return list, nil
}

func (m *mockSectionRepo) ListWithCounts(_ context.Context) ([]models.SectionWithCount, error) {
	return nil, nil
}

func TestSectionDelete_BlockedWhileInUse(t *testing.T) {
	sections := newMockSectionRepo()
	articles := newMockArticleRepo()
	service := NewSectionService(sections, articles)

	id, _ := sections.Create(context.Background(), &models.Section{Name: "Политика", IsActive: true})
	a := seedArticle(articles, reporterAna.Name, models.StateDrafting)
	a.SectionID = &id
	articles.articles[a.ID] = a

	err := service.Delete(context.Background(), id)
	if !apperror.Is(err, apperror.KindSectionInUse) {
		t.Fatalf("ожидался отказ SectionInUse, получено: %v", err)
	}
	if sections.deleteCalls != 0 {
		t.Fatal("репозиторий не должен вызываться при отказе")
	}
	if _, ok := sections.sections[id]; !ok {
		t.Fatal("раздел не должен исчезать")
	}
}

func TestSectionDelete_EmptySection(t *testing.T) {
	sections := newMockSectionRepo()
	articles := newMockArticleRepo()
	service := NewSectionService(sections, articles)

	id, _ := sections.Create(context.Background(), &models.Section{Name: "Спорт", IsActive: true})

	if err := service.Delete(context.Background(), id); err != nil {
		t.Fatalf("пустой раздел должен удаляться: %v", err)
	}
	if _, ok := sections.sections[id]; ok {
		t.Fatal("раздел не удалён")
	}
}

func TestSectionToggle(t *testing.T) {
	sections := newMockSectionRepo()
	service := NewSectionService(sections, newMockArticleRepo())

	id, _ := sections.Create(context.Background(), &models.Section{Name: "Культура", IsActive: true})

	sec, err := service.Toggle(context.Background(), id)
	if err != nil {
		t.Fatalf("ошибка переключения: %v", err)
	}
	if sec.IsActive {
		t.Fatal("раздел должен стать неактивным")
	}
	if sections.sections[id].IsActive {
		t.Fatal("переключение не сохранено")
	}

	sec, err = service.Toggle(context.Background(), id)
	if err != nil {
		t.Fatalf("ошибка обратного переключения: %v", err)
	}
	if !sec.IsActive {
		t.Fatal("раздел должен снова стать активным")
	}
}

func TestSectionToggle_NotFound(t *testing.T) {
	service := NewSectionService(newMockSectionRepo(), newMockArticleRepo())

	_, err := service.Toggle(context.Background(), 99)
	if !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("ожидался NotFound, получено: %v", err)
	}
}
