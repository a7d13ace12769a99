package services

import (
	"context"
	"testing"
	"time"

	"pressroom/internal/apperror"
	"pressroom/internal/models"
)

func seedFeedArticle(repo *mockArticleRepo, title string, state models.ArticleState, sectionID *int, createdAgo time.Duration, featured bool) *models.Article {
	a := &models.Article{
		Title:      title,
		Body:       "<p>Текст</p>",
		AuthorName: reporterAna.Name,
		SectionID:  sectionID,
		Featured:   featured,
		State:      state,
		CreatedAt:  time.Now().Add(-createdAgo),
		UpdatedAt:  time.Now().Add(-createdAgo),
	}
	created, _ := repo.Create(context.Background(), a)
	return created
}

func intp(i int) *int { return &i }

// Лента показывает только опубликованное из активных разделов,
// свежие первыми. Черновик, статья неактивного раздела и статья
// без раздела в выдачу не попадают.
func TestFeedList_PublishedActiveSectionsNewestFirst(t *testing.T) {
	repo := newMockArticleRepo()
	repo.sections[1] = models.Section{ID: 1, Name: "Спорт", IsActive: true}
	repo.sections[2] = models.Section{ID: 2, Name: "Архив", IsActive: false}

	seedFeedArticle(repo, "Старая", models.StatePublished, intp(1), 3*time.Hour, false)
	seedFeedArticle(repo, "Черновик", models.StateDrafting, intp(1), 2*time.Hour, false)
	seedFeedArticle(repo, "Из архива", models.StatePublished, intp(2), 90*time.Minute, false)
	seedFeedArticle(repo, "Без раздела", models.StatePublished, nil, time.Hour, false)
	seedFeedArticle(repo, "Свежая", models.StatePublished, intp(1), 10*time.Minute, false)

	items, err := NewFeedService(repo).List(context.Background(), models.FeedFilter{})
	if err != nil {
		t.Fatalf("ошибка ленты: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("ожидались 2 статьи, получено %d", len(items))
	}
	if items[0].Title != "Свежая" || items[1].Title != "Старая" {
		t.Fatalf("нарушен порядок: %q, %q", items[0].Title, items[1].Title)
	}
	for _, it := range items {
		if it.State != models.StatePublished {
			t.Fatalf("в ленте неопубликованная статья: %q (%s)", it.Title, it.State)
		}
		if it.SectionName != "Спорт" {
			t.Fatalf("имя раздела не разрешено: %q", it.SectionName)
		}
	}
}

func TestFeedList_Filters(t *testing.T) {
	repo := newMockArticleRepo()
	repo.sections[1] = models.Section{ID: 1, Name: "Спорт", IsActive: true}
	repo.sections[2] = models.Section{ID: 2, Name: "Культура", IsActive: true}

	seedFeedArticle(repo, "Матч", models.StatePublished, intp(1), 2*time.Hour, true)
	seedFeedArticle(repo, "Турнир", models.StatePublished, intp(1), time.Hour, false)
	seedFeedArticle(repo, "Премьера", models.StatePublished, intp(2), 30*time.Minute, false)

	service := NewFeedService(repo)

	featured, err := service.List(context.Background(), models.FeedFilter{FeaturedOnly: true})
	if err != nil {
		t.Fatalf("ошибка ленты: %v", err)
	}
	if len(featured) != 1 || featured[0].Title != "Матч" {
		t.Fatalf("фильтр featured отработал неверно: %+v", featured)
	}
	if !repo.lastFilter.FeaturedOnly {
		t.Fatalf("фильтр не дошёл до репозитория: %+v", repo.lastFilter)
	}

	sport, err := service.List(context.Background(), models.FeedFilter{SectionName: "Спорт"})
	if err != nil {
		t.Fatalf("ошибка ленты: %v", err)
	}
	if len(sport) != 2 {
		t.Fatalf("по разделу ожидались 2 статьи, получено %d", len(sport))
	}
	for _, it := range sport {
		if it.SectionName != "Спорт" {
			t.Fatalf("чужой раздел в выдаче: %q", it.SectionName)
		}
	}
}

func TestFeedGet_HiddenOutsideActiveSections(t *testing.T) {
	repo := newMockArticleRepo()
	repo.sections[1] = models.Section{ID: 1, Name: "Архив", IsActive: false}

	archived := seedFeedArticle(repo, "Из архива", models.StatePublished, intp(1), time.Hour, false)
	draft := seedFeedArticle(repo, "Черновик", models.StateDrafting, intp(1), time.Hour, false)

	service := NewFeedService(repo)
	for _, id := range []int64{archived.ID, draft.ID, 999} {
		_, err := service.GetByID(context.Background(), id)
		if !apperror.Is(err, apperror.KindNotFound) {
			t.Fatalf("статья %d не должна быть видна публично, получено: %v", id, err)
		}
	}
}

func TestFeedGet_Published(t *testing.T) {
	repo := newMockArticleRepo()
	repo.sections[1] = models.Section{ID: 1, Name: "Спорт", IsActive: true}
	a := seedFeedArticle(repo, "Матч", models.StatePublished, intp(1), time.Hour, false)

	item, err := NewFeedService(repo).GetByID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("ошибка получения: %v", err)
	}
	if item.Title != "Матч" || item.SectionName != "Спорт" {
		t.Fatalf("неожиданная статья: %+v", item)
	}
}
