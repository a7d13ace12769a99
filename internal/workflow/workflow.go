// Package workflow — чистая логика жизненного цикла новости.
// Никакого хранилища и HTTP: на вход статья, актор и желаемое состояние,
// на выход новая версия статьи либо ошибка из apperror.
// Сохранение результата — забота вызывающего слоя.
package workflow

import (
	"fmt"
	"strings"
	"time"

	"pressroom/internal/apperror"
	"pressroom/internal/models"
)

// Actor — явный контекст вызова: кто и в какой роли действует.
type Actor struct {
	Name string
	Role models.Role
}

type transition struct {
	from, to models.ArticleState
}

// Таблица допустимых переходов и роль, которой каждый разрешён.
// Drafting → Published разрешён редактору напрямую, без ожидания
// Terminated.
var transitions = map[transition]models.Role{
	{models.StateDrafting, models.StateTerminated}:   models.RoleReporter,
	{models.StateDrafting, models.StatePublished}:    models.RoleEditor,
	{models.StateTerminated, models.StatePublished}:  models.RoleEditor,
	{models.StatePublished, models.StateDeactivated}: models.RoleEditor,
	{models.StateDeactivated, models.StatePublished}: models.RoleEditor,
}

// AttemptTransition проверяет переход article.State → target для актора
// и возвращает копию статьи в новом состоянии с обновлённым UpdatedAt.
// Повторный перевод в то же состояние — no-op: статья возвращается как есть.
func AttemptTransition(article models.Article, actor Actor, target models.ArticleState) (models.Article, error) {
	if !target.Valid() {
		return article, apperror.New(apperror.KindInvalidTransition,
			fmt.Sprintf("неизвестное состояние %q", target))
	}
	if !actor.Role.Valid() {
		return article, apperror.New(apperror.KindPermissionDenied,
			fmt.Sprintf("неизвестная роль %q", actor.Role))
	}

	// Репортёр больше не распоряжается опубликованной или снятой статьёй,
	// какое бы состояние он ни запрашивал.
	if actor.Role == models.RoleReporter &&
		(article.State == models.StatePublished || article.State == models.StateDeactivated) {
		return article, apperror.New(apperror.KindPermissionDenied,
			"статья уже опубликована или снята: репортёру действие запрещено")
	}

	// Репортёр действует только над собственными статьями.
	if actor.Role == models.RoleReporter && article.AuthorName != actor.Name {
		return article, apperror.New(apperror.KindPermissionDenied,
			"репортёр может менять только свои статьи")
	}

	if article.State == target {
		return article, nil
	}

	required, ok := transitions[transition{article.State, target}]
	if !ok {
		return article, apperror.New(apperror.KindInvalidTransition,
			fmt.Sprintf("переход %s → %s невозможен", article.State, target))
	}
	if actor.Role != required {
		return article, apperror.New(apperror.KindPermissionDenied,
			fmt.Sprintf("переход %s → %s доступен только роли %s", article.State, target, required))
	}

	out := article
	out.State = target
	out.UpdatedAt = time.Now()
	return out, nil
}

// AttemptEdit применяет частичное обновление полей без смены состояния.
// Редактор правит всегда (административный override); автор-репортёр —
// только пока статья в Drafting или Terminated. Обязательность
// заголовка и текста перепроверяется для всех, включая редактора.
func AttemptEdit(article models.Article, actor Actor, patch models.ArticlePatch) (models.Article, error) {
	if !actor.Role.Valid() {
		return article, apperror.New(apperror.KindPermissionDenied,
			fmt.Sprintf("неизвестная роль %q", actor.Role))
	}

	if actor.Role == models.RoleReporter {
		if article.AuthorName != actor.Name {
			return article, apperror.New(apperror.KindPermissionDenied,
				"репортёр может править только свои статьи")
		}
		if article.State != models.StateDrafting && article.State != models.StateTerminated {
			return article, apperror.New(apperror.KindPermissionDenied,
				"статья уже опубликована или снята: правка автору запрещена")
		}
	}

	out := article
	if patch.Title != nil {
		out.Title = *patch.Title
	}
	if patch.Subtitle != nil {
		out.Subtitle = *patch.Subtitle
	}
	if patch.Body != nil {
		out.Body = *patch.Body
	}
	if patch.SectionID != nil {
		out.SectionID = patch.SectionID
	}
	if patch.ImageURL != nil {
		out.ImageURL = *patch.ImageURL
	}
	if patch.Featured != nil {
		out.Featured = *patch.Featured
	}

	if err := validateRequired(out.Title, out.Body); err != nil {
		return article, err
	}

	out.UpdatedAt = time.Now()
	return out, nil
}

// NewArticle создаёт статью в состоянии Drafting от имени репортёра.
// AuthorName фиксируется при создании и далее не переназначается.
func NewArticle(actor Actor, req models.CreateArticleRequest) (models.Article, error) {
	if actor.Role != models.RoleReporter {
		return models.Article{}, apperror.New(apperror.KindPermissionDenied,
			"создавать статьи может только репортёр")
	}
	if err := validateRequired(req.Title, req.Body); err != nil {
		return models.Article{}, err
	}

	now := time.Now()
	return models.Article{
		Title:      strings.TrimSpace(req.Title),
		Subtitle:   req.Subtitle,
		Body:       req.Body,
		AuthorName: actor.Name,
		SectionID:  req.SectionID,
		ImageURL:   req.ImageURL,
		Featured:   req.Featured,
		State:      models.StateDrafting,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// AttemptDeleteSection — ссылочный барьер: раздел с привязанными
// статьями удалить нельзя.
func AttemptDeleteSection(section models.Section, articleCount int) error {
	if articleCount > 0 {
		return apperror.New(apperror.KindSectionInUse,
			fmt.Sprintf("раздел %q используется статьями (%d), удаление запрещено", section.Name, articleCount))
	}
	return nil
}

func validateRequired(title, body string) error {
	if strings.TrimSpace(title) == "" {
		return apperror.New(apperror.KindValidationFailed, "заголовок обязателен")
	}
	if strings.TrimSpace(body) == "" {
		return apperror.New(apperror.KindValidationFailed, "текст статьи обязателен")
	}
	return nil
}
