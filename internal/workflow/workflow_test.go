package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom/internal/apperror"
	"pressroom/internal/models"
)

var (
	ana = Actor{Name: "Ana", Role: models.RoleReporter}
	bob = Actor{Name: "Bob", Role: models.RoleEditor}
)

func draft(state models.ArticleState) models.Article {
	created := time.Now().Add(-time.Hour)
	return models.Article{
		ID:         1,
		Title:      "X",
		Body:       "Y",
		AuthorName: "Ana",
		State:      state,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func strp(s string) *string { return &s }

func TestReporterLockedOutOfPublishedAndDeactivated(t *testing.T) {
	targets := []models.ArticleState{
		models.StateDrafting,
		models.StateTerminated,
		models.StatePublished,
		models.StateDeactivated,
	}
	for _, from := range []models.ArticleState{models.StatePublished, models.StateDeactivated} {
		for _, to := range targets {
			_, err := AttemptTransition(draft(from), ana, to)
			require.Error(t, err, "из %s в %s", from, to)
			assert.Equal(t, apperror.KindPermissionDenied, apperror.KindOf(err))
		}
	}
}

func TestUnknownPairsRejected(t *testing.T) {
	all := []models.ArticleState{
		models.StateDrafting,
		models.StateTerminated,
		models.StatePublished,
		models.StateDeactivated,
	}
	for _, from := range all {
		for _, to := range all {
			if from == to {
				continue
			}
			if _, ok := transitions[transition{from, to}]; ok {
				continue
			}
			_, err := AttemptTransition(draft(from), bob, to)
			require.Error(t, err, "из %s в %s", from, to)
			assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err))
		}
	}
}

func TestReporterCannotPublish(t *testing.T) {
	for _, from := range []models.ArticleState{models.StateDrafting, models.StateTerminated} {
		_, err := AttemptTransition(draft(from), ana, models.StatePublished)
		require.Error(t, err)
		assert.Equal(t, apperror.KindPermissionDenied, apperror.KindOf(err))
	}
}

func TestReporterCannotTouchForeignArticle(t *testing.T) {
	carla := Actor{Name: "Carla", Role: models.RoleReporter}
	_, err := AttemptTransition(draft(models.StateDrafting), carla, models.StateTerminated)
	require.Error(t, err)
	assert.Equal(t, apperror.KindPermissionDenied, apperror.KindOf(err))
}

func TestEditorCannotMarkTerminated(t *testing.T) {
	_, err := AttemptTransition(draft(models.StateDrafting), bob, models.StateTerminated)
	require.Error(t, err)
	assert.Equal(t, apperror.KindPermissionDenied, apperror.KindOf(err))
}

func TestPublishIsIdempotent(t *testing.T) {
	a := draft(models.StatePublished)

	once, err := AttemptTransition(a, bob, models.StatePublished)
	require.NoError(t, err)
	assert.Equal(t, a, once, "повторная публикация не меняет статью")

	twice, err := AttemptTransition(once, bob, models.StatePublished)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestUnknownTargetState(t *testing.T) {
	_, err := AttemptTransition(draft(models.StateDrafting), bob, models.ArticleState("archived"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err))
}

func TestEditValidationAppliesToEditorToo(t *testing.T) {
	for _, actor := range []Actor{ana, bob} {
		_, err := AttemptEdit(draft(models.StateDrafting), actor, models.ArticlePatch{Title: strp("  ")})
		require.Error(t, err, "актор %s", actor.Role)
		assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))

		_, err = AttemptEdit(draft(models.StateDrafting), actor, models.ArticlePatch{Body: strp("")})
		require.Error(t, err, "актор %s", actor.Role)
		assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
	}
}

func TestEditKeepsStateAndRefreshesUpdatedAt(t *testing.T) {
	a := draft(models.StateTerminated)

	out, err := AttemptEdit(a, ana, models.ArticlePatch{Title: strp("новый заголовок")})
	require.NoError(t, err)
	assert.Equal(t, models.StateTerminated, out.State, "правка не меняет состояние")
	assert.Equal(t, "новый заголовок", out.Title)
	assert.True(t, out.UpdatedAt.After(a.UpdatedAt))
	assert.Equal(t, a.CreatedAt, out.CreatedAt)
}

func TestEditorOverrideEditsAnyState(t *testing.T) {
	for _, state := range []models.ArticleState{models.StatePublished, models.StateDeactivated} {
		out, err := AttemptEdit(draft(state), bob, models.ArticlePatch{Subtitle: strp("правка редактора")})
		require.NoError(t, err)
		assert.Equal(t, state, out.State)
	}
}

func TestNewArticle(t *testing.T) {
	a, err := NewArticle(ana, models.CreateArticleRequest{Title: "X", Body: "Y"})
	require.NoError(t, err)
	assert.Equal(t, models.StateDrafting, a.State)
	assert.Equal(t, "Ana", a.AuthorName)
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)

	_, err = NewArticle(ana, models.CreateArticleRequest{Title: "", Body: "Y"})
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))

	_, err = NewArticle(bob, models.CreateArticleRequest{Title: "X", Body: "Y"})
	assert.Equal(t, apperror.KindPermissionDenied, apperror.KindOf(err))
}

func TestDeleteSectionGuard(t *testing.T) {
	sec := models.Section{ID: 3, Name: "Deportes"}

	err := AttemptDeleteSection(sec, 2)
	require.Error(t, err)
	assert.Equal(t, apperror.KindSectionInUse, apperror.KindOf(err))

	assert.NoError(t, AttemptDeleteSection(sec, 0))
}

// Полный сценарий: Ana пишет, отдаёт на проверку, Bob публикует и снимает,
// после чего Ana больше не может править.
func TestFullLifecycle(t *testing.T) {
	a, err := NewArticle(ana, models.CreateArticleRequest{Title: "X", Body: "Y"})
	require.NoError(t, err)
	require.Equal(t, models.StateDrafting, a.State)
	require.Equal(t, "Ana", a.AuthorName)

	a, err = AttemptTransition(a, ana, models.StateTerminated)
	require.NoError(t, err)
	require.Equal(t, models.StateTerminated, a.State)

	a, err = AttemptTransition(a, bob, models.StatePublished)
	require.NoError(t, err)
	require.Equal(t, models.StatePublished, a.State)
	assert.True(t, a.UpdatedAt.After(a.CreatedAt))

	a, err = AttemptTransition(a, bob, models.StateDeactivated)
	require.NoError(t, err)
	require.Equal(t, models.StateDeactivated, a.State)

	_, err = AttemptEdit(a, ana, models.ArticlePatch{Body: strp("Z")})
	require.Error(t, err)
	assert.Equal(t, apperror.KindPermissionDenied, apperror.KindOf(err))
}
