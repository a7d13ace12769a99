package models

import "time"

// ArticleState — состояние жизненного цикла новости.
type ArticleState string

const (
	StateDrafting    ArticleState = "drafting"
	StateTerminated  ArticleState = "terminated"
	StatePublished   ArticleState = "published"
	StateDeactivated ArticleState = "deactivated"
)

func (s ArticleState) Valid() bool {
	switch s {
	case StateDrafting, StateTerminated, StatePublished, StateDeactivated:
		return true
	}
	return false
}

type Article struct {
	ID         int64        `db:"id"          json:"id"`
	Title      string       `db:"title"       json:"title"`
	Subtitle   string       `db:"subtitle"    json:"subtitle,omitempty"`
	Body       string       `db:"body"        json:"body"`
	AuthorName string       `db:"author_name" json:"authorName"`
	SectionID  *int         `db:"section_id"  json:"sectionId,omitempty"`
	ImageURL   string       `db:"image_url"   json:"imageUrl,omitempty"`
	Featured   bool         `db:"featured"    json:"featured"`
	State      ArticleState `db:"state"       json:"state"`
	CreatedAt  time.Time    `db:"created_at"  json:"createdAt"`
	UpdatedAt  time.Time    `db:"updated_at"  json:"updatedAt"`
}

// swagger:model CreateArticleRequest
type CreateArticleRequest struct {
	Title     string `json:"title"    example:"Заголовок новости"`
	Subtitle  string `json:"subtitle" example:"Подзаголовок"`
	Body      string `json:"body"     example:"<p>Текст новости</p>"`
	SectionID *int   `json:"sectionId,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Featured  bool   `json:"featured"`
}

// ArticlePatch — частичное обновление полей; nil означает «не менять».
type ArticlePatch struct {
	Title     *string `json:"title,omitempty"`
	Subtitle  *string `json:"subtitle,omitempty"`
	Body      *string `json:"body,omitempty"`
	SectionID *int    `json:"sectionId,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	Featured  *bool   `json:"featured,omitempty"`
}

// FeedItem — статья публичной ленты с уже разрешённым именем раздела.
type FeedItem struct {
	Article
	SectionName string `json:"sectionName,omitempty"`
}

// FeedFilter — фильтр публичной ленты.
type FeedFilter struct {
	FeaturedOnly bool
	SectionName  string // пусто = все разделы
}
