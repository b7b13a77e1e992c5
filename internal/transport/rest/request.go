package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/article"
)

// maxBodyBytes caps request bodies. Article content is the largest payload.
const maxBodyBytes = 1 << 20

var errInvalidRef = errors.New("invalid reference id")

// decodeJSON decodes the request body into v and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, errInvalidRef) {
			writeError(w, http.StatusBadRequest, errInvalidRef.Error())
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathID parses the {name} path value as a UUID.
func pathID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// listParams reads the article listing parameters from the query string.
// Unparseable numbers count as absent.
func listParams(q url.Values) article.ListParams {
	return article.ListParams{
		Page:     atoi(q.Get("page")),
		Limit:    atoi(q.Get("limit")),
		Status:   q.Get("status"),
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Author:   q.Get("author"),
		Topic:    q.Get("topic"),
		Sort:     q.Get("sort"),
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// optionalRef is a JSON reference field that distinguishes "absent" from
// "cleared" (null or "") and from a given ID.
type optionalRef struct {
	Set   bool
	Clear bool
	ID    *uuid.UUID
}

func (o *optionalRef) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Clear = true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		o.Clear = true
		return nil
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return errInvalidRef
	}
	o.ID = &id
	return nil
}

// articleRequest is the body of article create and update requests.
// Pointer fields are absent when nil.
type articleRequest struct {
	Title         *domain.Localized   `json:"title"`
	Content       *domain.Localized   `json:"content"`
	Slug          *domain.Localized   `json:"slug"`
	Category      *string             `json:"category"`
	Topic         optionalRef         `json:"topic"`
	Status        *string             `json:"status"`
	Tags          *[]domain.Localized `json:"tags"`
	FeaturedImage *string             `json:"featuredImage"`
	Images        *[]string           `json:"images"`
	AudioURL      *string             `json:"audioUrl"`
	VideoURL      *string             `json:"videoUrl"`
	ReadTime      *int                `json:"readTime"`
}

func (req articleRequest) createInput() article.CreateInput {
	in := article.CreateInput{
		Title:         deref(req.Title),
		Content:       deref(req.Content),
		Slug:          deref(req.Slug),
		Category:      domain.Category(deref(req.Category)),
		TopicID:       req.Topic.ID,
		Status:        domain.ArticleStatus(deref(req.Status)),
		FeaturedImage: deref(req.FeaturedImage),
		AudioURL:      deref(req.AudioURL),
		VideoURL:      deref(req.VideoURL),
		ReadTime:      deref(req.ReadTime),
	}
	if req.Tags != nil {
		in.Tags = *req.Tags
	}
	if req.Images != nil {
		in.Images = *req.Images
	}
	return in
}

func (req articleRequest) updateInput() article.UpdateInput {
	in := article.UpdateInput{
		Title:         req.Title,
		Content:       req.Content,
		Slug:          req.Slug,
		TopicID:       req.Topic.ID,
		ClearTopic:    req.Topic.Clear,
		Tags:          req.Tags,
		FeaturedImage: req.FeaturedImage,
		Images:        req.Images,
		AudioURL:      req.AudioURL,
		VideoURL:      req.VideoURL,
		ReadTime:      req.ReadTime,
	}
	if req.Category != nil {
		c := domain.Category(*req.Category)
		in.Category = &c
	}
	if req.Status != nil {
		s := domain.ArticleStatus(*req.Status)
		in.Status = &s
	}
	return in
}

// topicRequest is the body of topic create and update requests.
type topicRequest struct {
	Name        *domain.Localized `json:"name"`
	Category    *string           `json:"category"`
	Description *domain.Localized `json:"description"`
	Icon        *string           `json:"icon"`
	Color       *string           `json:"color"`
	ParentTopic optionalRef       `json:"parentTopic"`
	IsFeatured  *bool             `json:"isFeatured"`
	Order       *int              `json:"order"`
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
