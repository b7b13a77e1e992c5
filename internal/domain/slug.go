package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text and removes combining marks, so Yorùbá tone and
// under-dot marks fold to their base letters.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Slugify turns a title into a lowercase URL-safe slug:
//   - lowercases and trims the input
//   - replaces every whitespace run with a single hyphen
//   - folds diacritics to base letters
//   - drops every character outside [a-z0-9_-]
//   - collapses repeated hyphens
//
// Slugify(Slugify(s)) == Slugify(s) for every s.
func Slugify(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}
	s = strings.Join(strings.Fields(s), "-")

	folded, _, err := transform.String(stripMarks, s)
	if err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	prevHyphen := false
	for _, r := range s {
		switch {
		case r == '-':
			if prevHyphen {
				continue
			}
			prevHyphen = true
		case r == '_', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			prevHyphen = false
		default:
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ApplySlugs normalizes the slugs of a and fills any empty slug from the
// title of the same language, but only when that title differs from
// prevTitle. A nil prevTitle means the article is new and both titles count
// as changed.
func ApplySlugs(a *Article, prevTitle *Localized) {
	a.Slug.Yo = resolveSlug(a.Slug.Yo, a.Title.Yo, prevTitle == nil || prevTitle.Yo != a.Title.Yo)
	a.Slug.En = resolveSlug(a.Slug.En, a.Title.En, prevTitle == nil || prevTitle.En != a.Title.En)
}

func resolveSlug(slug, title string, titleChanged bool) string {
	slug = Slugify(slug)
	if slug == "" && titleChanged {
		return Slugify(title)
	}
	return slug
}
