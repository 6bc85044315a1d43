package api

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
)

// The public catalog endpoints are served from mixed upstream sources and
// are not consistent about field casing. These helpers coerce raw rows
// field by field instead of trusting any particular shape.

func asRow(v interface{}) map[string]interface{} {
	row, ok := v.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return row
}

func pickField(row map[string]interface{}, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := row[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func intField(row map[string]interface{}, keys ...string) (int64, bool) {
	v, ok := pickField(row, keys...)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}

func textField(row map[string]interface{}, keys ...string) string {
	v, ok := pickField(row, keys...)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func boolField(row map[string]interface{}, keys ...string) bool {
	v, ok := pickField(row, keys...)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func listField(row map[string]interface{}, keys ...string) []interface{} {
	v, ok := pickField(row, keys...)
	if !ok {
		return nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	return list
}

func idListField(row map[string]interface{}, keys ...string) []int64 {
	var ids []int64
	for _, item := range listField(row, keys...) {
		switch n := item.(type) {
		case float64:
			if id := int64(n); id >= 1 {
				ids = append(ids, id)
			}
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if err == nil {
				if id := int64(f); id >= 1 {
					ids = append(ids, id)
				}
			}
		}
	}
	return ids
}

func timeField(row map[string]interface{}, keys ...string) time.Time {
	raw := textField(row, keys...)
	if raw == "" {
		return time.Time{}
	}
	dt, err := strfmt.ParseDateTime(raw)
	if err != nil {
		return time.Time{}
	}
	return time.Time(dt)
}

func normalizeEducationRefs(list []interface{}) []EducationCategoryRef {
	var refs []EducationCategoryRef
	for _, item := range list {
		row := asRow(item)
		id, ok := intField(row, "id", "ID", "Id")
		name := textField(row, "name", "Name")
		if !ok || id < 1 || name == "" {
			continue
		}
		refs = append(refs, EducationCategoryRef{ID: id, Name: name})
	}
	return refs
}

func normalizeGame(v interface{}) Game {
	row := asRow(v)

	id, _ := intField(row, "id", "ID")
	ageCategoryID, _ := intField(row, "age_category_id", "ageCategoryId", "AgeCategoryID")
	minAge, _ := intField(row, "min_age", "minAge", "MinAge")
	maxAge, _ := intField(row, "max_age", "maxAge", "MaxAge")
	playCount, _ := intField(row, "play_count", "playCount", "Plays")

	return Game{
		ID:               id,
		Title:            textField(row, "title", "Title"),
		Slug:             textField(row, "slug", "Slug"),
		Thumbnail:        textField(row, "thumbnail", "Thumbnail"),
		GameURL:          textField(row, "game_url", "gameUrl", "GameURL"),
		Icon:             textField(row, "icon", "Icon"),
		AgeCategoryID:    ageCategoryID,
		AgeRating:        textField(row, "age_rating", "ageRating", "AgeRating"),
		AgeLabel:         textField(row, "age_label", "ageLabel", "AgeLabel"),
		AgeCategoryLabel: textField(row, "age_category_label", "ageCategoryLabel", "AgeCategoryLabel"),
		MinAge:           minAge,
		MaxAge:           maxAge,
		EducationCategoryIDs: idListField(row,
			"education_category_ids", "educationCategoryIds", "EducationCategoryIDs"),
		EducationCategories: normalizeEducationRefs(listField(row,
			"education_categories", "educationCategories", "EducationCategories")),
		PlayCount: playCount,
		Free:      boolField(row, "free", "Free"),
		CreatedAt: timeField(row, "created_at", "createdAt", "CreatedAt"),
	}
}

func normalizeGameList(v interface{}) *GameList {
	row := asRow(v)

	list := &GameList{Page: 1, Limit: 24}
	if page, ok := intField(row, "page"); ok {
		list.Page = int(page)
	}
	if limit, ok := intField(row, "limit"); ok {
		list.Limit = int(limit)
	}
	if total, ok := intField(row, "total"); ok {
		list.Total = int(total)
	}

	items := listField(row, "items")
	list.Items = make([]Game, 0, len(items))
	for _, item := range items {
		list.Items = append(list.Items, normalizeGame(item))
	}

	return list
}

func normalizeAgeCategories(list []interface{}) []AgeCategory {
	var out []AgeCategory
	for _, item := range list {
		row := asRow(item)
		id, ok := intField(row, "id", "ID")
		if !ok || id < 1 {
			continue
		}
		minAge, _ := intField(row, "min_age", "minAge", "MinAge")
		maxAge, _ := intField(row, "max_age", "maxAge", "MaxAge")
		out = append(out, AgeCategory{
			ID:        id,
			Label:     textField(row, "label", "Label"),
			MinAge:    minAge,
			MaxAge:    maxAge,
			CreatedAt: textField(row, "created_at", "createdAt", "CreatedAt"),
		})
	}
	return out
}

func normalizeEducationCategories(list []interface{}) []EducationCategory {
	var out []EducationCategory
	for _, item := range list {
		row := asRow(item)
		id, ok := intField(row, "id", "ID")
		if !ok || id < 1 {
			continue
		}
		out = append(out, EducationCategory{
			ID:        id,
			Name:      textField(row, "name", "Name"),
			CreatedAt: textField(row, "created_at", "createdAt", "CreatedAt"),
		})
	}
	return out
}

func normalizePublicCategories(v interface{}) *PublicCategories {
	row := asRow(v)
	return &PublicCategories{
		AgeCategories:       normalizeAgeCategories(listField(row, "age_categories", "ageCategories")),
		EducationCategories: normalizeEducationCategories(listField(row, "education_categories", "educationCategories")),
	}
}
