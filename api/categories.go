package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// CategoryType narrows the public categories listing
type CategoryType string

const (
	CategoryTypeAge       CategoryType = "age"
	CategoryTypeEducation CategoryType = "education"
)

// GetPublicCategories retrieves the normalized public category listing,
// optionally narrowed to one type
func (c *Client) GetPublicCategories(ctx context.Context, categoryType CategoryType) (*PublicCategories, error) {
	path := CategoriesPath
	if categoryType == CategoryTypeAge || categoryType == CategoryTypeEducation {
		path += "?type=" + string(categoryType)
	}

	var raw interface{}
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	return normalizePublicCategories(raw), nil
}

// AdminListParams filters admin category listings
type AdminListParams struct {
	Query string
	Page  int
	Limit int
}

func (p AdminListParams) query() string {
	q := url.Values{}

	if search := strings.TrimSpace(p.Query); search != "" {
		q.Set("q", search)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}

	if encoded := q.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

// AdminListAgeCategories retrieves a page of age categories
func (c *Client) AdminListAgeCategories(ctx context.Context, params AdminListParams) (*AgeCategoryList, error) {
	var list AgeCategoryList
	if err := c.get(ctx, AdminAgeCategoriesBase+params.query(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// AdminCreateAgeCategory creates an age category
func (c *Client) AdminCreateAgeCategory(ctx context.Context, req *CreateAgeCategoryRequest) (*AgeCategory, error) {
	if req == nil {
		return nil, fmt.Errorf("request body is required")
	}

	var created AgeCategory
	if err := c.post(ctx, AdminAgeCategoriesBase, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AdminUpdateAgeCategory applies a partial update to an age category
func (c *Client) AdminUpdateAgeCategory(ctx context.Context, id int64, req *UpdateAgeCategoryRequest) (*AgeCategory, error) {
	if id < 1 {
		return nil, fmt.Errorf("category id must be >= 1")
	}
	if req == nil {
		return nil, fmt.Errorf("request body is required")
	}

	var updated AgeCategory
	if err := c.put(ctx, AdminAgeCategoryPath(id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AdminDeleteAgeCategory deletes an age category
func (c *Client) AdminDeleteAgeCategory(ctx context.Context, id int64) error {
	if id < 1 {
		return fmt.Errorf("category id must be >= 1")
	}
	return c.del(ctx, AdminAgeCategoryPath(id), nil)
}

// AdminListEducationCategories retrieves a page of education categories
func (c *Client) AdminListEducationCategories(ctx context.Context, params AdminListParams) (*EducationCategoryList, error) {
	var list EducationCategoryList
	if err := c.get(ctx, AdminEducationCategoriesBase+params.query(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// AdminCreateEducationCategory creates an education category
func (c *Client) AdminCreateEducationCategory(ctx context.Context, req *CreateEducationCategoryRequest) (*EducationCategory, error) {
	if req == nil {
		return nil, fmt.Errorf("request body is required")
	}

	var created EducationCategory
	if err := c.post(ctx, AdminEducationCategoriesBase, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AdminUpdateEducationCategory renames an education category
func (c *Client) AdminUpdateEducationCategory(ctx context.Context, id int64, req *UpdateEducationCategoryRequest) (*EducationCategory, error) {
	if id < 1 {
		return nil, fmt.Errorf("category id must be >= 1")
	}
	if req == nil {
		return nil, fmt.Errorf("request body is required")
	}

	var updated EducationCategory
	if err := c.put(ctx, AdminEducationCategoryPath(id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AdminDeleteEducationCategory deletes an education category
func (c *Client) AdminDeleteEducationCategory(ctx context.Context, id int64) error {
	if id < 1 {
		return fmt.Errorf("category id must be >= 1")
	}
	return c.del(ctx, AdminEducationCategoryPath(id), nil)
}
