package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type PageOptions struct {
	DefaultPerPage int
	MaxPerPage     int
}

var (
	DefaultPageOpts = PageOptions{DefaultPerPage: 25, MaxPerPage: 200}
	TeacherPageOpts = PageOptions{DefaultPerPage: 50, MaxPerPage: 500}
)

type PageParams struct {
	Page      int
	PerPage   int
	SortOrder string // asc|desc
}

// ParsePage reads page/per_page/sort from the query string with clamping.
func ParsePage(c *fiber.Ctx, defaultSortOrder string) PageParams {
	return ParsePageWith(c, defaultSortOrder, DefaultPageOpts)
}

func ParsePageWith(c *fiber.Ctx, defaultSortOrder string, opt PageOptions) PageParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	per := opt.DefaultPerPage
	perRaw := strings.TrimSpace(firstNonEmpty(c.Query("per_page"), c.Query("limit")))
	if n, err := strconv.Atoi(perRaw); err == nil && n > 0 {
		per = n
	}
	if per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}
	if per < 1 {
		per = opt.DefaultPerPage
	}

	order := strings.ToLower(strings.TrimSpace(c.Query("sort")))
	if order != "asc" && order != "desc" {
		order = defaultSortOrder
	}

	return PageParams{Page: page, PerPage: per, SortOrder: order}
}

func (p PageParams) Offset() int { return (p.Page - 1) * p.PerPage }

type PageMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func BuildPageMeta(p PageParams, total int64) PageMeta {
	pages := int(math.Ceil(float64(total) / float64(p.PerPage)))
	if pages < 1 {
		pages = 1
	}
	return PageMeta{Page: p.Page, PerPage: p.PerPage, Total: total, TotalPages: pages}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
