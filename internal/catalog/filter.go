package catalog

import (
	"coder_edu_frontend/internal/model"
	"coder_edu_frontend/internal/util"
	"fmt"
	"net/url"
	"strings"
)

type PriceFilter string

const (
	PriceAny  PriceFilter = ""
	PriceFree PriceFilter = "free"
	PricePaid PriceFilter = "paid"
)

// Filter 各维度之间是 AND；某个维度为空表示不限制
type Filter struct {
	Levels      []model.CourseLevel `json:"levels,omitempty"`
	CategoryIDs []uint              `json:"category_ids,omitempty"`
	Price       PriceFilter         `json:"price,omitempty"`
	Search      string              `json:"search,omitempty"`
}

func (f Filter) IsEmpty() bool {
	return len(f.Levels) == 0 && len(f.CategoryIDs) == 0 && f.Price == PriceAny && strings.TrimSpace(f.Search) == ""
}

func (f Filter) matchLevel(c *model.Course) bool {
	if len(f.Levels) == 0 {
		return true
	}
	for _, l := range f.Levels {
		if c.Level == l {
			return true
		}
	}
	return false
}

func (f Filter) matchCategory(c *model.Course) bool {
	if len(f.CategoryIDs) == 0 {
		return true
	}
	for _, id := range f.CategoryIDs {
		if c.CategoryID == id {
			return true
		}
	}
	return false
}

func (f Filter) matchPrice(c *model.Course) bool {
	switch f.Price {
	case PriceFree:
		return c.IsFree()
	case PricePaid:
		return !c.IsFree()
	}
	return true
}

func (f Filter) matchSearch(c *model.Course) bool {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Title), q) ||
		strings.Contains(strings.ToLower(c.Description), q)
}

// Match 单门课程是否满足全部维度
func (f Filter) Match(c *model.Course) bool {
	return f.matchLevel(c) && f.matchCategory(c) && f.matchPrice(c) && f.matchSearch(c)
}

// Apply 纯函数，保持原有顺序，不修改入参
func Apply(courses []model.Course, f Filter) []model.Course {
	out := make([]model.Course, 0, len(courses))
	for i := range courses {
		if f.Match(&courses[i]) {
			out = append(out, courses[i])
		}
	}
	return out
}

// ParseFilter 从查询参数构造过滤条件：level=basic,advanced&category=1,2&price=free&q=go
func ParseFilter(q url.Values) (Filter, error) {
	var f Filter

	for _, raw := range q["level"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			lvl := model.CourseLevel(part)
			if !lvl.Valid() {
				return Filter{}, fmt.Errorf("invalid level %q", part)
			}
			f.Levels = append(f.Levels, lvl)
		}
	}

	for _, raw := range q["category"] {
		ids, err := util.ParseIDs(raw)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid category %q", raw)
		}
		f.CategoryIDs = append(f.CategoryIDs, ids...)
	}

	switch p := PriceFilter(q.Get("price")); p {
	case PriceAny, PriceFree, PricePaid:
		f.Price = p
	default:
		return Filter{}, fmt.Errorf("invalid price filter %q", p)
	}

	f.Search = strings.TrimSpace(q.Get("q"))
	return f, nil
}

// Facets 列表页侧栏的可选项计数
type Facets struct {
	Levels     map[model.CourseLevel]int `json:"levels"`
	Categories map[uint]int              `json:"categories"`
	Free       int                       `json:"free"`
	Paid       int                       `json:"paid"`
}

func BuildFacets(courses []model.Course) Facets {
	f := Facets{
		Levels:     map[model.CourseLevel]int{},
		Categories: map[uint]int{},
	}
	for i := range courses {
		c := &courses[i]
		f.Levels[c.Level]++
		f.Categories[c.CategoryID]++
		if c.IsFree() {
			f.Free++
		} else {
			f.Paid++
		}
	}
	return f
}
