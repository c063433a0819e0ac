package catalog

import (
	"coder_edu_frontend/internal/model"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var courses = []model.Course{
	{ID: 1, Title: "Go Basics", Level: model.LevelBasic, Price: 0, CategoryID: 1},
	{ID: 2, Title: "Concurrency in Go", Level: model.LevelAdvanced, Price: 49, CategoryID: 1},
	{ID: 3, Title: "SQL Fundamentals", Level: model.LevelBasic, Price: 19, CategoryID: 2},
	{ID: 4, Title: "Data Modeling", Description: "relational design", Level: model.LevelIntermediate, Price: 0, CategoryID: 2},
	{ID: 5, Title: "Kubernetes", Level: model.LevelAdvanced, Price: 0, CategoryID: 3},
}

func ids(cs []model.Course) []uint {
	out := []uint{}
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
		want []uint
	}{
		{name: "empty filter keeps everything", f: Filter{}, want: []uint{1, 2, 3, 4, 5}},
		{name: "level", f: Filter{Levels: []model.CourseLevel{model.LevelBasic}}, want: []uint{1, 3}},
		{name: "multiple levels", f: Filter{Levels: []model.CourseLevel{model.LevelBasic, model.LevelAdvanced}}, want: []uint{1, 2, 3, 5}},
		{name: "category", f: Filter{CategoryIDs: []uint{2}}, want: []uint{3, 4}},
		{name: "free", f: Filter{Price: PriceFree}, want: []uint{1, 4, 5}},
		{name: "paid", f: Filter{Price: PricePaid}, want: []uint{2, 3}},
		{name: "search title", f: Filter{Search: "go"}, want: []uint{1, 2}},
		{name: "search description", f: Filter{Search: "RELATIONAL"}, want: []uint{4}},
		{name: "level and price", f: Filter{Levels: []model.CourseLevel{model.LevelAdvanced}, Price: PriceFree}, want: []uint{5}},
		{name: "all dimensions", f: Filter{Levels: []model.CourseLevel{model.LevelBasic}, CategoryIDs: []uint{1, 2}, Price: PricePaid, Search: "sql"}, want: []uint{3}},
		{name: "no match", f: Filter{CategoryIDs: []uint{9}}, want: []uint{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(courses, tt.f)))
		})
	}
}

// 组合过滤等于各维度单独过滤结果的交集
func TestApply_IntersectionOfDimensions(t *testing.T) {
	levels := [][]model.CourseLevel{nil, {model.LevelBasic}, {model.LevelIntermediate, model.LevelAdvanced}}
	cats := [][]uint{nil, {1}, {2, 3}}
	prices := []PriceFilter{PriceAny, PriceFree, PricePaid}

	for _, l := range levels {
		for _, c := range cats {
			for _, p := range prices {
				combined := ids(Apply(courses, Filter{Levels: l, CategoryIDs: c, Price: p}))

				inAll := map[uint]int{}
				for _, single := range []Filter{{Levels: l}, {CategoryIDs: c}, {Price: p}} {
					for _, id := range ids(Apply(courses, single)) {
						inAll[id]++
					}
				}
				want := []uint{}
				for _, course := range courses {
					if inAll[course.ID] == 3 {
						want = append(want, course.ID)
					}
				}
				assert.Equal(t, want, combined, "levels=%v cats=%v price=%q", l, c, p)
			}
		}
	}
}

func TestApply_DoesNotMutate(t *testing.T) {
	src := append([]model.Course(nil), courses...)
	Apply(src, Filter{Price: PriceFree})
	assert.Equal(t, courses, src)
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter(url.Values{
		"level":    {"basic,advanced"},
		"category": {"1,2", "5"},
		"price":    {"paid"},
		"q":        {"  go "},
	})
	require.NoError(t, err)
	assert.Equal(t, []model.CourseLevel{model.LevelBasic, model.LevelAdvanced}, f.Levels)
	assert.Equal(t, []uint{1, 2, 5}, f.CategoryIDs)
	assert.Equal(t, PricePaid, f.Price)
	assert.Equal(t, "go", f.Search)

	f, err = ParseFilter(url.Values{})
	require.NoError(t, err)
	assert.True(t, f.IsEmpty())

	for _, bad := range []url.Values{
		{"level": {"expert"}},
		{"category": {"x"}},
		{"price": {"cheap"}},
	} {
		_, err := ParseFilter(bad)
		assert.Error(t, err, "%v", bad)
	}
}

func TestBuildFacets(t *testing.T) {
	f := BuildFacets(courses)
	assert.Equal(t, 2, f.Levels[model.LevelBasic])
	assert.Equal(t, 2, f.Categories[2])
	assert.Equal(t, 3, f.Free)
	assert.Equal(t, 2, f.Paid)
}
