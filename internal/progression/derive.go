package progression

import (
	"coder_edu_frontend/internal/model"
	"math"
	"sort"
)

// Derived 每次 Course/Module/viewer 变化时重新计算，不持久化
type Derived struct {
	PreviousModule       *model.Module `json:"previous_module"`
	NextModule           *model.Module `json:"next_module"`
	CourseProgress       int           `json:"course_progress"`
	CanGenerate          bool          `json:"can_generate"`
	IsGenerationAllowed  bool          `json:"is_generation_allowed"`
	PrevModuleIncomplete bool          `json:"prev_module_incomplete"`
}

// CourseProgress 已完成模块占比的整数百分比；没有模块时为 0。
// locked 和 available 都算未完成
func CourseProgress(modules []model.Module) int {
	if len(modules) == 0 {
		return 0
	}
	completed := 0
	for i := range modules {
		if modules[i].IsCompleted() {
			completed++
		}
	}
	return int(math.Round(float64(completed) * 100 / float64(len(modules))))
}

// orderedModules 按 order 排序的课程模块；当前模块不在列表中时补进去
func orderedModules(course *model.Course, current *model.Module) []model.Module {
	var mods []model.Module
	if course != nil {
		mods = append(mods, course.Modules...)
	}
	found := false
	for i := range mods {
		if mods[i].ID == current.ID {
			found = true
			break
		}
	}
	if !found {
		mods = append(mods, *current)
	}
	sort.SliceStable(mods, func(i, j int) bool { return mods[i].Order < mods[j].Order })
	return mods
}

// HasGenerationRights 管理员、教师、课程创建者或已报名的学员
func HasGenerationRights(viewer *model.User, course *model.Course) bool {
	if viewer == nil {
		return false
	}
	if viewer.IsStaff() {
		return true
	}
	if course == nil {
		return false
	}
	return viewer.ID == course.CreatorID || course.IsEnrolled
}

func Derive(course *model.Course, module *model.Module, viewer *model.User) Derived {
	var d Derived
	if module == nil {
		return d
	}
	if course != nil {
		d.CourseProgress = CourseProgress(course.Modules)
	}

	mods := orderedModules(course, module)
	idx := 0
	for i := range mods {
		if mods[i].ID == module.ID {
			idx = i
			break
		}
	}
	if idx > 0 {
		prev := mods[idx-1]
		d.PreviousModule = &prev
	}
	if idx < len(mods)-1 {
		next := mods[idx+1]
		d.NextModule = &next
	}

	if !HasGenerationRights(viewer, course) {
		return d
	}

	isFirst := idx == 0
	prevHasContent := d.PreviousModule != nil && d.PreviousModule.HasContent()
	d.IsGenerationAllowed = isFirst || prevHasContent
	d.PrevModuleIncomplete = !isFirst && !prevHasContent
	d.CanGenerate = d.IsGenerationAllowed && !module.HasContent()
	return d
}
