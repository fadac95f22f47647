package llm

import (
	"fmt"
	"strconv"

	"github.com/Chetan55567/portfolio-api/internal/domain/profile"
)

const (
	defaultSkillLevel    = 75
	defaultSkillCategory = "General"
)

// normalizePatch is the schema guard: the model reply is fully untrusted,
// so only recognized fields are copied out and every value is coerced into
// the Profile schema. Unknown fields are dropped silently.
func normalizePatch(data map[string]any) *profile.ProfilePatch {
	patch := &profile.ProfilePatch{}

	setString(&patch.Name, data["name"])
	setString(&patch.Title, data["title"])
	setString(&patch.Tagline, data["tagline"])
	setString(&patch.Email, data["email"])
	setString(&patch.Phone, data["phone"])
	setString(&patch.Location, data["location"])
	setString(&patch.Summary, data["summary"])

	if items, ok := data["skills"].([]any); ok {
		skills := make([]profile.Skill, len(items))
		for i, item := range items {
			m, _ := item.(map[string]any)
			skill := profile.Skill{
				Name:     asString(m["name"]),
				Level:    coerceLevel(m["level"]),
				Category: asString(m["category"]),
			}
			if skill.Name == "" {
				skill.Name = fmt.Sprintf("Skill %d", i+1)
			}
			if skill.Category == "" {
				skill.Category = defaultSkillCategory
			}
			skills[i] = skill
		}
		patch.Skills = &skills
	}

	if items, ok := data["experience"].([]any); ok {
		experience := make([]profile.Experience, len(items))
		for i, item := range items {
			m, _ := item.(map[string]any)
			exp := profile.Experience{
				ID:          profile.NewItemID("exp"),
				Company:     asString(m["company"]),
				Position:    asString(m["position"]),
				StartDate:   asString(m["startDate"]),
				EndDate:     asString(m["endDate"]),
				Description: asString(m["description"]),
				Highlights:  asStringSlice(m["highlights"]),
			}
			if exp.Position == "" {
				exp.Position = asString(m["title"])
			}
			if exp.EndDate == "" {
				exp.EndDate = "Present"
			}
			experience[i] = exp
		}
		patch.Experience = &experience
	}

	if items, ok := data["education"].([]any); ok {
		education := make([]profile.Education, len(items))
		for i, item := range items {
			m, _ := item.(map[string]any)
			edu := profile.Education{
				ID:          profile.NewItemID("edu"),
				Institution: asString(m["institution"]),
				Degree:      asString(m["degree"]),
				Field:       asString(m["field"]),
				StartDate:   asString(m["startDate"]),
				EndDate:     asString(m["endDate"]),
				Description: asString(m["description"]),
			}
			if edu.Institution == "" {
				edu.Institution = asString(m["school"])
			}
			if edu.Field == "" {
				edu.Field = asString(m["major"])
			}
			education[i] = edu
		}
		patch.Education = &education
	}

	if items, ok := data["certifications"].([]any); ok {
		certifications := make([]profile.Certification, len(items))
		for i, item := range items {
			m, _ := item.(map[string]any)
			certifications[i] = profile.Certification{
				ID:     profile.NewItemID("cert"),
				Name:   asString(m["name"]),
				Issuer: asString(m["issuer"]),
				Date:   asString(m["date"]),
				Link:   asString(m["link"]),
			}
		}
		patch.Certifications = &certifications
	}

	if social, ok := data["social"].(map[string]any); ok {
		patch.Social = &profile.Social{
			Github:    asString(social["github"]),
			Linkedin:  asString(social["linkedin"]),
			Twitter:   asString(social["twitter"]),
			Instagram: asString(social["instagram"]),
			Website:   asString(social["website"]),
		}
	}

	return patch
}

// setString assigns only when the source holds a usable non-empty value,
// so absent fields stay out of the patch and the merge leaves them alone.
func setString(dst **string, v any) {
	s := asString(v)
	if s == "" {
		return
	}
	*dst = &s
}

func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

func asStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, asString(item))
	}
	return out
}

// coerceLevel clamps into [0,100]; missing or non-numeric values default
// to 75.
func coerceLevel(v any) int {
	level := defaultSkillLevel
	switch val := v.(type) {
	case float64:
		level = int(val)
	case string:
		if n, err := strconv.Atoi(val); err == nil {
			level = n
		}
	}
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}
