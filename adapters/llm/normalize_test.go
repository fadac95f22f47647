package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	return data
}

func TestNormalizePatch_SchemaGuard(t *testing.T) {
	patch := normalizePatch(decode(t, `{
		"name": "Jane Doe",
		"skills": [{"level": 150}],
		"unused_field": "ignore me"
	}`))

	require.NotNil(t, patch.Name)
	assert.Equal(t, "Jane Doe", *patch.Name)
	assert.Nil(t, patch.Phone, "absent fields stay out of the patch")

	require.NotNil(t, patch.Skills)
	require.Len(t, *patch.Skills, 1)
	skill := (*patch.Skills)[0]
	assert.Equal(t, "Skill 1", skill.Name)
	assert.Equal(t, 100, skill.Level, "levels are clamped into [0,100]")
	assert.Equal(t, "General", skill.Category)
}

func TestNormalizePatch_ExperienceDefaults(t *testing.T) {
	patch := normalizePatch(decode(t, `{
		"experience": [
			{"company": "Acme", "title": "Engineer", "startDate": "2020-01"},
			{"company": "Globex", "position": "Lead", "startDate": "2018", "endDate": "2020", "highlights": ["shipped v1", 42]}
		]
	}`))

	require.NotNil(t, patch.Experience)
	require.Len(t, *patch.Experience, 2)

	first := (*patch.Experience)[0]
	assert.Contains(t, first.ID, "exp-")
	assert.Equal(t, "Engineer", first.Position, "title is accepted as a position alias")
	assert.Equal(t, "Present", first.EndDate)
	assert.Empty(t, first.Highlights)

	second := (*patch.Experience)[1]
	assert.Equal(t, "Lead", second.Position)
	assert.Equal(t, "2020", second.EndDate)
	assert.Equal(t, []string{"shipped v1", "42"}, second.Highlights)
}

func TestNormalizePatch_EducationAliases(t *testing.T) {
	patch := normalizePatch(decode(t, `{
		"education": [{"school": "MIT", "degree": "BSc", "major": "CS"}]
	}`))

	require.NotNil(t, patch.Education)
	require.Len(t, *patch.Education, 1)
	edu := (*patch.Education)[0]
	assert.Contains(t, edu.ID, "edu-")
	assert.Equal(t, "MIT", edu.Institution)
	assert.Equal(t, "CS", edu.Field)
}

func TestNormalizePatch_Social(t *testing.T) {
	patch := normalizePatch(decode(t, `{
		"social": {"github": "janedoe", "linkedin": "in/janedoe", "extra": "dropped"}
	}`))

	require.NotNil(t, patch.Social)
	assert.Equal(t, "janedoe", patch.Social.Github)
	assert.Equal(t, "in/janedoe", patch.Social.Linkedin)
	assert.Empty(t, patch.Social.Website)

	patch = normalizePatch(decode(t, `{"social": "not an object"}`))
	assert.Nil(t, patch.Social)
}

func TestCoerceLevel(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{"missing", nil, 75},
		{"non numeric string", "expert", 75},
		{"numeric string", "80", 80},
		{"in range", float64(50), 50},
		{"below range", float64(-5), 0},
		{"above range", float64(150), 100},
		{"zero", float64(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceLevel(tt.input))
		})
	}
}
