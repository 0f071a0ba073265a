package enhance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhanceSummary(t *testing.T) {
	got := Enhance(Summary, "Experienced Developer")
	assert.Equal(t, "Highly skilled and results-driven experienced developer, with a proven track record of delivering exceptional results.", got)
	assert.True(t, strings.HasPrefix(got, "Highly skilled and results-driven"))
	assert.True(t, strings.HasSuffix(got, "delivering exceptional results."))
}

func TestEnhanceExperience(t *testing.T) {
	got := Enhance(Experience, "Developed web applications. Worked with React and Python. Improved system performance.")
	want := "Spearheaded developed web applications, resulting in improved efficiency and cost savings. " +
		"Orchestrated worked with react and python, leading to enhanced user experience and satisfaction. " +
		"Pioneered improved system performance., contributing to significant performance improvements"
	assert.Equal(t, want, got)
}

func TestEnhanceExperienceSkipsBlankClausesButKeepsIndex(t *testing.T) {
	got := Enhance(Experience, "Led team.  . Shipped")
	parts := strings.Split(got, ". ")
	require.Len(t, parts, 2)
	assert.True(t, strings.HasPrefix(parts[0], "Spearheaded led team"))
	// third clause keeps index 2
	assert.True(t, strings.HasPrefix(parts[1], "Pioneered shipped"))
	assert.True(t, strings.HasSuffix(parts[1], "contributing to significant performance improvements"))
}

func TestEnhanceExperienceCyclesVerbs(t *testing.T) {
	clauses := make([]string, 11)
	for i := range clauses {
		clauses[i] = "x"
	}
	got := strings.Split(Enhance(Experience, strings.Join(clauses, ". ")), ". ")
	require.Len(t, got, 11)
	assert.True(t, strings.HasPrefix(got[10], "Spearheaded x"))
	assert.True(t, strings.HasSuffix(got[5], "resulting in improved efficiency and cost savings"))
}

func TestEnhanceEducationKeepsCase(t *testing.T) {
	got := Enhance(Education, "BSc Computer Science")
	assert.Equal(t, "Distinguished academic performance with BSc Computer Science, developing strong analytical and critical thinking skills.", got)
}

func TestEnhanceSkills(t *testing.T) {
	got := Enhance(Skills, "Python, JavaScript")
	assert.Equal(t, "Advanced proficiency in Python, JavaScript and modern development frameworks.", got)
	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "JavaScript")
}

func TestEnhancePersonalInfoIgnoresInput(t *testing.T) {
	assert.Equal(t, Enhance(PersonalInfo, "a"), Enhance(PersonalInfo, "completely different"))
	assert.Equal(t, personalInfoMessage, Enhance(PersonalInfo, ""))
}

func TestEnhanceCustomAndFallback(t *testing.T) {
	assert.Equal(t, "Enhanced and professionally optimized: Volunteering - demonstrating expertise and commitment to excellence.", Enhance(Custom, "Volunteering"))
	assert.Equal(t, "Professionally enhanced: Certified", Enhance("certifications", "Certified"))
	assert.Equal(t, "Professionally enhanced: ", Enhance("", ""))
}

func TestEnhanceIsTotalAndDeterministic(t *testing.T) {
	for _, section := range append(Sections(), "unknown", "") {
		for _, text := range []string{"", "a. b", "Python, Go", ". . ."} {
			first := Enhance(section, text)
			assert.Equal(t, first, Enhance(section, text), "section=%q text=%q", section, text)
		}
	}
	assert.Equal(t, "", Enhance(Experience, ""))
}

func TestKind(t *testing.T) {
	assert.Equal(t, Skills, Kind("skills"))
	assert.Equal(t, OtherSection, Kind("Skills"))
	assert.Equal(t, OtherSection, Kind("awards"))
}
