// Package enhance rewrites resume section text with fixed phrasing. It is a
// deterministic stand-in for model-based enhancement: no state, no I/O.
package enhance

import "strings"

// Section kinds with dedicated templates. Any other kind gets the generic
// prefix.
const (
	Summary      = "summary"
	Experience   = "experience"
	Education    = "education"
	Skills       = "skills"
	PersonalInfo = "personal_info"
	Custom       = "custom"
)

// OtherSection is the label used for kinds without a dedicated template.
const OtherSection = "other"

var (
	summaryPrefixes = []string{
		"Highly skilled and results-driven",
		"Dynamic and innovative",
		"Accomplished and detail-oriented",
		"Experienced and motivated",
		"Dedicated and performance-focused",
	}
	summaryAdditions = []string{
		"with a proven track record of delivering exceptional results",
		"specializing in cutting-edge technologies and best practices",
		"with expertise in leading cross-functional teams",
		"committed to continuous learning and professional development",
		"with strong analytical and problem-solving capabilities",
	}

	actionVerbs = []string{
		"Spearheaded", "Orchestrated", "Pioneered", "Architected", "Optimized",
		"Streamlined", "Revolutionized", "Implemented", "Collaborated", "Delivered",
	}
	impactPhrases = []string{
		"resulting in improved efficiency and cost savings",
		"leading to enhanced user experience and satisfaction",
		"contributing to significant performance improvements",
		"driving innovation and competitive advantage",
		"achieving measurable business impact",
	}

	academicPhrases = []string{
		"Distinguished academic performance with",
		"Comprehensive education featuring",
		"Rigorous academic foundation in",
		"Advanced studies encompassing",
	}
	skillsGained = []string{
		"developing strong analytical and critical thinking skills",
		"gaining expertise in modern methodologies and frameworks",
		"building a solid foundation in industry best practices",
		"cultivating leadership and collaborative skills",
	}

	technicalDepth = []string{
		"Advanced proficiency in",
		"Expert-level knowledge of",
		"Comprehensive expertise in",
		"Specialized skills in",
	}
	frameworkPhrases = []string{
		"modern development frameworks",
		"industry-standard tools and technologies",
		"cutting-edge platforms and libraries",
		"enterprise-grade solutions",
	}
)

const (
	personalInfoMessage = "Professional contact information verified and optimized for industry standards."
	clauseSep           = ". "
	skillSep            = ", "
)

// Enhance returns the enhanced form of text for the given section kind. It is
// total: every kind and every text, including "", yields a result.
func Enhance(section, text string) string {
	switch section {
	case Summary:
		return summaryPrefixes[0] + " " + strings.ToLower(text) + ", " + summaryAdditions[0] + "."
	case Experience:
		return enhanceExperience(text)
	case Education:
		return academicPhrases[0] + " " + text + ", " + skillsGained[0] + "."
	case Skills:
		skills := strings.Split(text, skillSep)
		return technicalDepth[0] + " " + strings.Join(skills, skillSep) + " and " + frameworkPhrases[0] + "."
	case PersonalInfo:
		return personalInfoMessage
	case Custom:
		return "Enhanced and professionally optimized: " + text + " - demonstrating expertise and commitment to excellence."
	default:
		return "Professionally enhanced: " + text
	}
}

// enhanceExperience decorates every non-blank clause. Verb and impact are
// picked by the clause's position in the split, blanks included.
func enhanceExperience(text string) string {
	clauses := strings.Split(text, clauseSep)
	out := make([]string, 0, len(clauses))
	for i, c := range clauses {
		if strings.TrimSpace(c) == "" {
			continue
		}
		verb := actionVerbs[i%len(actionVerbs)]
		impact := impactPhrases[i%len(impactPhrases)]
		out = append(out, verb+" "+strings.ToLower(c)+", "+impact)
	}
	return strings.Join(out, clauseSep)
}

// Sections lists the kinds with a dedicated template.
func Sections() []string {
	return []string{Summary, Experience, Education, Skills, PersonalInfo, Custom}
}

// Kind normalizes section to a known kind or OtherSection, for use as a
// bounded metrics label.
func Kind(section string) string {
	for _, s := range Sections() {
		if s == section {
			return s
		}
	}
	return OtherSection
}
