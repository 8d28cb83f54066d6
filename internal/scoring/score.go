package scoring

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spigell/cv-screener/internal/resume"
)

const (
	SkillWeight      = 0.7
	ExperienceWeight = 0.3

	StrongHireThreshold = 85.0
	InterviewThreshold  = 60.0

	fullScore = 100.0
)

type Recommendation int

const (
	Reject Recommendation = iota
	Interview
	StrongHire
)

var recommendationKeys = map[Recommendation]string{
	StrongHire: "strong_hire",
	Interview:  "interview",
	Reject:     "reject",
}

// Recommendations lists every band from the best to the worst.
func Recommendations() []Recommendation {
	return []Recommendation{StrongHire, Interview, Reject}
}

func (r Recommendation) String() string {
	switch r {
	case StrongHire:
		return "Strong Hire"
	case Interview:
		return "Interview"
	case Reject:
		return "Reject"
	default:
		return fmt.Sprintf("Recommendation(%d)", int(r))
	}
}

// Key is the configuration and JSON form of the recommendation.
func (r Recommendation) Key() string {
	if key, ok := recommendationKeys[r]; ok {
		return key
	}
	return r.String()
}

func (r Recommendation) MarshalText() ([]byte, error) {
	return []byte(r.Key()), nil
}

func (r *Recommendation) UnmarshalText(text []byte) error {
	parsed, err := ParseRecommendation(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRecommendation accepts a key such as "strong_hire" or a display name
// such as "Strong Hire".
func ParseRecommendation(s string) (Recommendation, error) {
	for _, r := range Recommendations() {
		if s == r.Key() || s == r.String() {
			return r, nil
		}
	}
	return Reject, fmt.Errorf("unknown recommendation %q", s)
}

// RecommendationFor maps a final score to its band. Lower bounds are inclusive.
func RecommendationFor(finalScore float64) Recommendation {
	switch {
	case finalScore >= StrongHireThreshold:
		return StrongHire
	case finalScore >= InterviewThreshold:
		return Interview
	default:
		return Reject
	}
}

type ScoreResult struct {
	FinalScore        float64        `json:"final_score"`
	SkillMatchPercent float64        `json:"skill_match_percent"`
	ExperienceScore   float64        `json:"experience_score"`
	MissingSkills     []string       `json:"missing_skills"`
	MatchedSkills     []string       `json:"matched_skills"`
	Recommendation    Recommendation `json:"recommendation"`
}

// Score blends skill coverage and experience into a final score:
// SkillWeight*skill + ExperienceWeight*experience, rounded to one decimal.
// An empty skill list counts as full coverage. Both lists in the result are sorted.
func Score(candidate resume.CandidateRecord, profile RequirementProfile) ScoreResult {
	matched, missing := compareSkills(candidate, profile.RequiredSkills)

	skillScore := fullScore
	if len(profile.RequiredSkills) > 0 {
		skillScore = fullScore * float64(len(matched)) / float64(len(profile.RequiredSkills))
	}

	expScore := experienceScore(candidate.YearsExperience, profile.MinExperience)
	final := Round1(SkillWeight*skillScore + ExperienceWeight*expScore)

	return ScoreResult{
		FinalScore:        final,
		SkillMatchPercent: Round1(skillScore),
		ExperienceScore:   Round1(expScore),
		MissingSkills:     missing,
		MatchedSkills:     matched,
		Recommendation:    RecommendationFor(final),
	}
}

func compareSkills(candidate resume.CandidateRecord, required []string) (matched, missing []string) {
	matched = make([]string, 0, len(required))
	missing = make([]string, 0, len(required))

	for _, skill := range required {
		if candidate.HasSkill(skill) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

func experienceScore(years, minYears int) float64 {
	switch {
	case years >= minYears:
		return fullScore
	case minYears > 0:
		return fullScore * float64(years) / float64(minYears)
	default:
		return fullScore
	}
}

// Round1 rounds v to one decimal place. Exact ties go to the even digit
// (6.25 becomes 6.2), decided on the exact binary value of v.
func Round1(v float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return rounded
}
