package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/cv-screener/internal/resume"
	"github.com/spigell/cv-screener/internal/vocabulary"
)

func TestScorePartialSkillMatch(t *testing.T) {
	text := "Jane Doe\njane.doe@example.com\n555-123-4567\nSkills: Python, SQL, AWS\n5 years experience"
	candidate := resume.NewParser(vocabulary.Default()).Parse(text)

	result := Score(candidate, NewProfile([]string{"python, sql, aws, docker"}, 3))

	assert.Equal(t, 75.0, result.SkillMatchPercent)
	assert.Equal(t, 100.0, result.ExperienceScore)
	assert.Equal(t, 82.5, result.FinalScore)
	assert.Equal(t, Interview, result.Recommendation)
	assert.Equal(t, []string{"docker"}, result.MissingSkills)
	assert.Equal(t, []string{"aws", "python", "sql"}, result.MatchedSkills)
}

func TestScoreEmptyProfileIsStrongHire(t *testing.T) {
	candidates := []resume.CandidateRecord{
		{Name: resume.UnknownName, Email: resume.NotFound, Phone: resume.NotFound, Skills: []string{}},
		{Name: "A", Skills: []string{"go"}, YearsExperience: 12},
	}

	for _, c := range candidates {
		result := Score(c, RequirementProfile{})
		assert.Equal(t, 100.0, result.FinalScore)
		assert.Equal(t, StrongHire, result.Recommendation)
		assert.Empty(t, result.MissingSkills)
	}
}

func TestScoreUnsupportedDocumentDefaults(t *testing.T) {
	candidate := resume.NewParser(nil).Parse("")

	result := Score(candidate, NewProfile([]string{"python", "sql"}, 4))

	assert.Equal(t, 0.0, result.SkillMatchPercent)
	assert.Equal(t, 0.0, result.ExperienceScore)
	assert.Equal(t, 0.0, result.FinalScore)
	assert.Equal(t, Reject, result.Recommendation)
	assert.Equal(t, []string{"python", "sql"}, result.MissingSkills)
	assert.Empty(t, result.MatchedSkills)
}

func TestScoreExperienceRatio(t *testing.T) {
	candidate := resume.CandidateRecord{Skills: []string{"go"}, YearsExperience: 2}

	result := Score(candidate, NewProfile([]string{"go"}, 8))

	// 0.7*100 + 0.3*25
	assert.Equal(t, 25.0, result.ExperienceScore)
	assert.Equal(t, 77.5, result.FinalScore)
}

func TestScoreRoundsToOneDecimal(t *testing.T) {
	candidate := resume.CandidateRecord{Skills: []string{"a"}, YearsExperience: 1}

	result := Score(candidate, NewProfile([]string{"a", "b", "c"}, 3))

	// skill 33.33.., experience 33.33..
	assert.Equal(t, 33.3, result.SkillMatchPercent)
	assert.Equal(t, 33.3, result.FinalScore)
}

func TestScoreRoundsExactHalvesToEven(t *testing.T) {
	required := make([]string, 0, 16)
	for i := 0; i < 16; i++ {
		required = append(required, fmt.Sprintf("skill-%02d", i))
	}
	candidate := resume.CandidateRecord{Skills: []string{"skill-00"}, YearsExperience: 5}

	result := Score(candidate, NewProfile(required, 0))

	// skill 6.25, final 0.7*6.25 + 30 = 34.375
	assert.Equal(t, 6.2, result.SkillMatchPercent)
	assert.Equal(t, 34.4, result.FinalScore)
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in     float64
		expect float64
	}{
		{in: 6.25, expect: 6.2},
		{in: 6.35, expect: 6.3},
		{in: 91.25, expect: 91.2},
		{in: 82.75, expect: 82.8},
		{in: 0.15, expect: 0.1},
		{in: 33.333333, expect: 33.3},
		{in: 100, expect: 100},
		{in: 0, expect: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, Round1(tt.in), "round %v", tt.in)
	}
}

func TestRecommendationBands(t *testing.T) {
	tests := []struct {
		score  float64
		expect Recommendation
	}{
		{score: 100, expect: StrongHire},
		{score: 85, expect: StrongHire},
		{score: 84.9, expect: Interview},
		{score: 60, expect: Interview},
		{score: 59.9, expect: Reject},
		{score: 0, expect: Reject},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, RecommendationFor(tt.score), "score %v", tt.score)
	}
}

func TestScoreBoundsAndMonotonicity(t *testing.T) {
	profile := NewProfile([]string{"python", "sql", "aws", "docker"}, 6)
	pool := []string{"python", "sql", "aws", "docker"}

	for matched := 0; matched <= len(pool); matched++ {
		previous := -1.0
		for years := 0; years <= 10; years++ {
			c := resume.CandidateRecord{Skills: pool[:matched], YearsExperience: years}
			got := Score(c, profile).FinalScore

			require.GreaterOrEqual(t, got, 0.0)
			require.LessOrEqual(t, got, 100.0)
			require.GreaterOrEqual(t, got, previous, "skills=%d years=%d", matched, years)
			previous = got

			if matched > 0 {
				fewer := resume.CandidateRecord{Skills: pool[:matched-1], YearsExperience: years}
				require.GreaterOrEqual(t, got, Score(fewer, profile).FinalScore)
			}
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	c := resume.CandidateRecord{Skills: []string{"sql", "aws"}, YearsExperience: 3}
	p := NewProfile([]string{"aws", "sql", "linux"}, 5)

	assert.Equal(t, Score(c, p), Score(c, p))
}

func TestParseSkills(t *testing.T) {
	got := ParseSkills([]string{" Python ,SQL,,  Machine   Learning", "sql", "", "AWS"})

	assert.Equal(t, []string{"python", "sql", "machine learning", "aws"}, got)
	assert.Empty(t, ParseSkills(nil))
}

func TestProfileUnknown(t *testing.T) {
	p := NewProfile([]string{"python", "cobol"}, 0)

	assert.Equal(t, []string{"cobol"}, p.Unknown(vocabulary.Default()))
}

func TestRecommendationNames(t *testing.T) {
	assert.Equal(t, "Strong Hire", StrongHire.String())
	assert.Equal(t, "strong_hire", StrongHire.Key())
	assert.Equal(t, "Recommendation(7)", Recommendation(7).String())

	for _, r := range Recommendations() {
		parsed, err := ParseRecommendation(r.Key())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)

		parsed, err = ParseRecommendation(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := ParseRecommendation("maybe")
	assert.EqualError(t, err, `unknown recommendation "maybe"`)
}

func TestRecommendationText(t *testing.T) {
	text, err := Interview.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "interview", string(text))

	var r Recommendation
	require.NoError(t, r.UnmarshalText([]byte("strong_hire")))
	assert.Equal(t, StrongHire, r)
	assert.Error(t, r.UnmarshalText([]byte("nope")))
}
