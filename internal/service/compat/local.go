package compat

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// knownSkills is the keyword inventory matched against both documents. It
// intentionally mirrors the vocabulary the hosted analyzer was trained on.
var knownSkills = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php", "swift", "kotlin",
	"html", "css", "sql", "nosql", "react", "angular", "vue", "node.js", "express", "django",
	"flask", "spring", "aws", "azure", "gcp", "docker", "kubernetes", "git", "jenkins", "ci/cd",
	"machine learning", "deep learning", "data science", "nlp", "computer vision",
	"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy", "mongodb", "postgresql",
	"mysql", "redis", "elasticsearch", "graphql", "rest api", "microservices", "agile",
	"scrum", "devops", "linux", "bash", "jira",
	"communication", "teamwork", "leadership", "problem solving", "critical thinking",
	"creativity", "time management", "adaptability", "collaboration", "project management",
}

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// LocalAnalyzer scores resumes in-process. It stands in for the external
// analysis script when none is configured and emits the same payload shape.
type LocalAnalyzer struct{}

// NewLocalAnalyzer constructs a LocalAnalyzer.
func NewLocalAnalyzer() *LocalAnalyzer {
	return &LocalAnalyzer{}
}

type skillMatch struct {
	Skill string `json:"skill"`
	Match int    `json:"match"`
}

type localResult struct {
	Score           int          `json:"score"`
	SkillsMatch     []skillMatch `json:"skillsMatch"`
	Strengths       []string     `json:"strengths"`
	Gaps            []string     `json:"gaps"`
	Recommendations []string     `json:"recommendations"`
}

// Analyze extracts text from the resume PDF and scores it against the job
// description using skill overlap and lexical similarity.
func (a *LocalAnalyzer) Analyze(ctx context.Context, resumePath, jobDescription string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resumeText, err := extractPDFText(resumePath)
	if err != nil {
		return nil, fmt.Errorf("extract resume text: %w", err)
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("resume %s contains no extractable text", resumePath)
	}

	result := scoreCompatibility(resumeText, jobDescription)
	return json.Marshal(result)
}

func extractPDFText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text.WriteString(content)
		text.WriteString("\n")
	}
	return text.String(), nil
}

func scoreCompatibility(resumeText, jobDescription string) localResult {
	resumeSkills := extractSkills(resumeText)
	jobSkills := extractSkills(jobDescription)

	matches := make([]skillMatch, 0, len(jobSkills))
	matched := 0
	for skill := range jobSkills {
		if resumeSkills[skill] {
			matches = append(matches, skillMatch{Skill: skill, Match: 92})
			matched++
		} else {
			matches = append(matches, skillMatch{Skill: skill, Match: 30})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Match > matches[j].Match })

	skillScore := 0.0
	if len(jobSkills) > 0 {
		skillScore = float64(matched) / float64(len(jobSkills)) * 100
	}
	overall := int(skillScore*0.7 + lexicalSimilarity(resumeText, jobDescription)*100*0.3)

	strengths := make([]string, 0, 3)
	for _, m := range matches {
		if m.Match >= 85 {
			strengths = append(strengths, "Strong proficiency in "+m.Skill)
		}
	}
	if matched >= 3 {
		strengths = append(strengths, "Solid domain expertise relevant to the position")
	}
	if len(strengths) < 3 {
		strengths = append(strengths, "Good foundation in required technical skills")
	}

	gaps := make([]string, 0, 2)
	recommendations := make([]string, 0, 3)
	for _, m := range matches {
		if m.Match <= 50 {
			gaps = append(gaps, "Limited experience with "+m.Skill)
			recommendations = append(recommendations, "Develop skills in "+m.Skill)
		}
	}
	if overall < 70 {
		recommendations = append(recommendations, "Tailor your resume to highlight relevant experience for this position")
	}
	if matched < 3 {
		recommendations = append(recommendations, "Consider additional training in the core technologies for this role")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Continue developing your expertise in this field")
	}

	return localResult{
		Score:           overall,
		SkillsMatch:     truncateMatches(matches, 5),
		Strengths:       truncateStrings(strengths, 3),
		Gaps:            truncateStrings(gaps, 2),
		Recommendations: truncateStrings(recommendations, 3),
	}
}

func extractSkills(text string) map[string]bool {
	lower := strings.ToLower(text)
	skills := make(map[string]bool)
	for _, skill := range knownSkills {
		if strings.Contains(lower, skill) {
			skills[skill] = true
		}
	}
	return skills
}

// lexicalSimilarity computes Jaccard overlap of the word sets, a cheap stand-in
// for the hosted analyzer's semantic similarity term.
func lexicalSimilarity(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}
	intersection := 0
	for word := range wordsA {
		if wordsB[word] {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(word) > 2 {
			set[word] = true
		}
	}
	return set
}

func truncateMatches(in []skillMatch, n int) []skillMatch {
	if len(in) > n {
		return in[:n]
	}
	return in
}

func truncateStrings(in []string, n int) []string {
	if len(in) > n {
		return in[:n]
	}
	return in
}
