package compat

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestScoreCompatibilityMatchingSkills(t *testing.T) {
	resume := "Seasoned backend developer with Go, Python, Docker and PostgreSQL experience. Strong communication."
	job := "Looking for an engineer with python, docker and postgresql knowledge."

	result := scoreCompatibility(resume, job)
	if result.Score <= 0 || result.Score > 100 {
		t.Fatalf("score out of range: %d", result.Score)
	}
	if len(result.SkillsMatch) == 0 {
		t.Fatalf("expected skill matches")
	}
	for _, m := range result.SkillsMatch {
		if m.Match >= 85 && !strings.Contains(strings.ToLower(resume), m.Skill) {
			t.Fatalf("high match for skill absent from resume: %+v", m)
		}
	}
	if len(result.Recommendations) == 0 {
		t.Fatalf("expected at least one recommendation")
	}
}

func TestScoreCompatibilityNoJobSkills(t *testing.T) {
	result := scoreCompatibility("some resume text", "we want a nice person to join us")
	if result.Score < 0 || result.Score > 100 {
		t.Fatalf("score out of range: %d", result.Score)
	}
	if len(result.SkillsMatch) != 0 {
		t.Fatalf("expected no skill matches, got %+v", result.SkillsMatch)
	}
	if len(result.Recommendations) == 0 {
		t.Fatalf("expected fallback recommendation")
	}
}

func TestScoreCompatibilityPayloadShape(t *testing.T) {
	result := scoreCompatibility("python developer", "python role")
	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"score", "skillsMatch", "strengths", "gaps", "recommendations"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing key %q in payload %s", key, raw)
		}
	}
}

func TestLexicalSimilarityBounds(t *testing.T) {
	if sim := lexicalSimilarity("alpha beta gamma", "alpha beta gamma"); sim != 1 {
		t.Fatalf("identical texts should score 1, got %f", sim)
	}
	if sim := lexicalSimilarity("alpha beta", "delta epsilon"); sim != 0 {
		t.Fatalf("disjoint texts should score 0, got %f", sim)
	}
	if sim := lexicalSimilarity("", "anything"); sim != 0 {
		t.Fatalf("empty text should score 0, got %f", sim)
	}
}

func TestExtractSkillsIsCaseInsensitive(t *testing.T) {
	skills := extractSkills("Expert in PYTHON and Docker, with strong Leadership.")
	for _, want := range []string{"python", "docker", "leadership"} {
		if !skills[want] {
			t.Fatalf("expected skill %q to be extracted, got %v", want, skills)
		}
	}
}
