package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SAP-F-2025/school-management-service/internal/config"
)

func TestParsePlanContent_StructuredObject(t *testing.T) {
	text := `{
		"learning_objectives": ["Define photosynthesis", "Label a leaf diagram"],
		"activities": [{"title": "Leaf walk", "duration": 15, "description": "Collect leaves outside."}],
		"story": "A tale about a hungry plant."
	}`

	content, err := ParsePlanContent(text)
	if err != nil {
		t.Fatalf("ParsePlanContent failed: %v", err)
	}

	if len(content.LearningObjectives) != 2 {
		t.Errorf("expected 2 objectives, got %d", len(content.LearningObjectives))
	}
	if len(content.Activities) != 1 || content.Activities[0].Duration != 15 {
		t.Errorf("activities parsed wrong: %+v", content.Activities)
	}
	if content.Story == "" {
		t.Error("story missing")
	}
}

func TestParsePlanContent_FencedAndProseWrapped(t *testing.T) {
	text := "Here is your plan:\n```json\n{\"learning_objectives\": [\"One\"]}\n```\nEnjoy!"

	content, err := ParsePlanContent(text)
	if err != nil {
		t.Fatalf("ParsePlanContent failed: %v", err)
	}
	if len(content.LearningObjectives) != 1 || content.LearningObjectives[0] != "One" {
		t.Errorf("unexpected objectives: %v", content.LearningObjectives)
	}
}

func TestParsePlanContent_FlatLabeledSections(t *testing.T) {
	text := `{"objectives": ["A", "B"], "materials": "Chalk", "story": "Once upon a time"}`

	content, err := ParsePlanContent(text)
	if err != nil {
		t.Fatalf("ParsePlanContent failed: %v", err)
	}
	if len(content.LearningObjectives) != 2 {
		t.Errorf("flat objectives not mapped: %v", content.LearningObjectives)
	}
	if len(content.RequiredMaterials) != 1 || content.RequiredMaterials[0] != "Chalk" {
		t.Errorf("flat scalar material not mapped: %v", content.RequiredMaterials)
	}
	if content.Story != "Once upon a time" {
		t.Errorf("flat story not mapped: %q", content.Story)
	}
}

func TestParsePlanContent_NoJSON(t *testing.T) {
	if _, err := ParsePlanContent("sorry, I cannot help with that"); err == nil {
		t.Error("expected error for response without JSON")
	}
}

func TestParsePlanContent_EmptyObject(t *testing.T) {
	if _, err := ParsePlanContent("{}"); err == nil {
		t.Error("expected error for response with no usable sections")
	}
}

func TestGenerateLessonPlan_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "{\"learning_objectives\": [\"Objective\"]}"}`))
	}))
	defer server.Close()

	client := NewClient(config.AIConfig{
		Endpoint: server.URL,
		APIKey:   "test-key",
		Model:    "test-model",
		Timeout:  5 * time.Second,
	})

	content, err := client.GenerateLessonPlan(context.Background(), GenerateRequest{
		TemplateType:    "standard",
		TopicName:       "Fractions",
		DurationMinutes: 40,
		Language:        "english",
	})
	if err != nil {
		t.Fatalf("GenerateLessonPlan failed: %v", err)
	}
	if len(content.LearningObjectives) != 1 {
		t.Errorf("unexpected content: %+v", content)
	}
}

func TestGenerateLessonPlan_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(config.AIConfig{Endpoint: server.URL, Timeout: 5 * time.Second})

	if _, err := client.GenerateLessonPlan(context.Background(), GenerateRequest{
		TemplateType: "standard", TopicName: "Fractions", DurationMinutes: 40, Language: "english",
	}); err == nil {
		t.Error("expected error from failing endpoint")
	}
}

func TestFallbackPlan(t *testing.T) {
	req := GenerateRequest{TemplateType: "standard", TopicName: "Algebra", DurationMinutes: 60, Language: "english"}

	plan := FallbackPlan(req)
	if plan.Empty() {
		t.Fatal("fallback plan is empty")
	}

	total := 0
	for _, activity := range plan.Activities {
		total += activity.Duration
	}
	if total != req.DurationMinutes {
		t.Errorf("activity durations sum to %d, want %d", total, req.DurationMinutes)
	}
}
