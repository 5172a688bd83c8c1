package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SAP-F-2025/school-management-service/internal/config"
)

// GenerateRequest is the boundary contract with the text-generation endpoint.
type GenerateRequest struct {
	TemplateType    string `json:"template_type"`
	TopicName       string `json:"topic_name"`
	DurationMinutes int    `json:"duration_minutes"`
	Language        string `json:"language"`
}

// Activity is one timed activity within a plan.
type Activity struct {
	Title       string `json:"title,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// PlanContent is the semi-structured plan body. Every field is optional; the
// endpoint is free to return any subset.
type PlanContent struct {
	LearningObjectives   []string   `json:"learning_objectives,omitempty"`
	RequiredMaterials    []string   `json:"required_materials,omitempty"`
	Activities           []Activity `json:"activities,omitempty"`
	AssessmentStrategies []string   `json:"assessment_strategies,omitempty"`
	HomeworkOrFollowUp   []string   `json:"homework_or_follow_up_activities,omitempty"`
	FactsAndFigures      []string   `json:"facts_and_figures,omitempty"`
	Story                string     `json:"story,omitempty"`
	RealWorldExamples    []string   `json:"real_world_examples,omitempty"`
	PracticeExercises    []string   `json:"practice_exercises,omitempty"`
}

// Empty reports whether no section survived parsing.
func (p *PlanContent) Empty() bool {
	return len(p.LearningObjectives) == 0 &&
		len(p.RequiredMaterials) == 0 &&
		len(p.Activities) == 0 &&
		len(p.AssessmentStrategies) == 0 &&
		len(p.HomeworkOrFollowUp) == 0 &&
		len(p.FactsAndFigures) == 0 &&
		p.Story == "" &&
		len(p.RealWorldExamples) == 0 &&
		len(p.PracticeExercises) == 0
}

// Client calls the external text-generation endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient builds a client from config.
func NewClient(cfg config.AIConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generatePayload struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// GenerateLessonPlan asks the endpoint for a plan and parses its response.
// Callers must treat any error as "use the fallback"; this method never
// retries.
func (c *Client) GenerateLessonPlan(ctx context.Context, req GenerateRequest) (*PlanContent, error) {
	if c.endpoint == "" {
		return nil, fmt.Errorf("generation endpoint not configured")
	}

	payload := generatePayload{
		Model:  c.model,
		Prompt: buildPrompt(req),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("generation endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read generation response: %w", err)
	}

	var genResp generateResponse
	if err := json.Unmarshal(data, &genResp); err != nil {
		// Some deployments return the plan object directly.
		return ParsePlanContent(string(data))
	}

	return ParsePlanContent(genResp.Text)
}

// ParsePlanContent parses the semi-structured plan text. The text may be a
// bare JSON object, a fenced code block, or prose wrapping a JSON object;
// every section is optional.
func ParsePlanContent(text string) (*PlanContent, error) {
	raw := extractJSONObject(text)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object found in generation response")
	}

	var content PlanContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return nil, fmt.Errorf("failed to parse plan content: %w", err)
	}

	if content.Empty() {
		// Older template responses use flat labeled sections.
		flat, err := parseFlatSections(raw)
		if err != nil {
			return nil, err
		}
		content = *flat
	}

	if content.Empty() {
		return nil, fmt.Errorf("generation response carried no usable sections")
	}

	return &content, nil
}

// extractJSONObject returns the first top-level JSON object in text,
// tolerating markdown code fences and surrounding prose.
func extractJSONObject(text string) string {
	text = strings.TrimSpace(text)

	if idx := strings.Index(text, "```"); idx >= 0 {
		rest := text[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		if end := strings.Index(rest, "```"); end >= 0 {
			text = rest[:end]
		} else {
			text = rest
		}
	}

	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}

	return ""
}

// flatSectionLabels maps the flat-response labels onto PlanContent fields.
var flatSectionLabels = map[string]func(*PlanContent, []string){
	"objectives": func(p *PlanContent, v []string) { p.LearningObjectives = v },
	"materials":  func(p *PlanContent, v []string) { p.RequiredMaterials = v },
	"assessment": func(p *PlanContent, v []string) { p.AssessmentStrategies = v },
	"homework":   func(p *PlanContent, v []string) { p.HomeworkOrFollowUp = v },
	"facts":      func(p *PlanContent, v []string) { p.FactsAndFigures = v },
	"examples":   func(p *PlanContent, v []string) { p.RealWorldExamples = v },
	"exercises":  func(p *PlanContent, v []string) { p.PracticeExercises = v },
}

// parseFlatSections handles the legacy flat shape where every value is a
// string or string list keyed by a section label.
func parseFlatSections(raw string) (*PlanContent, error) {
	var flat map[string]any
	if err := json.Unmarshal([]byte(raw), &flat); err != nil {
		return nil, fmt.Errorf("failed to parse flat plan sections: %w", err)
	}

	content := &PlanContent{}
	for label, value := range flat {
		key := strings.ToLower(strings.TrimSpace(label))

		if key == "story" {
			if s, ok := value.(string); ok {
				content.Story = s
			}
			continue
		}

		assign, ok := flatSectionLabels[key]
		if !ok {
			continue
		}
		assign(content, toStringList(value))
	}

	return content, nil
}

func toStringList(value any) []string {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		list := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				list = append(list, s)
			}
		}
		return list
	}
	return nil
}

func buildPrompt(req GenerateRequest) string {
	var sb strings.Builder
	sb.WriteString("Create a ")
	sb.WriteString(req.TemplateType)
	sb.WriteString(" lesson plan for the topic \"")
	sb.WriteString(req.TopicName)
	sb.WriteString("\" lasting ")
	fmt.Fprintf(&sb, "%d", req.DurationMinutes)
	sb.WriteString(" minutes, written in ")
	sb.WriteString(req.Language)
	sb.WriteString(". Respond with a single JSON object using these keys: ")
	sb.WriteString("learning_objectives, required_materials, activities (title, duration, description), ")
	sb.WriteString("assessment_strategies, homework_or_follow_up_activities, facts_and_figures, ")
	sb.WriteString("story, real_world_examples, practice_exercises.")
	return sb.String()
}

// FallbackPlan synthesizes a minimal local plan when generation fails. The
// user-visible operation must not fail because the endpoint did.
func FallbackPlan(req GenerateRequest) *PlanContent {
	intro := req.DurationMinutes / 6
	if intro < 5 {
		intro = 5
	}
	core := req.DurationMinutes / 2
	wrap := req.DurationMinutes - intro - core

	return &PlanContent{
		LearningObjectives: []string{
			fmt.Sprintf("Understand the key concepts of %s", req.TopicName),
			fmt.Sprintf("Apply %s to classroom exercises", req.TopicName),
		},
		RequiredMaterials: []string{"Whiteboard and markers", "Textbook chapter on " + req.TopicName},
		Activities: []Activity{
			{Title: "Introduction and recap", Duration: intro, Description: "Connect " + req.TopicName + " to the previous lesson."},
			{Title: "Core instruction", Duration: core, Description: "Explain " + req.TopicName + " with worked examples on the board."},
			{Title: "Practice and wrap-up", Duration: wrap, Description: "Students solve practice questions; summarize key points."},
		},
		AssessmentStrategies: []string{"Oral questioning during wrap-up", "Short written quiz in the next session"},
		HomeworkOrFollowUp:   []string{fmt.Sprintf("Prepare three questions about %s for the next class", req.TopicName)},
	}
}
