package out

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"wayne/internal/modules/mission/domain"
	missionout "wayne/internal/modules/mission/port/out"
)

const (
	defaultGeminiModel = "gemini-3-flash-preview"
	systemInstruction  = "You are the Batcomputer, an advanced AI assisting in tactical life scheduling."
)

// generateFunc sends one prompt and returns the raw text answer.
type generateFunc func(ctx context.Context, prompt string) (string, error)

type GeminiPlanner struct {
	model    string
	timeout  time.Duration
	generate generateFunc
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func NewGeminiPlanner(ctx context.Context, cfg GeminiConfig) (missionout.Planner, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	p := &GeminiPlanner{model: cfg.Model, timeout: cfg.Timeout}
	if strings.TrimSpace(p.model) == "" {
		p.model = defaultGeminiModel
	}
	p.generate = func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    missionSchema(),
		})
		if err != nil {
			return "", fmt.Errorf("gemini generate: %w", err)
		}
		return resp.Text(), nil
	}
	return p, nil
}

func (p *GeminiPlanner) Decompose(ctx context.Context, objectives string) ([]domain.Draft, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	text, err := p.generate(ctx, buildPrompt(objectives))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no data received from gemini")
	}
	return DecodeDrafts(text)
}

func buildPrompt(objectives string) string {
	var b strings.Builder
	b.WriteString("Act as the Batcomputer. The user is a student initiate training to become effective.\n")
	fmt.Fprintf(&b, "Analyze the user's request for their daily schedule: %q.\n\n", objectives)
	b.WriteString("Break this down into specific \"Missions\".\n")
	b.WriteString("- \"Study\" or \"Homework\" relates to INTELLECT.\n")
	b.WriteString("- \"Gym\" or \"Sports\" relates to PHYSICAL.\n")
	b.WriteString("- \"Coding\" or \"Computer\" relates to GADGETS.\n")
	b.WriteString("- \"Sleep\" or \"Break\" relates to RESTORE.\n\n")
	b.WriteString("Assign a time for each task based on a logical flow starting from morning or the implied time.\n")
	b.WriteString("Use \"Bat-Speak\" for titles and descriptions (e.g., instead of \"Do Math\", use \"Analyze Numerical Patterns\").\n")
	return b.String()
}

func missionSchema() *genai.Schema {
	categories := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		categories = append(categories, string(c))
	}
	difficulties := make([]string, 0, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		difficulties = append(difficulties, string(d))
	}
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":           {Type: genai.TypeString, Description: "A Batman-themed tactical title for the task"},
				"description":     {Type: genai.TypeString, Description: "A brief mission briefing in the voice of Alfred or the Batcomputer"},
				"startTime":       {Type: genai.TypeString, Description: "Start time in HH:MM 24h format"},
				"durationMinutes": {Type: genai.TypeNumber},
				"type":            {Type: genai.TypeString, Enum: categories, Description: "The category of the task"},
				"xpReward":        {Type: genai.TypeNumber, Description: "XP value between 20 and 100 based on difficulty"},
				"difficulty":      {Type: genai.TypeString, Enum: difficulties},
			},
			Required: []string{"title", "description", "startTime", "durationMinutes", "type", "xpReward", "difficulty"},
		},
	}
}
