package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"crm-platform/internal/config"
	"crm-platform/internal/lead"
	"crm-platform/internal/stats"
)

// GeminiClient talks to the Gemini generateContent REST API. With no API
// key configured every call reports ErrUnavailable, which downgrades the
// whole application to fallback annotations without any other change.
type GeminiClient struct {
	httpClient *http.Client
	apiKey     string
	flashModel string
	proModel   string
	baseURL    string
}

func NewGeminiClient(cfg config.AIConfig) *GeminiClient {
	return &GeminiClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiKey:     cfg.APIKey,
		flashModel: cfg.FlashModel,
		proModel:   cfg.ProModel,
		baseURL:    cfg.BaseURL,
	}
}

func (c *GeminiClient) Enabled() bool { return c.apiKey != "" }

/* ----- wire types ----- */

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) generate(ctx context.Context, model, prompt string, jsonOutput bool) (string, error) {
	if !c.Enabled() {
		return "", ErrUnavailable
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if jsonOutput {
		reqBody.GenerationConfig = &generationConfig{ResponseMIMEType: "application/json"}
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

/* ----- capabilities ----- */

func (c *GeminiClient) Qualify(ctx context.Context, draft lead.Lead) (Qualification, error) {
	prompt := fmt.Sprintf(`You are a sales analyst.
Analyze this new lead:
Name: %s
Phone: %s
Source: %s

Assign a lead score from 1-10, summarize their likely intent based on the channel, and suggest a next action.
Do not invent personal data. Return JSON with keys ai_score, ai_summary, suggested_action.`,
		draft.Name, draft.PhoneNumber, draft.Source)

	text, err := c.generate(ctx, c.flashModel, prompt, true)
	if err != nil {
		return Qualification{}, err
	}

	var q Qualification
	if err := json.Unmarshal([]byte(text), &q); err != nil {
		return Qualification{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if q.Summary == "" {
		return Qualification{}, fmt.Errorf("%w: empty summary", ErrUnavailable)
	}
	q.Score = clampScore(q.Score)
	return q, nil
}

func (c *GeminiClient) SuggestNextAction(ctx context.Context, l lead.Lead) (string, error) {
	notes, err := json.Marshal(l.Notes)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	prompt := fmt.Sprintf(`Given the lead history and notes: %s,
and current status: %s, suggest the single best next action to move them to the next stage in the pipeline.`,
		notes, l.Status)

	return c.generate(ctx, c.proModel, prompt, false)
}

func (c *GeminiClient) SummarizeDashboard(ctx context.Context, s stats.FunnelStats) (string, error) {
	snapshot, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	prompt := fmt.Sprintf(`Summarize today's sales performance based on these metrics: %s.
Highlight bottlenecks, top channels, and provide a narrative summary.
Do not recalculate numbers. Do not hallucinate counts. Be concise.`, snapshot)

	return c.generate(ctx, c.flashModel, prompt, false)
}

// clampScore keeps annotation scores inside [1,10]; out-of-range values
// are a data defect on the collaborator side, not ours to refuse.
func clampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}
