package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"
)

const openRouterModel = "openai/gpt-3.5-turbo"

// ErrMissingAPIKey means the server is missing its OpenRouter secret;
// callers surface this as an operator-fixable 500.
var ErrMissingAPIKey = errors.New("OPENROUTER_API_KEY is not set")

// UpstreamError carries a non-2xx reply from OpenRouter. The detail is
// logged server-side and echoed to the caller alongside a generic
// message.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("openrouter api error (%d): %s", e.StatusCode, e.Detail)
}

// AIHabit and AIHabitLog are the wire shapes the AI routes accept in
// their request bodies; the routes are stateless and never read the
// caller's stored collections.
type AIHabit struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AIHabitLog struct {
	HabitID uint   `json:"habit_id"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

type Prediction struct {
	HabitID uint   `json:"habit_id"`
	Risk    string `json:"risk"` // "low" | "medium" | "high"
	Score   int    `json:"score"`
	Reason  string `json:"reason"`
}

type HabitDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	GoalType    string `json:"goal_type"`
	GoalValue   int    `json:"goal_value"`
}

type AIService struct {
	client  *http.Client
	token   string
	model   string
	baseURL string
}

func NewAIService() *AIService {
	return &AIService{
		client:  &http.Client{Timeout: 15 * time.Second},
		token:   os.Getenv("OPENROUTER_API_KEY"),
		model:   openRouterModel,
		baseURL: "https://openrouter.ai/api/v1",
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete posts one chat-completion request and returns the first
// choice's text. No retries: a single upstream failure surfaces once.
func (s *AIService) complete(messages []chatMessage) (string, error) {
	if s.token == "" {
		return "", ErrMissingAPIKey
	}

	b, err := json.Marshal(chatRequest{Model: s.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", "http://localhost:3000")
	req.Header.Set("X-Title", "Habit Tracker AI")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenRouter: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read OpenRouter response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Detail: string(body)}
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("failed to parse OpenRouter JSON: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", nil
	}
	return cr.Choices[0].Message.Content, nil
}

// stripFences removes markdown code-fence markers that models like to
// wrap JSON replies in.
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// Coach answers a free-text question with the user's habit list as
// context. The reply is plain text, a couple of sentences.
func (s *AIService) Coach(habits []AIHabit, message string) (string, error) {
	habitSummary := "No habits tracked yet."
	if len(habits) > 0 {
		names := make([]string, 0, len(habits))
		for _, h := range habits {
			names = append(names, "• "+h.Name)
		}
		habitSummary = strings.Join(names, "\n")
	}

	system := fmt.Sprintf(`You are an encouraging AI Habit Coach.

User habits:
%s

Give concise motivating advice (2–4 sentences).`, habitSummary)

	reply, err := s.complete([]chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: message},
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		reply = "Sorry, I couldn't generate advice."
	}
	return reply, nil
}

// recentRate is the habit's completion percentage over its most recent
// fourteen (or fewer) logged days.
func recentRate(habitID uint, logs []AIHabitLog) int {
	recent := make([]AIHabitLog, 0, len(logs))
	for _, l := range logs {
		if l.HabitID == habitID {
			recent = append(recent, l)
		}
	}
	sort.Slice(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	if len(recent) > 14 {
		recent = recent[:14]
	}
	if len(recent) == 0 {
		return 0
	}

	completed := 0
	for _, l := range recent {
		if l.Status == "completed" {
			completed++
		}
	}
	return roundPct(completed, len(recent))
}

type rawPrediction struct {
	Index  *int   `json:"index"`
	Risk   string `json:"risk"`
	Score  *int   `json:"score"`
	Reason string `json:"reason"`
}

// Predict asks for a per-habit miss-risk estimate based on recent
// completion rates. An unparseable reply degrades to no predictions,
// and entries whose index does not resolve to a habit are dropped.
func (s *AIService) Predict(habits []AIHabit, logs []AIHabitLog) ([]Prediction, error) {
	if len(habits) == 0 {
		return []Prediction{}, nil
	}

	lines := make([]string, 0, len(habits))
	for i, h := range habits {
		lines = append(lines, fmt.Sprintf("index:%d, name:%s, rate:%d%%", i, h.Name, recentRate(h.ID, logs)))
	}

	prompt := fmt.Sprintf(`Predict today's miss risk.

%s

Reply ONLY JSON array:
[
 { "index":0, "risk":"low", "score":20, "reason":"short reason" }
]`, strings.Join(lines, "\n"))

	text, err := s.complete([]chatMessage{{Role: "user", Content: prompt}})
	if err != nil {
		return nil, err
	}

	var raw []rawPrediction
	if err := json.Unmarshal([]byte(stripFences(text)), &raw); err != nil {
		log.Printf("prediction parse failed: %s", text)
		return []Prediction{}, nil
	}

	predictions := make([]Prediction, 0, len(raw))
	for _, p := range raw {
		if p.Index == nil || *p.Index < 0 || *p.Index >= len(habits) {
			continue
		}
		pred := Prediction{
			HabitID: habits[*p.Index].ID,
			Risk:    p.Risk,
			Score:   50,
			Reason:  p.Reason,
		}
		if pred.Risk == "" {
			pred.Risk = "medium"
		}
		if p.Score != nil {
			pred.Score = *p.Score
		}
		if pred.Reason == "" {
			pred.Reason = "No reason provided"
		}
		predictions = append(predictions, pred)
	}
	return predictions, nil
}

// Recommend turns a free-text goal into suggested habit drafts.
// Missing fields get the add-habit dialog defaults; an unparseable
// reply degrades to an empty list.
func (s *AIService) Recommend(goal string) ([]HabitDraft, error) {
	prompt := fmt.Sprintf(`Suggest exactly 4 habits for goal: "%s".

Reply ONLY valid JSON array of objects with keys name, description, color, goal_type, goal_value.`, goal)

	text, err := s.complete([]chatMessage{{Role: "user", Content: prompt}})
	if err != nil {
		return nil, err
	}

	var drafts []HabitDraft
	if err := json.Unmarshal([]byte(stripFences(text)), &drafts); err != nil {
		log.Printf("recommendation parse failed: %s", text)
		return []HabitDraft{}, nil
	}

	out := make([]HabitDraft, 0, len(drafts))
	for _, d := range drafts {
		if strings.TrimSpace(d.Name) == "" {
			continue
		}
		if d.Color == "" {
			d.Color = "#6366f1"
		}
		if d.GoalType == "" {
			d.GoalType = "daily"
		}
		if d.GoalValue < 1 {
			d.GoalValue = 1
		}
		out = append(out, d)
	}
	return out, nil
}
