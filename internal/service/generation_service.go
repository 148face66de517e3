package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/akshar-2001/revenge-valut/internal/config"
	"github.com/akshar-2001/revenge-valut/internal/model"
	"github.com/akshar-2001/revenge-valut/internal/util"
	"github.com/akshar-2001/revenge-valut/pkg/logger"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// QuestionGenerator is the question generation gateway: source text in,
// freshly authored MCQ records out. All-or-nothing; a malformed response is a
// generation failure, never a partial result.
type QuestionGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) ([]model.GeneratedQuestion, error)
}

type GenerationRequest struct {
	Context       string
	StyleExamples string
	Count         int
}

// GenerationService talks to an OpenAI-compatible chat-completions endpoint.
// Client settings are swappable at runtime via ApplyConfig (config hot
// reload).
type GenerationService struct {
	mu        sync.RWMutex
	client    *openai.Client
	modelName string
}

func NewGenerationService(cfg config.AIConfig) *GenerationService {
	s := &GenerationService{}
	s.ApplyConfig(cfg)
	return s
}

func (s *GenerationService) ApplyConfig(cfg config.AIConfig) {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	s.mu.Lock()
	s.client = openai.NewClientWithConfig(clientCfg)
	s.modelName = cfg.Model
	s.mu.Unlock()
}

const generationSystemPrompt = "You are an expert medical educator creating high-yield MCQs for the NEET-PG 2026 and INICET 2026 exams. You respond with a single JSON object and nothing else."

func buildGenerationPrompt(req GenerationRequest) string {
	style := req.StyleExamples
	if strings.TrimSpace(style) == "" {
		style = "No style examples provided. Use standard NEET-PG format."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate exactly %d challenging, high-quality multiple-choice questions.\n\n", req.Count)
	sb.WriteString("CRITICAL INSTRUCTIONS:\n")
	sb.WriteString("1. Source Material: base the questions STRICTLY AND SOLELY on the provided context. Do not introduce any external information.\n")
	sb.WriteString("<context>\n")
	sb.WriteString(req.Context)
	sb.WriteString("\n</context>\n\n")
	sb.WriteString("2. Style Mimicking: replicate the style, difficulty, and clinical vignette format of the provided Previous Year Questions (PYQs).\n")
	sb.WriteString("<style_examples>\n")
	sb.WriteString(style)
	sb.WriteString("\n</style_examples>\n\n")
	sb.WriteString("3. Question Format:\n")
	sb.WriteString("- Each question must have 4 or 5 options.\n")
	sb.WriteString("- There must be only one single best correct answer among the options.\n")
	sb.WriteString("- The options should be plausible distractors.\n")
	sb.WriteString("- The explanation must be clear, concise, and directly relevant to the question and provided context.\n\n")
	sb.WriteString(`Respond with a JSON object of the shape {"questions": [{"question": "...", "options": ["..."], "correctAnswer": "...", "explanation": "..."}]}.`)
	return sb.String()
}

func (s *GenerationService) Generate(ctx context.Context, req GenerationRequest) ([]model.GeneratedQuestion, error) {
	s.mu.RLock()
	client := s.client
	modelName := s.modelName
	s.mu.RUnlock()

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: generationSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildGenerationPrompt(req)},
		},
		Temperature: 0.7,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		logger.Log.Error("generation request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", util.ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", util.ErrGenerationFailed)
	}

	records, err := parseGeneratedQuestions(resp.Choices[0].Message.Content)
	if err != nil {
		logger.Log.Error("generation response rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", util.ErrGenerationFailed, err)
	}

	logger.Log.Info("questions generated",
		zap.Int("requested", req.Count),
		zap.Int("received", len(records)))
	return records, nil
}

// parseGeneratedQuestions decodes and validates the model's JSON payload.
// Some models wrap JSON in markdown fences despite instructions, so fences
// are stripped first.
func parseGeneratedQuestions(content string) ([]model.GeneratedQuestion, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
		content = strings.TrimSpace(content)
	}

	var payload struct {
		Questions []model.GeneratedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("malformed JSON payload: %v", err)
	}
	if payload.Questions == nil {
		return nil, fmt.Errorf("payload missing questions list")
	}

	for i := range payload.Questions {
		if err := validateGeneratedQuestion(&payload.Questions[i]); err != nil {
			return nil, fmt.Errorf("question %d: %v", i, err)
		}
	}
	return payload.Questions, nil
}

func validateGeneratedQuestion(q *model.GeneratedQuestion) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("empty question text")
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return fmt.Errorf("empty explanation")
	}
	if len(q.Options) < 4 || len(q.Options) > 5 {
		return fmt.Errorf("expected 4 or 5 options, got %d", len(q.Options))
	}
	seen := make(map[string]bool, len(q.Options))
	matches := 0
	for _, opt := range q.Options {
		if seen[opt] {
			return fmt.Errorf("duplicate option %q", opt)
		}
		seen[opt] = true
		if opt == q.CorrectAnswer {
			matches++
		}
	}
	if matches != 1 {
		return fmt.Errorf("correct answer does not match exactly one option")
	}
	return nil
}
