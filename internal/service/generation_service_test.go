package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akshar-2001/revenge-valut/internal/config"
	"github.com/akshar-2001/revenge-valut/internal/util"
)

// chatCompletionStub serves a canned chat-completions payload whose message
// content is the given string.
func chatCompletionStub(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"id":     "cmpl-test",
			"object": "chat.completion",
			"model":  "stub",
			"choices": []map[string]interface{}{
				{
					"index": 0,
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": content,
					},
					"finish_reason": "stop",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func newGenerationService(baseURL string) *GenerationService {
	return NewGenerationService(config.AIConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "stub",
	})
}

const wellFormedPayload = `{"questions":[
	{"question":"Which nerve innervates the diaphragm?",
	 "options":["Phrenic nerve","Vagus nerve","Intercostal nerve","Hypoglossal nerve"],
	 "correctAnswer":"Phrenic nerve",
	 "explanation":"The phrenic nerve (C3-C5) is the sole motor supply of the diaphragm."}
]}`

func TestGenerate(t *testing.T) {
	req := GenerationRequest{Context: "notes", StyleExamples: "", Count: 1}

	t.Run("well-formed payload", func(t *testing.T) {
		srv := chatCompletionStub(t, wellFormedPayload)
		defer srv.Close()

		records, err := newGenerationService(srv.URL).Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("Expected 1 record, got %d", len(records))
		}
		if records[0].CorrectAnswer != "Phrenic nerve" {
			t.Errorf("Unexpected correct answer %q", records[0].CorrectAnswer)
		}
	})

	t.Run("fenced payload accepted", func(t *testing.T) {
		srv := chatCompletionStub(t, "```json\n"+wellFormedPayload+"\n```")
		defer srv.Close()

		records, err := newGenerationService(srv.URL).Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		if len(records) != 1 {
			t.Errorf("Expected 1 record, got %d", len(records))
		}
	})

	t.Run("malformed JSON is a generation failure", func(t *testing.T) {
		srv := chatCompletionStub(t, "here are your questions: ...")
		defer srv.Close()

		_, err := newGenerationService(srv.URL).Generate(context.Background(), req)
		if !errors.Is(err, util.ErrGenerationFailed) {
			t.Errorf("Expected ErrGenerationFailed, got %v", err)
		}
	})

	t.Run("payload without questions list is a generation failure", func(t *testing.T) {
		srv := chatCompletionStub(t, `{"items":[]}`)
		defer srv.Close()

		_, err := newGenerationService(srv.URL).Generate(context.Background(), req)
		if !errors.Is(err, util.ErrGenerationFailed) {
			t.Errorf("Expected ErrGenerationFailed, got %v", err)
		}
	})

	t.Run("transport failure is a generation failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream exploded", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newGenerationService(srv.URL).Generate(context.Background(), req)
		if !errors.Is(err, util.ErrGenerationFailed) {
			t.Errorf("Expected ErrGenerationFailed, got %v", err)
		}
	})
}

func TestValidateGeneratedQuestion(t *testing.T) {
	valid := func() map[string]interface{} {
		return map[string]interface{}{
			"question":      "Q?",
			"options":       []string{"A", "B", "C", "D"},
			"correctAnswer": "A",
			"explanation":   "E",
		}
	}

	cases := []struct {
		name   string
		mutate func(m map[string]interface{})
		ok     bool
	}{
		{"valid four options", func(m map[string]interface{}) {}, true},
		{"valid five options", func(m map[string]interface{}) {
			m["options"] = []string{"A", "B", "C", "D", "E"}
		}, true},
		{"empty question", func(m map[string]interface{}) { m["question"] = "  " }, false},
		{"empty explanation", func(m map[string]interface{}) { m["explanation"] = "" }, false},
		{"three options", func(m map[string]interface{}) {
			m["options"] = []string{"A", "B", "C"}
		}, false},
		{"six options", func(m map[string]interface{}) {
			m["options"] = []string{"A", "B", "C", "D", "E", "F"}
		}, false},
		{"duplicate options", func(m map[string]interface{}) {
			m["options"] = []string{"A", "A", "C", "D"}
		}, false},
		{"answer not an option", func(m map[string]interface{}) { m["correctAnswer"] = "Z" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := valid()
			tc.mutate(m)
			payload, _ := json.Marshal(map[string]interface{}{"questions": []interface{}{m}})

			_, err := parseGeneratedQuestions(string(payload))
			if tc.ok && err != nil {
				t.Errorf("Expected valid record, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("Expected validation error, got none")
			}
		})
	}
}
