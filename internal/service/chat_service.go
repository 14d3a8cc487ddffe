package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/soranjiro/AxI-itinerary/internal/apperror"
	"github.com/soranjiro/AxI-itinerary/internal/llm"
	"github.com/soranjiro/AxI-itinerary/internal/validate"
)

const chatSystemPrompt = `あなたは旅行計画をサポートするAIアシスタントです。
ユーザーの質問に対して、役立つアドバイスを提供してください。
旅行のタイムライン、予算、持ち物リストについて具体的な提案をしてください。

現在の旅行情報:
`

// Suggestion is a keyword-triggered follow-up action offered with a reply.
type Suggestion struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Action string `json:"action"`
}

// ChatService forwards user messages to the configured LLM provider and
// attaches static suggestions.
type ChatService struct {
	client llm.Client
}

// NewChatService creates a new chat service.
func NewChatService(client llm.Client) *ChatService {
	return &ChatService{client: client}
}

// ChatInput is the payload for a chat request.
type ChatInput struct {
	Message     string      `json:"message"`
	ItineraryID string      `json:"itineraryId"`
	Context     interface{} `json:"context"`
}

// ChatReply is the assistant's answer plus suggestions.
type ChatReply struct {
	Message     string       `json:"message"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Chat validates the message, queries the provider and returns the reply.
func (s *ChatService) Chat(ctx context.Context, in ChatInput) (*ChatReply, error) {
	if !validate.Required(in.Message) {
		return nil, apperror.BadRequest("Message is required")
	}
	if s.client == nil {
		return nil, apperror.Unavailable("Chat assistant is not configured")
	}

	contextJSON := "情報なし"
	if in.Context != nil {
		if data, err := json.MarshalIndent(in.Context, "", "  "); err == nil {
			contextJSON = string(data)
		}
	}

	answer, err := s.client.Complete(ctx, chatSystemPrompt+contextJSON, in.Message)
	if err != nil {
		return nil, &apperror.Error{Status: http.StatusInternalServerError, Message: "Failed to get AI response", Err: err}
	}
	if answer == "" {
		answer = "申し訳ありませんが、応答を生成できませんでした。"
	}

	return &ChatReply{
		Message:     answer,
		Suggestions: Suggestions(in.Message),
	}, nil
}

// suggestionRules maps message keywords to canned follow-up actions.
var suggestionRules = []struct {
	keywords    []string
	suggestions []Suggestion
}{
	{
		keywords: []string{"観光", "スポット"},
		suggestions: []Suggestion{
			{Type: "timeline", Title: "タイムラインに追加", Action: "おすすめスポットをスケジュールに追加"},
			{Type: "timeline", Title: "移動時間を計算", Action: "各スポット間の移動時間を確認"},
		},
	},
	{
		keywords: []string{"予算", "費用"},
		suggestions: []Suggestion{
			{Type: "budget", Title: "予算項目を追加", Action: "新しい費用項目を追加"},
			{Type: "budget", Title: "予算を見直す", Action: "現在の予算を最適化"},
		},
	},
	{
		keywords: []string{"持ち物", "荷物"},
		suggestions: []Suggestion{
			{Type: "packing", Title: "持ち物を追加", Action: "新しいアイテムをリストに追加"},
			{Type: "packing", Title: "チェックリストを確認", Action: "持ち物リストを再確認"},
		},
	},
}

// Suggestions returns at most two keyword-matched suggestions for message.
func Suggestions(message string) []Suggestion {
	matched := []Suggestion{}
	for _, rule := range suggestionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(message, kw) {
				matched = append(matched, rule.suggestions...)
				break
			}
		}
	}
	if len(matched) > 2 {
		matched = matched[:2]
	}
	return matched
}
