package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/OlamideOlanipekun/NaijaBites/internal/models"
)

// systemInstruction is the fixed NaijaTaste AI persona. It is attached to
// every request and never varies per call.
const systemInstruction = `
You are 'NaijaTaste AI', the virtual culinary assistant for Naija Bites & Grills restaurant.
Your tone is friendly, warm, and proudly Nigerian (using "Oga", "Madam", "Nne", "Bros" appropriately adds flavor).
You are an expert on Nigerian cuisine, spices, and cultural history.

Rules:
1. Recommend dishes from our menu: Jollof Rice, Egusi Soup, Beef Suya, Amala, Ewa Agoyin, and Zobo.
2. Explain the ingredients and cultural significance of dishes.
3. Suggest pairings (e.g., Jollof with plantain, Suya with Zobo).
4. Keep responses concise and engaging.
5. If someone asks for something not related to Nigerian food, politely redirect them back to our delicious menu.
`

// Greeting opens every new chat session.
const Greeting = "Welcome to Naija Bites! I am NaijaTaste AI. Hungry? I can recommend the perfect dish for you!"

// Canned replies. The assistant never surfaces an error to the widget; it
// degrades to one of these instead.
const (
	fallbackEmpty = "Sorry, I lost my appetite for a second. Can you say that again?"
	fallbackError = "Oga, something went wrong with my connection. Abeg try again later!"
)

// replyFunc produces one model reply for a transcript whose last entry is the
// pending user message. Swappable so tests can simulate the remote service.
type replyFunc func(ctx context.Context, history []models.ChatMessage) (string, error)

// AssistantService forwards chat transcripts to Gemini with the fixed persona
// instruction attached. Concurrency across sessions is bounded by a token
// bucket, matching the rest of our Gemini usage limits.
type AssistantService struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	rateChan chan struct{}
	generate replyFunc
}

func NewAssistantService(apiKey, modelName string, concurrentReqs int) (*AssistantService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(300)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	s := &AssistantService{
		client:   client,
		model:    model,
		rateChan: rateChan,
	}
	s.generate = s.generateGemini
	return s, nil
}

func (s *AssistantService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// acquireRate blocks until a rate slot is available.
func (s *AssistantService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *AssistantService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Submit runs one turn of the chat state machine. Empty or whitespace-only
// input is dropped, as is any submit while the session already has a request
// in flight; both leave the transcript unchanged. A valid submit appends the
// user message, issues exactly one request, and always appends exactly one
// model message before the session goes idle again. Submit never returns an
// error: remote failures are logged and replaced with the apology string.
func (s *AssistantService) Submit(ctx context.Context, session *ChatSession, text string) []models.ChatMessage {
	text = strings.TrimSpace(text)
	if text == "" {
		return session.Snapshot()
	}

	history, ok := session.beginTurn(text)
	if !ok {
		// A request is already in flight for this session.
		return session.Snapshot()
	}

	reply := s.reply(ctx, history)
	session.endTurn(reply)
	return session.Snapshot()
}

// reply resolves the model text for the given transcript. Empty output and
// transport failures both degrade to fixed fallback strings.
func (s *AssistantService) reply(ctx context.Context, history []models.ChatMessage) string {
	if err := s.acquireRate(ctx); err != nil {
		log.Printf("assistant: rate slot unavailable: %v", err)
		return fallbackError
	}
	defer s.releaseRate()

	text, err := s.generate(ctx, history)
	if err != nil {
		log.Printf("assistant: Gemini API error: %v", err)
		return fallbackError
	}
	if strings.TrimSpace(text) == "" {
		log.Println("assistant: Gemini returned empty text, using fallback")
		return fallbackEmpty
	}
	return text
}

// generateGemini sends the transcript to Gemini as a chat: prior turns become
// history and the final user message is the outgoing send. Leading model
// messages (the greeting) are skipped since Gemini history must open with a
// user turn.
func (s *AssistantService) generateGemini(ctx context.Context, history []models.ChatMessage) (string, error) {
	last := history[len(history)-1]

	cs := s.model.StartChat()
	prior := trimLeadingModelTurns(history[:len(history)-1])
	for _, m := range prior {
		cs.History = append(cs.History, &genai.Content{
			Role:  m.Role,
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(last.Text))
	if err != nil {
		return "", err
	}
	return extractText(resp), nil
}

func trimLeadingModelTurns(history []models.ChatMessage) []models.ChatMessage {
	for i, m := range history {
		if m.Role == models.RoleUser {
			return history[i:]
		}
	}
	return nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
