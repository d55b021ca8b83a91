package coach

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"vitalog/internal/llm"
	"vitalog/internal/wellness"
)

type ChatMode string

const (
	ChatGeneral ChatMode = "general"
	ChatDoctor  ChatMode = "doctor"
	ChatSymptom ChatMode = "symptom"
)

const medicalDisclaimer = "**Disclaimer: I am an AI assistant, not a medical professional. This is not a diagnosis. Please consult a qualified healthcare provider for any medical advice.**"

const symptomDisclaimer = "**Disclaimer: I am an AI assistant, not a medical professional. This information is not a diagnosis. Please consult a qualified healthcare provider for any medical advice.**"

const generalSystemPrompt = "You are a friendly and helpful AI assistant for a wellness app. Provide safe, general, and encouraging advice on health, fitness, and nutrition. You are not a medical professional. Always remind users to consult with a doctor or qualified professional for any personal health concerns. Keep responses concise and easy to read."

const doctorSystemPrompt = `You are acting as an AI virtual doctor for a preliminary consultation. Your primary goal is to help the user structure their concerns. You MUST start your first response with a clear disclaimer in bold: "` + medicalDisclaimer + `" After the disclaimer, guide the user by asking clarifying questions about their symptoms (e.g., "What are your main symptoms?", "How long have you been experiencing this?", "On a scale of 1-10, how severe is it?"). Provide general information only and always strongly advise consulting a real doctor for diagnosis and treatment.`

const symptomSystemPrompt = `You are an AI Symptom Checker. Your primary goal is to help a user understand their symptoms and structure them in a way that is helpful for a real medical professional. You must not provide a diagnosis or medical advice. Start your very first message with a clear disclaimer in bold: "` + symptomDisclaimer + `" After the disclaimer, guide the user by asking clarifying questions about their symptoms. Ask one question at a time. For example: "To start, please describe your main symptom.", then "How long have you been experiencing this?", "On a scale of 1-10, how severe is the discomfort?", "Are there any other symptoms you've noticed?". After gathering sufficient information, provide a concise, bulleted summary of the user's reported symptoms, duration, and severity. End the summary by strongly recommending they share this information with a doctor.`

// ChatSession is one multi-turn conversation. The full history lives in
// the session; the external service is stateless between turns.
type ChatSession struct {
	ID   string
	Mode ChatMode

	svc    *Service
	system string

	mu      sync.Mutex
	history []llm.Turn
}

// StartChat opens a session for the given mode and registers it. The
// returned welcome message is the session's first model reply; for the
// doctor and symptom modes it carries the fixed medical disclaimer.
func (s *Service) StartChat(mode ChatMode) (*ChatSession, wellness.ChatMessage, error) {
	var system, welcome string
	switch mode {
	case ChatGeneral:
		system = generalSystemPrompt
		welcome = "Hello! How can I help you on your wellness journey today? You can ask me about nutrition, fitness, or general health topics."
	case ChatDoctor:
		system = doctorSystemPrompt
		welcome = medicalDisclaimer + "\n\nI can help you structure your concerns for a real doctor. To start, please describe your main symptoms."
	case ChatSymptom:
		system = symptomSystemPrompt
		welcome = symptomDisclaimer + "\n\nTo start, please describe your main symptom."
	default:
		return nil, wellness.ChatMessage{}, fmt.Errorf("coach: unknown chat mode %q", mode)
	}

	session := &ChatSession{
		ID:     uuid.NewString(),
		Mode:   mode,
		svc:    s,
		system: system,
		history: []llm.Turn{
			{Role: string(wellness.RoleModel), Text: welcome},
		},
	}
	s.sessionMu.Lock()
	if s.sessions == nil {
		s.sessions = make(map[string]*ChatSession)
	}
	s.sessions[session.ID] = session
	s.sessionMu.Unlock()

	return session, wellness.ChatMessage{Role: wellness.RoleModel, Text: welcome}, nil
}

// Session looks up a previously started session by id.
func (s *Service) Session(id string) (*ChatSession, bool) {
	s.sessionMu.RLock()
	defer s.sessionMu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// EndChat forgets a session.
func (s *Service) EndChat(id string) {
	s.sessionMu.Lock()
	delete(s.sessions, id)
	s.sessionMu.Unlock()
}

// Send appends the user message, asks the model with the accumulated
// history, records the reply and returns it.
func (c *ChatSession) Send(ctx context.Context, message string) (wellness.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return wellness.ChatMessage{}, responseErr("chat", fmt.Errorf("empty message"))
	}

	c.mu.Lock()
	history := append([]llm.Turn(nil), c.history...)
	c.mu.Unlock()

	resp, err := c.svc.generate(ctx, "chat", llm.Request{
		System:  c.system,
		Text:    message,
		History: history,
	})
	if err != nil {
		return wellness.ChatMessage{}, err
	}

	c.mu.Lock()
	c.history = append(c.history,
		llm.Turn{Role: string(wellness.RoleUser), Text: message},
		llm.Turn{Role: string(wellness.RoleModel), Text: resp.Text},
	)
	c.mu.Unlock()

	return wellness.ChatMessage{Role: wellness.RoleModel, Text: resp.Text}, nil
}

// History returns a copy of the conversation so far.
func (c *ChatSession) History() []wellness.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]wellness.ChatMessage, 0, len(c.history))
	for _, turn := range c.history {
		out = append(out, wellness.ChatMessage{Role: wellness.ChatRole(turn.Role), Text: turn.Text})
	}
	return out
}
