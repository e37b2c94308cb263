package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/config"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
)

const (
	// Batch ceilings keep single prompts inside model context limits
	maxEmailBatch    = 10
	maxCalendarBatch = 20

	// Solution synthesis returns at most this many suggestions
	maxSolutions = 3
)

// AnalyzerService categorizes email threads and calendar events via
// the Gemini API and synthesizes personalized automation suggestions
type AnalyzerService struct {
	config *config.AIConfig
	client *http.Client
}

// NewAnalyzerService creates a new analyzer service
func NewAnalyzerService() *AnalyzerService {
	cfg := config.DefaultAIConfig()
	return &AnalyzerService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// CategorizeEmails classifies threads in batches. Batches that fail or
// come back malformed fall back to keyword heuristics, so a partial
// Gemini outage degrades accuracy instead of dropping data.
func (s *AnalyzerService) CategorizeEmails(ctx context.Context, threads []model.EmailThread) []model.EmailSignal {
	signals := make([]model.EmailSignal, 0, len(threads))

	for start := 0; start < len(threads); start += maxEmailBatch {
		end := start + maxEmailBatch
		if end > len(threads) {
			end = len(threads)
		}
		batch := threads[start:end]

		if !s.config.IsEnabled() {
			signals = append(signals, s.mockCategorizeEmails(batch)...)
			continue
		}

		prompt := s.buildEmailPrompt(batch)
		response, err := s.callGemini(ctx, s.config.Models.EmailCategorize, prompt)
		if err != nil {
			signals = append(signals, s.mockCategorizeEmails(batch)...)
			continue
		}

		var parsed struct {
			Signals []model.EmailSignal `json:"signals"`
		}
		if err := json.Unmarshal([]byte(response), &parsed); err != nil {
			signals = append(signals, s.mockCategorizeEmails(batch)...)
			continue
		}

		signals = append(signals, sanitizeEmailSignals(parsed.Signals, batch)...)
	}

	return signals
}

// CategorizeMeetings classifies calendar events in batches
func (s *AnalyzerService) CategorizeMeetings(ctx context.Context, events []model.CalendarEvent) []model.MeetingSignal {
	signals := make([]model.MeetingSignal, 0, len(events))

	for start := 0; start < len(events); start += maxCalendarBatch {
		end := start + maxCalendarBatch
		if end > len(events) {
			end = len(events)
		}
		batch := events[start:end]

		if !s.config.IsEnabled() {
			signals = append(signals, s.mockCategorizeMeetings(batch)...)
			continue
		}

		prompt := s.buildCalendarPrompt(batch)
		response, err := s.callGemini(ctx, s.config.Models.CalendarCategorize, prompt)
		if err != nil {
			signals = append(signals, s.mockCategorizeMeetings(batch)...)
			continue
		}

		var parsed struct {
			Signals []model.MeetingSignal `json:"signals"`
		}
		if err := json.Unmarshal([]byte(response), &parsed); err != nil {
			signals = append(signals, s.mockCategorizeMeetings(batch)...)
			continue
		}

		signals = append(signals, sanitizeMeetingSignals(parsed.Signals, batch)...)
	}

	return signals
}

// SynthesizeSolutions asks the quality model for tailored automation
// suggestions. Returns nil when the API is unavailable so the caller
// falls back to rule-based recommendations.
func (s *AnalyzerService) SynthesizeSolutions(ctx context.Context, emailSignals []model.EmailSignal, meetingSignals []model.MeetingSignal) []model.AISolution {
	if !s.config.IsEnabled() || len(emailSignals)+len(meetingSignals) == 0 {
		return nil
	}

	prompt := s.buildSolutionsPrompt(emailSignals, meetingSignals)
	response, err := s.callGemini(ctx, s.config.Models.Solutions, prompt)
	if err != nil {
		return nil
	}

	var parsed struct {
		Solutions []model.AISolution `json:"solutions"`
	}
	if err := json.Unmarshal([]byte(response), &parsed); err != nil {
		return nil
	}

	solutions := parsed.Solutions
	if len(solutions) > maxSolutions {
		solutions = solutions[:maxSolutions]
	}
	for i := range solutions {
		if solutions[i].Name == "" {
			return nil
		}
	}
	return solutions
}

// sanitizeEmailSignals drops entries referencing unknown threads or
// carrying unknown categories, and clamps confidence to [0,1]
func sanitizeEmailSignals(signals []model.EmailSignal, batch []model.EmailThread) []model.EmailSignal {
	known := make(map[string]bool, len(batch))
	for _, t := range batch {
		known[t.ThreadID] = true
	}

	out := make([]model.EmailSignal, 0, len(signals))
	for _, sig := range signals {
		if !known[sig.ThreadID] || !model.KnownEmailCategory(sig.Category) {
			continue
		}
		if sig.Confidence < 0 {
			sig.Confidence = 0
		}
		if sig.Confidence > 1 {
			sig.Confidence = 1
		}
		out = append(out, sig)
	}
	return out
}

func sanitizeMeetingSignals(signals []model.MeetingSignal, batch []model.CalendarEvent) []model.MeetingSignal {
	known := make(map[string]bool, len(batch))
	for _, e := range batch {
		known[e.EventID] = true
	}

	out := make([]model.MeetingSignal, 0, len(signals))
	for _, sig := range signals {
		if !known[sig.EventID] {
			continue
		}
		if sig.Confidence < 0 {
			sig.Confidence = 0
		}
		if sig.Confidence > 1 {
			sig.Confidence = 1
		}
		out = append(out, sig)
	}
	return out
}

// mockCategorizeEmails is the keyword fallback used when the API is
// disabled or unreachable. Confidence stays at the trust threshold so
// mock signals still count, but never look more certain than the
// model's output would.
func (s *AnalyzerService) mockCategorizeEmails(batch []model.EmailThread) []model.EmailSignal {
	signals := make([]model.EmailSignal, 0, len(batch))
	for _, t := range batch {
		text := strings.ToLower(t.Subject + " " + t.Snippet)

		sig := model.EmailSignal{
			ThreadID:   t.ThreadID,
			Category:   model.CategoryTeamCoordination,
			Confidence: 0.7,
			Reasoning:  "keyword fallback",
		}

		switch {
		case containsAny(text, "unsubscribe", "newsletter", "promotion", "sale"):
			sig.Category = model.CategoryPersonalIgnore
		case containsAny(text, "invoice", "order", "receipt", "shipping", "purchase"):
			sig.Category = model.CategoryDelegatableOperational
			sig.TimeDrainType = "Recurring operational requests"
		case containsAny(text, "status", "update on", "any news", "checking in"):
			sig.Category = model.CategoryDelegatableOperational
			sig.TimeDrainType = "Status Update Requests"
		case containsAny(text, "urgent", "asap", "emergency", "broken", "down"):
			sig.Category = model.CategoryFirefighting
		case containsAny(text, "contract", "proposal", "partnership", "investor"):
			sig.Category = model.CategoryExternalCritical
		case containsAny(text, "strategy", "roadmap", "budget", "hiring"):
			sig.Category = model.CategoryStrategicInput
		}

		signals = append(signals, sig)
	}
	return signals
}

func (s *AnalyzerService) mockCategorizeMeetings(batch []model.CalendarEvent) []model.MeetingSignal {
	signals := make([]model.MeetingSignal, 0, len(batch))
	for _, e := range batch {
		text := strings.ToLower(e.Title + " " + e.Description)

		sig := model.MeetingSignal{
			EventID:    e.EventID,
			Category:   "Working Session",
			Confidence: 0.7,
			Reasoning:  "keyword fallback",
		}

		switch {
		case containsAny(text, "standup", "stand-up", "status", "sync", "check-in"):
			sig.Category = "Status Meeting"
			sig.IsWasteful = e.IsRecurring && !e.HasExternalAttendees
		case containsAny(text, "1:1", "one on one", "coaching"):
			sig.Category = "One on One"
		case containsAny(text, "planning", "roadmap", "quarterly", "review"):
			sig.Category = "Planning"
		case e.HasExternalAttendees:
			sig.Category = "External Meeting"
		}

		signals = append(signals, sig)
	}
	return signals
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// callGemini makes a request to the Gemini API
func (s *AnalyzerService) callGemini(ctx context.Context, modelName, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(modelName), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// Parse Gemini response structure
	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

// Prompt builders

func (s *AnalyzerService) buildEmailPrompt(batch []model.EmailThread) string {
	var b strings.Builder
	b.WriteString(`You are categorizing a founder's email threads to find delegatable and automatable work. Return ONLY valid JSON matching this schema:
{
  "signals": [
    {
      "threadId": "the thread id exactly as given",
      "category": "DELEGATABLE_OPERATIONAL" or "STRATEGIC_INPUT" or "TEAM_COORDINATION" or "EXTERNAL_CRITICAL" or "FIREFIGHTING" or "PERSONAL_IGNORE",
      "timeDrainType": "short label like 'Status Update Requests' or 'Information Request', empty if none",
      "confidence": 0.0 to 1.0,
      "reasoning": "one short sentence",
      "suggestedAction": "optional, e.g. 'Delegate to ops' or 'Automate with a shared dashboard'"
    }
  ]
}

Category guide:
- DELEGATABLE_OPERATIONAL: routine operations a team member could own (orders, invoices, scheduling, status requests)
- STRATEGIC_INPUT: genuinely needs the founder's judgment
- TEAM_COORDINATION: internal back-and-forth that could be streamlined
- EXTERNAL_CRITICAL: customers, partners, investors needing the founder
- FIREFIGHTING: urgent reactive problems
- PERSONAL_IGNORE: personal, promotional, or irrelevant content

Threads:
`)

	for _, t := range batch {
		fmt.Fprintf(&b, "- id=%s subject=%q messages=%d snippet=%q\n", t.ThreadID, t.Subject, t.MessageCount, t.Snippet)
	}

	b.WriteString("\nCategorize every thread. Include one signal per thread id.")
	return b.String()
}

func (s *AnalyzerService) buildCalendarPrompt(batch []model.CalendarEvent) string {
	var b strings.Builder
	b.WriteString(`You are reviewing a founder's calendar to find wasteful meetings. Return ONLY valid JSON matching this schema:
{
  "signals": [
    {
      "eventId": "the event id exactly as given",
      "category": "short label like 'Status Meeting', 'One on One', 'Planning', 'External Meeting'",
      "meetingType": "internal" or "external",
      "isWasteful": true or false,
      "confidence": 0.0 to 1.0,
      "reasoning": "one short sentence",
      "suggestedAction": "optional, e.g. 'Replace with async update'"
    }
  ]
}

A meeting is wasteful when it exists to relay information that could move async: recurring internal status meetings, large standing syncs with no decisions, meetings the founder attends only to listen.

Events:
`)

	for _, e := range batch {
		fmt.Fprintf(&b, "- id=%s title=%q duration=%dmin attendees=%d external=%t recurring=%t\n",
			e.EventID, e.Title, e.DurationMinutes, e.AttendeeCount, e.HasExternalAttendees, e.IsRecurring)
	}

	b.WriteString("\nCategorize every event. Include one signal per event id.")
	return b.String()
}

func (s *AnalyzerService) buildSolutionsPrompt(emailSignals []model.EmailSignal, meetingSignals []model.MeetingSignal) string {
	var b strings.Builder
	b.WriteString(`You are designing AI automation solutions for a founder based on their categorized email and calendar patterns. Return ONLY valid JSON matching this schema:
{
  "solutions": [
    {
      "name": "short solution name",
      "description": "2-3 sentences, concrete and outcome-focused, written to the founder",
      "tools": ["tool1", "tool2"]
    }
  ]
}

Propose at most 3 solutions, most impactful first. Base them only on the patterns below.

Email patterns:
`)

	for _, sig := range emailSignals {
		if sig.Category == model.CategoryPersonalIgnore {
			continue
		}
		fmt.Fprintf(&b, "- category=%s drain=%q action=%q\n", sig.Category, sig.TimeDrainType, sig.SuggestedAction)
	}

	b.WriteString("\nMeeting patterns:\n")
	for _, sig := range meetingSignals {
		fmt.Fprintf(&b, "- category=%q wasteful=%t action=%q\n", sig.Category, sig.IsWasteful, sig.SuggestedAction)
	}

	return b.String()
}
