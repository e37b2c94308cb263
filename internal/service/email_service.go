package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/KatzVentures/FounderLeverageDashboard/config"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
)

// EmailService sends the results summary email via Resend
type EmailService struct {
	apiKey string
	from   string
	client *http.Client
}

// NewEmailService creates a new email service. With no API key it
// becomes a no-op.
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		apiKey: cfg.ResendAPIKey,
		from:   cfg.ResendFromEmail,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// IsEnabled returns true if Resend is configured
func (s *EmailService) IsEnabled() bool {
	return s.apiKey != ""
}

// SendResults emails a respondent their score summary
func (s *EmailService) SendResults(ctx context.Context, to, name string, result *model.ResultRecord, stage model.Stage) error {
	if !s.IsEnabled() {
		log.Printf("[EMAIL] disabled, skipping results email to %s", to)
		return nil
	}

	reqBody := map[string]interface{}{
		"from":    "Founder Leverage <" + s.from + ">",
		"to":      []string{to},
		"subject": fmt.Sprintf("Your Leverage Score: %d — %s", result.Score, stage.Name),
		"html":    buildResultsHTML(name, result, stage),
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func buildResultsHTML(name string, result *model.ResultRecord, stage model.Stage) string {
	greeting := "Hi"
	if name != "" {
		greeting = "Hi " + name
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div style="font-family:sans-serif;max-width:600px;margin:0 auto">`)
	fmt.Fprintf(&b, `<h1>%s %s</h1>`, stage.Emoji, stage.Name)
	fmt.Fprintf(&b, `<p>%s, your Founder Leverage Score is <strong>%d/100</strong>.</p>`, greeting, result.Score)
	fmt.Fprintf(&b, `<p>%s</p>`, stage.Description)

	fmt.Fprintf(&b, `<h2>Where your score comes from</h2><ul>`)
	fmt.Fprintf(&b, `<li>Time Allocation: %d</li>`, result.ComponentScores.TimeAllocation)
	fmt.Fprintf(&b, `<li>Delegation Quality: %d</li>`, result.ComponentScores.DelegationQuality)
	fmt.Fprintf(&b, `<li>Strategic Focus: %d</li>`, result.ComponentScores.StrategicFocus)
	fmt.Fprintf(&b, `<li>Operating Rhythm: %d</li>`, result.ComponentScores.OperatingRhythm)
	fmt.Fprintf(&b, `</ul>`)

	if result.TimeLeak.TotalHoursWasted > 0 {
		fmt.Fprintf(&b, `<h2>Your biggest time leak</h2>`)
		fmt.Fprintf(&b, `<p><strong>%s</strong></p><p>%s</p>`, result.TimeLeak.TopLeak, result.TimeLeak.Description)
		fmt.Fprintf(&b, `<p>That's worth about $%d every month.</p>`, result.TimeLeak.MonthlyValue)
	}

	if len(result.AIOpportunities) > 0 {
		fmt.Fprintf(&b, `<h2>Top opportunities</h2><ol>`)
		for _, opp := range result.AIOpportunities {
			fmt.Fprintf(&b, `<li><strong>%s %s</strong> — %s (%s)</li>`, opp.Emoji, opp.Title, opp.TimeSaved, opp.ImplementationTime)
		}
		fmt.Fprintf(&b, `</ol>`)
	}

	fmt.Fprintf(&b, `</div>`)
	return b.String()
}
