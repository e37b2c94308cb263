package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/KatzVentures/FounderLeverageDashboard/config"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
)

const notionAPIVersion = "2022-06-28"

// CRMService pushes qualified leads into a Notion database
type CRMService struct {
	apiKey     string
	databaseID string
	client     *http.Client
}

// NewCRMService creates a new CRM service. With no API key configured
// it becomes a no-op, so local development never needs Notion access.
func NewCRMService(cfg *config.Config) *CRMService {
	return &CRMService{
		apiKey:     cfg.NotionAPIKey,
		databaseID: cfg.NotionDatabaseID,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// IsEnabled returns true if Notion credentials are configured
func (s *CRMService) IsEnabled() bool {
	return s.apiKey != "" && s.databaseID != ""
}

// CreateLead writes one lead row to the configured Notion database
func (s *CRMService) CreateLead(ctx context.Context, lead *model.Lead) error {
	if !s.IsEnabled() {
		log.Printf("[CRM] disabled, skipping lead for %s", lead.Email)
		return nil
	}

	properties := map[string]interface{}{
		"Name": map[string]interface{}{
			"title": []map[string]interface{}{
				{"text": map[string]string{"content": lead.Name}},
			},
		},
		"Email": map[string]interface{}{
			"email": lead.Email,
		},
		"Score": map[string]interface{}{
			"number": lead.Score,
		},
		"Stage": map[string]interface{}{
			"select": map[string]string{"name": lead.StageName},
		},
	}
	if lead.RevenueRange != "" {
		properties["Revenue Range"] = map[string]interface{}{
			"select": map[string]string{"name": lead.RevenueRange},
		}
	}

	reqBody := map[string]interface{}{
		"parent":     map[string]string{"database_id": s.databaseID},
		"properties": properties,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.notion.com/v1/pages", bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", notionAPIVersion)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notion returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
