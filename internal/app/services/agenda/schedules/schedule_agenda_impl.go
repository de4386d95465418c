package schedules

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/agenda_dto"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type scheduleAgendaClient struct {
	BaseUrl string
	client  *http.Client
}

func NewScheduleAgendaClient(baseUrl string, timeout time.Duration) contracts.ScheduleAgendaClient {
	return &scheduleAgendaClient{
		BaseUrl: baseUrl,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *scheduleAgendaClient) FindWindowsByPractitionerID(ctx context.Context, practitionerID string) ([]agenda_dto.AvailabilityWindow, error) {
	url := fmt.Sprintf("%s/practitioners/%s/availability-windows", c.BaseUrl, practitionerID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, decodeAgendaError(resp, constvars.ResourceSchedule)
	}

	var result struct {
		Data []agenda_dto.AvailabilityWindow `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceSchedule)
	}

	return result.Data, nil
}

func (c *scheduleAgendaClient) ListPractitionerIDs(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/practitioners", c.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, decodeAgendaError(resp, constvars.ResourcePractitioner)
	}

	var result struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePractitioner)
	}

	ids := make([]string, 0, len(result.Data))
	for _, entry := range result.Data {
		if entry.ID != "" {
			ids = append(ids, entry.ID)
		}
	}
	return ids, nil
}

func decodeAgendaError(resp *http.Response, resource string) error {
	var outcome struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil || outcome.Message == "" {
		return exceptions.ErrGetAgendaResource(fmt.Errorf("status %d", resp.StatusCode), resource)
	}
	return exceptions.ErrGetAgendaResource(fmt.Errorf("status %d: %s", resp.StatusCode, outcome.Message), resource)
}
