package slots

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/agenda_dto"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type slotAgendaClient struct {
	BaseUrl string
	client  *http.Client
}

func NewSlotAgendaClient(baseUrl string, timeout time.Duration) contracts.SlotAgendaClient {
	return &slotAgendaClient{
		BaseUrl: baseUrl,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *slotAgendaClient) FindSlotsByPractitionerAndRange(ctx context.Context, practitionerID string, start, end time.Time, appointmentType string) ([]agenda_dto.BackendSlot, error) {
	params := url.Values{}
	params.Set("start", start.Format(time.RFC3339))
	params.Set("end", end.Format(time.RFC3339))
	if appointmentType != "" {
		params.Set("type", appointmentType)
	}

	endpoint := fmt.Sprintf("%s/practitioners/%s/slots?%s", c.BaseUrl, practitionerID, params.Encode())
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
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
		return nil, exceptions.ErrGetAgendaResource(fmt.Errorf("status %d", resp.StatusCode), constvars.ResourceSlot)
	}

	var result struct {
		Data []agenda_dto.BackendSlot `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceSlot)
	}

	return result.Data, nil
}
