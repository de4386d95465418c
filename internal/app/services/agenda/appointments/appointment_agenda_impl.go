package appointments

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/agenda_dto"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type appointmentAgendaClient struct {
	BaseUrl string
	client  *http.Client
}

func NewAppointmentAgendaClient(baseUrl string, timeout time.Duration) contracts.AppointmentAgendaClient {
	return &appointmentAgendaClient{
		BaseUrl: baseUrl,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *appointmentAgendaClient) FindAppointmentsByPractitionerAndRange(ctx context.Context, practitionerID string, start, end time.Time) ([]agenda_dto.Appointment, error) {
	params := url.Values{}
	params.Set("start", start.Format(time.RFC3339))
	params.Set("end", end.Format(time.RFC3339))

	endpoint := fmt.Sprintf("%s/practitioners/%s/appointments?%s", c.BaseUrl, practitionerID, params.Encode())
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
		return nil, exceptions.ErrGetAgendaResource(fmt.Errorf("status %d", resp.StatusCode), constvars.ResourceAppointment)
	}

	var result struct {
		Data []agenda_dto.Appointment `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAppointment)
	}

	return result.Data, nil
}

func (c *appointmentAgendaClient) CreateAppointment(ctx context.Context, request *agenda_dto.Appointment) (*agenda_dto.Appointment, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/appointments", c.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusConflict {
		return nil, exceptions.ErrAppointmentConflict(fmt.Errorf("status %d", resp.StatusCode))
	}
	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, exceptions.ErrGetAgendaResource(fmt.Errorf("status %d", resp.StatusCode), constvars.ResourceAppointment)
	}

	var result struct {
		Data agenda_dto.Appointment `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAppointment)
	}

	return &result.Data, nil
}
