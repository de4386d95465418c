package exceptions

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/agenda_dto"
	"agenda-service/internal/pkg/constvars"
	pkgexceptions "agenda-service/internal/pkg/exceptions"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type exceptionAgendaClient struct {
	BaseUrl string
	client  *http.Client
}

func NewExceptionAgendaClient(baseUrl string, timeout time.Duration) contracts.ExceptionAgendaClient {
	return &exceptionAgendaClient{
		BaseUrl: baseUrl,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *exceptionAgendaClient) FindExceptionsByPractitionerAndDate(ctx context.Context, practitionerID, date string) ([]agenda_dto.Exception, error) {
	params := url.Values{}
	params.Set("date", date)

	endpoint := fmt.Sprintf("%s/practitioners/%s/exceptions?%s", c.BaseUrl, practitionerID, params.Encode())
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, pkgexceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, pkgexceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, pkgexceptions.ErrGetAgendaResource(fmt.Errorf("status %d", resp.StatusCode), constvars.ResourceException)
	}

	var result struct {
		Data []agenda_dto.Exception `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, pkgexceptions.ErrDecodeResponse(err, constvars.ResourceException)
	}

	return result.Data, nil
}
