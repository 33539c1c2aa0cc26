package orderapi

import (
	"bytes"
	"context"
	"delivery-fixture-generator/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Sink implements ports.OrderSink against a remote order-creation endpoint.
type Sink struct {
	client
	ordersURL string
}

func NewSink(ordersURL, token string, timeout time.Duration) (*Sink, error) {
	if strings.TrimSpace(ordersURL) == "" {
		return nil, errors.New("order api sink: orders URL is empty")
	}
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("order api sink: bearer token is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Sink{
		client:    client{session: &http.Client{Timeout: timeout}, token: token},
		ordersURL: ordersURL,
	}, nil
}

// Submit sends one creation request. Only a 2xx response whose body carries
// a non-empty orderId counts as success.
func (s *Sink) Submit(ctx context.Context, order *domain.Order) domain.Result {
	summary := domain.Summarize(order)

	body, err := json.Marshal(NewCreateOrderRequest(order))
	if err != nil {
		return domain.Failure(fmt.Sprintf("encode payload: %v", err), summary)
	}

	req, err := s.newRequest(ctx, http.MethodPost, s.ordersURL, bytes.NewReader(body))
	if err != nil {
		return domain.Failure(err.Error(), summary)
	}

	resp, err := s.do(req)
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) {
			return domain.Failure(fmt.Sprintf("rejected: %v", he), summary)
		}
		return domain.Failure(fmt.Sprintf("transport: %v", err), summary)
	}
	defer resp.Body.Close()

	var decoded createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Failure(fmt.Sprintf("decode response: %v", err), summary)
	}

	if strings.TrimSpace(decoded.OrderID) == "" {
		return domain.Failure(fmt.Sprintf("status %d without orderId", resp.StatusCode), summary)
	}

	return domain.Success(decoded.OrderID)
}
