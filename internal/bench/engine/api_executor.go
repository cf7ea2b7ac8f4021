package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/encalc/internal/dto"
	"github.com/DjordjeVuckovic/encalc/internal/rpn"
)

const DefaultAPITimeout = 30 * time.Second

// APIExecutor evaluates through a running encalc API.
type APIExecutor struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewAPIExecutor(name, baseURL string, timeout time.Duration) *APIExecutor {
	if timeout <= 0 {
		timeout = DefaultAPITimeout
	}
	return &APIExecutor{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (e *APIExecutor) Execute(ctx context.Context, expression string) (*Execution, error) {
	payload, err := json.Marshal(dto.EvalRequest{Expression: &expression})
	if err != nil {
		return nil, fmt.Errorf("api encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/v1/eval", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("api create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()
	latency := time.Since(start)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var evalResp dto.EvalResponse
		if err := json.Unmarshal(body, &evalResp); err != nil {
			return nil, fmt.Errorf("api parse response: %w", err)
		}
		return &Execution{Result: evalResp.Result, Latency: latency}, nil

	case http.StatusUnprocessableEntity:
		var errResp dto.ErrorBody
		if err := json.Unmarshal(body, &errResp); err != nil {
			return nil, fmt.Errorf("api parse error response: %w", err)
		}
		kind, err := rpn.ParseKind(errResp.Kind)
		if err != nil {
			return nil, fmt.Errorf("api error response: %w", err)
		}
		return &Execution{ErrorKind: kind, Latency: latency}, nil

	default:
		return nil, fmt.Errorf("api status %d: %s", resp.StatusCode, string(body))
	}
}

// Ping checks that the API reports itself healthy.
func (e *APIExecutor) Ping(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("api create health request: %w", err)
	}

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("api health: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api health status %d", resp.StatusCode)
	}
	return nil
}

func (e *APIExecutor) Name() string { return e.name }

func (e *APIExecutor) Close() error {
	e.client.CloseIdleConnections()
	return nil
}
