// Package trivia fetches question batches from an Open Trivia DB-compatible
// HTTP endpoint and decodes them into plain question/answer data. Failures
// of any kind (network, status, payload) collapse into a single fetch error;
// partial batches are never returned.
package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Question types reported by the service.
const (
	TypeMultiple = "multiple"
	TypeBoolean  = "boolean"
)

// Request selects how many questions to fetch and, optionally, a service
// category id and difficulty.
type Request struct {
	Amount     int
	Category   int    // 0 means any
	Difficulty string // "", "easy", "medium", "hard"
}

// Question is one decoded trivia item. All text fields have HTML entities
// already unescaped.
type Question struct {
	Category         string
	Type             string // TypeMultiple or TypeBoolean
	Question         string
	CorrectAnswer    string
	IncorrectAnswers []string
}

// Client calls the trivia service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for the given endpoint with the given timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// response mirrors the service's wire format.
type response struct {
	ResponseCode int      `json:"response_code"`
	Results      []result `json:"results"`
}

type result struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// Fetch requests a batch of questions. It returns either the full decoded
// batch or an error; callers can treat any error as "fetch failed" and keep
// their existing state.
func (c *Client) Fetch(ctx context.Context, req Request) ([]Question, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("trivia fetch: amount must be positive, got %d", req.Amount)
	}

	q := url.Values{}
	q.Set("amount", strconv.Itoa(req.Amount))
	if req.Category > 0 {
		q.Set("category", strconv.Itoa(req.Category))
	}
	if req.Difficulty != "" {
		q.Set("difficulty", req.Difficulty)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating trivia request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetching trivia questions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trivia service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading trivia response: %w", err)
	}

	var decoded response
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("parsing trivia response: %w", err)
	}
	if decoded.ResponseCode != 0 {
		return nil, fmt.Errorf("trivia service rejected request (response_code %d)", decoded.ResponseCode)
	}

	questions := make([]Question, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		incorrect := make([]string, len(r.IncorrectAnswers))
		for i, a := range r.IncorrectAnswers {
			incorrect[i] = html.UnescapeString(a)
		}
		questions = append(questions, Question{
			Category:         html.UnescapeString(r.Category),
			Type:             r.Type,
			Question:         html.UnescapeString(r.Question),
			CorrectAnswer:    html.UnescapeString(r.CorrectAnswer),
			IncorrectAnswers: incorrect,
		})
	}
	return questions, nil
}
