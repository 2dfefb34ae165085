package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// User-facing guard messages. The UI renders these verbatim as assistant
// turns, so the wording is part of the contract.
const (
	MsgMissingCredential = "Please enter a valid API key."
	MsgEmptyInput        = "Please enter a valid message."
)

const noResponsePlaceholder = "No response"

// Kind classifies the outcome of a completion call.
type Kind int

const (
	KindReply Kind = iota
	KindMissingCredential
	KindEmptyInput
	KindTransportError
	KindHTTPError
	KindMalformedResponse
)

// Result is the outcome of one completion call. Callers branch on Kind;
// Display produces the text the UI shows, whatever the outcome.
type Result struct {
	Kind    Kind
	Text    string // reply text, set only for KindReply
	Err     error
	RawBody string // raw upstream body, when one was obtained
}

// Display renders the result as transcript text. Failures are rendered
// inline as if the assistant had spoken them.
func (r Result) Display() string {
	switch r.Kind {
	case KindReply:
		return r.Text
	case KindMissingCredential:
		return MsgMissingCredential
	case KindEmptyInput:
		return MsgEmptyInput
	default:
		body := r.RawBody
		if body == "" {
			body = noResponsePlaceholder
		}
		return fmt.Sprintf("Error: %v\nResponse: %s", r.Err, body)
	}
}

// Client sends single-turn chat completion requests to an
// OpenRouter-compatible endpoint. It is stateless; the credential arrives
// with every call and is never retained or logged.
type Client struct {
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewClient builds a client for the given endpoint and model. A zero
// timeout leaves the transport default in place.
func NewClient(apiURL, model string, timeout time.Duration) *Client {
	return &Client{
		apiURL:     apiURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// OpenRouter speaks the OpenAI chat-completions wire format.

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends userText as a single-turn completion request. Only the
// latest turn goes upstream; the model sees no prior history. Blank inputs
// short-circuit before any network activity.
func (c *Client) Complete(ctx context.Context, credential, userText string) Result {
	if strings.TrimSpace(credential) == "" {
		return Result{Kind: KindMissingCredential}
	}
	if strings.TrimSpace(userText) == "" {
		return Result{Kind: KindEmptyInput}
	}

	payload := chatCompletionRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: userText}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Kind: KindTransportError, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return Result{Kind: KindTransportError, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Kind: KindTransportError, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Kind: KindTransportError, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{
			Kind:    KindHTTPError,
			Err:     fmt.Errorf("upstream returned %s", resp.Status),
			RawBody: string(raw),
		}
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Result{
			Kind:    KindMalformedResponse,
			Err:     fmt.Errorf("failed to decode response: %w", err),
			RawBody: string(raw),
		}
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return Result{
			Kind:    KindMalformedResponse,
			Err:     fmt.Errorf("response contains no completion text"),
			RawBody: string(raw),
		}
	}

	return Result{Kind: KindReply, Text: parsed.Choices[0].Message.Content}
}
