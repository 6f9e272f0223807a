package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://api-inference.huggingface.co"

	// Models consumed by this application.
	ModelSentenceSimilarity = "sentence-transformers/all-MiniLM-L6-v2"
	ModelQuestionAnswering  = "distilbert-base-cased-distilled-squad"
)

var (
	ErrMissingAPIKey       = errors.New("hugging face api key is not configured")
	ErrUpstreamUnavailable = errors.New("hugging face inference service unavailable")
	ErrMalformedResponse   = errors.New("malformed hugging face response")
)

// Client is a thin JSON client for the Hugging Face Inference API. Calls are
// synchronous and bounded by the http client timeout; there is no retry and
// failures surface immediately to the caller.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL string, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type similarityPayload struct {
	Inputs similarityInputs `json:"inputs"`
}

type similarityInputs struct {
	SourceSentence string   `json:"source_sentence"`
	Sentences      []string `json:"sentences"`
}

// SentenceSimilarity scores each sentence against the source sentence.
// The upstream model returns one cosine-similarity float in [0, 1] per sentence.
func (c *Client) SentenceSimilarity(ctx context.Context, source string, sentences []string) ([]float64, error) {
	payload := similarityPayload{
		Inputs: similarityInputs{
			SourceSentence: source,
			Sentences:      sentences,
		},
	}

	body, err := c.post(ctx, ModelSentenceSimilarity, payload)
	if err != nil {
		return nil, err
	}

	var scores []float64
	if err := json.Unmarshal(body, &scores); err != nil {
		return nil, fmt.Errorf("%w: expected score array: %s", ErrMalformedResponse, truncate(body))
	}
	if len(scores) != len(sentences) {
		return nil, fmt.Errorf("%w: got %d scores for %d sentences", ErrMalformedResponse, len(scores), len(sentences))
	}

	return scores, nil
}

type qaPayload struct {
	Inputs qaInputs `json:"inputs"`
}

type qaInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// QAResult is the extractive answer returned by a question-answering model.
// Score is model confidence in [0, 1].
type QAResult struct {
	Score  float64 `json:"score"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Answer string  `json:"answer"`
}

// QuestionAnswering extracts an answer span for the question from the passage.
func (c *Client) QuestionAnswering(ctx context.Context, question string, passage string) (QAResult, error) {
	payload := qaPayload{
		Inputs: qaInputs{
			Question: question,
			Context:  passage,
		},
	}

	body, err := c.post(ctx, ModelQuestionAnswering, payload)
	if err != nil {
		return QAResult{}, err
	}

	var result QAResult
	if err := json.Unmarshal(body, &result); err != nil {
		return QAResult{}, fmt.Errorf("%w: expected answer object: %s", ErrMalformedResponse, truncate(body))
	}

	return result, nil
}

type upstreamError struct {
	Error string `json:"error"`
}

func (c *Client) post(ctx context.Context, model string, payload interface{}) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode inference payload: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	body := buf.Bytes()

	if resp.StatusCode != http.StatusOK {
		var ue upstreamError
		if err := json.Unmarshal(body, &ue); err == nil && ue.Error != "" {
			return nil, fmt.Errorf("%w: %s (status %d)", ErrUpstreamUnavailable, ue.Error, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	// The API occasionally returns 200 with an error body.
	var ue upstreamError
	if err := json.Unmarshal(body, &ue); err == nil && ue.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, ue.Error)
	}

	return body, nil
}

func truncate(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
