package query

import (
	"context"
	"errors"
	"fmt"

	"tasklog/internal/domain"
	"tasklog/internal/llm"
)

var (
	// ErrGateway indicates the LLM server could not produce an answer:
	// connection failure, timeout, bad status, or malformed response.
	ErrGateway = errors.New("llm gateway error")

	// ErrNoTasks indicates the log is empty; no request is made.
	ErrNoTasks = errors.New("no tasks found in the log")
)

// RecordReader supplies the records to answer questions over.
// *store.Store satisfies it.
type RecordReader interface {
	ReadAll() ([]domain.Record, error)
}

// Gateway turns stored records plus a natural-language question into an
// LLM-backed answer.
type Gateway struct {
	store  RecordReader
	client llm.Client
}

// NewGateway creates a Gateway over a record source and an LLM client.
func NewGateway(store RecordReader, client llm.Client) *Gateway {
	return &Gateway{store: store, client: client}
}

// Answer reads the whole log, embeds it in a prompt together with the
// question, and relays the model's answer. model may be empty to use the
// client's configured default. Exactly one generation request is issued;
// failures are never retried.
func (g *Gateway) Answer(ctx context.Context, question, model string) (string, error) {
	records, err := g.store.ReadAll()
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", ErrNoTasks
	}

	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Model:        model,
		SystemPrompt: systemPrompt,
		UserPrompt:   buildUserPrompt(records, question),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	return resp.Text, nil
}
