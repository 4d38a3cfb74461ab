package embeddings

import (
	"context"
	"fmt"

	"github.com/hireloop/radar/pkg/kernel"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	// Model and dimension of the vectors stored in the role_embedding
	// column; keep in sync with the pgvector column definition.
	Model     = "text-embedding-3-small"
	Dimension = 1536
)

// Generator creates embeddings for job titles and candidate role text.
type Generator struct {
	client *openai.Client
}

// NewGenerator creates a new embeddings generator.
func NewGenerator(apiKey string) *Generator {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &Generator{
		client: &client,
	}
}

// Embed creates an embedding vector for a single text.
func (g *Generator) Embed(ctx context.Context, text string) (kernel.Embedding, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	resp, err := g.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{text},
		},
		Model: openai.EmbeddingModelTextEmbedding3Small,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embedding data returned")
	}

	return toEmbedding(resp.Data[0].Embedding), nil
}

// EmbedBatch creates embeddings for multiple texts in one request. The
// result is parallel to the input: empty texts get a nil entry rather
// than failing the whole batch.
func (g *Generator) EmbedBatch(ctx context.Context, texts []string) ([]kernel.Embedding, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}

	valid := make([]string, 0, len(texts))
	positions := make([]int, 0, len(texts))
	for i, text := range texts {
		if text != "" {
			valid = append(valid, text)
			positions = append(positions, i)
		}
	}

	result := make([]kernel.Embedding, len(texts))
	if len(valid) == 0 {
		return result, nil
	}

	resp, err := g.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: valid,
		},
		Model: openai.EmbeddingModelTextEmbedding3Small,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}

	if len(resp.Data) != len(valid) {
		return nil, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(valid), len(resp.Data))
	}

	for i, data := range resp.Data {
		result[positions[i]] = toEmbedding(data.Embedding)
	}

	return result, nil
}

func toEmbedding(values []float64) kernel.Embedding {
	embedding := make(kernel.Embedding, len(values))
	for i, v := range values {
		embedding[i] = float32(v)
	}
	return embedding
}
