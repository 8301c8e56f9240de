package llm

// Config holds the connection settings for the Ollama client.
type Config struct {
	Endpoint  string
	Model     string // default model; overridable per request
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns a Config pointed at a local Ollama instance.
// Generation on CPU-only hosts is slow, hence the generous timeout.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "http://localhost:11434",
		Model:     "llama3",
		TimeoutMs: 60000,
		LogCalls:  false,
	}
}
