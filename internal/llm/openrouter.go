package llm

const openRouterBaseURL = "https://openrouter.ai/api/v1"

var openRouterModels = map[string]string{
	"google-gemini-2.0-flash-exp": "google/gemini-2.0-flash-exp:free",
	"meta-llama-3.3-70b":          "meta-llama/llama-3.3-70b-instruct:free",
	"deepseek-v3":                 "deepseek/deepseek-chat:free",
}

// NewOpenRouterProvider creates a provider backed by OpenRouter's
// OpenAI-compatible API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openRouterBaseURL
	}
	return newOpenAIProviderRaw(cfg.APIKey, baseURL, cfg.Model, openRouterModels)
}
