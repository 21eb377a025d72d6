package openaicompat

import "time"

// Known OpenAI-compatible endpoints.
const (
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	QwenModel       = "qwen-plus"
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	DeepSeekModel   = "deepseek-chat"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

const chatCompletionsPath = "/chat/completions"
