// Package llm asks a hosted language model for savings and income ideas
// based on an analysis's spending. Anthropic and Gemini are supported;
// responses are cached and requests rate limited.
package llm
