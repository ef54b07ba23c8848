// Package llm provides the language model clients used to extract search filters
// from natural-language flight queries. It supports the OpenAI and Gemini APIs,
// with rate limiting applied in front of every provider.
package llm
