// Package openai implements the ai.Classifier interface against
// OpenAI-compatible chat completion APIs (OpenAI, DeepSeek, NVIDIA,
// SiliconFlow, local servers).
//
// Calls are made with zero temperature, JSON mode and a small output-token
// cap; responses are stripped of markdown fences and run
// through a light JSON repair pass before unmarshaling. No automatic
// retries: a failed or unparsable call is surfaced to the caller, which
// fails open.
package openai
