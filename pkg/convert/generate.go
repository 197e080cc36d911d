//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/agentstation/starmap --repository.default-branch master --repository.path /pkg/convert

// Package convert provides utilities for converting AI model specifications
// between different formats including OpenAI and OpenRouter formats.
package convert