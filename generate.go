//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/agentstation/starmap --repository.default-branch master --repository.path /

// Package starmap provides a unified AI model catalog system with automatic
// updates, event hooks, and support for multiple storage backends.
package starmap
