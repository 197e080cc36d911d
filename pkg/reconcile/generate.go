//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/agentstation/starmap --repository.default-branch master --repository.path /pkg/reconcile

// Package reconcile provides advanced multi-source data reconciliation
// for AI model catalogs with field-level authority and provenance tracking.
package reconcile