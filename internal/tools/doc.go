// Package tools exposes the ULD calculations through the text-in/text-out
// tool-call contract consumed by an agent orchestration layer. Every tool
// accepts JSON arguments and always returns a formatted text report; failures
// such as malformed payloads or unknown ULD codes are rendered into the
// report text, never returned as errors.
package tools
