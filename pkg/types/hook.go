// Package types holds payload types shared between the dochook binaries.
package types

// HookInput is the JSON payload an assistant's prompt-submission hook
// delivers on stdin. Only Prompt is required by the engine; a missing
// SessionID is replaced with a generated one and a missing Cwd falls back
// to the working directory.
type HookInput struct {
	SessionID string `json:"session_id"`
	Cwd       string `json:"cwd"`
	Prompt    string `json:"prompt"`
	EventName string `json:"hook_event_name,omitempty"`
}
