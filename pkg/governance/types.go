package governance

import (
	"time"
)

// Resource represents the base structure for all governance API resources.
type Resource struct {
	ID       string     `json:"id"                 yaml:"id"`
	Name     string     `json:"name"               yaml:"name"`
	Created  *time.Time `json:"created,omitempty"  yaml:"created,omitempty"`
	Modified *time.Time `json:"modified,omitempty" yaml:"modified,omitempty"`
}

// Reference points at another resource by type and ID.
type Reference struct {
	Type string `json:"type"           yaml:"type"`
	ID   string `json:"id"             yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// ListResponse represents a paginated list response.
type ListResponse[T any] struct {
	Items  []T `json:"items"            yaml:"items"`
	Total  int `json:"total"            yaml:"total"`
	Offset int `json:"offset,omitempty" yaml:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"  yaml:"limit,omitempty"`
}

// Task represents an asynchronous server-side task.
type Task struct {
	ID       string     `json:"id"                 yaml:"id"`
	Type     string     `json:"type"               yaml:"type"`
	Status   string     `json:"status"             yaml:"status"`
	Created  *time.Time `json:"created,omitempty"  yaml:"created,omitempty"`
	Messages []string   `json:"messages,omitempty" yaml:"messages,omitempty"`
}
