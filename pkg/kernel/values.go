package kernel

import "strings"

type Email string

func (e Email) String() string { return string(e) }

// IsValid performs a minimal structural check, full validation lives in the API layer.
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && strings.Contains(s[at:], ".")
}

type Phone string

func (p Phone) String() string { return string(p) }

type JobTitle string

func (j JobTitle) String() string { return string(j) }

type JobDescription string

func (j JobDescription) String() string { return string(j) }

// Embedding is a dense vector produced by an embedding model.
type Embedding []float32

func (e Embedding) IsZero() bool { return len(e) == 0 }
