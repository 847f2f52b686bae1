package domain

// CollectionDefinition is a standard collection created during initialization.
type CollectionDefinition struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
	Space       string `yaml:"space" validate:"omitempty,oneof=cosine l2 ip"`
}

// Metadata is the body sent alongside the collection name.
func (d CollectionDefinition) Metadata() map[string]interface{} {
	meta := map[string]interface{}{}
	if d.Description != "" {
		meta["description"] = d.Description
	}
	if d.Space != "" {
		meta["hnsw:space"] = d.Space
	}
	return meta
}

// Collection is a descriptor returned by the vector database.
type Collection struct {
	ID       string                 `json:"id,omitempty"`
	Name     string                 `json:"name"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// CreateOutcome tells a fresh collection apart from one that already existed.
type CreateOutcome string

const (
	CollectionCreated CreateOutcome = "created"
	CollectionExisted CreateOutcome = "existed"
)

// DocumentBatch is the payload of a document insertion.
type DocumentBatch struct {
	IDs       []string                 `json:"ids"`
	Documents []string                 `json:"documents"`
	Metadatas []map[string]interface{} `json:"metadatas"`
}

// Len returns the number of documents in the batch.
func (b DocumentBatch) Len() int {
	return len(b.IDs)
}

// CollectionResult is the outcome of creating one standard collection.
// Outcome is empty when creation failed.
type CollectionResult struct {
	Name    string
	Outcome CreateOutcome
	Err     string
}

// Ready reports whether the collection exists after the attempt.
func (r CollectionResult) Ready() bool {
	return r.Outcome != ""
}

// StepResult is the outcome of an optional initialization step.
type StepResult struct {
	Collection string
	Count      int
	ID         string
	Err        string
}

// OK reports whether the step succeeded.
func (r StepResult) OK() bool {
	return r.Err == ""
}

// InitReport summarises one vector database initialization.
type InitReport struct {
	URL         string
	Collections []CollectionResult
	Samples     *StepResult
	WriteTest   *StepResult
	Existing    []Collection
	ListErr     string
}

// ReadyCount returns how many standard collections exist after the run.
func (r InitReport) ReadyCount() int {
	n := 0
	for _, c := range r.Collections {
		if c.Ready() {
			n++
		}
	}
	return n
}
