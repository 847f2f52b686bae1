package vectordb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/claudectl/internal/domain"
	"github.com/doeshing/claudectl/internal/ports"
)

// ErrUnreachable is returned when the heartbeat fails before any collection work.
var ErrUnreachable = errors.New("vector database is not reachable")

const (
	sampleSource      = "initialization"
	writeTestDocument = "Test document for initialization"
)

// Options selects the optional initialization steps.
type Options struct {
	WithSamples bool
	WriteTest   bool
}

// Service creates the standard collections through the vector database API.
type Service struct {
	Client           ports.CollectionAdmin
	Collections      []domain.CollectionDefinition
	MemoryCollection string
	Logger           ports.Logger
	Now              func() time.Time
	NewID            func() string
}

// Run checks connectivity, creates every standard collection and performs the
// requested optional steps. Only an unreachable database is returned as an
// error; step failures are recorded in the report.
func (s *Service) Run(ctx context.Context, opts Options) (domain.InitReport, error) {
	hb := s.Client.Heartbeat(ctx)
	report := domain.InitReport{URL: hb.URL}
	if !hb.Reachable {
		return report, fmt.Errorf("%w at %s: %s", ErrUnreachable, hb.URL, hb.Message)
	}

	for _, def := range s.Collections {
		report.Collections = append(report.Collections, s.create(ctx, def))
	}

	if opts.WithSamples {
		result := s.addSamples(ctx)
		report.Samples = &result
	}
	if opts.WriteTest {
		result := s.writeTest(ctx)
		report.WriteTest = &result
	}

	existing, err := s.Client.ListCollections(ctx)
	if err != nil {
		s.warn("failed to list collections", err, nil)
		report.ListErr = err.Error()
	}
	report.Existing = existing
	return report, nil
}

func (s *Service) create(ctx context.Context, def domain.CollectionDefinition) domain.CollectionResult {
	result := domain.CollectionResult{Name: def.Name}
	outcome, err := s.Client.CreateCollection(ctx, def)
	if err != nil {
		s.warn("failed to create collection", err, map[string]interface{}{"collection": def.Name})
		result.Err = err.Error()
		return result
	}
	result.Outcome = outcome
	return result
}

// SampleDocuments returns the documents inserted by the sample step.
func SampleDocuments(now time.Time) []string {
	return []string{
		"Setup completed on " + now.Format("2006-01-02 15:04:05"),
		"Claude Code optimization environment initialized",
		"Vector database ready for persistent memory across sessions",
	}
}

func (s *Service) addSamples(ctx context.Context) domain.StepResult {
	result := domain.StepResult{Collection: s.MemoryCollection}
	if _, err := s.Client.GetCollection(ctx, s.MemoryCollection); err != nil {
		s.warn("sample collection unavailable", err, map[string]interface{}{"collection": s.MemoryCollection})
		result.Err = err.Error()
		return result
	}

	now := s.now()
	docs := SampleDocuments(now)
	batch := domain.DocumentBatch{Documents: docs}
	for i := range docs {
		batch.IDs = append(batch.IDs, fmt.Sprintf("doc_%d", i))
		batch.Metadatas = append(batch.Metadatas, map[string]interface{}{
			"source":    sampleSource,
			"timestamp": now.Format(time.RFC3339),
		})
	}

	if err := s.Client.AddDocuments(ctx, s.MemoryCollection, batch); err != nil {
		s.warn("failed to add sample documents", err, map[string]interface{}{"collection": s.MemoryCollection})
		result.Err = err.Error()
		return result
	}
	result.Count = batch.Len()
	return result
}

func (s *Service) writeTest(ctx context.Context) domain.StepResult {
	result := domain.StepResult{Collection: s.MemoryCollection, ID: "test_" + s.newID()}
	batch := domain.DocumentBatch{
		IDs:       []string{result.ID},
		Documents: []string{writeTestDocument},
		Metadatas: []map[string]interface{}{{
			"type":      "test",
			"timestamp": s.now().Format(time.RFC3339),
		}},
	}
	if err := s.Client.AddDocuments(ctx, s.MemoryCollection, batch); err != nil {
		s.warn("write test failed", err, map[string]interface{}{"collection": s.MemoryCollection})
		result.Err = err.Error()
		return result
	}
	result.Count = 1
	return result
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) warn(msg string, err error, fields map[string]interface{}) {
	if s.Logger == nil {
		return
	}
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["error"] = err.Error()
	s.Logger.Warn(msg, fields)
}
