package vectordb

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/claudectl/internal/domain"
	"github.com/doeshing/claudectl/internal/infrastructure/chroma"
	"github.com/doeshing/claudectl/internal/infrastructure/chroma/chromatest"
)

var standard = []domain.CollectionDefinition{
	{Name: "claude-memory", Description: "General conversation memory", Space: "cosine"},
	{Name: "code-context", Description: "Code snippets and technical context", Space: "cosine"},
	{Name: "architecture-decisions", Description: "Architecture decisions and rationale", Space: "cosine"},
	{Name: "project-notes", Description: "Project-specific notes and context", Space: "cosine"},
}

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func newService(url string) *Service {
	return &Service{
		Client: chroma.NewClient(domain.VectorDBSettings{
			URL:              url,
			HeartbeatTimeout: 2 * time.Second,
			RequestTimeout:   2 * time.Second,
		}),
		Collections:      standard,
		MemoryCollection: "claude-memory",
		Now:              func() time.Time { return fixedNow },
		NewID:            func() string { return "0000" },
	}
}

func TestRunCreatesStandardCollections(t *testing.T) {
	srv := chromatest.NewServer()
	defer srv.Close()
	srv.Seed("code-context")

	report, err := newService(srv.URL).Run(context.Background(), Options{})
	require.NoError(t, err)

	require.Len(t, report.Collections, 4)
	assert.Equal(t, domain.CollectionCreated, report.Collections[0].Outcome)
	assert.Equal(t, domain.CollectionExisted, report.Collections[1].Outcome)
	assert.Equal(t, 4, report.ReadyCount())
	assert.Len(t, report.Existing, 4)
	assert.Nil(t, report.Samples)
	assert.Nil(t, report.WriteTest)
	assert.Equal(t, "cosine", srv.Metadata("project-notes")["hnsw:space"])
}

func TestRunTwiceIsIdempotent(t *testing.T) {
	srv := chromatest.NewServer()
	defer srv.Close()
	svc := newService(srv.URL)

	_, err := svc.Run(context.Background(), Options{})
	require.NoError(t, err)
	report, err := svc.Run(context.Background(), Options{})
	require.NoError(t, err)

	for _, c := range report.Collections {
		assert.Equal(t, domain.CollectionExisted, c.Outcome, c.Name)
	}
	assert.Len(t, report.Existing, 4)
}

func TestRunContinuesAfterCreateFailure(t *testing.T) {
	srv := chromatest.NewServer()
	defer srv.Close()
	srv.FailCreate("architecture-decisions", http.StatusInternalServerError)

	report, err := newService(srv.URL).Run(context.Background(), Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.ReadyCount())
	assert.False(t, report.Collections[2].Ready())
	assert.Contains(t, report.Collections[2].Err, "architecture-decisions")
	assert.True(t, report.Collections[3].Ready())
}

func TestRunWithSamples(t *testing.T) {
	srv := chromatest.NewServer()
	defer srv.Close()

	report, err := newService(srv.URL).Run(context.Background(), Options{WithSamples: true})
	require.NoError(t, err)

	require.NotNil(t, report.Samples)
	assert.True(t, report.Samples.OK())
	assert.Equal(t, 3, report.Samples.Count)
	assert.Equal(t, SampleDocuments(fixedNow), srv.Documents("claude-memory"))
	assert.Equal(t, "Setup completed on 2026-03-01 09:30:00", srv.Documents("claude-memory")[0])
	assert.Contains(t, srv.Requests(), "GET /api/v1/collections/claude-memory")
}

func TestRunSamplesWithoutMemoryCollection(t *testing.T) {
	srv := chromatest.NewServer()
	defer srv.Close()
	srv.FailCreate("claude-memory", http.StatusInternalServerError)

	report, err := newService(srv.URL).Run(context.Background(), Options{WithSamples: true})
	require.NoError(t, err)

	require.NotNil(t, report.Samples)
	assert.False(t, report.Samples.OK())
	assert.Contains(t, report.Samples.Err, "collection not found")
	assert.Empty(t, srv.Documents("claude-memory"))
}

func TestRunWriteTest(t *testing.T) {
	srv := chromatest.NewServer()
	defer srv.Close()

	report, err := newService(srv.URL).Run(context.Background(), Options{WriteTest: true})
	require.NoError(t, err)

	require.NotNil(t, report.WriteTest)
	assert.True(t, report.WriteTest.OK())
	assert.Equal(t, "test_0000", report.WriteTest.ID)
	assert.Equal(t, []string{"Test document for initialization"}, srv.Documents("claude-memory"))
}

func TestRunUnreachable(t *testing.T) {
	srv := chromatest.NewServer()
	url := srv.URL
	srv.Close()

	report, err := newService(url).Run(context.Background(), Options{WithSamples: true})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreachable))
	assert.Empty(t, report.Collections)
	assert.Equal(t, url, report.URL)
}

func TestRunHeartbeatNotOK(t *testing.T) {
	srv := chromatest.NewServer()
	defer srv.Close()
	srv.SetHeartbeatStatus(http.StatusInternalServerError)

	_, err := newService(srv.URL).Run(context.Background(), Options{})

	assert.True(t, errors.Is(err, ErrUnreachable))
	assert.Equal(t, []string{"GET /api/v1/heartbeat"}, srv.Requests())
}

func TestNewIDDefaultsToUUID(t *testing.T) {
	svc := &Service{}

	id := svc.newID()

	assert.Len(t, id, 36)
}
