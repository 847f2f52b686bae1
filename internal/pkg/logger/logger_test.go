package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// LoggerTestSuite tests the zerolog-backed logger
type LoggerTestSuite struct {
	suite.Suite
	out *bytes.Buffer
}

func (s *LoggerTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
}

func (s *LoggerTestSuite) TestQuietLoggerDropsInfo() {
	log := New(s.out, false)

	log.Debug("debug message", nil)
	log.Info("info message", nil)

	s.Empty(s.out.String())
}

func (s *LoggerTestSuite) TestQuietLoggerKeepsWarnings() {
	log := New(s.out, false)

	log.Warn("metrics store unavailable", map[string]interface{}{"path": "/tmp/stats.db"})

	output := s.out.String()
	s.Contains(output, "metrics store unavailable")
	s.Contains(output, "/tmp/stats.db")
}

func (s *LoggerTestSuite) TestVerboseLoggerKeepsDebug() {
	log := New(s.out, true)

	log.Debug("probing containers", map[string]interface{}{"runtime": "docker"})

	output := s.out.String()
	s.Contains(output, "probing containers")
	s.Contains(output, "docker")
}

func (s *LoggerTestSuite) TestErrorIncludesCause() {
	log := New(s.out, false)

	log.Error("create collection failed", errors.New("connection refused"), map[string]interface{}{"collection": "code-context"})

	output := s.out.String()
	s.Contains(output, "create collection failed")
	s.Contains(output, "connection refused")
	s.Contains(output, "code-context")
}

func (s *LoggerTestSuite) TestNopDiscards() {
	log := Nop()
	s.NotPanics(func() {
		log.Error("ignored", errors.New("boom"), nil)
	})
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}
