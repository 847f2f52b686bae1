package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/doeshing/claudectl/internal/domain"
	"github.com/doeshing/claudectl/internal/ports"
)

// Runner executes a command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Probe classifies expected containers using the runtime's process listing.
type Probe struct {
	binary   string
	timeout  time.Duration
	services []domain.ServiceDefinition
	run      Runner
}

// NewProbe builds a probe for the configured runtime and services.
func NewProbe(runtime domain.RuntimeSettings, services []domain.ServiceDefinition) *Probe {
	return &Probe{
		binary:   runtime.Binary,
		timeout:  runtime.Timeout,
		services: services,
		run:      execRunner,
	}
}

// WithRunner replaces the command runner.
func (p *Probe) WithRunner(run Runner) *Probe {
	p.run = run
	return p
}

// Services lists running container names and classifies every expected service.
// When the runtime itself cannot be queried a single error status named after
// the runtime is returned instead.
func (p *Probe) Services(ctx context.Context) []domain.ServiceStatus {
	running, err := p.runningContainers(ctx)
	if err != nil {
		return []domain.ServiceStatus{{Name: p.binary, State: domain.ServiceError, Message: err.Error()}}
	}

	statuses := make([]domain.ServiceStatus, 0, len(p.services))
	for _, svc := range p.services {
		status := domain.ServiceStatus{Name: svc.Name}
		switch {
		case running[svc.Container]:
			status.State = domain.ServiceRunning
		case svc.Optional:
			status.State = domain.ServiceOptional
		default:
			status.State = domain.ServiceStopped
		}
		statuses = append(statuses, status)
	}
	return statuses
}

func (p *Probe) runningContainers(ctx context.Context) (map[string]bool, error) {
	cctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := p.run(cctx, p.binary, "ps", "--format", "{{.Names}}")
	if err != nil {
		return nil, classify(cctx, err)
	}
	return parseNames(out), nil
}

func parseNames(out []byte) map[string]bool {
	names := map[string]bool{}
	for _, line := range strings.Split(string(out), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names[name] = true
		}
	}
	return names
}

func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ErrTimeout
	case errors.Is(err, exec.ErrNotFound):
		return ErrNotInstalled
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := firstLine(exitErr.Stderr)
		if msg == "" {
			msg = exitErr.Error()
		}
		return fmt.Errorf("%w: %s", ErrUnavailable, msg)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func firstLine(b []byte) string {
	line, _, _ := strings.Cut(strings.TrimSpace(string(b)), "\n")
	return strings.TrimSpace(line)
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitErr.Stderr = stderr.Bytes()
		}
		return stdout.Bytes(), err
	}
	return stdout.Bytes(), nil
}

var _ ports.ContainerProbe = (*Probe)(nil)
