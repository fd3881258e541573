// Package engine is the boundary to the external compartmental-neuron
// simulation engine. The engine owns all membrane biophysics; this package
// only ships scenario descriptions out and time-aligned voltage traces back.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/san-kum/neurovolt/internal/scenario"
)

// Runner executes an engine command for one scenario. The contract is
// simple: scenario JSON on stdin, a Recording as JSON on stdout.
type Runner struct {
	command string
	args    []string
}

// NewRunner parses an engine command line, e.g. "python engine.py".
func NewRunner(command string) (*Runner, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("engine: empty command")
	}
	return &Runner{command: fields[0], args: fields[1:]}, nil
}

// Run hands the scenario to the engine and decodes the recorded traces.
func (r *Runner) Run(ctx context.Context, sc *scenario.Scenario) (*Recording, error) {
	request, err := json.Marshal(sc)
	if err != nil {
		return nil, fmt.Errorf("engine: encode scenario: %w", err)
	}

	cmd := exec.CommandContext(ctx, r.command, r.args...)
	cmd.Stdin = bytes.NewReader(request)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("engine: %w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("engine: %w", err)
	}

	rec, err := DecodeRecording(stdout.Bytes())
	if err != nil {
		return nil, err
	}
	return rec, nil
}
