package lang

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds a single interpreter invocation.
const DefaultTimeout = 30 * time.Second

// resultPrefix is the out-of-band token interpreters are asked to emit in
// front of each "<block id> <value>" pair.
const resultPrefix = "##RESULT:"

// runner invokes one external interpreter process and captures its stdout.
type runner struct {
	command string
	args    []string
	timeout time.Duration
}

func newRunner(command string, args ...string) runner {
	return runner{command: command, args: args, timeout: DefaultTimeout}
}

// run executes the interpreter with the base args plus extra, feeding stdin
// when non-empty. A non-zero exit is an error; callers translate any error
// into "no updates".
func (r runner) run(ctx context.Context, stdin string, extra ...string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.command, append(append([]string{}, r.args...), extra...)...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: %w", r.command, err)
	}
	return stdout.String(), nil
}

// parseResults scrapes result markers out of interpreter output. Lines that
// do not carry a well-formed "<prefix><id> <value>" are ignored; partial
// output is expected and normal.
func parseResults(output string) map[int]string {
	results := make(map[int]string)
	for _, line := range strings.Split(output, "\n") {
		rest, ok := strings.CutPrefix(line, resultPrefix)
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil || idx < 0 {
			continue
		}
		results[idx] = strings.Join(fields[1:], " ")
	}
	return results
}
