package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter reads interactive input from the terminal. It implements the
// gateway's credential Provider.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a prompter over the given reader and writer,
// defaulting to stdin and stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Solicit asks the user for an API key. An empty line declines.
func (p *Prompter) Solicit(ctx context.Context) (string, error) {
	return p.ReadLine(ctx, "Enter your Gemini API key (leave blank to skip)")
}

// ReadLine prompts and reads one trimmed line, respecting context
// cancellation.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	type result struct {
		err  error
		line string
	}
	resultCh := make(chan result, 1)

	go func() {
		line, err := p.reader.ReadString('\n')
		resultCh <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-resultCh:
		if res.err != nil && res.err != io.EOF {
			return "", fmt.Errorf("failed to read input: %w", res.err)
		}
		return strings.TrimSpace(res.line), nil
	}
}

// Confirm asks a yes/no question; only an explicit "y"/"yes" is true.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.ReadLine(ctx, question+" [y/N]")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
