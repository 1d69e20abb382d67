package typemap

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Rana718/spring-helper/internal/logger"
	"github.com/Rana718/spring-helper/internal/types"
	"github.com/fatih/color"
)

// PromptResolver asks the operator for a Java type and blocks until a line
// is entered or ctx is done. The line is used verbatim, minus its line ending.
type PromptResolver struct {
	reader *bufio.Reader
	out    io.Writer
	log    logger.Logger

	// pending holds a read abandoned by a cancelled prompt. The next prompt
	// takes its line instead of reading concurrently.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

func NewPromptResolver(in io.Reader, out io.Writer, log logger.Logger) *PromptResolver {
	if log == nil {
		log = logger.Discard()
	}
	return &PromptResolver{
		reader: bufio.NewReader(in),
		out:    out,
		log:    log,
	}
}

func (p *PromptResolver) ResolveType(ctx context.Context, column types.ColumnDescriptor) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("type prompt for column %q cancelled: %w", column.Name, err)
	}

	yellow := color.New(color.FgYellow)
	yellow.Fprintf(p.out, "\n⚠️  Column name %q has unknown type %q.\n", column.Name, column.NativeType)
	fmt.Fprintln(p.out, "Please specify a valid Java type: (Press Enter/Return to continue, Ctrl+C to cancel)")

	line, err := p.readLine(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		fmt.Fprintln(p.out)
		return "", fmt.Errorf("type prompt for column %q cancelled: %w", column.Name, err)
	}
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read operator input: %w", err)
	}

	javaType := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	if javaType == "" {
		p.log.Warn("empty Java type accepted", "column", column.Name, "native_type", column.NativeType)
	}
	return javaType, nil
}

// readLine reads one line on a separate goroutine so a cancelled context
// releases the caller while stdin stays blocked.
func (p *PromptResolver) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		p.pending = make(chan readResult, 1)
		go func(ch chan<- readResult) {
			line, err := p.reader.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}(p.pending)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-p.pending:
		p.pending = nil
		return r.line, r.err
	}
}
