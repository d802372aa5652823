package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"station/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrInputClosed ends the session. It wraps the read error, io.EOF included.
var ErrInputClosed = errors.New("input closed")

// maxChoiceAttempts bounds re-prompts for an out-of-range enumerated choice.
const maxChoiceAttempts = 3

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) println(args ...any) {
	_, _ = fmt.Fprintln(p.out, args...)
}

// text prints prompt and reads one trimmed line. A last line without a
// newline still counts.
func (p *prompter) text(prompt string) (string, error) {
	p.printf("%s", prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}
	return strings.TrimSpace(line), nil
}

// integer re-prompts until the answer parses.
func (p *prompter) integer(prompt string) (int, error) {
	for {
		s, err := p.text(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, nil
		}
		p.println("Please enter a whole number.")
	}
}

// amount re-prompts until the answer is a non-negative decimal.
func (p *prompter) amount(prompt string) (decimal.Decimal, error) {
	for {
		s, err := p.text(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(s)
		if err == nil && !d.IsNegative() {
			return d, nil
		}
		p.println("Please enter a non-negative amount.")
	}
}

// choice reads a number in [lo, hi]. Malformed input is re-prompted freely;
// an out-of-range number counts as an attempt and the third one aborts the
// operation with an errs.ValueIsOutOfRangeError. Nothing is clamped.
func (p *prompter) choice(prompt, param string, lo, hi int) (int, error) {
	var last int
	for range maxChoiceAttempts {
		n, err := p.integer(prompt)
		if err != nil {
			return 0, err
		}
		if n >= lo && n <= hi {
			return n, nil
		}
		last = n
		p.printf("Choose a number from %d to %d.\n", lo, hi)
	}

	return 0, errs.NewValueIsOutOfRangeErrorWithCause(param, last, lo, hi,
		fmt.Errorf("gave up after %d attempts", maxChoiceAttempts))
}

type menuValue interface {
	~int
	fmt.Stringer
}

// chooseEnum lists values with their codes and reads one of them.
func chooseEnum[T menuValue](p *prompter, label, param string, values []T) (T, error) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d %s", int(v), v)
	}

	prompt := fmt.Sprintf("%s (%s): ", label, strings.Join(parts, ", "))
	n, err := p.choice(prompt, param, int(values[0]), int(values[len(values)-1]))
	if err != nil {
		var zero T
		return zero, err
	}
	return T(n), nil
}
