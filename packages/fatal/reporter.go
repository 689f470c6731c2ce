package fatal

import (
	"fmt"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/unitcheck/packages/assertions"
	"github.com/fatih/color"
)

// Reporter renders errors to a test log and stops the test.
type Reporter struct {
	noColor bool
	stack   bool
	prefix  string
}

// ReporterOption is a functional option for configuring a Reporter.
type ReporterOption func(*Reporter)

func NewReporter(opts ...ReporterOption) *Reporter {
	r := &Reporter{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithNoColor disables ANSI colors. Colors are already off when output is
// not a terminal or NO_COLOR is set.
func WithNoColor(nc bool) ReporterOption {
	return func(r *Reporter) {
		r.noColor = nc
	}
}

// WithStack appends the stack captured when the assertion failed.
func WithStack(s bool) ReporterOption {
	return func(r *Reporter) {
		r.stack = s
	}
}

// WithPrefix puts prefix in front of the headline, e.g. a step name.
func WithPrefix(prefix string) ReporterOption {
	return func(r *Reporter) {
		r.prefix = prefix
	}
}

// Default is used by the package-level functions.
var Default = NewReporter()

// Check does nothing when err is nil. Otherwise it logs err to t and calls
// t.FailNow.
func (r *Reporter) Check(t testing.TB, err error) {
	if err == nil {
		return
	}
	t.Helper()
	t.Log(r.Render(err))
	t.FailNow()
}

// Render formats err the way Check logs it.
func (r *Reporter) Render(err error) string {
	red := r.color(color.FgRed)
	bold := r.color(color.Bold)

	f, ok := assertions.AsFailure(err)
	if !ok {
		return fmt.Sprintf("%s%s %v", r.prefix, red("Error:"), err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s %s\n", r.prefix, red("✗"), bold("assertion failed"))
	b.WriteString(indent(f.Message(), "    "))
	if r.stack {
		b.WriteString("\n")
		stack := strings.TrimPrefix(fmt.Sprintf("%+v", f), f.Message()+"\n")
		b.WriteString(indent(stack, "      "))
	}
	return b.String()
}

func (r *Reporter) color(attrs ...color.Attribute) func(a ...any) string {
	c := color.New(attrs...)
	if r.noColor {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func indent(s, pad string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
