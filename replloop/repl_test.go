/*
File    : plox/replloop/repl_test.go
*/
package replloop

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/plox/diagnostics"
	"github.com/akashmaji946/plox/interpreter"
)

func newTestRepl(writer *bytes.Buffer) *Repl {
	r := New("banner", "v0", "nobody", "----", "MIT", "plox> ")
	sink := diagnostics.New(writer)
	r.interp = interpreter.New(sink, writer)
	return r
}

func TestRepl_EvalLineExecutesStatement(t *testing.T) {
	var out bytes.Buffer
	r := newTestRepl(&out)
	sink := diagnostics.New(&out)
	r.evalLine(&out, sink, `print 1 + 2;`)
	assert.Equal(t, "3\n", out.String())
}

func TestRepl_BareExpressionFallbackPrintsValue(t *testing.T) {
	var out bytes.Buffer
	r := newTestRepl(&out)
	sink := diagnostics.New(&out)
	r.evalLine(&out, sink, `1 + 2`)
	assert.Contains(t, out.String(), "3")
}

func TestRepl_StatePersistsAcrossLines(t *testing.T) {
	var out bytes.Buffer
	r := newTestRepl(&out)
	sink := diagnostics.New(&out)
	r.evalLine(&out, sink, `var x = 10;`)
	out.Reset()
	r.evalLine(&out, sink, `print x;`)
	assert.Equal(t, "10\n", out.String())
}

func TestRepl_BareExpressionRuntimeErrorIsReported(t *testing.T) {
	var out bytes.Buffer
	r := newTestRepl(&out)
	sink := diagnostics.New(&out)
	r.evalLine(&out, sink, `undefined_name`)
	assert.Contains(t, out.String(), "RuntimeError")
}
