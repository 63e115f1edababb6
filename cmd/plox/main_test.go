/*
File    : plox/cmd/plox/main_test.go
*/
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRunSource_GoldenOutput exercises the full pipeline end to end,
// the same style of source-in/stdout-out comparison as
// _examples/original_source/run_tests.py drives over the reference
// interpreters.
func TestRunSource_GoldenOutput(t *testing.T) {
	cases := []struct {
		name     string
		source   string
		want     string
		wantCode int
	}{
		{
			name:     "arithmetic and print",
			source:   `print 1 + 2 * 3;`,
			want:     "7\n",
			wantCode: exitOK,
		},
		{
			name: "fibonacci via recursion",
			source: `
				fun fib(n) {
					if (n < 2) return n;
					return fib(n - 1) + fib(n - 2);
				}
				print fib(8);
			`,
			want:     "21\n",
			wantCode: exitOK,
		},
		{
			name: "classes and inheritance",
			source: `
				class Animal {
					speak() { return "..."; }
				}
				class Dog < Animal {
					speak() { return "woof (" + super.speak() + ")"; }
				}
				print Dog().speak();
			`,
			want:     "woof (...)\n",
			wantCode: exitOK,
		},
		{
			name:     "parse error exits 65",
			source:   `var = 1;`,
			wantCode: exitErrors,
		},
		{
			name:     "runtime error exits 70",
			source:   `print 1 / 0;`,
			wantCode: exitRuntime,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			code := runSource(tc.source, &out)
			assert.Equal(t, tc.wantCode, code)
			if tc.want != "" {
				assert.Equal(t, tc.want, out.String())
			}
		})
	}
}

func TestRunFile_MissingFileExitsUsage(t *testing.T) {
	code := runFile("/nonexistent/path/does/not/exist.lox")
	assert.Equal(t, exitUsage, code)
}
