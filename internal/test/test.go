// Package test contains assertion helpers reporting the caller's position.
package test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/ava12/choice"
)

func fatalf(t *testing.T, message string, params ...any) {
	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}
	_, thisFile, _, _ := runtime.Caller(0)
	file := thisFile
	line := 0
	for i := 2; file == thisFile; i++ {
		_, file, line, _ = runtime.Caller(i)
	}
	t.Fatalf("%s at %s:%d", message, file, line)
}

func Assert(t *testing.T, cond bool, message string, params ...any) {
	if !cond {
		fatalf(t, message, params...)
	}
}

func Expect(t *testing.T, cond bool, expected, got any) {
	if !cond {
		fatalf(t, "expecting %v, got %v", expected, got)
	}
}

func ExpectBool(t *testing.T, expected, got bool) {
	Expect(t, expected == got, expected, got)
}

func ExpectInt(t *testing.T, expected, got int) {
	Expect(t, expected == got, expected, got)
}

func ExpectString(t *testing.T, expected, got string) {
	if expected != got {
		fatalf(t, "expecting %q, got %q", expected, got)
	}
}

func ExpectOneOf(t *testing.T, expected []string, got string) {
	for _, s := range expected {
		if s == got {
			return
		}
	}
	fatalf(t, "expecting one of %q, got %q", expected, got)
}

func ExpectNoError(t *testing.T, e error) {
	if e != nil {
		fatalf(t, "unexpected error: %s", e)
	}
}

func ExpectErrorCode(t *testing.T, expected int, e error) {
	if e != nil {
		ee, valid := e.(*choice.Error)
		if valid && ee.Code == expected {
			return
		}
	}

	fatalf(t, "expecting error code %d, got %v", expected, e)
}

func ExpectErrorPos(t *testing.T, line, col int, e error) {
	ee, valid := e.(*choice.Error)
	if !valid {
		fatalf(t, "expecting *choice.Error, got %v", e)
		return
	}
	if ee.Line != line || ee.Col != col {
		fatalf(t, "expecting error at line %d col %d, got %d, %d", line, col, ee.Line, ee.Col)
	}
}
