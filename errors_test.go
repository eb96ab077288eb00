package spath_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Jumpaku/go-spath"
)

func TestErrVars_IsAndMessage(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
		msg      string
	}{
		{"ErrIndexOutOfRange", spath.ErrIndexOutOfRange, spath.ErrIndexOutOfRange, "index out of range"},
		{"ErrIndexOutOfRange2", spath.NewIndexOutOfRangeError(3, 2), spath.ErrIndexOutOfRange, "index out of range: index 3 for path of length 2"},
		{"ErrInvalidPath", spath.ErrInvalidPath, spath.ErrInvalidPath, "invalid path"},
		{"ErrInvalidPath2", spath.NewInvalidPathError("bad node", fmt.Errorf("cause")), spath.ErrInvalidPath, "invalid path: bad node: cause"},
	}

	for _, c := range cases {
		t.Run(c.name+"/IsWrapped", func(t *testing.T) {
			wrapped := fmt.Errorf("higher: %w", c.err)
			if !errors.Is(wrapped, c.sentinel) {
				t.Fatalf("errors.Is(wrapped, %v) = false, want true", c.sentinel)
			}
		})

		t.Run(c.name+"/Message", func(t *testing.T) {
			wrapped := fmt.Errorf("higher: %w", c.err)
			if !strings.Contains(wrapped.Error(), c.msg) {
				t.Fatalf("%s.Error() = %q does not contain %q", c.name, wrapped.Error(), c.msg)
			}
		})
	}
}

func TestInvalidPathError_UnwrapsCause(t *testing.T) {
	cause := errors.New("cause")
	err := spath.NewInvalidPathError("msg", cause)

	if !errors.Is(err, spath.ErrInvalidPath) {
		t.Errorf("errors.Is(err, ErrInvalidPath) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
	if errors.Is(err, spath.ErrIndexOutOfRange) {
		t.Errorf("errors.Is(err, ErrIndexOutOfRange) = true, want false")
	}
}
