package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, None},
		{"tagged", New(InputMissing, "no such file"), InputMissing},
		{"wrapped once", fmt.Errorf("outer: %w", New(OutOfSandbox, "escape")), OutOfSandbox},
		{"untagged", errors.New("boom"), Internal},
	}

	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Errorf("%s: KindOf = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	err := Wrap(GeneratorFailure, errors.New("exit status 1"), "datagen error")
	if got, want := err.Error(), "datagen error: exit status 1"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, err.Err) {
		t.Fatalf("expected wrapped cause to be reachable via errors.Is")
	}

	plain := New(Unrecognized, "no rule matched")
	if plain.Error() != "no rule matched" {
		t.Fatalf("unexpected message: %q", plain.Error())
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if OutOfSandbox.String() != "out_of_sandbox" {
		t.Fatalf("unexpected string: %q", OutOfSandbox.String())
	}
	if Kind(99).String() != "unknown" {
		t.Fatalf("out-of-range kind should stringify as unknown")
	}
}
