package ops

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"opsagent/internal/classify"
	"opsagent/internal/fault"
	"opsagent/pkg/sandbox"
)

type fakeGenerator struct {
	out string
	err error

	gotEmail string
}

func (f *fakeGenerator) Generate(_ context.Context, email string) (string, error) {
	f.gotEmail = email
	return f.out, f.err
}

// newTestLibrary builds a Library over a fresh temp sandbox.
func newTestLibrary(t *testing.T, gen Generator) (*Library, string) {
	t.Helper()
	root := t.TempDir()
	box, err := sandbox.New(root)
	require.NoError(t, err)
	return NewLibrary(box, gen, zap.NewNop()), root
}

func writeSandboxFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readSandboxFile(t *testing.T, root, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, name))
	require.NoError(t, err)
	return string(data)
}

func TestRunDispatchesByOperation(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{out: "Data generation complete."}
	lib, _ := newTestLibrary(t, gen)

	msg, err := lib.Run(context.Background(), classify.Match{
		Op:    classify.OpGenerateData,
		Email: "a@b.co",
	})
	require.NoError(t, err)
	require.Equal(t, "Data generated successfully: Data generation complete.", msg)
	require.Equal(t, "a@b.co", gen.gotEmail)
}

func TestRunUnknownOperation(t *testing.T) {
	t.Parallel()

	lib, _ := newTestLibrary(t, nil)
	_, err := lib.Run(context.Background(), classify.Match{Op: classify.OpUnknown})
	require.Error(t, err)
	require.Equal(t, fault.Unrecognized, fault.KindOf(err))
}

func TestGenerateDataFailure(t *testing.T) {
	t.Parallel()

	lib, _ := newTestLibrary(t, &fakeGenerator{err: errors.New("exit status 2")})
	_, err := lib.GenerateData(context.Background(), "a@b.co")
	require.Error(t, err)
	require.Equal(t, fault.GeneratorFailure, fault.KindOf(err))
}
