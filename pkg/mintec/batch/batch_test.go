package batch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/bennofs/mintec/pkg/mintec"
	"github.com/bennofs/mintec/pkg/mintec/certificate"
	"github.com/bennofs/mintec/pkg/mintec/models"
	"github.com/bennofs/mintec/pkg/mintec/testsupport"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// countingFiller is safe for concurrent use.
type countingFiller struct {
	opened atomic.Int32
}

func (c *countingFiller) Open(template []byte) (certificate.Form, error) {
	c.opened.Add(1)
	return nopForm{}, nil
}

type nopForm struct{}

func (nopForm) SetField(name, value string) error { return nil }

func (nopForm) Seal(w io.Writer) error {
	_, err := io.WriteString(w, "%PDF-test")
	return err
}

func (nopForm) Close() error { return nil }

func options(filler certificate.Filler) mintec.Options {
	opts := mintec.DefaultOptions()
	opts.Filler = filler
	return opts
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()

	testsupport.NewApplication(t).Save(filepath.Join(dir, "a.xlsx"))
	testsupport.NewApplication(t).Set("A3", "0.9.0").Save(filepath.Join(dir, "b.xlsx"))
	testsupport.NewApplication(t).Set("D11", 10).Save(filepath.Join(dir, "c.xlsx"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "d.xlsx"), []byte("not a workbook"), 0644))

	jobs, err := Discover([]string{dir}, out)
	require.NoError(t, err)
	require.Len(t, jobs, 4)

	filler := &countingFiller{}
	results := Run(context.Background(), jobs, []byte("%PDF"), options(filler), Config{Workers: 2}, zaptest.NewLogger(t))
	require.Len(t, results, 4)

	for i, r := range results {
		assert.Equal(t, i, r.ID)
	}
	wantStatus := []models.Status{models.StatusOK, models.StatusFail, models.StatusWarn, models.StatusFail}
	for i, want := range wantStatus {
		assert.Equal(t, want, results[i].Status, results[i].Input)
	}

	assert.True(t, results[0].Rendered)
	data, err := os.ReadFile(filepath.Join(out, "a.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-test", string(data))

	assert.False(t, results[1].Rendered)
	assert.NoFileExists(t, filepath.Join(out, "b.pdf"))
	assert.Contains(t, results[1].Message(), "A3: incompatible form version")

	assert.True(t, results[2].Rendered)
	assert.FileExists(t, filepath.Join(out, "c.pdf"))

	require.Error(t, results[3].Err)
	assert.True(t, strings.HasPrefix(results[3].Message(), "I/O error: "), results[3].Message())

	assert.EqualValues(t, 2, filler.opened.Load())
}

func TestRunSkipExisting(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.xlsx")
	output := filepath.Join(dir, "a.pdf")
	testsupport.NewApplication(t).Save(input)
	require.NoError(t, os.WriteFile(output, []byte("old"), 0644))

	filler := &countingFiller{}
	jobs := []Job{{ID: 0, Input: input, Output: output}}
	results := Run(context.Background(), jobs, nil, options(filler), Config{Workers: 1, SkipExisting: true}, nil)

	require.Len(t, results, 1)
	assert.True(t, results[0].Skipped)
	assert.Zero(t, filler.opened.Load())
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []Job{{ID: 1, Input: "x.xlsx"}, {ID: 0, Input: "y.xlsx"}}
	results := Run(ctx, jobs, nil, options(&countingFiller{}), Config{Workers: 4}, nil)

	require.Len(t, results, 2)
	for i, r := range results {
		assert.Equal(t, i, r.ID)
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.Equal(t, models.StatusFail, r.Status)
	}
}

func TestRunUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "legacy.xls")
	require.NoError(t, os.WriteFile(input, []byte{0xd0, 0xcf, 0x11, 0xe0}, 0644))

	results := Run(context.Background(), []Job{{Input: input, Output: filepath.Join(dir, "legacy.pdf")}},
		nil, options(&countingFiller{}), Config{}, nil)

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrUnsupportedFormat)
	assert.Equal(t, "I/O error: unsupported file format", results[0].Message())
}

func TestRunRenderWriteError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.xlsx")
	testsupport.NewApplication(t).Save(input)

	jobs := []Job{{Input: input, Output: filepath.Join(dir, "missing", "a.pdf")}}
	results := Run(context.Background(), jobs, nil, options(&countingFiller{}), Config{}, nil)

	require.Len(t, results, 1)
	assert.Equal(t, models.StatusFail, results[0].Status)
	assert.False(t, results[0].Rendered)
	assert.ErrorIs(t, results[0].Err, os.ErrNotExist)
}

func TestResultMessage(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{"empty", Result{}, ""},
		{"error only", Result{Err: os.ErrPermission}, "I/O error: permission denied"},
		{
			name: "error and problems",
			result: Result{
				Err:      os.ErrPermission,
				Problems: models.Problems{{Row: 1, Column: "C", Text: "missing name", Fatal: true}},
			},
			want: "I/O error: permission denied\nC1: missing name\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Message())
		})
	}
}
