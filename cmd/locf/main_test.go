package main

import (
	"bytes"
	"context"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/locf/codec"
	"github.com/katalvlaran/locf/na"
)

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage: locf")

	code, _, stderr = runCLI(t, "", "bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown command "bogus"`)

	code, stdout, _ := runCLI(t, "", "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "usage: locf")
}

func TestRun_SubcommandUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"fill help", []string{"fill", "-h"}, 0, "-columns"},
		{"serve help", []string{"serve", "-h"}, 0, "-config"},
		{"fill unknown flag", []string{"fill", "-nosuchflag"}, 2, "flag provided but not defined"},
		{"serve unknown flag", []string{"serve", "-nosuchflag"}, 2, "flag provided but not defined"},
		{"unknown format", []string{"fill", "-format", "parquet"}, 2, "codec: unknown format"},
		{"unknown extension", []string{"fill", "-in", "notes.txt"}, 2, "codec: unknown format"},
		{"unknown policy", []string{"fill", "-format", "bin", "-policy", "zero"}, 2, "na: unknown missing-value policy"},
		{"xlsx without paths", []string{"fill", "-format", "xlsx"}, 2, "xlsx needs both -in and -out"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr, tt.want)
			assert.NotContains(t, stderr, "help requested")
		})
	}
}

func TestFill_JSONStdio(t *testing.T) {
	code, stdout, stderr := runCLI(t, `[null,1,null,3,null]`, "fill")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "[null,1,1,3,3]\n", stdout)
	assert.Contains(t, stderr, "filled=2")
}

func TestFill_CSVColumns(t *testing.T) {
	in := "t,v,w\n1,5,NA\n2,NA,\n3,,7\n"
	code, stdout, stderr := runCLI(t, in, "fill", "-format", "csv", "-columns", "v")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "t,v,w\n1,5,NA\n2,5,\n3,5,7\n", stdout)
}

func TestFill_BinPolicy(t *testing.T) {
	var in bytes.Buffer
	require.NoError(t, codec.WriteFloat64s(&in, []float64{math.NaN(), 2, na.RNA()}))

	code, stdout, stderr := runCLI(t, in.String(), "fill", "-format", "bin", "-policy", "r")
	require.Equal(t, 0, code, stderr)

	out, err := codec.ReadFloat64s(strings.NewReader(stdout))
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.True(t, na.IsRNA(out[0]))
	assert.Equal(t, []float64{2, 2}, out[1:])
}

func TestFill_XLSXFiles(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.xlsx")
	dst := filepath.Join(dir, "out.xlsx")
	require.NoError(t, codec.WriteXLSX(src, "", &codec.Table{
		Header: []string{"v"},
		Rows:   [][]string{{"1"}, {""}, {"4"}, {"NA"}},
	}))

	code, _, stderr := runCLI(t, "", "fill", "-in", src, "-out", dst)
	require.Equal(t, 0, code, stderr)

	tbl, err := codec.ReadXLSX(dst, "")
	require.NoError(t, err)
	xs, err := tbl.Values(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1", "4", "4"}, na.FormatAll(xs))
}

func TestFill_Errors(t *testing.T) {
	code, _, stderr := runCLI(t, `{"not":"an array"}`, "fill")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "codec: malformed input")

	code, _, stderr = runCLI(t, "", "fill", "-in", filepath.Join(t.TempDir(), "absent.json"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "open input")
}
