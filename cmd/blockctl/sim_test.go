package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/blockalloc/alloc"
)

// runCLI executes blockctl with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

func TestSimCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name: "coalesce three neighbours",
			args: []string{"sim", "--size", "12", "a4", "a4", "a4", "f1", "f0", "f2"},
			wantContain: []string{
				"#0 at offset 0",
				"#2 at offset 8, 0 bytes free",
				"freed #1, 4 bytes free",
				"freed #2, 12 bytes free",
				"12 bytes in 1 block(s)",
				"Blocks:        1",
			},
		},
		{
			name: "write and read back",
			args: []string{"sim", "--size", "64", "a8", "w0=5", "r0", "f0"},
			wantContain: []string{
				"#0 at offset 0, 56 bytes free",
				"#0 -> 5",
				"freed #0, 64 bytes free",
			},
		},
		{
			name: "failures are reported and replay continues",
			args: []string{"sim", "--size", "16", "a16", "a1", "f0", "f0", "f7", "a0", "a2", "w1=1"},
			wantContain: []string{
				"a1           error: " + alloc.ErrOutOfMemory.Error(),
				"f0           error: " + alloc.ErrInvalidHandle.Error(),
				"f7           error: no such allocation: #7",
				"a0           error: " + alloc.ErrInvalidRequest.Error(),
				"#1 at offset 0",
				"w1=1         error: allocation #1 holds 2 bytes, need 8",
			},
		},
		{
			name:        "best-fit policy",
			args:        []string{"sim", "--size", "32", "--policy", "best-fit", "a4", "a4", "a8", "a4", "a4", "f0", "f2", "f4", "a4"},
			wantContain: []string{"#5 at offset 0"},
		},
		{
			name:        "last-fit policy",
			args:        []string{"sim", "--size", "32", "a4", "a4", "a8", "a4", "a4", "f0", "f2", "f4", "a4"},
			wantContain: []string{"#5 at offset 20"},
		},
		{
			name:        "mmap backing",
			args:        []string{"sim", "--size", "4096", "--mmap", "-v", "a100"},
			wantContain: []string{"Allocator: 4096 bytes, policy last-fit, mmap backing", "4,096 bytes"},
		},
		{
			name:    "unknown policy",
			args:    []string{"sim", "--policy", "worst-fit", "a1"},
			wantErr: true,
		},
		{
			name:    "bad op",
			args:    []string{"sim", "x1"},
			wantErr: true,
		},
		{
			name:    "bad size",
			args:    []string{"sim", "--size", "0", "a1"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assertContains(t, out, tt.wantContain)
		})
	}
}

func TestSimCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "sim", "--size", "16", "--json", "a4", "a4", "f0")
	require.NoError(t, err)

	var got struct {
		Size      int `json:"size"`
		BytesFree int `json:"bytes_free"`
		Blocks    []struct {
			Start int  `json:"start"`
			Len   int  `json:"len"`
			Free  bool `json:"free"`
		} `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	require.Equal(t, 16, got.Size)
	require.Equal(t, 12, got.BytesFree)
	require.Len(t, got.Blocks, 3)
	require.True(t, got.Blocks[0].Free)
	require.False(t, got.Blocks[1].Free)
	require.True(t, got.Blocks[2].Free)
}

func TestSimCommand_Script(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.txt")
	require.NoError(t, os.WriteFile(path, []byte("a4 a4 a4 # fill\nf1\n"), 0o600))

	out, err := runCLI(t, "sim", "--size", "12", "--script", path, "f0")
	require.NoError(t, err)
	assertContains(t, out, []string{"freed #1, 4 bytes free", "freed #0, 8 bytes free"})
}

func TestSimCommand_Quiet(t *testing.T) {
	out, err := runCLI(t, "sim", "-q", "a4")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "blockctl dev")

	out, err = runCLI(t, "version", "--json")
	require.NoError(t, err)
	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Equal(t, "dev", v["version"])
}
