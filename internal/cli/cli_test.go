package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func decodeEnvelope(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "output: %s", out)
	return resp
}

func TestRootRejectsInvalidFormat(t *testing.T) {
	_, err := executeCommand(t, "--format", "xml", "scales")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestAnalyzeDominantSeventh(t *testing.T) {
	out, err := executeCommand(t, "analyze", "--format", "json",
		"--root", "5", "--extension", "7", "--scale", "major")
	require.NoError(t, err)

	resp := decodeEnvelope(t, out)
	assert.Equal(t, "ok", resp.Status)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "V7", data["symbol"])
	assert.Equal(t, "5008000000", data["hex"])
	assert.Equal(t, 2.0, data["complexity"])
	assert.Equal(t, true, data["tritone_sub"])
	assert.Equal(t,
		[]any{"5", "7", "2", "4"},
		data["degrees"])
}

func TestAnalyzeInvalidChord(t *testing.T) {
	out, err := executeCommand(t, "analyze", "--format", "json",
		"--root", "5", "--extension", "7", "--alter", "b9")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	resp := decodeEnvelope(t, out)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidConstruction, resp.Error.Code)
}

func TestEncodeDecodeRoundTripCLI(t *testing.T) {
	out, err := executeCommand(t, "encode", "--format", "json",
		"--root", "6", "--borrowed", "natural_minor")
	require.NoError(t, err)
	hex := decodeEnvelope(t, out).Data.(map[string]any)["hex"].(string)
	assert.Equal(t, "6000002100", hex)

	out, err = executeCommand(t, "decode", "--format", "json", hex)
	require.NoError(t, err)
	data := decodeEnvelope(t, out).Data.(map[string]any)
	assert.Equal(t, float64(6), data["root"])
	assert.Equal(t, "natural_minor", data["borrowed"])
}

func TestDecodeMalformedPayload(t *testing.T) {
	out, err := executeCommand(t, "decode", "--format", "json", "9000000000")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	resp := decodeEnvelope(t, out)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidFormat, resp.Error.Code)
}

func TestScalesListsCatalog(t *testing.T) {
	out, err := executeCommand(t, "scales", "--format", "json")
	require.NoError(t, err)

	resp := decodeEnvelope(t, out)
	entries := resp.Data.([]any)
	require.NotEmpty(t, entries)
	first := entries[0].(map[string]any)
	assert.Equal(t, "major", first["name"])
	assert.Equal(t, "101011010101", first["pattern"])
}

func TestRecordThenSuggest(t *testing.T) {
	store := filepath.Join(t.TempDir(), "progressions.db")

	// I -> V7 -> I
	_, err := executeCommand(t, "record", "--store", store,
		"--source", "drills", "1000000000", "5008000000", "1000000000")
	require.NoError(t, err)

	out, err := executeCommand(t, "suggest", "--format", "json",
		"--store", store, "--root", "1", "--scale", "major")
	require.NoError(t, err)

	resp := decodeEnvelope(t, out)
	suggestions := resp.Data.([]any)
	require.Len(t, suggestions, 1)
	got := suggestions[0].(map[string]any)
	assert.Equal(t, "V7", got["numeral"])
	assert.Equal(t, "5008000000", got["hex"])
	assert.Equal(t, float64(1), got["weight"])
}

func TestSuggestTextOutputEmpty(t *testing.T) {
	store := filepath.Join(t.TempDir(), "progressions.db")
	out, err := executeCommand(t, "suggest", "--store", store, "--root", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "no suggestions")
}
