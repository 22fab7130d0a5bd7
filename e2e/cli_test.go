package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	redisURL   string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "letterswap-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/letterswap")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Every run shares one redis so state survives between invocations
	mr := miniredis.RunT(t)

	return &cliRunner{
		binaryPath: binaryPath,
		redisURL:   "redis://" + mr.Addr(),
	}
}

func (r *cliRunner) run(stdin string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--storage", "redis",
		"--redis-url", r.redisURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Dir = os.TempDir()
	cmd.Env = append(os.Environ(), "LETTERSWAP_DICTIONARY=", "LETTERSWAP_SEED=")
	cmd.Stdin = strings.NewReader(stdin)
	output, err := cmd.Output()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// Response types for JSON parsing
type messageResponse struct {
	Message string `json:"message"`
}

type vocabResponse struct {
	DictionarySize int `json:"dictionary_size"`
	Difficulties   []struct {
		Difficulty string  `json:"difficulty"`
		Cutoff     float64 `json:"cutoff"`
		Size       int     `json:"size"`
	} `json:"difficulties"`
}

type suggestResponse struct {
	Outcome  string `json:"outcome"`
	Move     string `json:"move"`
	Resolved string `json:"resolved"`
	Card     string `json:"card"`
}

type statsResponse struct {
	Matches []struct {
		Winner string `json:"winner"`
	} `json:"matches"`
}

// Tests

func TestCLI_ImportedDictionaryPersists(t *testing.T) {
	cli := newCLIRunner(t)

	path := filepath.Join(t.TempDir(), "words.tsv")
	words := "cat\t1e-3\ncot\t4e-6\ncut\t1e-6\nhat\t0\n"
	require.NoError(t, os.WriteFile(path, []byte(words), 0o644))

	output, err := cli.run("", "dict", "import", path)
	require.NoError(t, err, "output: %s", output)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Imported 4 words", msg.Message)

	// A fresh process reads the imported list back from redis
	output, err = cli.run("", "vocab")
	require.NoError(t, err, "output: %s", output)

	var vocab vocabResponse
	require.NoError(t, json.Unmarshal([]byte(output), &vocab))
	assert.Equal(t, 4, vocab.DictionarySize)
	require.Len(t, vocab.Difficulties, 3)
	assert.Equal(t, 1, vocab.Difficulties[0].Size)
	assert.Equal(t, 2, vocab.Difficulties[1].Size)
	assert.Equal(t, 4, vocab.Difficulties[2].Size)
}

func TestCLI_SuggestUsesStoredDictionary(t *testing.T) {
	cli := newCLIRunner(t)

	path := filepath.Join(t.TempDir(), "words.tsv")
	require.NoError(t, os.WriteFile(path, []byte("cat\t1e-3\ncot\t1e-3\n"), 0o644))
	_, err := cli.run("", "dict", "import", path)
	require.NoError(t, err)

	output, err := cli.run("", "suggest", "-d", "hard", "cat", "o")
	require.NoError(t, err, "output: %s", output)

	var resp suggestResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "move", resp.Outcome)
	assert.Equal(t, "cot", resp.Move)
	assert.Equal(t, "o", resp.Card)
}

func TestCLI_PlayQuit(t *testing.T) {
	cli := newCLIRunner(t)

	output, err := cli.run("quit\n", "play", "-d", "easy", "--seed", "5")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "Match abandoned")
}

func TestCLI_StatsEmpty(t *testing.T) {
	cli := newCLIRunner(t)

	output, err := cli.run("", "stats")
	require.NoError(t, err, "output: %s", output)

	var resp statsResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Empty(t, resp.Matches)
}

func TestCLI_UnknownDifficulty(t *testing.T) {
	cli := newCLIRunner(t)

	_, err := cli.run("", "suggest", "-d", "brutal", "cat", "o")
	assert.Error(t, err)
}
