package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/wahlandcase/attuned.commitmsg/internal/config"
	"github.com/wahlandcase/attuned.commitmsg/internal/parser"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const exportMessage = "[feature] Pridat novou funkci pro export dat.\n" +
	"* Implementace nove funkcionality pro export dat do CSV.\n" +
	"*Optimalizace vzkonu exportu.\n" +
	"BC: Zmeny ve formatu exportovanych dat.\n" +
	"#12345.\n" +
	"TODO: Aktualizovat dokumentaci."

// writeConfig stores cfg in a temp file and returns its path
func writeConfig(t *testing.T, mutate func(*config.Config)) string {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	path := filepath.Join(t.TempDir(), "attmsg.toml")
	require.NoError(t, cfg.SaveTo(path))
	return path
}

// execute runs the root command with args and returns stdout
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// initRepo creates a repository with one commit per message, oldest first
func initRepo(t *testing.T, messages ...string) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	for i, message := range messages {
		name := "file" + strconv.Itoa(i) + ".txt"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(message), 0644))
		_, err := wt.Add(name)
		require.NoError(t, err)
		_, err = wt.Commit(message, &git.CommitOptions{
			Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Unix(1700000000+int64(i), 0)},
		})
		require.NoError(t, err)
	}
	return dir
}

func TestParse_ArgumentText(t *testing.T) {
	cfgPath := writeConfig(t, nil)

	out, err := execute(t, "", "--config", cfgPath, "--no-color", "parse", exportMessage)
	require.NoError(t, err)

	assert.Contains(t, out, "Pridat novou funkci pro export dat.")
	assert.Contains(t, out, "#12345")
	assert.Contains(t, out, "[feature]")
	assert.Contains(t, out, "- Optimalizace vzkonu exportu.")
	assert.Contains(t, out, "- Zmeny ve formatu exportovanych dat.")
	assert.Contains(t, out, "- Aktualizovat dokumentaci.")
}

func TestParse_StdinJSON(t *testing.T) {
	cfgPath := writeConfig(t, nil)

	out, err := execute(t, exportMessage, "--config", cfgPath, "parse", "--format", "json")
	require.NoError(t, err)

	var decoded struct {
		Title    string   `json:"title"`
		TaskID   int      `json:"task_id"`
		Tags     []string `json:"tags"`
		Details  []string `json:"details"`
		BCBreaks []string `json:"bc_breaks"`
		Todos    []string `json:"todos"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Pridat novou funkci pro export dat.", decoded.Title)
	assert.Equal(t, 12345, decoded.TaskID)
	assert.Equal(t, []string{"feature"}, decoded.Tags)
	assert.Len(t, decoded.Details, 2)
	assert.Equal(t, []string{"Zmeny ve formatu exportovanych dat."}, decoded.BCBreaks)
	assert.Equal(t, []string{"Aktualizovat dokumentaci."}, decoded.Todos)
}

func TestParse_FileYAMLFromConfig(t *testing.T) {
	cfgPath := writeConfig(t, func(c *config.Config) { c.Output.Format = config.FormatYAML })
	msgPath := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(msgPath, []byte(exportMessage), 0644))

	out, err := execute(t, "", "--config", cfgPath, "parse", "--file", msgPath)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 12345, decoded["task_id"])
}

func TestParse_TaskURL(t *testing.T) {
	cfgPath := writeConfig(t, func(c *config.Config) {
		c.Tasks.URLTemplate = "https://tracker.example.com/task/%d"
	})

	out, err := execute(t, "", "--config", cfgPath, "--no-color", "parse", exportMessage)
	require.NoError(t, err)
	assert.Contains(t, out, "https://tracker.example.com/task/12345")
}

func TestParse_Invalid(t *testing.T) {
	cfgPath := writeConfig(t, nil)

	_, err := execute(t, "", "--config", cfgPath, "parse", "[fix] Title\n* d\n#1\nTODO: t")
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrInvalidFormat))

	var formatErr *parser.InvalidFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, []string{"bc_breaks"}, formatErr.Missing)
}

func TestParse_EmptyStdin(t *testing.T) {
	cfgPath := writeConfig(t, nil)

	_, err := execute(t, "", "--config", cfgPath, "parse", "--file", "-")
	assert.True(t, parser.IsInvalidFormat(err))
}

func TestParse_BadFormat(t *testing.T) {
	cfgPath := writeConfig(t, nil)

	_, err := execute(t, "", "--config", cfgPath, "parse", "--format", "xml", exportMessage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestParse_Revision(t *testing.T) {
	cfgPath := writeConfig(t, nil)
	repo := initRepo(t, "initial", exportMessage)

	out, err := execute(t, "", "--config", cfgPath, "parse", "--repo", repo, "--rev", "HEAD", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"task_id": 12345`)

	_, err = execute(t, "", "--config", cfgPath, "parse", "--repo", repo, "--rev", "HEAD~1")
	assert.True(t, parser.IsInvalidFormat(err))
}

func TestLog(t *testing.T) {
	cfgPath := writeConfig(t, nil)
	repo := initRepo(t, "initial", "wip", exportMessage)

	out, err := execute(t, "", "--config", cfgPath, "--no-color", "log", "--repo", repo)
	require.NoError(t, err)
	assert.Contains(t, out, "Pridat novou funkci pro export dat.")
	assert.Contains(t, out, "wip")
	assert.Contains(t, out, "1/3 commits valid")

	out, err = execute(t, "", "--config", cfgPath, "log", "--repo", repo, "--only-valid", "-o", "json")
	require.NoError(t, err)
	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 1)
	assert.Len(t, docs[0]["hash"], 7)

	out, err = execute(t, "", "--config", cfgPath, "log", "--repo", repo, "--limit", "1", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	assert.Len(t, docs, 1)
}

func TestLog_Strict(t *testing.T) {
	cfgPath := writeConfig(t, nil)
	repo := initRepo(t, "initial", exportMessage)

	_, err := execute(t, "", "--config", cfgPath, "log", "--repo", repo, "--strict")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidCommits))
	assert.Contains(t, err.Error(), "1 of 2 commits")

	_, err = execute(t, "", "--config", cfgPath, "log", "--repo", repo, "--strict", "--base", "HEAD~1")
	assert.NoError(t, err)
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "attmsg.toml")

	out, err := execute(t, "", "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, err = execute(t, "", "--config", path, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "", "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	out, err = execute(t, "", "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(out))

	out, err = execute(t, "", "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[output]")
	assert.Contains(t, out, "HEAD")
}

func TestConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attmsg.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"xml\"\n"), 0644))

	_, err := execute(t, "", "--config", path, "parse", exportMessage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
