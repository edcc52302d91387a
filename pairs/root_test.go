package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jackvalmadre/go-voc-seg/voc"
)

func writeRoot(t *testing.T, lists map[voc.Split]string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, filepath.FromSlash(voc.ListDir)), 0o755))
	for set, content := range lists {
		require.NoError(t, os.WriteFile(voc.ListFile(dir, set), []byte(content), 0o644))
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestListText(t *testing.T) {
	dir := writeRoot(t, map[voc.Split]string{
		voc.Train:    "a\nb\n",
		voc.Val:      "c\n",
		voc.TrainVal: "a\nb\nc\n",
	})

	out, _, err := execute(t, "list", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, strings.Join([]string{"train", voc.ImageFile(dir, "a"), voc.AnnotationFile(dir, "a")}, " "), lines[0])
	assert.Equal(t, strings.Join([]string{"val", voc.ImageFile(dir, "c"), voc.AnnotationFile(dir, "c")}, " "), lines[2])
	assert.True(t, strings.HasPrefix(lines[5], "trainval "))
}

func TestListSplitYAML(t *testing.T) {
	dir := writeRoot(t, map[voc.Split]string{voc.Val: "x\ny\n"})

	out, _, err := execute(t, "list", dir, "--split", "val", "--format", "yaml")
	require.NoError(t, err)

	var sets []splitPairs
	require.NoError(t, yaml.Unmarshal([]byte(out), &sets))
	require.Len(t, sets, 1)
	assert.Equal(t, voc.Val, sets[0].Split)
	assert.Equal(t, []voc.Pair{
		{Image: voc.ImageFile(dir, "x"), Annotation: voc.AnnotationFile(dir, "x")},
		{Image: voc.ImageFile(dir, "y"), Annotation: voc.AnnotationFile(dir, "y")},
	}, sets[0].Pairs)
}

func TestListOutputFile(t *testing.T) {
	dir := writeRoot(t, map[voc.Split]string{voc.Train: "a\n"})
	output := filepath.Join(t.TempDir(), "train.txt")

	out, _, err := execute(t, "list", dir, "--split", "train", "-o", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "train "+voc.ImageFile(dir, "a")+" "+voc.AnnotationFile(dir, "a")+"\n", string(data))
}

func TestListLogs(t *testing.T) {
	dir := writeRoot(t, map[voc.Split]string{voc.Train: "a\n"})

	_, stderr, err := execute(t, "list", dir, "--split", "train", "--log_level", "info", "--log_format", "logfmt")
	require.NoError(t, err)
	assert.Contains(t, stderr, "loaded pairs")
	assert.Contains(t, stderr, "split=train")
}

func TestListErrors(t *testing.T) {
	dir := writeRoot(t, map[voc.Split]string{voc.Train: "a\n"})

	_, _, err := execute(t, "list", dir)
	var ferr *voc.FileAccessError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, voc.ListFile(dir, voc.Val), ferr.Path)

	_, _, err = execute(t, "list", dir, "--split", "test")
	assert.EqualError(t, err, `voc: unknown split "test"`)

	_, _, err = execute(t, "list", dir, "--format", "csv")
	assert.EqualError(t, err, `unknown format "csv"`)

	_, _, err = execute(t, "list")
	assert.Error(t, err)

	_, _, err = execute(t, "list", dir, "--log_format", "xml")
	assert.ErrorContains(t, err, "failed creating log handler")
}

func TestLabelsText(t *testing.T) {
	out, _, err := execute(t, "labels")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 22)
	assert.Equal(t, "0 background", lines[0])
	assert.Equal(t, "20 tv/monitor", lines[20])
	assert.Equal(t, "255 ambiguous-region", lines[21])
}

func TestLabelsYAML(t *testing.T) {
	out, _, err := execute(t, "labels", "--format", "yaml")
	require.NoError(t, err)

	var lut map[int]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &lut))
	assert.Equal(t, voc.Labels(), lut)
}
