package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/palmdoc/pkg/config"
	"github.com/ssargent/palmdoc/pkg/di"
	"github.com/ssargent/palmdoc/pkg/doc"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes a fresh command tree with an empty home directory so no
// user configuration is picked up
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetContainer(di.NewContainer())

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	text := strings.Repeat("It was the best of times, it was the worst of times. ½ € “quoted”\n", 200)
	txt := writeFile(t, dir, "tale.txt", text)
	pdbPath := filepath.Join(dir, "tale.pdb")

	res := run(t, "", "encode", "A Tale", txt, pdbPath)
	require.NoError(t, res.err)
	assert.FileExists(t, pdbPath)

	res = run(t, "", "decode", pdbPath)
	require.NoError(t, res.err)
	assert.Equal(t, text, res.stdout)

	out := filepath.Join(dir, "tale.out.txt")
	res = run(t, "", "decode", pdbPath, out)
	require.NoError(t, res.err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, text, string(got))

	// temporary files are renamed away
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"tale.txt", "tale.pdb", "tale.out.txt"}, names)
}

func TestEncode_Stdin(t *testing.T) {
	dir := t.TempDir()
	pdbPath := filepath.Join(dir, "notes.pdb")

	res := run(t, "from standard input\n", "encode", "Notes", "-", pdbPath)
	require.NoError(t, res.err)

	res = run(t, "", "decode", pdbPath, "-")
	require.NoError(t, res.err)
	assert.Equal(t, "from standard input\n", res.stdout)
}

func TestDecode_Stdin(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "in.txt", "piped through\n")
	pdbPath := filepath.Join(dir, "in.pdb")
	require.NoError(t, run(t, "", "encode", "Pipe", txt, pdbPath).err)

	data, err := os.ReadFile(pdbPath)
	require.NoError(t, err)

	res := run(t, string(data), "decode")
	require.NoError(t, res.err)
	assert.Equal(t, "piped through\n", res.stdout)
}

func TestEncode_Flags(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "in.txt", "tab\there\x01\n")
	pdbPath := filepath.Join(dir, "in.pdb")

	res := run(t, "", "encode", "--no-compress", "--no-timestamps", "--no-strip", "Flags", txt, pdbPath)
	require.NoError(t, res.err)

	f, err := os.Open(pdbPath)
	require.NoError(t, err)
	defer f.Close()

	r, err := doc.NewReader(f, doc.ReaderOptions{})
	require.NoError(t, err)
	assert.Equal(t, doc.PlainText, r.Compression())
	assert.Equal(t, "Flags", r.Header().Name)
	assert.Zero(t, r.Header().Created)

	rec, err := r.Record(1)
	require.NoError(t, err)
	assert.Equal(t, []byte("tab\there\x01\n"), rec)
}

func TestEncode_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Encode.Compress = false
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, config.SaveConfig(cfg, cfgPath))

	txt := writeFile(t, dir, "in.txt", "configured\n")
	pdbPath := filepath.Join(dir, "in.pdb")

	res := run(t, "", "--config", cfgPath, "encode", "Cfg", txt, pdbPath)
	require.NoError(t, res.err)

	f, err := os.Open(pdbPath)
	require.NoError(t, err)
	defer f.Close()

	r, err := doc.NewReader(f, doc.ReaderOptions{})
	require.NoError(t, err)
	assert.Equal(t, doc.PlainText, r.Compression())
}

func TestEncode_Verbose(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "in.txt", strings.Repeat("verbose output ", 500))
	pdbPath := filepath.Join(dir, "in.pdb")

	res := run(t, "", "-v", "encode", "Verbose", txt, pdbPath)
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "record 1/2: 4096 bytes -> ")
	assert.Contains(t, res.stderr, "record 2/2: 3404 bytes -> ")
	assert.Contains(t, res.stderr, "2 records: 7500 bytes -> ")
}

func TestEncode_Warnings(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "in.txt", "snow ☃ man\n")
	metricsPath := filepath.Join(dir, "palmdoc.prom")

	res := run(t, "", "--metrics-file", metricsPath, "encode", "Warn", txt, filepath.Join(dir, "a.pdb"))
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "level=WARN")
	assert.Contains(t, res.stderr, "kind=unmapped_rune")

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `palmdoc_mapping_warnings_total{kind="unmapped_rune"} 1`)
	assert.Contains(t, string(prom), `palmdoc_conversions_total{direction="encode",status="success"} 1`)

	res = run(t, "", "-w", "encode", "Warn", txt, filepath.Join(dir, "b.pdb"))
	require.NoError(t, res.err)
	assert.NotContains(t, res.stderr, "level=WARN")
}

func TestDecode_Fallback(t *testing.T) {
	dir := t.TempDir()
	pdbPath := filepath.Join(dir, "fb.pdb")

	// 0x81 is unused by PalmOS, 0x14 has no Unicode counterpart
	w, err := os.Create(pdbPath)
	require.NoError(t, err)
	dw, err := doc.NewWriter(w, doc.WriterOptions{Name: "fb", Size: 3, Compression: doc.PlainText})
	require.NoError(t, err)
	require.NoError(t, dw.WriteRecord([]byte{'a', 0x14, 'b'}))
	require.NoError(t, dw.Close())
	require.NoError(t, w.Close())

	res := run(t, "", "-w", "decode", "--fallback", "U+FFFD", pdbPath)
	require.NoError(t, res.err)
	assert.Equal(t, "a�b", res.stdout)

	res = run(t, "", "-w", "decode", pdbPath)
	require.NoError(t, res.err)
	assert.Equal(t, "ab", res.stdout)

	res = run(t, "", "decode", "--fallback", "U+D800", pdbPath)
	require.Error(t, res.err)
	assert.Equal(t, exitUsage, exitCode(res.err))
}

func TestDecode_ControlBytesAlwaysReported(t *testing.T) {
	dir := t.TempDir()
	pdbPath := filepath.Join(dir, "ctl.pdb")

	w, err := os.Create(pdbPath)
	require.NoError(t, err)
	dw, err := doc.NewWriter(w, doc.WriterOptions{Name: "ctl", Size: 4, Compression: doc.PlainText})
	require.NoError(t, err)
	require.NoError(t, dw.WriteRecord([]byte{'a', 0x01, 0x14, 'b'}))
	require.NoError(t, dw.Close())
	require.NoError(t, w.Close())

	res := run(t, "", "-w", "decode", pdbPath)
	require.NoError(t, res.err)
	assert.Equal(t, "ab", res.stdout)
	assert.Contains(t, res.stderr, "kind=control_byte")
	assert.NotContains(t, res.stderr, "kind=unmapped_byte")

	res = run(t, "", "decode", pdbPath)
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "kind=control_byte")
	assert.Contains(t, res.stderr, "kind=unmapped_byte")
}

func TestDecode_Errors(t *testing.T) {
	dir := t.TempDir()
	short := writeFile(t, dir, "short.txt", "just some text")
	notPDB := writeFile(t, dir, "plain.txt", strings.Repeat("The quick brown fox jumps over the lazy dog.\n", 4))

	res := run(t, "", "decode", filepath.Join(dir, "missing.pdb"))
	require.Error(t, res.err)
	assert.Equal(t, exitOpen, exitCode(res.err))

	// shorter than a database header
	res = run(t, "", "decode", short)
	require.Error(t, res.err)
	assert.Equal(t, exitCorrupt, exitCode(res.err))

	res = run(t, "", "decode", notPDB)
	require.Error(t, res.err)
	assert.Equal(t, exitNotDocFile, exitCode(res.err))
	assert.Contains(t, res.err.Error(), "not a Doc file")

	res = run(t, "", "decode", "--no-check", notPDB)
	require.Error(t, res.err)
	assert.Equal(t, exitCorrupt, exitCode(res.err))

	// a failed decode leaves no output behind
	out := filepath.Join(dir, "out.txt")
	res = run(t, "", "decode", notPDB, out)
	require.Error(t, res.err)
	assert.NoFileExists(t, out)

	res = run(t, "", "decode", "a", "b", "c")
	require.Error(t, res.err)
	assert.Equal(t, exitUsage, exitCode(res.err))
}

func TestEncode_Errors(t *testing.T) {
	dir := t.TempDir()

	res := run(t, "", "encode", "only-a-name")
	require.Error(t, res.err)
	assert.Equal(t, exitUsage, exitCode(res.err))

	res = run(t, "", "encode", "Name", filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.pdb"))
	require.Error(t, res.err)
	assert.Equal(t, exitOpen, exitCode(res.err))
	assert.NoFileExists(t, filepath.Join(dir, "out.pdb"))

	res = run(t, "", "encode", "--bogus", "Name", "a", "b")
	require.Error(t, res.err)
	assert.Equal(t, exitUsage, exitCode(res.err))

	res = run(t, "", "--config", filepath.Join(dir, "nope.yaml"), "version")
	require.Error(t, res.err)
	assert.Equal(t, exitUsage, exitCode(res.err))
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "in.txt", "dump me\n")
	pdbPath := filepath.Join(dir, "in.pdb")
	require.NoError(t, run(t, "", "encode", "--no-timestamps", "Dumped", txt, pdbPath).err)

	t.Run("text", func(t *testing.T) {
		res := run(t, "", "dump", "--checksum", "xxh3", pdbPath)
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "   Name: Dumped\n")
		assert.Contains(t, res.stdout, "   Type: TEXt\n")
		assert.Contains(t, res.stdout, "Creator: REAd\n")
		assert.Contains(t, res.stdout, "Rec    1: [ ] Delete")
		assert.Contains(t, res.stdout, "xxh3: ")
	})

	t.Run("header only", func(t *testing.T) {
		res := run(t, "", "dump", "--header-only", pdbPath)
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Records: 2\n")
		assert.NotContains(t, res.stdout, "0000005E:")
	})

	t.Run("json", func(t *testing.T) {
		res := run(t, "", "dump", "-f", "json", pdbPath)
		require.NoError(t, res.err)

		var out struct {
			Header struct {
				Name    string `json:"name"`
				Type    string `json:"type"`
				Creator string `json:"creator"`
			} `json:"header"`
			Records []struct {
				Index int `json:"index"`
			} `json:"records"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
		assert.Equal(t, "Dumped", out.Header.Name)
		assert.Equal(t, "TEXt", out.Header.Type)
		assert.Equal(t, "REAd", out.Header.Creator)
		assert.Len(t, out.Records, 2)
	})

	t.Run("conflicting flags", func(t *testing.T) {
		res := run(t, "", "dump", "--header-only", "--data-only", pdbPath)
		assert.Error(t, res.err)
	})

	t.Run("bad checksum", func(t *testing.T) {
		res := run(t, "", "dump", "--checksum", "md5", pdbPath)
		require.Error(t, res.err)
		assert.Equal(t, exitUsage, exitCode(res.err))
	})

	t.Run("missing file", func(t *testing.T) {
		res := run(t, "", "dump", filepath.Join(dir, "missing.pdb"))
		require.Error(t, res.err)
		assert.Equal(t, exitOpen, exitCode(res.err))
	})
}

func TestVersion(t *testing.T) {
	res := run(t, "", "version")
	require.NoError(t, res.err)
	assert.Equal(t, "palmdoc dev\n", res.stdout)
}
