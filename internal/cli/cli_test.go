package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// harness runs notesctl invocations against one in-memory storage. Every
// invocation gets a fresh note service, the way separate processes would.
type harness struct {
	t        *testing.T
	kv       store.KeyValueStorage
	logPath  string
	prompts  int
	answer   string
	openErr  error
	stdinFor string
}

type result struct {
	code   int
	stdout string
	stderr string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("APP_NOTES_PASSPHRASE", "")
	t.Setenv("CONFIG", "")

	return &harness{
		t:       t,
		kv:      store.NewMemoryKeyValueStorage(),
		logPath: filepath.Join(t.TempDir(), "notesctl.log"),
		answer:  "correct horse",
	}
}

func (h *harness) open(_ context.Context, _ *config.ClientConfig, log *logger.Logger) (service.NoteService, func() error, error) {
	if h.openErr != nil {
		return nil, nil, h.openErr
	}

	repo := store.NewNoteRepository(h.kv, validators.NewNoteValidator(crypto.NewBlobCodec()), log)
	sealer := crypto.NewSealer(
		crypto.NewKeyDerivation(crypto.KDFParams{Iterations: 1000}),
		crypto.NewAeadCipher(),
		crypto.NewBlobCodec(),
	)
	return service.NewNoteService(repo, sealer, utils.NewUUIDGenerator(), log), func() error { return nil }, nil
}

func (h *harness) run(args ...string) result {
	h.t.Helper()
	var stdout, stderr bytes.Buffer

	deps := Deps{
		Info: models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"),
		Open: h.open,
		ReadPassphrase: func(string) (string, error) {
			h.prompts++
			return h.answer, nil
		},
		In:  strings.NewReader(h.stdinFor),
		Out: &stdout,
		Err: &stderr,
	}

	full := append([]string{}, args...)
	full = append(full, "--backend", config.BackendMemory, "--log-path", h.logPath)
	code := Execute(context.Background(), deps, full)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	res := h.run(args...)
	require.Equal(h.t, 0, res.code, "stderr: %s", res.stderr)
	return res.stdout
}

func TestPlainNoteRoundTrip(t *testing.T) {
	h := newHarness(t)

	id := strings.TrimSpace(h.mustRun("create", "--plain"))
	require.NotEmpty(t, id)

	h.mustRun("save", id, "--title", "Groceries", "--content", "milk, eggs", "--plain")
	assert.Equal(t, "milk, eggs", h.mustRun("reveal", id))
	assert.Zero(t, h.prompts, "plain notes never need the passphrase")
}

func TestEncryptedNoteWithPrompt(t *testing.T) {
	h := newHarness(t)

	id := strings.TrimSpace(h.mustRun("create"))
	assert.Equal(t, 1, h.prompts)
	assert.Equal(t, "", h.mustRun("reveal", id))

	h.stdinFor = "top secret"
	h.mustRun("save", id, "--title", "Diary")
	h.stdinFor = ""

	assert.Equal(t, "top secret", h.mustRun("reveal", id))

	raw, err := h.kv.Get(context.Background(), store.NotesStorageKey)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "top secret")
	assert.Contains(t, string(raw), "Diary")
}

func TestPassphraseFromEnvironment(t *testing.T) {
	h := newHarness(t)
	t.Setenv("APP_NOTES_PASSPHRASE", "from-env")

	id := strings.TrimSpace(h.mustRun("create"))
	h.mustRun("save", id, "--content", "hello")
	assert.Equal(t, "hello", h.mustRun("reveal", id))
	assert.Zero(t, h.prompts)
}

func TestWrongPassphrase(t *testing.T) {
	h := newHarness(t)

	id := strings.TrimSpace(h.mustRun("create"))
	h.mustRun("save", id, "--content", "hello")

	h.answer = "wrong"
	res := h.run("reveal", id)
	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, app.MsgWrongPassphrase)
}

func TestSaveKeepsTitleWhenOmitted(t *testing.T) {
	h := newHarness(t)

	id := strings.TrimSpace(h.mustRun("create", "--plain"))
	h.mustRun("save", id, "--title", "Keep me", "--content", "v1", "--plain")
	h.mustRun("save", id, "--content", "v2", "--plain")

	out := h.mustRun("ls")
	assert.Contains(t, out, "Keep me")
	assert.Equal(t, "v2", h.mustRun("reveal", id))
}

func TestRemove(t *testing.T) {
	h := newHarness(t)

	id := strings.TrimSpace(h.mustRun("create", "--plain"))
	h.mustRun("rm", id)

	res := h.run("reveal", id)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, app.MsgNoteNotFound)

	res = h.run("rm", id)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, app.MsgNoteNotFound)
}

func TestListSearchAndTags(t *testing.T) {
	h := newHarness(t)

	hello := strings.TrimSpace(h.mustRun("create", "--plain"))
	h.mustRun("save", hello, "--title", "Hello World", "--content", "", "--plain")
	groceries := strings.TrimSpace(h.mustRun("create", "--plain"))
	h.mustRun("save", groceries, "--title", "Groceries", "--content", "", "--plain")

	out := h.mustRun("ls")
	assert.Contains(t, out, "Hello World")
	assert.Contains(t, out, "Groceries")
	assert.Less(t, strings.Index(out, "Groceries"), strings.Index(out, "Hello World"), "most recent first")

	out = h.mustRun("search", "hel")
	assert.Contains(t, out, "Hello World")
	assert.NotContains(t, out, "Groceries")

	h.mustRun("tag", hello, " work ", "Work", "ideas")
	out = h.mustRun("ls", "--tag", "WORK")
	assert.Contains(t, out, "Hello World")
	assert.Contains(t, out, "work,ideas")
	assert.NotContains(t, out, "Groceries")

	h.mustRun("tag", hello)
	assert.Contains(t, h.mustRun("ls", "--tag", "work"), "no notes")
}

func TestEmptyList(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.mustRun("ls"), "no notes")
}

func TestOpenFailure(t *testing.T) {
	h := newHarness(t)
	h.openErr = errors.Join(errors.New("open storage"), store.ErrStorageUnavailable)

	res := h.run("ls")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, app.MsgStorageUnavailable)
}

func TestInvalidConfig(t *testing.T) {
	h := newHarness(t)

	var stderr bytes.Buffer
	deps := Deps{Open: h.open, In: strings.NewReader(""), Out: io.Discard, Err: &stderr}
	code := Execute(context.Background(), deps, []string{"ls", "--backend", "tape", "--log-path", h.logPath})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), app.MsgInvalidConfig)
}

func TestArgsValidation(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 1, h.run("reveal").code)
	assert.Equal(t, 1, h.run("create", "extra").code)
	assert.Equal(t, 1, h.run("tag").code)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("--version")
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
}
