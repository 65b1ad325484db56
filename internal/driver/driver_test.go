package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"edlgen/internal/genpipeline"
)

const validEdl = `enclave { trusted { uint32_t Ping(uint32_t x); }; };`
const invalidEdl = `enclave { trusted { uint32_t Ping(uint32_t x) }; };`

func writeTempEdl(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestGenerateFileSucceedsWithoutCache(t *testing.T) {
	path := writeTempEdl(t, "a.edl", validEdl)
	result := GenerateFile(path, GenerateOptions{})
	if result.ParseErr != nil || result.IOErr != nil {
		t.Fatalf("unexpected errors: parse=%v io=%v", result.ParseErr, result.IOErr)
	}
	if result.Plan == nil || len(result.Plan.Functions) != 1 {
		t.Fatalf("expected a plan with one function, got %+v", result.Plan)
	}
	if result.CacheHit {
		t.Fatal("expected no cache hit on first run")
	}
}

func TestGenerateFileCarriesParseErr(t *testing.T) {
	path := writeTempEdl(t, "bad.edl", invalidEdl)
	result := GenerateFile(path, GenerateOptions{})
	if result.ParseErr == nil {
		t.Fatal("expected a ParseErr for malformed input")
	}
	if result.Plan != nil {
		t.Fatal("expected no plan on parse failure")
	}
}

func TestGenerateFileMissingFileIsIOErr(t *testing.T) {
	result := GenerateFile(filepath.Join(t.TempDir(), "missing.edl"), GenerateOptions{})
	if result.IOErr == nil {
		t.Fatal("expected an IOErr for a missing file")
	}
}

func TestGenerateFileCacheHitOnSecondRun(t *testing.T) {
	path := writeTempEdl(t, "a.edl", validEdl)
	cacheDir := t.TempDir()
	opts := GenerateOptions{CacheDir: cacheDir, Namespace: "edl"}

	first := GenerateFile(path, opts)
	if first.CacheHit || first.ParseErr != nil {
		t.Fatalf("unexpected first-run result: %+v", first)
	}

	second := GenerateFile(path, opts)
	if !second.CacheHit {
		t.Fatal("expected cache hit on second run with identical flags")
	}
	if second.Plan.ModuleName != first.Plan.ModuleName {
		t.Fatalf("cached plan module name mismatch: %q vs %q", second.Plan.ModuleName, first.Plan.ModuleName)
	}
}

func TestGenerateFileCacheMissOnFlagChange(t *testing.T) {
	path := writeTempEdl(t, "a.edl", validEdl)
	cacheDir := t.TempDir()

	GenerateFile(path, GenerateOptions{CacheDir: cacheDir, Namespace: "edl"})
	second := GenerateFile(path, GenerateOptions{CacheDir: cacheDir, Namespace: "other"})
	if second.CacheHit {
		t.Fatal("expected cache miss after changing a digest-relevant flag")
	}
}

type recordingSink struct {
	events []genpipeline.Event
}

func (s *recordingSink) OnEvent(ev genpipeline.Event) { s.events = append(s.events, ev) }

func TestGenerateFilePublishesEvents(t *testing.T) {
	path := writeTempEdl(t, "a.edl", validEdl)
	sink := &recordingSink{}
	GenerateFile(path, GenerateOptions{Sink: sink})
	if len(sink.events) == 0 {
		t.Fatal("expected at least one progress event")
	}
	last := sink.events[len(sink.events)-1]
	if last.Status != genpipeline.StatusDone {
		t.Fatalf("expected final event to be Done, got %+v", last)
	}
}

func TestGenerateAllRunsAllFilesEvenWhenOneFails(t *testing.T) {
	good := writeTempEdl(t, "good.edl", validEdl)
	bad := writeTempEdl(t, "bad.edl", invalidEdl)

	results := GenerateAll(context.Background(), []string{good, bad}, GenerateOptions{})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ParseErr != nil {
		t.Fatalf("expected good.edl to succeed, got %v", results[0].ParseErr)
	}
	if results[1].ParseErr == nil {
		t.Fatal("expected bad.edl to fail")
	}
}

func TestTokenizeReturnsFullStreamIncludingEOF(t *testing.T) {
	path := writeTempEdl(t, "a.edl", validEdl)
	result, err := Tokenize(path)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(result.Tokens) == 0 || !result.Tokens[len(result.Tokens)-1].IsEOF() {
		t.Fatal("expected token stream to end with EOF")
	}
}

func TestPlanReturnsParseErrForInvalidInput(t *testing.T) {
	path := writeTempEdl(t, "bad.edl", invalidEdl)
	result, err := Plan(path)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if result.ParseErr == nil {
		t.Fatal("expected ParseErr for invalid input")
	}
}
