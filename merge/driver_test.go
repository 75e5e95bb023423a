package merge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/viant/emlmerge/catalog"
	"github.com/viant/emlmerge/manifest"
	"github.com/viant/emlmerge/source"
	"github.com/viant/emlmerge/testutil"
)

// concat joins documents with a newline, standing in for a real merger.
var concat = MergerFunc(func(ctx context.Context, docs []io.ReadSeeker, w io.Writer) error {
	for _, doc := range docs {
		if _, err := io.Copy(w, doc); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
})

func writeText(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func order(t *testing.T, paths ...string) *manifest.Manifest {
	t.Helper()
	docs := make([]catalog.Document, len(paths))
	for i, p := range paths {
		docs[i] = catalog.NewDocument(p)
	}
	c, err := catalog.Build(context.Background(), docs)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return manifest.Order(c)
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".merge-") {
			t.Fatalf("temporary file left behind: %s", e.Name())
		}
	}
}

func TestResolveOutput(t *testing.T) {
	ctx := context.Background()
	fs := source.NewAFS()
	existing := t.TempDir()
	fresh := filepath.Join(t.TempDir(), "out")

	tests := []struct {
		name    string
		target  string
		want    string
		wantErr bool
	}{
		{name: "existing directory", target: existing, want: filepath.Join(existing, "merged_emails.pdf")},
		{name: "trailing separator", target: fresh + string(os.PathSeparator), want: filepath.Join(fresh, "merged_emails.pdf")},
		{name: "file verbatim", target: filepath.Join(fresh, "all.pdf"), want: filepath.Join(fresh, "all.pdf")},
		{name: "file url", target: "file://" + filepath.ToSlash(fresh) + "/", want: filepath.Join(fresh, "merged_emails.pdf")},
		{name: "remote rejected", target: "s3://bucket/out.pdf", wantErr: true},
		{name: "empty rejected", target: " ", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveOutput(ctx, fs, tc.target, DefaultName("pdf"))
			if tc.wantErr {
				if !errors.Is(err, ErrOutputUncreatable) {
					t.Fatalf("expected ErrOutputUncreatable, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveOutput: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestDriver_Merge_OrderAndCount(t *testing.T) {
	in := t.TempDir()
	late := writeText(t, in, "late 2024-01-02T00_00_00+00_00.pdf", "late")
	none := writeText(t, in, "none.pdf", "none")
	early := writeText(t, in, "early 2024-01-01T0000_00+00_00.pdf", "early")

	target := filepath.Join(t.TempDir(), "nested", "out") + string(os.PathSeparator)
	result, err := NewDriver(concat).Merge(context.Background(), order(t, late, none, early), target)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if result.Count != 3 {
		t.Fatalf("count=%d want 3", result.Count)
	}
	if want := filepath.Join(strings.TrimSuffix(target, string(os.PathSeparator)), "merged_emails.pdf"); result.Path != want {
		t.Fatalf("path=%q want %q", result.Path, want)
	}
	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "none\nearly\nlate\n" {
		t.Fatalf("unexpected output %q", data)
	}
	sum, _ := Hash(data)
	if result.Checksum != sum {
		t.Fatalf("checksum=%d want %d", result.Checksum, sum)
	}
	assertNoTempFiles(t, filepath.Dir(result.Path))
}

func TestDriver_Merge_MissingDocumentLeavesNoOutput(t *testing.T) {
	in := t.TempDir()
	a := writeText(t, in, "a.pdf", "a")
	b := writeText(t, in, "b.pdf", "b")
	m := order(t, a, b)
	if err := os.Remove(b); err != nil {
		t.Fatalf("remove: %v", err)
	}

	outDir := t.TempDir()
	target := filepath.Join(outDir, "merged.pdf")
	_, err := NewDriver(concat).Merge(context.Background(), m, target)
	if !errors.Is(err, ErrMergeFailed) {
		t.Fatalf("expected ErrMergeFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "b.pdf") {
		t.Fatalf("error should name the missing document: %v", err)
	}
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Fatalf("output must not exist, stat err=%v", statErr)
	}
	assertNoTempFiles(t, outDir)
}

func TestDriver_Merge_FailingMergerKeepsPreviousOutput(t *testing.T) {
	in := t.TempDir()
	a := writeText(t, in, "a.pdf", "a")
	outDir := t.TempDir()
	target := writeText(t, outDir, "merged.pdf", "previous")

	partial := MergerFunc(func(ctx context.Context, docs []io.ReadSeeker, w io.Writer) error {
		_, _ = io.WriteString(w, "half-written")
		return fmt.Errorf("corrupt document")
	})
	_, err := NewDriver(partial).Merge(context.Background(), order(t, a), target)
	if !errors.Is(err, ErrMergeFailed) {
		t.Fatalf("expected ErrMergeFailed, got %v", err)
	}
	data, _ := os.ReadFile(target)
	if string(data) != "previous" {
		t.Fatalf("previous output was modified: %q", data)
	}
	assertNoTempFiles(t, outDir)
}

func TestDriver_Merge_OutputUncreatable(t *testing.T) {
	in := t.TempDir()
	a := writeText(t, in, "a.pdf", "a")
	blocker := writeText(t, t.TempDir(), "blocker", "x")

	_, err := NewDriver(concat).Merge(context.Background(), order(t, a), filepath.Join(blocker, "out", "merged.pdf"))
	if !errors.Is(err, ErrOutputUncreatable) {
		t.Fatalf("expected ErrOutputUncreatable, got %v", err)
	}
}

func TestDriver_Merge_DuplicateContentWarning(t *testing.T) {
	in := t.TempDir()
	a := writeText(t, in, "a.pdf", "same")
	b := writeText(t, in, "b.pdf", "same")
	var logs []string
	logf := func(format string, args ...any) { logs = append(logs, fmt.Sprintf(format, args...)) }

	_, err := NewDriver(concat, WithLogf(logf)).Merge(context.Background(), order(t, a, b), filepath.Join(t.TempDir(), "m.pdf"))
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if !strings.Contains(strings.Join(logs, "\n"), "b.pdf has the same content as a.pdf") {
		t.Fatalf("expected duplicate warning, got %q", logs)
	}
}

func TestDriver_Merge_PDF(t *testing.T) {
	in := t.TempDir()
	var paths []string
	for _, name := range []string{
		"3 2024-03-01T09_00_00-07_00.pdf",
		"1 2024-03-01T060256-07_00.pdf",
		"2 2024-03-01T07_0000-07_00.pdf",
	} {
		paths = append(paths, testutil.WritePDF(t, in, name))
	}
	merger := NewPDF()
	result, err := NewDriver(merger).Merge(context.Background(), order(t, paths...), t.TempDir())
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if result.Count != 3 || result.Pages != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}
	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
	pages, err := merger.Pages(data)
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}
	if pages != 3 {
		t.Fatalf("merged pages=%d want 3", pages)
	}
}

func TestPDF_PagesRejectsGarbage(t *testing.T) {
	if _, err := NewPDF().Pages([]byte("not a pdf")); err == nil {
		t.Fatalf("expected error for garbage input")
	}
}
