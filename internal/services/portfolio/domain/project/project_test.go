package project

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"RAG Evaluation Pipeline", "rag-evaluation-pipeline"},
		{"Spec–Drift Sentinel", "spec-drift-sentinel"},
		{"QA Knowledge Graph + RAG Assistant", "qa-knowledge-graph-rag-assistant"},
		{"  Café Déjà Vu  ", "cafe-deja-vu"},
		{"BAT.AI", "bat-ai"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range tests {
		t.Run(tc.title, func(t *testing.T) {
			if got := Slug(tc.title); got != tc.want {
				t.Fatalf("Slug(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestRecordBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build string
		want  []string
	}{
		{
			name:  "relative indentation kept",
			build: "\nI built it:\n  • first step.\n    - detail\n  • <b>second</b> step.  \n",
			want:  []string{"I built it:", "  • first step.", "    - detail", "  • <b>second</b> step."},
		},
		{
			name:  "shared indentation removed",
			build: "\n    one\n      two\n    three\n\n",
			want:  []string{"one", "  two", "three"},
		},
		{
			name:  "inner blank lines kept",
			build: "one\n   \n\ttwo",
			want:  []string{"one", "", "\ttwo"},
		},
		{
			name:  "crlf",
			build: "one\r\ntwo\r\n",
			want:  []string{"one", "two"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record := &Record{Build: tc.build}
			if diff := cmp.Diff(tc.want, record.BuildLines()); diff != "" {
				t.Fatalf("BuildLines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecordBuildLinesEmpty(t *testing.T) {
	t.Parallel()

	if lines := (&Record{Build: "   "}).BuildLines(); lines != nil {
		t.Fatalf("BuildLines() = %v, want nil", lines)
	}
	var record *Record
	if lines := record.BuildLines(); lines != nil {
		t.Fatalf("nil BuildLines() = %v, want nil", lines)
	}
	if record.Slug() != "" {
		t.Fatalf("nil Slug() = %q, want empty", record.Slug())
	}
}
