package project

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testRecords() []Record {
	return []Record{
		{Title: "Alpha", Problem: "p", Importance: "i", Build: "b", Tech: []string{"Go"}},
		{Title: "Beta", Problem: "p", Importance: "i", Build: "b", Metrics: []string{"Latency"}},
		{Title: "Gamma", Problem: "p", Importance: "i", Build: "b"},
	}
}

func titles(records []*Record) []string {
	out := make([]string, 0, len(records))
	for _, record := range records {
		out = append(out, record.Title)
	}
	return out
}

func TestCatalogAllPreservesDeclarationOrder(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(testRecords()...)
	want := []string{"Alpha", "Beta", "Gamma"}
	if diff := cmp.Diff(want, titles(catalog.All())); diff != "" {
		t.Fatalf("All() titles mismatch (-want +got):\n%s", diff)
	}
	if catalog.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", catalog.Len())
	}
}

func TestCatalogAllIsStableAcrossCalls(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(testRecords()...)
	first := catalog.All()
	second := catalog.All()
	if len(first) != len(second) {
		t.Fatalf("len(All()) changed: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("All()[%d] returned a different record on the second call", i)
		}
	}
}

func TestCatalogAllReturnsFreshSlice(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(testRecords()...)
	all := catalog.All()
	all[0] = nil
	if catalog.All()[0] == nil {
		t.Fatal("reassigning the returned slice leaked into the catalog")
	}
}

func TestNewCatalogCopiesInput(t *testing.T) {
	t.Parallel()

	input := testRecords()
	catalog := NewCatalog(input...)
	input[0].Title = "Changed"
	input[0].Tech[0] = "Rust"

	first := catalog.All()[0]
	if first.Title != "Alpha" {
		t.Fatalf("Title = %q, want %q", first.Title, "Alpha")
	}
	if first.Tech[0] != "Go" {
		t.Fatalf("Tech[0] = %q, want %q", first.Tech[0], "Go")
	}
}

func TestNewCatalogKeepsAbsentMetricsNil(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(testRecords()...)
	all := catalog.All()
	if all[0].HasMetrics() {
		t.Fatal("expected Alpha to have no metrics")
	}
	if !all[1].HasMetrics() {
		t.Fatal("expected Beta to have metrics")
	}
}

func TestCatalogFind(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(testRecords()...)
	record, ok := catalog.Find(func(r *Record) bool { return r.Title == "Beta" })
	if !ok || record.Title != "Beta" {
		t.Fatalf("Find(Beta) = %v, %t", record, ok)
	}
	if _, ok := catalog.Find(func(r *Record) bool { return r.Title == "Delta" }); ok {
		t.Fatal("expected Find(Delta) to miss")
	}
	if _, ok := catalog.Find(nil); ok {
		t.Fatal("expected Find(nil) to miss")
	}
}

func TestCatalogFindReturnsFirstMatch(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(
		Record{Title: "Foo", Subtitle: "first"},
		Record{Title: "Foo", Subtitle: "second"},
	)
	record, ok := catalog.Find(func(r *Record) bool { return r.Title == "Foo" })
	if !ok {
		t.Fatal("expected a match")
	}
	if record.Subtitle != "first" {
		t.Fatalf("Subtitle = %q, want %q", record.Subtitle, "first")
	}
}

func TestCatalogContainsUsesIdentity(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(testRecords()...)
	member := catalog.All()[1]
	if !catalog.Contains(member) {
		t.Fatal("expected catalog record to be a member")
	}
	lookalike := *member
	if catalog.Contains(&lookalike) {
		t.Fatal("expected copied record to not be a member")
	}
	if catalog.Contains(nil) {
		t.Fatal("expected nil to not be a member")
	}
	other := NewCatalog(testRecords()...)
	if other.Contains(member) {
		t.Fatal("expected record from another catalog to not be a member")
	}
}

func TestCatalogBySlug(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(
		Record{Title: "RAG Evaluation Pipeline"},
		Record{Title: "Spec–Drift Sentinel"},
	)
	record, ok := catalog.BySlug("spec-drift-sentinel")
	if !ok || record.Title != "Spec–Drift Sentinel" {
		t.Fatalf("BySlug() = %v, %t", record, ok)
	}
	if _, ok := catalog.BySlug(""); ok {
		t.Fatal("expected empty slug to miss")
	}
	if _, ok := catalog.BySlug("missing"); ok {
		t.Fatal("expected unknown slug to miss")
	}
}

func TestCatalogRouteSlugsReachEveryRecord(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(
		Record{Title: "BAT.AI"},
		Record{Title: "BAT AI"},
		Record{Title: "bat-ai 2"},
		Record{Title: "+++"},
		Record{Title: "Close"},
		Record{Title: "???"},
	)
	var got []string
	for _, record := range catalog.All() {
		slug := catalog.SlugOf(record)
		got = append(got, slug)
		found, ok := catalog.BySlug(slug)
		if !ok || found != record {
			t.Fatalf("BySlug(%q) = %p, %t, want record %q", slug, found, ok, record.Title)
		}
	}
	want := []string{"bat-ai", "bat-ai-2", "bat-ai-2-2", "project", "close", "project-2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("route slugs mismatch (-want +got):\n%s", diff)
	}

	lookalike := *catalog.All()[0]
	if slug := catalog.SlugOf(&lookalike); slug != "" {
		t.Fatalf("SlugOf(non-member) = %q, want empty", slug)
	}
	if slug := catalog.SlugOf(nil); slug != "" {
		t.Fatalf("SlugOf(nil) = %q, want empty", slug)
	}
}

func TestNilCatalog(t *testing.T) {
	t.Parallel()

	var catalog *Catalog
	if catalog.All() != nil {
		t.Fatal("expected nil All() for nil catalog")
	}
	if catalog.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", catalog.Len())
	}
	if _, ok := catalog.BySlug("x"); ok {
		t.Fatal("expected nil catalog lookup to miss")
	}
}
