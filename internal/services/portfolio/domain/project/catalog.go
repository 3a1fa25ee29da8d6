package project

import (
	"slices"
	"strconv"
)

// Catalog is the immutable, ordered sequence of project records. Declaration
// order is display order.
type Catalog struct {
	records []*Record
	// slugs holds each record's route slug, parallel to records.
	slugs []string
}

// fallbackSlug names records whose title has no slug characters.
const fallbackSlug = "project"

// NewCatalog copies records into catalog-owned storage and assigns every
// record a distinct route slug.
func NewCatalog(records ...Record) *Catalog {
	owned := make([]*Record, 0, len(records))
	for _, record := range records {
		record := record.clone()
		owned = append(owned, &record)
	}
	return &Catalog{records: owned, slugs: assignSlugs(owned)}
}

// assignSlugs uses the title slug where it is free and suffixes -2, -3, ...
// otherwise, in catalog order.
func assignSlugs(records []*Record) []string {
	slugs := make([]string, len(records))
	taken := make(map[string]bool, len(records))
	for i, record := range records {
		base := record.Slug()
		if base == "" {
			base = fallbackSlug
		}
		candidate := base
		for n := 2; taken[candidate]; n++ {
			candidate = base + "-" + strconv.Itoa(n)
		}
		taken[candidate] = true
		slugs[i] = candidate
	}
	return slugs
}

// All returns every record in declaration order. Each call returns the same
// records in the same order.
func (c *Catalog) All() []*Record {
	if c == nil {
		return nil
	}
	return slices.Clone(c.records)
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Find returns the first record matching match.
func (c *Catalog) Find(match func(*Record) bool) (*Record, bool) {
	if c == nil || match == nil {
		return nil, false
	}
	for _, record := range c.records {
		if match(record) {
			return record, true
		}
	}
	return nil, false
}

// Contains reports whether record is one of the catalog's own records.
// Membership is by identity, not by value.
func (c *Catalog) Contains(record *Record) bool {
	if c == nil || record == nil {
		return false
	}
	return slices.Contains(c.records, record)
}

// BySlug returns the record whose route slug equals slug.
func (c *Catalog) BySlug(slug string) (*Record, bool) {
	if c == nil || slug == "" {
		return nil, false
	}
	index := slices.Index(c.slugs, slug)
	if index < 0 {
		return nil, false
	}
	return c.records[index], true
}

// SlugOf returns the route slug of a catalog record, or "" for a record the
// catalog does not own.
func (c *Catalog) SlugOf(record *Record) string {
	if c == nil || record == nil {
		return ""
	}
	index := slices.Index(c.records, record)
	if index < 0 {
		return ""
	}
	return c.slugs[index]
}
