// Package blaze implements a disk-resident inverted index over a static
// corpus of HTML documents: an external-memory builder that spills sorted
// partial indexes and merges them into one sorted index file, and a
// streaming query processor that ranks documents against it with cosine
// similarity over tf-idf plus a structural field bonus.
package blaze

import "sort"

// ═══════════════════════════════════════════════════════════════════════════════
// RESOURCE BUDGETS
// ═══════════════════════════════════════════════════════════════════════════════
// These are the tuning knobs named in the spec's resource-budget table. They
// are plain constants rather than environment variables (this module has
// none).
// ═══════════════════════════════════════════════════════════════════════════════
const (
	// DefaultBatchSize (B) is the number of documents accumulated in memory
	// by the batch indexer before it is spilled to a partial run.
	DefaultBatchSize = 18465

	// DefaultMergeBlockBytes (M) is the approximate in-memory budget per side
	// of a pairwise binary merge, measured as accumulated serialized-line
	// byte length rather than true heap size.
	DefaultMergeBlockBytes = 10 * 1000 * 1000

	// DefaultChunkSize (R) is the number of postings yielded per chunk by a
	// term's posting generator, and the fallback candidate-set cap when no
	// docids are common to all query terms.
	DefaultChunkSize = 100

	// DefaultQueryTermCap (Q) is the maximum number of stemmed query terms
	// considered; any beyond this are truncated from the tail.
	DefaultQueryTermCap = 10

	// DefaultCacheBudgetBytes (C) is the retained-payload size budget for the
	// result cache, approximated the same way DefaultMergeBlockBytes is.
	DefaultCacheBudgetBytes = 100 * 1000 * 1000
)

// DocID is a positive integer document identifier, assigned densely in
// ingest order starting at 1.
type DocID int

// StructuralFields is the fixed six-field record of which HTML structural
// tags a token was found inside, for a single document. This replaces the
// source system's dynamic dictionary-of-tags with a fixed record per the
// spec's re-architecture note: "Dynamic dictionaries of heterogeneous
// schema → a fixed six-field record."
type StructuralFields struct {
	Title      bool
	Heading    bool
	Bold       bool
	Strong     bool
	Italics    bool
	Emphasized bool
}

// Any reports whether at least one structural field is set; used by the
// query processor's field bonus (+1 to cosine score when true).
func (f StructuralFields) Any() bool {
	return f.Title || f.Heading || f.Bold || f.Strong || f.Italics || f.Emphasized
}

// Posting records that a stemmed term occurs in a given document, with its
// (pre-stemming) term frequency, structural-field flags, and the ordered
// positions at which the stemmed term occurred in the document's
// deduplicated-token enumeration (see DESIGN.md on term_positions
// semantics — this is deliberately not a text offset).
//
// Invariants: TF >= 1; TermPositions is non-empty and strictly increasing.
type Posting struct {
	DocID         DocID
	TF            int
	Fields        StructuralFields
	TermPositions []int
}

// appendPosition appends a new, larger position to the posting. Callers are
// responsible for the strictly-increasing invariant; within a single
// document's batch-indexing pass positions are assigned in increasing
// enumeration order, so this always holds.
func (p *Posting) appendPosition(pos int) {
	p.TermPositions = append(p.TermPositions, pos)
}

// PostingList holds every Posting for one term, ordered by ascending DocID,
// at most one Posting per DocID, with Df == len(Postings).
//
// PostingList is the flattened, sorted view used for serialization and for
// the query side; it offers no lookup of a posting by DocID.
type PostingList struct {
	Df       int
	Postings []Posting
}

// NewPostingList returns an empty PostingList.
func NewPostingList() *PostingList {
	return &PostingList{}
}

// appendSorted appends a posting whose DocID is >= every existing posting's
// DocID (the caller — the batch indexer or the merge engine's re-sort step
// — guarantees this), keeping Df in sync.
func (pl *PostingList) appendSorted(p Posting) {
	pl.Postings = append(pl.Postings, p)
	pl.Df = len(pl.Postings)
}

// sortByDocID re-sorts postings by ascending DocID and fixes up Df. Used by
// the merge engine after concatenating postings from two runs, and is a
// no-op (other than recomputing Df) if the postings are already sorted.
func (pl *PostingList) sortByDocID() {
	sort.SliceStable(pl.Postings, func(i, j int) bool {
		return pl.Postings[i].DocID < pl.Postings[j].DocID
	})
	pl.Df = len(pl.Postings)
}
