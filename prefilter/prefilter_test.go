package prefilter

import (
	"testing"

	"github.com/coregx/coregrep/literal"
)

func makeSeq(complete bool, lits ...string) *literal.Seq {
	literals := make([]literal.Literal, len(lits))
	for i, s := range lits {
		literals[i] = literal.NewLiteral([]byte(s), complete)
	}
	return literal.NewSeq(literals...)
}

func TestBuilder_Selection(t *testing.T) {
	tests := []struct {
		name string
		seq  *literal.Seq
		want string
	}{
		{"nil sequence", nil, "nil"},
		{"empty sequence", literal.NewSeq(), "nil"},
		{"empty literal", makeSeq(false, "ab", ""), "nil"},
		{"single byte", makeSeq(true, "a"), "memchr"},
		{"single substring", makeSeq(false, "hello"), "memmem"},
		{"several literals", makeSeq(true, "foo", "bar", "x"), "ahocorasick"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := NewBuilder(tt.seq).Build()
			got := "nil"
			switch pf.(type) {
			case *memchrPrefilter:
				got = "memchr"
			case *memmemPrefilter:
				got = "memmem"
			case *ahoCorasickPrefilter:
				got = "ahocorasick"
			}
			if got != tt.want {
				t.Errorf("Build() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPrefilter_Find(t *testing.T) {
	tests := []struct {
		name     string
		seq      *literal.Seq
		haystack string
		start    int
		want     int
	}{
		{"memchr found", makeSeq(false, "@"), "user@example", 0, 4},
		{"memchr from start", makeSeq(false, "a"), "banana", 2, 3},
		{"memchr missing", makeSeq(false, "z"), "banana", 0, -1},
		{"memmem found", makeSeq(false, "world"), "hello world", 0, 6},
		{"memmem missing", makeSeq(false, "world"), "hello word", 0, -1},
		{"memmem multibyte", makeSeq(false, "日本"), "in 日本 now", 0, 3},
		{"ahocorasick leftmost", makeSeq(false, "world", "hello"), "say hello world", 0, 4},
		{"ahocorasick from start", makeSeq(false, "world", "hello"), "say hello world", 5, 10},
		{"ahocorasick missing", makeSeq(false, "foo", "bar"), "baz qux", 0, -1},
		{"start past end", makeSeq(false, "a"), "a", 1, -1},
		{"negative start", makeSeq(false, "ab"), "ab", -1, -1},
		{"empty haystack", makeSeq(false, "x", "y"), "", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := NewBuilder(tt.seq).Build()
			if pf == nil {
				t.Fatal("Build() = nil")
			}
			if got := pf.Find([]byte(tt.haystack), tt.start); got != tt.want {
				t.Errorf("Find(%q, %d) = %d, want %d", tt.haystack, tt.start, got, tt.want)
			}
		})
	}
}

func TestPrefilter_Completeness(t *testing.T) {
	tests := []struct {
		name         string
		seq          *literal.Seq
		wantComplete bool
		wantLen      int
	}{
		{"complete byte", makeSeq(true, "a"), true, 1},
		{"incomplete byte", makeSeq(false, "a"), false, 0},
		{"complete substring", makeSeq(true, "abc"), true, 3},
		{"incomplete substring", makeSeq(false, "abc"), false, 0},
		{"complete set", makeSeq(true, "ab", "cde"), true, 0},
		{"incomplete set", makeSeq(false, "ab", "cde"), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := NewBuilder(tt.seq).Build()
			if pf.IsComplete() != tt.wantComplete {
				t.Errorf("IsComplete() = %v, want %v", pf.IsComplete(), tt.wantComplete)
			}
			if pf.LiteralLen() != tt.wantLen {
				t.Errorf("LiteralLen() = %d, want %d", pf.LiteralLen(), tt.wantLen)
			}
		})
	}
}

func TestPrefilter_HeapBytes(t *testing.T) {
	if got := NewBuilder(makeSeq(false, "a")).Build().HeapBytes(); got != 0 {
		t.Errorf("memchr HeapBytes() = %d, want 0", got)
	}
	if got := NewBuilder(makeSeq(false, "abc")).Build().HeapBytes(); got != 3 {
		t.Errorf("memmem HeapBytes() = %d, want 3", got)
	}
	if got := NewBuilder(makeSeq(false, "ab", "cde")).Build().HeapBytes(); got != 5 {
		t.Errorf("ahocorasick HeapBytes() = %d, want 5", got)
	}
}

func TestMemmem_CopiesNeedle(t *testing.T) {
	needle := []byte("abc")
	pf := newMemmemPrefilter(needle, false)
	needle[0] = 'x'
	if got := pf.Find([]byte("abc"), 0); got != 0 {
		t.Errorf("Find() = %d after mutating the caller's slice, want 0", got)
	}
}
