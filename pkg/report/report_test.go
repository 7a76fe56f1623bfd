package report_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JulesGuesnon/garde/pkg/fieldpath"
	"github.com/JulesGuesnon/garde/pkg/report"
)

func key(parts ...string) fieldpath.Path {
	p := fieldpath.Empty()
	for _, part := range parts {
		p = p.Join(fieldpath.Key(part))
	}
	return p
}

func messages(r *report.Report, pattern string) []string {
	var got []string
	for err := range r.Select(fieldpath.MustParsePattern(pattern)) {
		got = append(got, err.Message())
	}
	return got
}

func TestReport_Empty(t *testing.T) {
	r := report.New()
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, "", r.String())

	r.Append(key("a"), report.NewError("x"))
	assert.False(t, r.IsEmpty())
	assert.Equal(t, 1, r.Len())
}

func TestReport_String(t *testing.T) {
	t.Run("one line per entry", func(t *testing.T) {
		r := report.New()
		r.Append(key("a"), report.NewError("x"))
		r.Append(key("b"), report.NewError("y"))

		assert.Equal(t, "a: x\nb: y\n", r.String())
	})

	t.Run("single entry with nested path", func(t *testing.T) {
		r := report.New()
		r.Append(key("a", "b"), report.NewError("oops"))

		assert.Equal(t, "a.b: oops\n", r.String())
	})

	t.Run("error interface matches rendering", func(t *testing.T) {
		r := report.New()
		r.Append(key("a"), report.NewError("x"))

		var err error = r
		assert.Equal(t, "a: x\n", err.Error())
	})
}

func TestReport_All(t *testing.T) {
	r := report.New()
	r.Append(key("b"), report.NewError("second field first"))
	r.Append(key("a"), report.NewError("first field second"))
	r.Append(key("a"), report.NewError("again"))

	var paths []string
	var msgs []string
	for e := range r.All() {
		paths = append(paths, e.Path.String())
		msgs = append(msgs, e.Error.Message())
	}

	// Insertion order, never sorted or deduplicated.
	assert.Equal(t, []string{"b", "a", "a"}, paths)
	assert.Equal(t, []string{"second field first", "first field second", "again"}, msgs)
}

func TestReport_Select(t *testing.T) {
	r := report.New()
	r.Append(key("a", "b"), report.NewError("lol"))
	r.Append(key("a", "b", "c"), report.NewError("that seems wrong"))
	r.Append(key("a", "b", "c"), report.NewError("pog"))
	r.Append(
		fieldpath.New(fieldpath.Key("array")).Join(fieldpath.Index(0)).Join(fieldpath.Key("c")),
		report.NewError("pog"),
	)

	t.Run("exact location", func(t *testing.T) {
		assert.Equal(t, []string{"that seems wrong", "pog"}, messages(r, "a.b.c"))
	})

	t.Run("indexed location", func(t *testing.T) {
		assert.Equal(t, []string{"pog"}, messages(r, "array[0].c"))
	})

	t.Run("prefix collects the subtree", func(t *testing.T) {
		assert.Equal(t, []string{"lol", "that seems wrong", "pog"}, messages(r, "a.b"))
	})

	t.Run("empty pattern collects everything", func(t *testing.T) {
		assert.Equal(t, []string{"lol", "that seems wrong", "pog", "pog"}, messages(r, ""))
	})

	t.Run("no match yields nothing", func(t *testing.T) {
		assert.Empty(t, messages(r, "missing"))
		assert.Empty(t, messages(r, "array[1]"))
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		var got []string
		for err := range r.Select(fieldpath.Pattern{}) {
			got = append(got, err.Message())
			break
		}
		assert.Equal(t, []string{"lol"}, got)
	})

	t.Run("anonymous roots are skipped during matching", func(t *testing.T) {
		anon := report.New()
		anon.Append(
			fieldpath.New(fieldpath.NoKey{}).Join(fieldpath.Key("a")).Join(fieldpath.Key("b")),
			report.NewError("hidden root"),
		)
		assert.Equal(t, []string{"hidden root"}, messages(anon, "a.b"))
	})
}

func TestReport_MarshalJSON(t *testing.T) {
	t.Run("empty report is an empty array", func(t *testing.T) {
		data, err := json.Marshal(report.New())
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("entries keep order and field names", func(t *testing.T) {
		r := report.New()
		r.Append(key("a", "b"), report.NewError("oops"))
		r.Append(
			fieldpath.New(fieldpath.Key("xs")).Join(fieldpath.Index(0)),
			report.NewError("nope"),
		)

		data, err := json.Marshal(r)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"path":"a.b","error":"oops"},{"path":"xs[0]","error":"nope"}]`, string(data))
	})
}

func TestReport_GoroutineHandOff(t *testing.T) {
	r := report.New()
	r.Append(key("a"), report.NewError("x"))

	ch := make(chan *report.Report, 1)
	ch <- r

	done := make(chan string)
	go func() {
		got := <-ch
		done <- got.String()
	}()

	assert.Equal(t, "a: x\n", <-done)
}

func TestError(t *testing.T) {
	t.Run("message round-trip", func(t *testing.T) {
		e := report.NewError("boom")
		assert.Equal(t, "boom", e.Message())
		assert.Equal(t, "boom", e.String())
		assert.Equal(t, "boom", e.Error())
	})

	t.Run("equality is by message", func(t *testing.T) {
		assert.Equal(t, report.NewError("a"), report.NewError("a"))
		assert.NotEqual(t, report.NewError("a"), report.NewError("b"))
	})

	t.Run("ordering is lexicographic", func(t *testing.T) {
		assert.Negative(t, report.NewError("a").Compare(report.NewError("b")))
		assert.Zero(t, report.NewError("a").Compare(report.NewError("a")))
		assert.Positive(t, report.NewError("b").Compare(report.NewError("a")))
	})

	t.Run("marshals as its message", func(t *testing.T) {
		data, err := json.Marshal(report.NewError("boom"))
		require.NoError(t, err)
		assert.Equal(t, `"boom"`, string(data))
	})
}
