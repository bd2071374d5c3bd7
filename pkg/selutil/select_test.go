package selutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigil-labs/httplog-go-sdk/pkg/recutil"
)

func TestSelectKey(t *testing.T) {
	src := recutil.Record{"a": 1, "b": 2}

	view, ok := Select(src, Key("a"))
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, recutil.Render(view))

	_, ok = Select(src, Key("missing"))
	assert.False(t, ok)
}

func TestSelectSeq(t *testing.T) {
	cases := []struct {
		Name   string
		Source any
		Spec   Spec
		Want   string
	}{
		{
			Name:   "MergeOrder",
			Source: recutil.Record{"a": 1, "b": 2},
			Spec:   Seq{Key("a"), Key("b")},
			Want:   `{"a":1,"b":2}`,
		},
		{
			Name:   "SpecOrderWins",
			Source: recutil.Record{"a": 1, "b": 2},
			Spec:   Seq{Key("b"), Key("a")},
			Want:   `{"b":2,"a":1}`,
		},
		{
			Name:   "SkipsAbsent",
			Source: recutil.Record{"a": 1},
			Spec:   Seq{Key("missing"), Key("a")},
			Want:   `{"a":1}`,
		},
		{
			Name:   "AllAbsentIsEmpty",
			Source: recutil.Record{"a": 1},
			Spec:   Seq{Key("x"), Key("y")},
			Want:   `{}`,
		},
		{
			Name:   "CollisionLastAppliedWins",
			Source: recutil.Record{"a": recutil.Record{"x": 1}, "b": 2},
			Spec:   Seq{Key("a"), Key("b"), Obj{Sub("a", Key("x"))}},
			Want:   `{"a":{"x":1},"b":2}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			view, ok := Select(tc.Source, tc.Spec)
			require.True(t, ok)
			assert.Equal(t, tc.Want, recutil.Render(view))
		})
	}
}

func TestSelectObj(t *testing.T) {
	src := recutil.Record{
		"headers": recutil.Record{"host": "www.example.com", "cookie": "s=1"},
		"body":    recutil.Record{"user": "jdoe"},
	}

	t.Run("Nested", func(t *testing.T) {
		view, ok := Select(src, Obj{
			Sub("headers", Key("host")),
			Sub("body", Key("user")),
		})
		require.True(t, ok)
		assert.Equal(t,
			`{"headers":{"host":"www.example.com"},"body":{"user":"jdoe"}}`,
			recutil.Render(view))
	})

	t.Run("OmitsEmptyResults", func(t *testing.T) {
		view, ok := Select(src, Obj{
			Sub("headers", Key("missing")),
			Sub("body", Key("user")),
		})
		require.True(t, ok)
		assert.Equal(t, `{"body":{"user":"jdoe"}}`, recutil.Render(view))
	})

	t.Run("OmitsEmptySeqResults", func(t *testing.T) {
		// A Seq that selected nothing is an empty mapping, which an
		// enclosing Obj must treat like absence.
		_, ok := Select(src, Obj{
			Sub("headers", Seq{Key("x"), Key("y")}),
		})
		assert.False(t, ok)
	})

	t.Run("MissingOuterKey", func(t *testing.T) {
		_, ok := Select(src, Obj{Sub("missing", Key("host"))})
		assert.False(t, ok)
	})

	t.Run("ScalarNestedValue", func(t *testing.T) {
		_, ok := Select(recutil.Record{"a": 42}, Obj{Sub("a", Key("b"))})
		assert.False(t, ok)
	})
}

func TestSelectNeverFails(t *testing.T) {
	sources := []any{nil, 42, "text", []any{1, 2}, recutil.Record{"a": 1}}
	specs := []Spec{nil, Key("a"), Seq{}, Seq{nil}, Obj{}, Obj{Sub("a", nil)}}

	for _, src := range sources {
		for _, spec := range specs {
			assert.NotPanics(t, func() {
				Select(src, spec)
			})
		}
	}
}

func TestSelectIdempotent(t *testing.T) {
	src := recutil.Record{
		"a":       1,
		"b":       2,
		"headers": recutil.Record{"host": "www.example.com"},
	}
	spec := Seq{
		Key("a"),
		Key("b"),
		Obj{Sub("headers", Key("host"))},
	}

	once, ok := Select(src, spec)
	require.True(t, ok)

	twice, ok := Select(once, spec)
	require.True(t, ok)
	assert.Equal(t, recutil.Render(once), recutil.Render(twice))
}

func TestSelectDoesNotMutate(t *testing.T) {
	src := recutil.Record{"a": 1, "nested": recutil.Record{"b": 2}}

	view, ok := Select(src, Seq{Key("a"), Obj{Sub("nested", Key("b"))}})
	require.True(t, ok)
	view.Set("a", "changed")

	assert.Equal(t, recutil.Record{"a": 1, "nested": recutil.Record{"b": 2}}, src)
}

func TestTransform(t *testing.T) {
	txfm := Transform(Key("a"))
	assert.Equal(t, `{"a":1}`, recutil.Render(txfm(recutil.Record{"a": 1})))
	assert.Nil(t, txfm(recutil.Record{"b": 2}))

	at := TransformAt(recutil.Path{"body"}, Key("user"))
	assert.Equal(t, `{"user":"jdoe"}`,
		recutil.Render(at(recutil.Record{"body": recutil.Record{"user": "jdoe"}})))
	assert.Nil(t, at(recutil.Record{}))
}
