package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirectiveForms(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		op     HookOp
		anchor string
	}{
		{"insert before", "insertbefore:#include <common>\n", HookOpInsertBefore, "#include <common>\n"},
		{"insert after", "insertafter:#include <begin_vertex>\n", HookOpInsertAfter, "#include <begin_vertex>\n"},
		{"replace", "replace:#include <map_fragment>\n", HookOpReplace, "#include <map_fragment>\n"},
		{"anchor with colon", "replace:a:b", HookOpReplace, "a:b"},
		{"empty anchor", "insertafter:", HookOpInsertAfter, ""},
		{"multiline anchor", "replace:line one\nline two\n", HookOpReplace, "line one\nline two\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ParseDirective(tt.raw)
			require.True(t, ok)
			assert.Equal(t, tt.op, d.Op)
			assert.Equal(t, tt.anchor, d.Anchor)
		})
	}
}

func TestParseDirectiveRejectsMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"insertbetween:#include <common>",
		"insertbefore #include <common>",
		"INSERTBEFORE:#include <common>",
		" replace:#include <common>",
	} {
		_, ok := ParseDirective(raw)
		assert.False(t, ok, "%q must not parse", raw)
	}
}

func TestHookTablePreservesInsertionOrder(t *testing.T) {
	table := NewHookTable(
		Hook{"c", "replace:C"},
		Hook{"a", "replace:A"},
		Hook{"b", "replace:B"},
	)

	assert.Equal(t, []string{"c", "a", "b"}, table.Names())
}

func TestHookTableDefineOverwritesInPlace(t *testing.T) {
	table := NewHookTable(
		Hook{"first", "replace:1"},
		Hook{"second", "replace:2"},
	)

	table.Define(
		Hook{"first", "insertafter:1"},
		Hook{"third", "replace:3"},
	)

	assert.Equal(t, []string{"first", "second", "third"}, table.Names())
	d, ok := table.Directive("first")
	require.True(t, ok)
	assert.Equal(t, "insertafter:1", d)
}

func TestHookTableDirectiveAbsent(t *testing.T) {
	table := NewHookTable()
	d, ok := table.Directive("missing")
	assert.False(t, ok)
	assert.Empty(t, d)
}

func TestDefaultTablesAreIndependentPerCall(t *testing.T) {
	a := DefaultVertexHooks()
	b := DefaultVertexHooks()
	a.Define(Hook{"custom", "replace:X"})

	assert.Contains(t, a.Names(), "custom")
	assert.NotContains(t, b.Names(), "custom")
}
