package comp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The grammar defines exactly 69 rule alternatives. The bridge must cover
// all of them and nothing else.
func TestTypes_coversTheClosedSet(t *testing.T) {
	ts := Types()
	require.Len(t, ts, 69)

	names := map[string]struct{}{}
	for _, typ := range ts {
		name := typ.Name()
		require.NotEmpty(t, name)
		_, dup := names[name]
		require.False(t, dup, "duplicated name: %v", name)
		names[name] = struct{}{}

		got, ok := TypeOf(name)
		require.True(t, ok, "name %v doesn't round-trip", name)
		assert.Equal(t, typ, got)
	}
}

func TestTypeOf_rejectsUnknownAndTokenNames(t *testing.T) {
	_, ok := TypeOf("NoSuchRule")
	assert.False(t, ok)

	// Token is a sentinel, not a rule type.
	_, ok = TypeOf("Token")
	assert.False(t, ok)
}

func TestLabels_matchTheGrammarDeclarations(t *testing.T) {
	tests := []struct {
		ty     NodeType
		labels []string
	}{
		{ty: NodeMetadata, labels: []string{"mime", "name"}},
		{ty: NodeExpressionBinaryPM, labels: []string{"left", "right"}},
		{ty: NodeExpressionBinaryMD, labels: []string{"left", "right"}},
		{ty: NodeExpressionBinaryMod, labels: []string{"left", "right"}},
		{ty: NodeExpressionBinaryLess, labels: []string{"left", "right"}},
		{ty: NodeExpressionBinaryLessEqual, labels: []string{"left", "right"}},
		{ty: NodeExpressionBinaryGreater, labels: []string{"left", "right"}},
		{ty: NodeExpressionBinaryGreaterEqual, labels: []string{"left", "right"}},
		{ty: NodeExpressionBinaryEqual, labels: []string{"left", "right"}},
		{ty: NodeExpressionBinaryLogic, labels: []string{"left", "right"}},
		{ty: NodeExpressionBinaryLeftShift, labels: []string{"left", "right"}},
		{ty: NodeExpressionBinaryRightShift, labels: []string{"left", "right"}},
		{ty: NodeExpressionExponentiation, labels: []string{"base", "exponent"}},
		{ty: NodeExpressionTrinaryLogic, labels: []string{"test", "true", "false"}},
		{ty: NodeProg, labels: nil},
		{ty: NodeAssignment, labels: nil},
		{ty: NodeUnparsedBlock, labels: nil},
	}
	for _, tt := range tests {
		t.Run(tt.ty.Name(), func(t *testing.T) {
			assert.Equal(t, tt.labels, tt.ty.Labels())
		})
	}
}

func TestLabels_namesAreUniqueWithinAType(t *testing.T) {
	for _, typ := range Types() {
		seen := map[string]struct{}{}
		for _, l := range typ.Labels() {
			_, dup := seen[l]
			require.False(t, dup, "%v declares label %v twice", typ.Name(), l)
			seen[l] = struct{}{}
			assert.True(t, typ.HasLabel(l))
		}
	}
}

func TestLabeledTypeCount(t *testing.T) {
	labeled := 0
	for _, typ := range Types() {
		if len(typ.Labels()) > 0 {
			labeled++
		}
	}
	// Metadata, eleven binary operator alternatives, exponentiation, and the
	// ternary conditional.
	assert.Equal(t, 14, labeled)
}
