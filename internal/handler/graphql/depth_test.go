package graphql

import (
	"testing"

	"github.com/graphql-go/graphql/language/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDepth(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		maxDepth int
		wantErr  bool
	}{
		{name: "flat", query: `{ departments }`, maxDepth: 0},
		{name: "at limit", query: `{ me { employee { id } } }`, maxDepth: 2},
		{name: "over limit", query: `{ me { employee { id } } }`, maxDepth: 1, wantErr: true},
		{name: "fragment spread counts where used", query: `
			query Q { me { ...U } }
			fragment U on User { employee { id } }`, maxDepth: 1, wantErr: true},
		{name: "inline fragment", query: `{ me { ... on User { employee { id } } } }`, maxDepth: 2},
		{name: "introspection ignored", query: `{ __schema { types { fields { type { name } } } } }`, maxDepth: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := parser.Parse(parser.ParseParams{Source: tc.query})
			require.NoError(t, err)

			errs := checkDepth(doc, tc.maxDepth)
			if tc.wantErr {
				assert.Len(t, errs, 1)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestCheckDepth_NamesOperation(t *testing.T) {
	doc, err := parser.Parse(parser.ParseParams{Source: `query Nested { me { employee { id } } }`})
	require.NoError(t, err)

	errs := checkDepth(doc, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, "'Nested' exceeds maximum operation depth of 1", errs[0].Message)
}
