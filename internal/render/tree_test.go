package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/edgarviz/internal/treesearch"
)

func TestTree_Initial(t *testing.T) {
	s := treesearch.NewSession(treesearch.Default())
	out := Tree(s, DefaultTreeStyles(60))

	assert.Contains(t, out, "Step 1: Finding Company")
	assert.Contains(t, out, "[Show Judgment]")
	assert.Contains(t, out, "Search 'Google'")
	assert.Contains(t, out, "$ Looking up Google")
	assert.Contains(t, out, "Step 1 of 3")
	assert.NotContains(t, out, "Step 2: Finding 8-Ks")
}

func TestTree_AfterAdvance(t *testing.T) {
	s := treesearch.NewSession(treesearch.Default())
	require.NoError(t, s.Reveal(0))
	require.NoError(t, s.Advance())

	out := Tree(s, DefaultTreeStyles(60))
	assert.Contains(t, out, "Step 2: Finding 8-Ks")
	assert.Contains(t, out, "→ Search 'Alphabet'")
	assert.Contains(t, out, "Recent Only")
	assert.Contains(t, out, "Step 2 of 3")
}

func TestTree_FinalAnswer(t *testing.T) {
	s := treesearch.NewSession(treesearch.Default())
	for i := 0; i < 2; i++ {
		require.NoError(t, s.Reveal(i))
		require.NoError(t, s.Advance())
	}
	out := Tree(s, DefaultTreeStyles(60))
	assert.Contains(t, out, "[Show Final Answer]")

	require.NoError(t, s.Reveal(2))
	out = Tree(s, DefaultTreeStyles(60))
	assert.Contains(t, out, "Ruth Porat (CFO)")
	assert.NotContains(t, out, "Show Final Answer")
}
