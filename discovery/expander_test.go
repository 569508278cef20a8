package discovery

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandMatrixShape(t *testing.T) {
	terms := Expand("Elon Musk", 2025)

	require.Len(t, terms, len(ContentTypes)*(1+YearWindow)) // 5 * 6 = 30

	// Each type group starts with the bare term, then years newest first.
	groupSize := 1 + YearWindow
	for g, contentType := range ContentTypes {
		group := terms[g*groupSize : (g+1)*groupSize]
		assert.Equal(t, "Elon Musk "+contentType, group[0])
		for i := 0; i < YearWindow; i++ {
			assert.Equal(t, fmt.Sprintf("Elon Musk %s %d", contentType, 2025-i), group[1+i])
		}
	}
}

func TestExpandDeterministic(t *testing.T) {
	a := Expand("Ada Lovelace", 2025)
	b := Expand("Ada Lovelace", 2025)
	assert.Equal(t, a, b)
}

func TestExpandEveryTermCarriesSubject(t *testing.T) {
	for _, term := range Expand("Grace Hopper", 2025) {
		assert.True(t, strings.HasPrefix(term, "Grace Hopper "), "term %q", term)
	}
}
