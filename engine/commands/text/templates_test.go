package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongDesc(t *testing.T) {
	t.Parallel()

	assert.Empty(t, LongDesc(""))
	assert.Equal(t, "Patch IDL files.\n\t\tSecond line.", LongDesc(`
		Patch IDL files.
		Second line.
	`))
}

func TestExamples(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Examples("  \n "))

	got := Examples(`
		# Patch for mainnet
		fixmetadata mainnet
	`)
	assert.Equal(t, "  # Patch for mainnet\n  fixmetadata mainnet", got)
}
