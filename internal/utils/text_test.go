package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanUTF8(t *testing.T) {
	cleaned, changed := CleanUTF8("Não Conforme")
	assert.False(t, changed)
	assert.Equal(t, "Não Conforme", cleaned)

	cleaned, changed = CleanUTF8("obs\x00erv\xffação")
	assert.True(t, changed)
	assert.Equal(t, "observação", cleaned)
}

func TestCell(t *testing.T) {
	assert.Equal(t, "linha um linha dois", Cell("linha um\nlinha\tdois  "))
	assert.Equal(t, "", Cell(""))
}

func TestDeref(t *testing.T) {
	value := "Acme"
	assert.Equal(t, "Acme", Deref(&value))
	assert.Equal(t, "", Deref(nil))
}
