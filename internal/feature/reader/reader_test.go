package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontSize_Bounds(t *testing.T) {
	r := Reducer()
	s := Open("a1", "Title", "https://example.org", "body")
	assert.Equal(t, DefaultFontSize, s.FontSize)

	for i := 0; i < 10; i++ {
		s, _ = r(s, FontIncreased{}, Env{})
	}
	assert.Equal(t, MaxFontSize, s.FontSize)

	for i := 0; i < 10; i++ {
		s, _ = r(s, FontDecreased{}, Env{})
	}
	assert.Equal(t, MinFontSize, s.FontSize)
}

func TestClose_NoOpAtPaneLevel(t *testing.T) {
	r := Reducer()
	s := Open("a1", "Title", "", "")
	next, eff := r(s, CloseTapped{}, Env{})
	assert.Equal(t, s, next)
	assert.Nil(t, eff)
}
