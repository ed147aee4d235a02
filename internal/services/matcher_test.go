package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsDiacritics(t *testing.T) {
	m := NewMatcher()
	assert.Equal(t, m.Normalize("ذكر"), m.Normalize("ذَكَر"))
	assert.Equal(t, m.Normalize("محمد"), m.Normalize("مُحَمَّد"))
}

func TestNormalizeUnifiesAlefVariants(t *testing.T) {
	m := NewMatcher()
	assert.Equal(t, m.Normalize("اسلام"), m.Normalize("إسلام"))
	assert.Equal(t, m.Normalize("اية"), m.Normalize("آية"))
}

func TestNormalizeUnifiesTaaMarbuta(t *testing.T) {
	m := NewMatcher()
	assert.Equal(t, m.Normalize("القاهره"), m.Normalize("القاهرة"))
}

func TestNormalizeStripsTatweel(t *testing.T) {
	m := NewMatcher()
	assert.Equal(t, m.Normalize("علم"), m.Normalize("عـــلم"))
}

func TestNormalizePunctuationAndWhitespace(t *testing.T) {
	m := NewMatcher()
	assert.Equal(t, "نهر النيل", m.Normalize("  نهر   النيل!! "))
	assert.Equal(t, "hello world", m.Normalize("Hello, World?"))
}

func TestIsMatch(t *testing.T) {
	m := NewMatcher()
	accepted := []string{"القاهرة", "Cairo"}

	assert.True(t, m.IsMatch("القاهره", accepted))
	assert.True(t, m.IsMatch("cairo", accepted))
	assert.False(t, m.IsMatch("الرياض", accepted))
}

func TestIsMatchRejectsCommandsAndEmpty(t *testing.T) {
	m := NewMatcher()
	accepted := []string{"القاهرة"}

	assert.False(t, m.IsMatch("/القاهرة", accepted))
	assert.False(t, m.IsMatch("/challenge", accepted))
	assert.False(t, m.IsMatch("", accepted))
	assert.False(t, m.IsMatch("   ", accepted))
	assert.False(t, m.IsMatch("!!!", accepted))
}
