package analysis

import (
	"testing"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestStyles_ForMacro(t *testing.T) {
	s := NewStyles()

	assert.Equal(t, s.Essential, s.ForMacro(model.MacroEssential))
	assert.Equal(t, s.Lifestyle, s.ForMacro(model.MacroLifestyle))
	assert.Equal(t, s.Income, s.ForMacro(model.MacroIncome))
	assert.Equal(t, s.Normal, s.ForMacro("Other"))
}

func TestStyles_WithWidth(t *testing.T) {
	s := NewStyles()

	narrow := s.WithWidth(80)
	assert.Equal(t, 76, narrow.Box.GetWidth())
	assert.Equal(t, 76, narrow.KPIBox.GetWidth())
	assert.Zero(t, s.Box.GetWidth(), "original styles are unchanged")

	wide := s.WithWidth(200)
	assert.Zero(t, wide.Box.GetWidth())
}

func TestStyles_RenderBox(t *testing.T) {
	s := NewStyles()

	out := s.RenderBox("body", "Heading", s.Box)
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "body")

	assert.Contains(t, s.RenderBox("plain", "", s.Box), "plain")
}
