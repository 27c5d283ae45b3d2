package figscene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStyleDefaults(t *testing.T) {
	st, _, err := resolveStyle(ThemeDefault, nil)
	require.NoError(t, err)
	assert.Equal(t, Style{Color: "black", Thickness: 2, Line: Solid}, st)
}

func TestResolveStyleOverrides(t *testing.T) {
	st, _, err := resolveStyle(ThemeDefault, []Option{
		WithColor("blue"),
		WithLine(Dashed),
	})
	require.NoError(t, err)
	assert.Equal(t, Style{Color: "blue", Thickness: 2, Line: Dashed}, st)
}

func TestResolveStyleFull(t *testing.T) {
	want := Style{Color: "green", Thickness: 3, Line: Dashed}
	st, _, err := resolveStyle(ThemeDefault, []Option{WithStyle(want)})
	require.NoError(t, err)
	assert.Equal(t, want, st)
}

func TestResolveStyleConflict(t *testing.T) {
	_, _, err := resolveStyle(ThemeDefault, []Option{
		WithStyle(ThemeHighlight),
		WithThickness(4),
	})
	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
}

func TestResolveStyleBadThickness(t *testing.T) {
	_, _, err := resolveStyle(ThemeDefault, []Option{WithThickness(0)})
	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)

	_, _, err = resolveStyle(ThemeDefault, []Option{WithThickness(-1)})
	assert.True(t, errors.As(err, &cerr))
}

func TestDashArray(t *testing.T) {
	assert.Equal(t, "none", Style{Line: Solid}.DashArray())
	assert.Equal(t, "8,2", Style{Line: Dashed}.DashArray())
	// Stateless: repeated calls yield the same value.
	s := ThemeAxes
	assert.Equal(t, s.DashArray(), s.DashArray())
}

func TestParseLineStyle(t *testing.T) {
	ls, err := ParseLineStyle("solid")
	require.NoError(t, err)
	assert.Equal(t, Solid, ls)

	ls, err = ParseLineStyle("dashed")
	require.NoError(t, err)
	assert.Equal(t, Dashed, ls)

	_, err = ParseLineStyle("dotted")
	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
}

func TestLineStyleString(t *testing.T) {
	assert.Equal(t, "solid", Solid.String())
	assert.Equal(t, "dashed", Dashed.String())
}
