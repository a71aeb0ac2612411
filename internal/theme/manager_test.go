package theme

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	packdeckerrors "github.com/alexisbeaulieu97/packdeck/pkg/errors"
)

func TestNewManagerDefaults(t *testing.T) {
	t.Parallel()

	m := NewManager()
	require.Equal(t, Light, m.ActiveName())
	require.Equal(t, []string{Dark, Light}, m.Names())
	assert.Equal(t, lipgloss.Color("#ffffff"), m.Color(BackgroundPrimary))
	assert.Equal(t, lipgloss.Color("#007bff"), m.Color(Accent))
	assert.Equal(t, Font{Family: "Segoe UI", Size: 12, Weight: WeightBold}, m.Font(FontHeading))
}

func TestSetThemeNotifiesObserversInOrder(t *testing.T) {
	t.Parallel()

	m := NewManager()
	var calls []string
	m.RegisterObserver(func(th Theme) { calls = append(calls, "first:"+th.Name()) })
	m.RegisterObserver(func(th Theme) { calls = append(calls, "second:"+th.Name()) })

	require.NoError(t, m.SetTheme(Dark))
	require.Equal(t, []string{"first:Dark", "second:Dark"}, calls)
	assert.Equal(t, lipgloss.Color("#2b2b2b"), m.Color(BackgroundPrimary))
}

func TestSetThemeSameNameStillNotifies(t *testing.T) {
	t.Parallel()

	m := NewManager()
	count := 0
	m.RegisterObserver(func(Theme) { count++ })

	require.NoError(t, m.SetTheme(Light))
	require.NoError(t, m.SetTheme(Light))
	require.Equal(t, 2, count)
}

func TestSetThemeUnknownLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	m := NewManager()
	count := 0
	m.RegisterObserver(func(Theme) { count++ })

	err := m.SetTheme("solarized")
	require.Error(t, err)

	var notFound *packdeckerrors.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "theme", notFound.Kind)
	assert.Equal(t, "solarized", notFound.Name)
	assert.Equal(t, Light, m.ActiveName())
	assert.Zero(t, count)
}

func TestRegisterObserverDuplicatesAreCalledTwice(t *testing.T) {
	t.Parallel()

	m := NewManager()
	count := 0
	fn := func(Theme) { count++ }
	m.RegisterObserver(fn)
	m.RegisterObserver(fn)

	require.NoError(t, m.SetTheme(Dark))
	require.Equal(t, 2, count)
}

func TestObserverHandleCancel(t *testing.T) {
	t.Parallel()

	m := NewManager()
	count := 0
	handle := m.RegisterObserver(func(Theme) { count++ })
	handle.Cancel()
	handle.Cancel()

	require.NoError(t, m.SetTheme(Dark))
	require.Zero(t, count)
}

func TestLookupFallbacks(t *testing.T) {
	t.Parallel()

	m := NewManager()
	m.RegisterTheme("sparse", New("Sparse", KindCustom, map[ColorKey]lipgloss.Color{Accent: "#123456"}, map[FontKey]Font{FontCode: {Family: "Mono", Size: 10}}))
	require.NoError(t, m.SetTheme("sparse"))

	assert.Equal(t, lipgloss.Color("#123456"), m.Color(Accent))
	assert.Equal(t, FallbackColor, m.Color(BackgroundPrimary))
	assert.Equal(t, FallbackColor, m.Color("unknown"))
	assert.Equal(t, FallbackFont, m.Font(FontHeading))
	assert.Equal(t, Font{Family: "Arial", Size: 9}, m.Font("nope"))
}

func TestRegisterThemeReplacingActiveIsSeenByNextLookup(t *testing.T) {
	t.Parallel()

	m := NewManager()
	count := 0
	m.RegisterObserver(func(Theme) { count++ })

	colors := LightTheme().Colors()
	colors[Accent] = "#abcdef"
	m.RegisterTheme(Light, New("Light", KindLight, colors, nil))

	assert.Equal(t, lipgloss.Color("#abcdef"), m.Color(Accent))
	assert.Zero(t, count)
}

func TestThemeIsImmutable(t *testing.T) {
	t.Parallel()

	colors := map[ColorKey]lipgloss.Color{Accent: "#111111"}
	th := New("Mine", KindCustom, colors, nil)
	colors[Accent] = "#222222"

	exposed := th.Colors()
	exposed[Accent] = "#333333"

	assert.Equal(t, lipgloss.Color("#111111"), th.Color(Accent))
}

func TestNextWrapsAround(t *testing.T) {
	t.Parallel()

	m := NewManager()
	require.Equal(t, Dark, m.Next())
	require.NoError(t, m.SetTheme(m.Next()))
	assert.Equal(t, Light, m.Next())
}

func TestFontApply(t *testing.T) {
	t.Parallel()

	heading := Font{Family: "Segoe UI", Size: 12, Weight: WeightBold}.Apply(lipgloss.NewStyle())
	assert.True(t, heading.GetBold())
	assert.False(t, heading.GetFaint())

	small := Font{Family: "Segoe UI", Size: 8}.Apply(lipgloss.NewStyle())
	assert.False(t, small.GetBold())
	assert.True(t, small.GetFaint())
}
