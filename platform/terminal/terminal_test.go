package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feruxmax/opentk/input"
	"github.com/feruxmax/opentk/platform"
)

func newTestSurface(t *testing.T, cb platform.Callbacks) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWithScreen(sim)
	require.NoError(t, s.Create(platform.Config{Title: "term", Width: 80, Height: 24, Callbacks: cb}))
	return s, sim
}

func TestCreateDestroyContract(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Destroy(), platform.ErrNoSurface)

	s, _ = newTestSurface(t, platform.Callbacks{})
	assert.True(t, s.Exists())
	assert.ErrorIs(t, s.Create(platform.Config{}), platform.ErrSurfaceExists)
}

func TestEscapeRequestsClose(t *testing.T) {
	closed := 0
	s, sim := newTestSurface(t, platform.Callbacks{
		CloseRequested: func() { closed++ },
	})

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	s.ProcessEvents()
	assert.Equal(t, 1, closed)
	assert.True(t, s.Exists(), "close request must not tear the surface down")
}

func TestDestroyFiresDestroyingOnNextPump(t *testing.T) {
	destroying := 0
	s, _ := newTestSurface(t, platform.Callbacks{
		Destroying: func() { destroying++ },
	})

	require.NoError(t, s.Destroy())
	assert.True(t, s.Exists())

	s.ProcessEvents()
	assert.False(t, s.Exists())
	assert.Equal(t, 1, destroying)
}

func TestSizeReportsScreenCells(t *testing.T) {
	s, sim := newTestSurface(t, platform.Callbacks{})
	sim.SetSize(120, 40)

	w, h := s.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}

func TestSetSizeValidatesButIgnores(t *testing.T) {
	s, _ := newTestSurface(t, platform.Callbacks{})

	assert.ErrorIs(t, s.SetSize(-1, 10), platform.ErrInvalidSize)
	assert.NoError(t, s.SetSize(200, 50))
}

func TestInputReportsKeyboardOnly(t *testing.T) {
	s, _ := newTestSurface(t, platform.Callbacks{})
	drv := s.Input()

	require.NotNil(t, input.Primary(drv.Keyboards()))
	assert.Nil(t, input.Primary(drv.Pointers()))
}
