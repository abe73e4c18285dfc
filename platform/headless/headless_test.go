package headless

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feruxmax/opentk/input"
	"github.com/feruxmax/opentk/platform"
)

func TestCreateDestroyContract(t *testing.T) {
	s := New()

	assert.False(t, s.Exists())
	assert.ErrorIs(t, s.Destroy(), platform.ErrNoSurface)

	require.NoError(t, s.Create(platform.Config{Title: "test", Width: 320, Height: 240}))
	assert.True(t, s.Exists())
	assert.ErrorIs(t, s.Create(platform.Config{}), platform.ErrSurfaceExists)

	w, h := s.Size()
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
	assert.Equal(t, "test", s.Title())
}

func TestDestroyIsAsynchronous(t *testing.T) {
	destroying := 0
	s := New()
	require.NoError(t, s.Create(platform.Config{
		Width:  100,
		Height: 100,
		Callbacks: platform.Callbacks{
			Destroying: func() { destroying++ },
		},
	}))

	require.NoError(t, s.Destroy())
	assert.True(t, s.Exists(), "surface should linger until the next pump")
	assert.Zero(t, destroying)

	s.ProcessEvents()
	assert.False(t, s.Exists())
	assert.Equal(t, 1, destroying)

	s.ProcessEvents()
	assert.Equal(t, 1, destroying, "Destroying must fire exactly once")
}

func TestFrameBudgetRequestsClose(t *testing.T) {
	closed := 0
	s := New()
	require.NoError(t, s.Create(platform.Config{
		Width:  100,
		Height: 100,
		Callbacks: platform.Callbacks{
			CloseRequested: func() { closed++ },
		},
	}))
	s.SetFrameBudget(3)

	for i := 0; i < 5; i++ {
		s.ProcessEvents()
	}
	assert.Equal(t, 1, closed, "budget should request close exactly once")
}

func TestSetSizeValidation(t *testing.T) {
	s := New()
	require.NoError(t, s.Create(platform.Config{Width: 100, Height: 100}))

	assert.ErrorIs(t, s.SetSize(0, 100), platform.ErrInvalidSize)
	assert.ErrorIs(t, s.SetSize(100, -1), platform.ErrInvalidSize)

	require.NoError(t, s.SetSize(800, 600))
	w, h := s.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestNoDevicesConnected(t *testing.T) {
	s := New()
	drv := s.Input()

	assert.Nil(t, input.Primary(drv.Keyboards()))
	assert.Nil(t, input.Primary(drv.Pointers()))
}

func TestContextVSyncToggle(t *testing.T) {
	s := New()
	require.NoError(t, s.Create(platform.Config{Width: 100, Height: 100, VSync: true}))

	ctx := s.Context()
	assert.True(t, ctx.VSync())
	ctx.SetVSync(false)
	assert.False(t, ctx.VSync())
	ctx.SwapBuffers()
}
