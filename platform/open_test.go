package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feruxmax/opentk/input"
)

type fakeSurface struct {
	name string
}

func (f *fakeSurface) Create(Config) error    { return nil }
func (f *fakeSurface) Destroy() error         { return nil }
func (f *fakeSurface) Exists() bool           { return false }
func (f *fakeSurface) Idle() bool             { return true }
func (f *fakeSurface) ProcessEvents()         {}
func (f *fakeSurface) Size() (int, int)       { return 0, 0 }
func (f *fakeSurface) SetSize(int, int) error { return nil }
func (f *fakeSurface) Title() string          { return "" }
func (f *fakeSurface) SetTitle(string)        {}
func (f *fakeSurface) Context() Context       { return nil }
func (f *fakeSurface) Input() input.Driver    { return input.NewStaticDriver(nil, nil) }

func register(t *testing.T, name string, priority int, available bool) {
	t.Helper()
	Register(name, priority, available, func() Surface { return &fakeSurface{name: name} })
	t.Cleanup(func() {
		kept := drivers[:0]
		for _, d := range drivers {
			if d.name != name {
				kept = append(kept, d)
			}
		}
		drivers = kept
	})
}

func TestNewByName(t *testing.T) {
	register(t, "fake", 99, true)

	s, err := New("fake")
	require.NoError(t, err)
	assert.Equal(t, "fake", s.(*fakeSurface).name)
}

func TestNewUnknownDriver(t *testing.T) {
	_, err := New("does-not-exist")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestNewUnavailableDriver(t *testing.T) {
	register(t, "compiled-out", 99, false)

	_, err := New("compiled-out")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestAutoPicksHighestAvailablePriority(t *testing.T) {
	register(t, "low", 1, true)
	register(t, "high-unavailable", 100, false)
	register(t, "mid", 50, true)

	s, err := New("auto")
	require.NoError(t, err)
	assert.Equal(t, "mid", s.(*fakeSurface).name)

	s, err = New("")
	require.NoError(t, err)
	assert.Equal(t, "mid", s.(*fakeSurface).name)
}

func TestNamesInPriorityOrder(t *testing.T) {
	register(t, "b", 2, true)
	register(t, "a", 3, true)

	names := Names()
	require.GreaterOrEqual(t, len(names), 2)
	assert.Equal(t, "a", names[0])
	assert.Equal(t, "b", names[1])
}
