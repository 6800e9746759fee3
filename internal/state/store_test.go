package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sciframe-io/sciframe/internal/frame"
	"github.com/sciframe-io/sciframe/internal/testutil"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(testutil.NewTestLogger(t))
	require.NoError(t, s.Open(":memory:"))
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleFrame(t *testing.T, name string) *frame.Frame {
	t.Helper()
	f, err := frame.New(
		[]frame.Column{
			{Name: "lon", Values: []any{-71.1, -71.2}},
			{Name: "lat", Values: []any{42.3, 42.4}},
			{Name: "temp", Values: []any{290.0, 291.5}},
		},
		frame.WithName(name),
		frame.WithDimensions("lon", "lat"),
		frame.WithUnits(map[string]string{"temp": "K"}),
		frame.WithMeta(map[string]any{"source": "station-12"}),
	)
	require.NoError(t, err)
	return f
}

func TestMigrate(t *testing.T) {
	s := openStore(t)

	version, err := s.MigrationVersion()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, version, int64(1))
}

func TestSaveAndLoadFrame(t *testing.T) {
	s := openStore(t)
	f := sampleFrame(t, "weather")

	require.NoError(t, s.SaveFrame(t.Context(), f))

	byID, err := s.LoadFrame(t.Context(), f.UID().String())
	require.NoError(t, err)
	assert.Equal(t, f.UID(), byID.UID())
	assert.Equal(t, "weather", byID.Name())
	assert.Equal(t, f.Columns(), byID.Columns())
	assert.Equal(t, []string{"lon", "lat"}, byID.Dimensions())
	assert.Equal(t, map[string]string{"temp": "K"}, byID.Units())
	assert.Equal(t, "station-12", byID.Meta()["source"])

	temp, err := byID.Column("temp")
	require.NoError(t, err)
	assert.Equal(t, []any{290.0, 291.5}, temp)

	byName, err := s.LoadFrame(t.Context(), "weather")
	require.NoError(t, err)
	assert.Equal(t, f.UID(), byName.UID())
}

func TestSaveFrameReplaces(t *testing.T) {
	s := openStore(t)
	f := sampleFrame(t, "weather")

	require.NoError(t, s.SaveFrame(t.Context(), f))
	f.SetName("weather-v2")
	require.NoError(t, s.SaveFrame(t.Context(), f))

	infos, err := s.ListFrames(t.Context())
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "weather-v2", infos[0].Name)
}

func TestListFrames(t *testing.T) {
	s := openStore(t)

	require.NoError(t, s.SaveFrame(t.Context(), sampleFrame(t, "a")))
	require.NoError(t, s.SaveFrame(t.Context(), sampleFrame(t, "b")))

	infos, err := s.ListFrames(t.Context())
	require.NoError(t, err)
	require.Len(t, infos, 2)
	for _, info := range infos {
		assert.Equal(t, 3, info.NumCols)
		assert.Equal(t, 2, info.NumRows)
		assert.False(t, info.CreatedAt.IsZero())
	}
}

func TestLoadFrameNotFound(t *testing.T) {
	s := openStore(t)

	_, err := s.LoadFrame(t.Context(), "absent")
	assert.ErrorIs(t, err, ErrFrameNotFound)
}

func TestDeleteFrame(t *testing.T) {
	s := openStore(t)
	f := sampleFrame(t, "doomed")
	require.NoError(t, s.SaveFrame(t.Context(), f))

	require.NoError(t, s.DeleteFrame(t.Context(), "doomed"))
	_, err := s.LoadFrame(t.Context(), "doomed")
	assert.ErrorIs(t, err, ErrFrameNotFound)

	assert.ErrorIs(t, s.DeleteFrame(t.Context(), "doomed"), ErrFrameNotFound)
}

func TestOpenOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.db")
	s := NewStore(nil)
	require.NoError(t, s.Open(path))
	require.NoError(t, s.Migrate())

	f := sampleFrame(t, "persisted")
	require.NoError(t, s.SaveFrame(t.Context(), f))
	require.NoError(t, s.Close())

	s2 := NewStore(nil)
	require.NoError(t, s2.Open(path))
	defer func() { _ = s2.Close() }()

	loaded, err := s2.LoadFrame(t.Context(), "persisted")
	require.NoError(t, err)
	assert.Equal(t, f.UID(), loaded.UID())
}

func TestStoreRequiresOpen(t *testing.T) {
	s := NewStore(nil)

	assert.Error(t, s.Migrate())
	assert.Error(t, s.SaveFrame(t.Context(), sampleFrame(t, "x")))
	_, err := s.LoadFrame(t.Context(), "x")
	assert.Error(t, err)
	_, err = s.ListFrames(t.Context())
	assert.Error(t, err)
	assert.Error(t, s.DeleteFrame(t.Context(), "x"))
	assert.NoError(t, s.Close())
}
