package prototype

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndClone(t *testing.T) {
	reg := NewRegistry(nil)
	sedan := NewCar("Sedan", "Red", 4)

	require.NoError(t, reg.Register("sedan", sedan))

	// The registry keeps its own copy.
	sedan.Doors = 5

	v, err := reg.Clone("sedan")
	require.NoError(t, err)
	car, ok := v.(*Car)
	require.True(t, ok)
	assert.Equal(t, 4, car.Doors)

	car.Doors = 2
	again, err := reg.Clone("sedan")
	require.NoError(t, err)
	assert.Equal(t, 4, again.(*Car).Doors)
	assert.NotSame(t, car, again)
}

func TestRegistryErrors(t *testing.T) {
	reg := NewRegistry(nil)

	assert.ErrorIs(t, reg.Register("", NewCar("Sedan", "Red", 4)), ErrEmptyName)

	err := reg.Register("widget", "not a vehicle")
	var unsupported *CloneUnsupportedError
	assert.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "string", unsupported.Type)

	for name, v := range map[string]any{"nil-car": (*Car)(nil), "nil-bike": (*Bike)(nil)} {
		err := reg.Register(name, v)
		require.True(t, errors.As(err, &unsupported), name)
	}

	require.NoError(t, reg.Register("bike", NewBike("BMX", "Green", false)))
	assert.ErrorIs(t, reg.Register("bike", NewBike("BMX", "Green", false)), ErrDuplicatePrototype)

	_, err = reg.Clone("truck")
	assert.ErrorIs(t, err, ErrPrototypeNotFound)

	assert.Equal(t, []string{"bike"}, reg.Names())
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryConcurrentClones(t *testing.T) {
	reg := NewRegistry(nil)
	require.NoError(t, reg.Register("sedan", NewCar("Sedan", "Red", 4)))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(doors int) {
			defer wg.Done()
			v, err := reg.Clone("sedan")
			if err != nil {
				return
			}
			v.(*Car).Doors = doors
		}(i)
	}
	wg.Wait()

	v, err := reg.Clone("sedan")
	require.NoError(t, err)
	assert.Equal(t, 4, v.(*Car).Doors)
}

func TestDefaultCatalog(t *testing.T) {
	reg, err := DefaultCatalog(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"mountain-bike", "sedan"}, reg.Names())

	v, err := reg.Clone("sedan")
	require.NoError(t, err)
	assert.Equal(t, "Vehicle: Car, Model: Sedan, Color: Red, Doors: 4", v.Describe())

	v, err = reg.Clone("mountain-bike")
	require.NoError(t, err)
	assert.Equal(t, KindBike, v.Kind())
	assert.True(t, v.(*Bike).HasCarrier)
}

func TestLoadCatalogErrors(t *testing.T) {
	cases := []struct {
		name  string
		yaml  string
		check func(t *testing.T, err error)
	}{
		{
			name: "unknown kind",
			yaml: "prototypes:\n  - name: hauler\n    kind: truck\n",
			check: func(t *testing.T, err error) {
				var unsupported *CloneUnsupportedError
				require.True(t, errors.As(err, &unsupported))
				assert.Equal(t, "truck", unsupported.Type)
				assert.ErrorContains(t, err, "kinds: [bike car]")
			},
		},
		{
			name: "duplicate name",
			yaml: "prototypes:\n  - {name: a, kind: car}\n  - {name: a, kind: bike}\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrDuplicatePrototype)
			},
		},
		{
			name: "unknown field",
			yaml: "prototypes:\n  - {name: a, kind: car, wings: 2}\n",
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "decoding catalog")
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg, err := LoadCatalog(strings.NewReader(tc.yaml), nil)
			assert.Nil(t, reg)
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestLoadCatalogEmpty(t *testing.T) {
	reg, err := LoadCatalog(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Zero(t, reg.Len())
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prototypes:\n  - {name: coupe, kind: car, model: Coupe, color: Black, doors: 2}\n"), 0o644))

	reg, err := LoadCatalogFile(path, nil)
	require.NoError(t, err)

	v, err := reg.Clone("coupe")
	require.NoError(t, err)
	assert.Equal(t, 2, v.(*Car).Doors)

	_, err = LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
