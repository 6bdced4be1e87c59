package builder

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorConstruct(t *testing.T) {
	cases := []struct {
		name    string
		builder Builder
		want    Car
	}{
		{
			name:    "sports car",
			builder: NewSportsCarBuilder(),
			want:    Car{Engine: "V8 Engine", Transmission: "Manual", Wheels: 4, HasGPS: true, HasSunroof: true},
		},
		{
			name:    "suv",
			builder: NewSUVBuilder(),
			want:    Car{Engine: "V6 Engine", Transmission: "Automatic", Wheels: 4, HasGPS: true, HasSunroof: false},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			car := NewDirector(tc.builder).Construct()
			require.NotNil(t, car)
			assert.Equal(t, tc.want, *car)
		})
	}
}

func TestConstructStartsFreshCar(t *testing.T) {
	d := NewDirector(NewSportsCarBuilder())

	first := d.Construct()
	first.Engine = "tuned"
	second := d.Construct()

	assert.NotSame(t, first, second)
	assert.Equal(t, "V8 Engine", second.Engine)
}

func TestSpecifications(t *testing.T) {
	var out bytes.Buffer
	car := NewDirector(NewSUVBuilder()).Construct()

	require.NoError(t, car.Specifications(&out))
	assert.Equal(t, "Engine: V6 Engine\nTransmission: Automatic\nWheels: 4\nGPS: Yes\nSunroof: No\n", out.String())
}
