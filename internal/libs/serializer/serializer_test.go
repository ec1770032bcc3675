package serializer

import (
	"errors"
	"math"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/numstats/internal/sentinel"
)

func TestRegistry_New(t *testing.T) {
	for _, name := range []string{"default", "msgpack", "cbor"} {
		ser, err := New(name)
		assert.Nil(t, err)
		assert.True(t, ser != nil)
	}

	_, err := New("")
	assert.True(t, errors.Is(err, sentinel.ErrParamCannotBeEmpty))

	_, err = New("yaml")
	assert.True(t, errors.Is(err, sentinel.ErrSerializerNotFound))
}

func TestEmptyRegistry(t *testing.T) {
	registry := NewEmptySerializerRegistry()

	_, err := registry.New("default")
	assert.True(t, errors.Is(err, sentinel.ErrSerializerNotFound))

	registry.Register("json", func() ISerializer { return &DefaultJSONSerializer{} })

	ser, err := registry.New("json")
	assert.Nil(t, err)
	assert.True(t, ser != nil)
}

func TestBinarySerializers_KeepNaN(t *testing.T) {
	for _, name := range []string{"msgpack", "cbor"} {
		t.Run(name, func(t *testing.T) {
			ser, err := New(name)
			assert.Nil(t, err)

			data, err := ser.Marshal(math.NaN())
			assert.Nil(t, err)

			var got float64

			err = ser.Unmarshal(data, &got)
			assert.Nil(t, err)
			assert.True(t, math.IsNaN(got))

			data, err = ser.Marshal(float32(2.5))
			assert.Nil(t, err)

			var narrow float32

			err = ser.Unmarshal(data, &narrow)
			assert.Nil(t, err)
			assert.Equal(t, float32(2.5), narrow)
		})
	}
}

func TestJSONSerializer_RejectsNaN(t *testing.T) {
	ser := &DefaultJSONSerializer{}

	_, err := ser.Marshal(math.NaN())
	assert.True(t, err != nil)

	data, err := ser.Marshal([]float64{1, 2.5})
	assert.Nil(t, err)

	var got []float64

	err = ser.Unmarshal(data, &got)
	assert.Nil(t, err)
	assert.Equal(t, []float64{1, 2.5}, got)
}
