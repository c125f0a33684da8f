package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleImage() *Image {
	return &Image{
		Version: Version,
		Classes: []ClassLayout{
			{
				Name:      "java.lang.Object",
				FieldSize: 0,
				Slots: []SlotLayout{
					{Index: 0, Symbol: "java.lang.Object.hashCode"},
					{Index: 1, Symbol: "java.lang.Object.clone"},
				},
			},
			{
				Name:      "com.example.Task",
				Super:     "java.lang.Object",
				FieldSize: 24,
				Slots: []SlotLayout{
					{Index: 2, Symbol: "com.example.Task.run"},
				},
				Interfaces: []InterfaceLayout{
					{Name: "java.lang.Runnable", Offset: 2},
				},
			},
		},
	}
}

func TestImageRoundTrip(t *testing.T) {
	img := sampleImage()

	data, err := MarshalImage(img)
	require.NoError(t, err)

	got, err := UnmarshalImage(data)
	require.NoError(t, err)
	assert.Equal(t, img, got)
}

func TestMarshalIsDeterministic(t *testing.T) {
	a, err := MarshalImage(sampleImage())
	require.NoError(t, err)
	b, err := MarshalImage(sampleImage())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	_, err := UnmarshalImage([]byte{0xFF, 0x00, 0x13})
	assert.Error(t, err)
}
