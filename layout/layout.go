// Package layout reads class-layout images: the compiler-emitted
// description of every class's vtable and itable that the runtime
// needs to materialize dispatch tables at load time.
package layout

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Version is the image format version this package reads and writes.
const Version uint32 = 1

// Image is a serialized set of class layouts.
type Image struct {
	Version uint32        `cbor:"version"`
	Classes []ClassLayout `cbor:"classes"`
}

// ClassLayout describes one concrete type's binary layout contract.
type ClassLayout struct {
	Name      string `cbor:"name"`
	Super     string `cbor:"super,omitempty"`
	FieldSize uint32 `cbor:"field-size"`

	// Slots assigns method symbols to vtable indices. A subclass lists
	// only the slots it defines or overrides; the inherited prefix
	// comes from Super.
	Slots []SlotLayout `cbor:"slots"`

	// Interfaces lists the itable entries: each interface the class
	// implements with the base slot of its method block.
	Interfaces []InterfaceLayout `cbor:"interfaces,omitempty"`
}

// SlotLayout binds a vtable slot to a method symbol.
type SlotLayout struct {
	Index  uint32 `cbor:"index"`
	Symbol string `cbor:"symbol"`
}

// InterfaceLayout binds an interface name to its method-block offset.
type InterfaceLayout struct {
	Name   string `cbor:"name"`
	Offset uint32 `cbor:"offset"`
}

// cborEncMode uses canonical options for deterministic encoding.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("layout: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalImage serializes an Image to CBOR bytes.
func MarshalImage(img *Image) ([]byte, error) {
	return cborEncMode.Marshal(img)
}

// UnmarshalImage deserializes an Image from CBOR bytes.
func UnmarshalImage(data []byte) (*Image, error) {
	var img Image
	if err := cbor.Unmarshal(data, &img); err != nil {
		return nil, fmt.Errorf("layout: unmarshal image: %w", err)
	}
	return &img, nil
}
