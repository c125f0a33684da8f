package layout

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/srijs/rustretto/jrt"
)

var log = commonlog.GetLogger("jrt.layout")

var (
	ErrVersionMismatch    = errors.New("image version mismatch")
	ErrDuplicateClass     = errors.New("duplicate class in image")
	ErrUnknownSuperclass  = errors.New("unknown superclass")
	ErrSuperclassCycle    = errors.New("superclass cycle")
	ErrDuplicateInterface = errors.New("duplicate interface identity in itable")
)

// Loader materializes dispatch tables from a layout image. Interface
// identities are interned per name so that every table built by one
// loader shares a single identity pointer per interface.
type Loader struct {
	ifaces map[string]*jrt.InterfaceID
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{ifaces: make(map[string]*jrt.InterfaceID)}
}

// Interface returns the interned identity for an interface name.
func (l *Loader) Interface(name string) *jrt.InterfaceID {
	if id, ok := l.ifaces[name]; ok {
		return id
	}
	id := &jrt.InterfaceID{Name: name}
	l.ifaces[name] = id
	return id
}

// Resolve builds a vtable per class in the image. Superclass tables
// are built first so each subclass extends its parent's stable prefix.
// Slots whose symbol is missing from the symbol table stay abstract
// (nil); invoking one is the call site's trap to take.
func (l *Loader) Resolve(img *Image, symbols map[string]jrt.Method) (map[string]*jrt.VTable, error) {
	if img.Version != Version {
		return nil, fmt.Errorf("%w: image has %d, runtime reads %d", ErrVersionMismatch, img.Version, Version)
	}

	byName := make(map[string]*ClassLayout, len(img.Classes))
	for i := range img.Classes {
		c := &img.Classes[i]
		if _, ok := byName[c.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, c.Name)
		}
		byName[c.Name] = c
	}

	tables := make(map[string]*jrt.VTable, len(img.Classes))
	building := make(map[string]bool)

	var build func(name string) (*jrt.VTable, error)
	build = func(name string) (*jrt.VTable, error) {
		if vt, ok := tables[name]; ok {
			return vt, nil
		}
		if building[name] {
			return nil, fmt.Errorf("%w: through %s", ErrSuperclassCycle, name)
		}
		building[name] = true
		defer delete(building, name)

		c := byName[name]

		var parent *jrt.VTable
		if c.Super != "" {
			super, ok := byName[c.Super]
			if !ok {
				return nil, fmt.Errorf("%w: %s extends %s", ErrUnknownSuperclass, c.Name, c.Super)
			}
			var err error
			parent, err = build(super.Name)
			if err != nil {
				return nil, err
			}
		}

		vt := jrt.NewVTable(parent, tableLength(c, parent))

		for _, slot := range c.Slots {
			if m, ok := symbols[slot.Symbol]; ok {
				vt.SetMethod(slot.Index, m)
			}
		}

		seen := make(map[*jrt.InterfaceID]bool, len(c.Interfaces))
		for _, entry := range c.Interfaces {
			id := l.Interface(entry.Name)
			if seen[id] {
				return nil, fmt.Errorf("%w: %s in %s", ErrDuplicateInterface, entry.Name, c.Name)
			}
			seen[id] = true
			vt.AddInterface(id, entry.Offset)
		}

		tables[name] = vt
		log.Debugf("resolved %s: %d slots, %d interfaces", c.Name, vt.Length(), len(c.Interfaces))
		return vt, nil
	}

	for name := range byName {
		if _, err := build(name); err != nil {
			return nil, err
		}
	}

	return tables, nil
}

// tableLength sizes a class's vtable: at least the parent's length,
// extended to cover the highest slot the class assigns.
func tableLength(c *ClassLayout, parent *jrt.VTable) uint32 {
	length := uint32(0)
	if parent != nil {
		length = parent.Length()
	}
	for _, slot := range c.Slots {
		if slot.Index+1 > length {
			length = slot.Index + 1
		}
	}
	return length
}
