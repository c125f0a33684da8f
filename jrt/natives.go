package jrt

import (
	"math"
)

// ---------------------------------------------------------------------------
// java.lang native methods
// ---------------------------------------------------------------------------

// ObjectRegisterNatives is a no-op; the runtime's natives are linked
// statically.
func ObjectRegisterNatives() {}

// ObjectGetClass traps: runtime class objects are not materialized.
func ObjectGetClass(this Ref) Ref {
	TrapUnimplemented("java.lang.Object.getClass")
	return Null
}

// ObjectHashCode returns the identity hash.
func ObjectHashCode(this Ref) uint32 {
	return Hash(this)
}

// ObjectClone traps: field-wise cloning needs layout data the runtime
// does not carry.
func ObjectClone(this Ref) Ref {
	TrapUnimplemented("java.lang.Object.clone")
	return Null
}

// ObjectNotify wakes at most one thread waiting on this object.
func ObjectNotify(this Ref) {
	monitorOf(this).NotifyOne()
}

// ObjectNotifyAll wakes every thread waiting on this object.
func ObjectNotifyAll(this Ref) {
	monitorOf(this).NotifyAll()
}

// ObjectWait blocks on this object's monitor; zero waits indefinitely.
func ObjectWait(this Ref, timeoutMillis uint64) {
	monitorOf(this).Wait(timeoutMillis)
}

// SystemArraycopy is java.lang.System.arraycopy over runtime arrays.
func SystemArraycopy(src Ref, srcPos int32, dst Ref, dstPos int32, length int32) {
	ArrayCopy(src, srcPos, dst, dstPos, length)
}

// FloatToRawIntBits returns the IEEE 754 bit pattern of v, NaNs
// included, without collapsing them to a canonical form.
func FloatToRawIntBits(v float32) uint32 {
	return math.Float32bits(v)
}

// DoubleToRawLongBits returns the IEEE 754 bit pattern of v.
func DoubleToRawLongBits(v float64) uint64 {
	return math.Float64bits(v)
}

// FloatIsNaN reports whether v is a NaN.
func FloatIsNaN(v float32) bool {
	return v != v
}

// DoubleIsNaN reports whether v is a NaN.
func DoubleIsNaN(v float64) bool {
	return math.IsNaN(v)
}

// Natives returns the symbol table of native and stub methods, keyed
// by qualified method name, for resolving layout-image slots.
func Natives() map[string]Method {
	return map[string]Method{
		"java.lang.Object.registerNatives":          ObjectRegisterNatives,
		"java.lang.Object.getClass":                 ObjectGetClass,
		"java.lang.Object.hashCode":                 ObjectHashCode,
		"java.lang.Object.clone":                    ObjectClone,
		"java.lang.Object.notify":                   ObjectNotify,
		"java.lang.Object.notifyAll":                ObjectNotifyAll,
		"java.lang.Object.wait":                     ObjectWait,
		"java.lang.System.arraycopy":                SystemArraycopy,
		"java.lang.Float.floatToRawIntBits":         FloatToRawIntBits,
		"java.lang.Double.doubleToRawLongBits":      DoubleToRawLongBits,
		"java.lang.Float.isNaN":                     FloatIsNaN,
		"java.lang.Double.isNaN":                    DoubleIsNaN,
		"java.io.PrintStream.println(String)":       PrintStreamPrintln,
		"java.lang.StringBuilder.<init>":            StringBuilderInit,
		"java.lang.IllegalArgumentException.<init>": IllegalArgumentExceptionInit,
		"java.lang.Integer.toHexString":             IntegerToHexString,
	}
}
