// Package tzif decodes the binary Time Zone Information Format ("TZif")
// defined by RFC8536 into an in-memory zone description.
// https://datatracker.ietf.org/doc/html/rfc8536
//
// Only the 64-bit layout used by version 2 and version 3 files is decoded.
// Every TZif file starts with a version 1 header and data block for
// backward compatibility; its counts are read once to locate the version 2+
// block and are then discarded. Version-1-only files are rejected.
//
// Decode is a pure function of the buffer: it performs no I/O, and the
// returned Zone is never mutated afterwards, so a single decoded Zone can
// serve any number of concurrent queries.
package tzif

import "errors"

// NOTE: All multi-octet integer values MUST be stored in network octet
// order format (high-order octet first, otherwise known as big-endian),
// with all bits significant. Signed integer values MUST be represented
// using two's complement.

// Magic is the four-octet ASCII sequence "TZif" (0x54 0x5A 0x69 0x66),
// which identifies the file as utilizing the Time Zone Information Format.
var Magic = [4]byte{'T', 'Z', 'i', 'f'}

// Decode errors. All of them are terminal for the call: there is no
// partial Zone.
var (
	// ErrInvalidMagic reports a buffer that does not start with Magic.
	ErrInvalidMagic = errors.New("invalid magic")
	// ErrUnsupportedFormat reports a version octet other than '2' or '3'.
	// Version 1 files lack the 64-bit data block and are not down-converted.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrBadUTF8String reports a time zone designation blob that is not
	// valid UTF-8.
	ErrBadUTF8String = errors.New("bad utf8 string")
	// ErrEmptyString reports a designation blob whose final segment is not
	// the empty string, i.e. the blob did not end in a NUL terminator.
	ErrEmptyString = errors.New("empty string")
	// ErrBounds reports a buffer shorter than the ranges computed from the
	// header counts. It indicates truncation rather than malformation.
	ErrBounds = errors.New("out of bounds")
)

// RawHeader holds the six record counts read from the authoritative
// version 2+ header, plus the computed offset of that header.
type RawHeader struct {
	// Isutcnt is a four-octet unsigned integer specifying the number of
	// UT/local indicators contained in the data block.
	Isutcnt uint32
	// Isstdcnt is a four-octet unsigned integer specifying the number of
	// standard/wall indicators contained in the data block.
	Isstdcnt uint32
	// Leapcnt is a four-octet unsigned integer specifying the number of
	// leap-second records contained in the data block.
	Leapcnt uint32
	// Timecnt is a four-octet unsigned integer specifying the number of
	// transition times contained in the data block.
	Timecnt uint32
	// Typecnt is a four-octet unsigned integer specifying the number of
	// local time type records contained in the data block -- MUST NOT be
	// zero.
	Typecnt uint32
	// Charcnt is a four-octet unsigned integer specifying the total number
	// of octets used by the set of time zone designations, including the
	// trailing NUL of the last designation.
	Charcnt uint32

	// V2Start is the byte offset at which the version 2+ header begins.
	// It is computed from the version 1 counts, never read from the file.
	V2Start int
}

// Transition is a recorded instant at which the zone's effective UTC
// offset or DST status changes.
type Transition struct {
	// Instant is the transition time in seconds since the Unix epoch.
	// It may be negative. Transitions are stored in the file in
	// non-decreasing order; the decoder does not re-validate the sort.
	Instant int64
	// TypeIndex is a zero-based index into Zone.Types selecting the local
	// time type that takes effect at Instant.
	TypeIndex uint8
}

// LocalTimeType is a reusable record of offset, DST flag and designation,
// referenced by transitions via index.
type LocalTimeType struct {
	// UTCOffset is the number of seconds to be added to UT in order to
	// determine local time.
	UTCOffset int
	// IsDST indicates whether local time should be considered Daylight
	// Saving Time.
	IsDST bool
	// AbbrIndex is an index into Zone.Abbreviations. The file stores a raw
	// byte offset into the designation blob instead; Decode translates it
	// by counting the NUL octets preceding that offset.
	AbbrIndex int
}

// Zone is a decoded timezone description.
type Zone struct {
	// Name is the IANA zone name, e.g. "Europe/Paris". Decode leaves it
	// empty because the buffer does not carry it; loaders that know the
	// requested name fill it in.
	Name string
	// Transitions in file order, which is chronological order.
	Transitions []Transition
	// Types are the local time type records. A well-formed file has at
	// least one.
	Types []LocalTimeType
	// Abbreviations is the designation table split out of the NUL-delimited
	// blob. Order matters: LocalTimeType.AbbrIndex indexes into it.
	Abbreviations []string
}
