package tzif

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

var order = binary.BigEndian

// headerLen is the fixed size of a TZif header: magic (4), version (1),
// reserved (15) and six four-octet counts.
const headerLen = 44

const (
	// versionV2 is '2' (0x32): 64-bit data block, POSIX TZ footer.
	versionV2 = 0x32
	// versionV3 is '3' (0x33): same layout as V2 with extended TZ strings.
	versionV3 = 0x33
)

// DecodeHeader locates and decodes the authoritative version 2+ header.
//
// The six counts of the version 1 header are read first, solely to compute
// the size of the version 1 data block and with it V2Start; those first-pass
// values are then discarded. The same six fields are re-read at V2Start and
// returned as the RawHeader the rest of the decode trusts.
func DecodeHeader(buf []byte) (RawHeader, error) {
	v1, err := decodeCounts(buf, 0)
	if err != nil {
		return RawHeader{}, fmt.Errorf("v1 header: %w", err)
	}
	if !bytes.Equal(buf[:4], Magic[:]) {
		return RawHeader{}, fmt.Errorf("%w: % x", ErrInvalidMagic, buf[:4])
	}
	if v := buf[4]; v != versionV2 && v != versionV3 {
		return RawHeader{}, fmt.Errorf("%w: version %#02x", ErrUnsupportedFormat, v)
	}

	// Size of the version 1 data block: four-octet transition times plus
	// one-octet type indices (5 per transition), six-octet local time type
	// records, eight-octet leap-second records, the designation blob and
	// the one-octet indicator arrays.
	v2Start := int(v1.Timecnt)*5 +
		int(v1.Typecnt)*6 +
		int(v1.Leapcnt)*8 +
		int(v1.Charcnt) +
		int(v1.Isstdcnt) +
		int(v1.Isutcnt) +
		headerLen

	h, err := decodeCounts(buf, v2Start)
	if err != nil {
		return RawHeader{}, fmt.Errorf("v2 header: %w", err)
	}
	h.V2Start = v2Start
	return h, nil
}

// decodeCounts reads the six count fields of the header starting at base.
func decodeCounts(buf []byte, base int) (RawHeader, error) {
	if base < 0 || base+headerLen > len(buf) {
		return RawHeader{}, fmt.Errorf("%w: header at %d needs %d bytes, buffer has %d", ErrBounds, base, headerLen, len(buf))
	}
	return RawHeader{
		Isutcnt:  order.Uint32(buf[base+20:]),
		Isstdcnt: order.Uint32(buf[base+24:]),
		Leapcnt:  order.Uint32(buf[base+28:]),
		Timecnt:  order.Uint32(buf[base+32:]),
		Typecnt:  order.Uint32(buf[base+36:]),
		Charcnt:  order.Uint32(buf[base+40:]),
	}, nil
}

// Decode parses a complete TZif buffer into a Zone.
func Decode(buf []byte) (Zone, error) {
	h, err := DecodeHeader(buf)
	if err != nil {
		return Zone{}, err
	}
	return decodeBody(buf, h)
}

// decodeBody slices the version 2+ data block into its five consecutive
// ranges and decodes them. Leap-second records are skipped; only their
// length matters for the offset arithmetic.
func decodeBody(buf []byte, h RawHeader) (Zone, error) {
	var (
		base       = h.V2Start + headerLen
		timesEnd   = base + int(h.Timecnt)*8
		indicesEnd = timesEnd + int(h.Timecnt)
		typesEnd   = indicesEnd + int(h.Typecnt)*6
		leapsEnd   = typesEnd + int(h.Leapcnt)*12
		charsEnd   = leapsEnd + int(h.Charcnt)
	)
	if charsEnd > len(buf) {
		return Zone{}, fmt.Errorf("%w: data block ends at %d, buffer has %d bytes", ErrBounds, charsEnd, len(buf))
	}

	transitions := make([]Transition, h.Timecnt)
	for i := range transitions {
		transitions[i] = Transition{
			Instant:   int64(order.Uint64(buf[base+i*8:])),
			TypeIndex: buf[timesEnd+i],
		}
	}

	blob := buf[leapsEnd:charsEnd]
	if !utf8.Valid(blob) {
		return Zone{}, fmt.Errorf("time zone designations: %w", ErrBadUTF8String)
	}
	abbrs, err := splitDesignations(blob)
	if err != nil {
		return Zone{}, err
	}

	// The designation field of a local time type record is a byte offset
	// into the blob, not a list index. Translating it means counting the
	// NUL octets strictly before that offset; the positions are collected
	// once so each record resolves with a binary search.
	nuls := nulPositions(blob)

	types := make([]LocalTimeType, h.Typecnt)
	for i := range types {
		rec := buf[indicesEnd+i*6 : indicesEnd+(i+1)*6]
		types[i] = LocalTimeType{
			UTCOffset: int(int32(order.Uint32(rec))),
			IsDST:     rec[4] == 1,
			AbbrIndex: sort.SearchInts(nuls, int(rec[5])),
		}
	}

	return Zone{
		Transitions:   transitions,
		Types:         types,
		Abbreviations: abbrs,
	}, nil
}

// splitDesignations splits the NUL-delimited blob into the abbreviation
// table. A NUL-terminated blob yields a final empty segment, which is
// discarded; if the final segment is anything else the blob is missing its
// terminator.
func splitDesignations(blob []byte) ([]string, error) {
	parts := strings.Split(string(blob), "\x00")
	if parts[len(parts)-1] != "" {
		return nil, fmt.Errorf("time zone designations: %w", ErrEmptyString)
	}
	return parts[:len(parts)-1], nil
}

// nulPositions returns the sorted byte offsets of all NUL octets in blob.
func nulPositions(blob []byte) []int {
	var pos []int
	for i, b := range blob {
		if b == 0 {
			pos = append(pos, i)
		}
	}
	return pos
}
