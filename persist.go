// Filter persistence over the package's own file primitives.
//
// On-disk layout: a fixed 128-byte parameter header followed by the
// Zstd-compressed bit array. Save replaces the target file's entire
// content and syncs, so a loadable filter on disk is always a
// complete one. Load reads back through a Cursor and refuses any
// payload whose checksum does not match the header.
package diskio

import (
	"fmt"
)

// Save writes the filter to f, replacing its entire content, and
// forces it to durable storage. The handle remains open and owned by
// the caller.
func (b *Bloom) Save(f *File) error {
	payload := compress(b.bits)
	hdr := &filterHeader{
		Version:   filterVersion,
		Bits:      b.m,
		Hashes:    b.k,
		Entries:   b.n,
		Rate:      b.p,
		Algorithm: b.alg,
		Length:    len(payload),
		Sum:       checksum(payload),
	}

	buf, err := hdr.encode()
	if err != nil {
		return err
	}

	if err := f.Truncate(0); err != nil {
		return err
	}
	if err := f.put(0, buf); err != nil {
		return err
	}
	if err := f.put(FilterHeaderSize, payload); err != nil {
		return err
	}
	return f.Sync()
}

// LoadBloom reads a filter previously written by Save from f. The
// loaded filter is shape- and probe-identical to the one saved: every
// key that was added before Save is still reported present.
func LoadBloom(f *File) (*Bloom, error) {
	cur := f.Cursor()

	hbuf, err := cur.Read(FilterHeaderSize)
	if err != nil {
		return nil, fmt.Errorf("%w: short header: %w", ErrCorruptFilter, err)
	}
	hdr, err := decodeFilterHeader(hbuf)
	if err != nil {
		return nil, err
	}

	payload, err := cur.Read(int64(hdr.Length))
	if err != nil {
		return nil, fmt.Errorf("%w: short bitmap: %w", ErrCorruptFilter, err)
	}
	if checksum(payload) != hdr.Sum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptFilter)
	}

	bits, err := decompress(payload)
	if err != nil {
		return nil, err
	}
	if int64(len(bits)) != int64(hdr.Bits+7)/8 {
		return nil, fmt.Errorf("%w: bitmap is %d bytes, header says %d bits",
			ErrCorruptFilter, len(bits), hdr.Bits)
	}

	return &Bloom{
		bits: bits,
		m:    hdr.Bits,
		k:    hdr.Hashes,
		n:    hdr.Entries,
		p:    hdr.Rate,
		alg:  hdr.Algorithm,
	}, nil
}
