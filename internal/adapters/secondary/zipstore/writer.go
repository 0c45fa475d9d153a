package zipstore

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Store-only ZIP writer. Every entry is written with compression
// method 0, zeroed modification times, and exact little-endian offsets,
// so identical input always produces a bit-identical archive.

const (
	localHeaderSignature    = 0x04034B50
	centralHeaderSignature  = 0x02014B50
	endOfDirectorySignature = 0x06054B50

	zipVersion  = 20
	methodStore = 0

	localHeaderLen    = 30
	centralHeaderLen  = 46
	endOfDirectoryLen = 22

	maxUint16 = 0xFFFF
	maxUint32 = 0xFFFFFFFF
)

// Entry is a single archive member: a forward-slash-separated path and
// its raw content.
type Entry struct {
	Name string
	Data []byte
}

// Write assembles the ordered entries into a complete ZIP byte stream:
// one local file header plus raw data per entry, followed by the central
// directory and a single end-of-central-directory record. Entries that
// overflow the format's 32-bit size or offset fields are rejected; ZIP64
// is not supported.
func Write(entries []Entry) ([]byte, error) {
	offsets, err := planOffsets(entries)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	checksums := make([]uint32, len(entries))

	for i, entry := range entries {
		checksums[i] = Checksum(entry.Data)

		writeUint32(&buf, localHeaderSignature)
		writeUint16(&buf, zipVersion)  // version needed to extract
		writeUint16(&buf, 0)           // general purpose flags
		writeUint16(&buf, methodStore) // compression method
		writeUint16(&buf, 0)           // modification time
		writeUint16(&buf, 0)           // modification date
		writeUint32(&buf, checksums[i])
		writeUint32(&buf, uint32(len(entry.Data))) // compressed size
		writeUint32(&buf, uint32(len(entry.Data))) // uncompressed size
		writeUint16(&buf, uint16(len(entry.Name)))
		writeUint16(&buf, 0) // extra field length
		buf.WriteString(entry.Name)
		buf.Write(entry.Data)
	}

	directoryOffset := uint32(buf.Len())

	for i, entry := range entries {
		writeUint32(&buf, centralHeaderSignature)
		writeUint16(&buf, zipVersion)  // version made by
		writeUint16(&buf, zipVersion)  // version needed to extract
		writeUint16(&buf, 0)           // general purpose flags
		writeUint16(&buf, methodStore) // compression method
		writeUint16(&buf, 0)           // modification time
		writeUint16(&buf, 0)           // modification date
		writeUint32(&buf, checksums[i])
		writeUint32(&buf, uint32(len(entry.Data))) // compressed size
		writeUint32(&buf, uint32(len(entry.Data))) // uncompressed size
		writeUint16(&buf, uint16(len(entry.Name)))
		writeUint16(&buf, 0)         // extra field length
		writeUint16(&buf, 0)         // comment length
		writeUint16(&buf, 0)         // disk number start
		writeUint16(&buf, 0)         // internal attributes
		writeUint32(&buf, 0)         // external attributes
		writeUint32(&buf, offsets[i]) // local header offset
		buf.WriteString(entry.Name)
	}

	directorySize := uint32(buf.Len()) - directoryOffset

	writeUint32(&buf, endOfDirectorySignature)
	writeUint16(&buf, 0) // disk number
	writeUint16(&buf, 0) // directory start disk
	writeUint16(&buf, uint16(len(entries))) // entries on this disk
	writeUint16(&buf, uint16(len(entries))) // entries total
	writeUint32(&buf, directorySize)
	writeUint32(&buf, directoryOffset)
	writeUint16(&buf, 0) // comment length

	return buf.Bytes(), nil
}

// planOffsets validates the entries against the format's 16-bit and
// 32-bit field limits and returns each entry's local header offset. The
// projected total includes the central directory and end record, so an
// archive that only overflows after its last entry is still rejected
// before any bytes are written.
func planOffsets(entries []Entry) ([]uint32, error) {
	if len(entries) > maxUint16 {
		return nil, fmt.Errorf("too many entries: %d", len(entries))
	}

	var dataSize, directorySize uint64
	offsets := make([]uint32, len(entries))

	for i, entry := range entries {
		if len(entry.Name) > maxUint16 {
			return nil, fmt.Errorf("entry %d: name too long (%d bytes)", i, len(entry.Name))
		}
		if uint64(len(entry.Data)) > maxUint32 {
			return nil, fmt.Errorf("entry %q: data exceeds 4 GiB", entry.Name)
		}

		offsets[i] = uint32(dataSize)
		dataSize += localHeaderLen + uint64(len(entry.Name)) + uint64(len(entry.Data))
		directorySize += centralHeaderLen + uint64(len(entry.Name))
	}

	if total := dataSize + directorySize + endOfDirectoryLen; total > maxUint32 {
		return nil, fmt.Errorf("archive exceeds 4 GiB: %d bytes", total)
	}

	return offsets, nil
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
