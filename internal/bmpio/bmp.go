// Package bmpio writes the minimal 32-bit uncompressed BMP format used
// to preview a decoded PI image: a 14-byte file header, a 40-byte
// BITMAPINFOHEADER, and raw pixel bytes with no palette.
package bmpio

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Write encodes rgba (row-major, 4 bytes per pixel, alpha last) as a
// 32-bit BMP and writes it to w. Rows are emitted bottom-up, matching
// BMP's native scan order.
func Write(w io.Writer, rgba []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("bmpio: invalid dimensions %dx%d", width, height)
	}
	if len(rgba) != 4*width*height {
		return errors.Errorf("bmpio: pixel buffer length %d does not match %dx%d", len(rgba), width, height)
	}

	const fileHeaderSize = 14
	const infoHeaderSize = 40
	pixelOffset := fileHeaderSize + infoHeaderSize
	dataSize := len(rgba)
	fileSize := pixelOffset + dataSize

	var buf bytes.Buffer
	buf.Grow(fileSize)

	buf.WriteByte('B')
	buf.WriteByte('M')
	writeU32(&buf, uint32(fileSize))
	writeU16(&buf, 0)
	writeU16(&buf, 0)
	writeU32(&buf, uint32(pixelOffset))

	writeU32(&buf, infoHeaderSize)
	writeU32(&buf, uint32(width))
	writeU32(&buf, uint32(height))
	writeU16(&buf, 1)
	writeU16(&buf, 32)
	writeU32(&buf, 0)
	writeU32(&buf, uint32(dataSize))
	writeU32(&buf, 0)
	writeU32(&buf, 0)
	writeU32(&buf, 0)
	writeU32(&buf, 0)

	rowBytes := 4 * width
	for row := height - 1; row >= 0; row-- {
		buf.Write(rgba[row*rowBytes : row*rowBytes+rowBytes])
	}

	_, err := w.Write(buf.Bytes())
	return errors.Wrap(err, "bmpio: write")
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}
