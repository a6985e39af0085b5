package pi

import (
	"github.com/yanagisawa/pi-codec/codec"
)

// Codec implements codec.Codec for the PI image format.
type Codec struct{}

// NewCodec creates a new PI codec.
func NewCodec() *Codec {
	return &Codec{}
}

// UID returns a stable identifier for the PI format.
func (c *Codec) UID() string {
	return "pi-image/1"
}

// Name returns the human-readable name of this codec.
func (c *Codec) Name() string {
	return "PI"
}

// Encode is not implemented: PI's bit-stream encoder (move-to-front
// ranking plus block-copy search) is outside this package's scope.
func (c *Codec) Encode(params codec.EncodeParams) ([]byte, error) {
	return nil, codec.ErrUnsupportedFormat
}

// Decode decodes a complete PI file (header plus body) and returns its
// pixels expanded to packed RGBA.
func (c *Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	indices, hdr, err := Decode(data)
	if err != nil {
		return nil, err
	}

	rgba := Palette(hdr.Palette).RGBA(indices)

	return &codec.DecodeResult{
		PixelData:  rgba,
		Width:      hdr.Width,
		Height:     hdr.Height,
		Components: 4,
		BitDepth:   8,
	}, nil
}

func init() {
	codec.Register(NewCodec())
}
