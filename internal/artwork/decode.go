package artwork

import (
	"bytes"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	"github.com/bbrks/go-blurhash"
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/cadenzaapp/cadenza-core/internal/domain"
)

// blurHashSize is the thumbnail edge for BlurHash computation. BlurHash
// is a low-resolution placeholder, so a small thumbnail produces nearly
// identical results at a fraction of the cost.
const blurHashSize = 64

// enrich decodes the cover bytes into dimensions and a BlurHash
// placeholder. Undecodable data keeps the raw bytes and skips the
// enrichment; the view can still hand them to the platform decoder.
func enrich(art *domain.CoverArt) Image {
	img := Image{Art: art}

	decoded, _, err := image.Decode(bytes.NewReader(art.Data))
	if err != nil {
		return img
	}

	bounds := decoded.Bounds()
	img.Width = bounds.Dx()
	img.Height = bounds.Dy()

	// 4x3 components balance placeholder size against detail.
	if hash, err := blurhash.Encode(4, 3, thumbnail(decoded)); err == nil {
		img.BlurHash = hash
	}
	return img
}

// thumbnail box-scales an image down for BlurHash computation.
// Nearest-neighbor is fast and sufficient for a blur placeholder.
func thumbnail(img image.Image) image.Image {
	bounds := img.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()

	if srcWidth <= blurHashSize && srcHeight <= blurHashSize {
		return img
	}

	var dstWidth, dstHeight int
	if srcWidth > srcHeight {
		dstWidth = blurHashSize
		dstHeight = max(1, (srcHeight*blurHashSize)/srcWidth)
	} else {
		dstHeight = blurHashSize
		dstWidth = max(1, (srcWidth*blurHashSize)/srcHeight)
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)
	for y := 0; y < dstHeight; y++ {
		for x := 0; x < dstWidth; x++ {
			srcX := int(float64(x) * xRatio)
			srcY := int(float64(y) * yRatio)
			dst.Set(x, y, img.At(bounds.Min.X+srcX, bounds.Min.Y+srcY))
		}
	}
	return dst
}
