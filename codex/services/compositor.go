package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/cardcodex/codex/codex/database/models"
	"github.com/cardcodex/codex/codex/utils"
)

// ArtFetcher loads raw card art bytes. SpacesService is the production
// implementation.
type ArtFetcher interface {
	FetchCardImage(ctx context.Context, official bool, artificialID string) ([]byte, error)
}

// CompositeRow is one rendered grid row, attached to the reply as a PNG.
// Attachments sort by name, so row names embed their index.
type CompositeRow struct {
	Name string
	PNG  []byte
}

// Compositor renders card batches into grid images, one row per attachment.
type Compositor struct {
	fetcher ArtFetcher
}

func NewCompositor(fetcher ArtFetcher) *Compositor {
	return &Compositor{fetcher: fetcher}
}

// Compose renders the batch into rows of card art tiles. Rows render
// concurrently. When the batch exceeds the attachment budget the overflow is
// dropped and truncated reports it.
func (c *Compositor) Compose(ctx context.Context, batch []*models.Card) (rows []CompositeRow, truncated bool, err error) {
	capacity := utils.ImagesPerRow * utils.MaxAttachments
	if len(batch) > capacity {
		batch = batch[:capacity]
		truncated = true
	}
	if len(batch) == 0 {
		return nil, false, nil
	}

	rowCount := (len(batch) + utils.ImagesPerRow - 1) / utils.ImagesPerRow
	rows = make([]CompositeRow, rowCount)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < rowCount; i++ {
		i := i
		g.Go(func() error {
			lo := i * utils.ImagesPerRow
			hi := min(lo+utils.ImagesPerRow, len(batch))

			data, err := c.composeRow(ctx, batch[lo:hi])
			if err != nil {
				return err
			}
			rows[i] = CompositeRow{
				Name: fmt.Sprintf("Row %d.png", i+1),
				PNG:  data,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false, err
	}
	return rows, truncated, nil
}

func (c *Compositor) composeRow(ctx context.Context, cards []*models.Card) ([]byte, error) {
	tiles := make([]image.Image, len(cards))

	g, ctx := errgroup.WithContext(ctx)
	for i, card := range cards {
		i, card := i, card
		g.Go(func() error {
			data, err := c.fetcher.FetchCardImage(ctx, card.Official, card.ID)
			if err != nil {
				return err
			}
			tile, err := renderTile(data)
			if err != nil {
				return fmt.Errorf("failed to render art for %s: %w", card.ID, err)
			}
			tiles[i] = tile
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	row := image.NewRGBA(image.Rect(0, 0, utils.ImageWidth*len(tiles), utils.ImageHeight))
	for i, tile := range tiles {
		offset := image.Pt(i*utils.ImageWidth, 0)
		draw.Draw(row, tile.Bounds().Add(offset), tile, image.Point{}, draw.Src)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, row); err != nil {
		return nil, fmt.Errorf("failed to encode row: %w", err)
	}
	return buf.Bytes(), nil
}

// renderTile decodes one piece of art and scales it into a portrait tile.
// Landscape scans are rotated a quarter turn counterclockwise first.
func renderTile(data []byte) (image.Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	if bounds.Dx() > bounds.Dy() {
		src = rotate270(src)
	}

	tile := image.NewRGBA(image.Rect(0, 0, utils.ImageWidth, utils.ImageHeight))
	draw.CatmullRom.Scale(tile, tile.Bounds(), src, src.Bounds(), draw.Src, nil)
	return tile, nil
}

func rotate270(src image.Image) image.Image {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dy(), bounds.Dx()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(y-bounds.Min.Y, bounds.Max.X-1-x, src.At(x, y))
		}
	}
	return dst
}
