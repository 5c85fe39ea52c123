package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/cardcodex/codex/codex/database/models"
	"github.com/cardcodex/codex/codex/utils"
)

type stubFetcher struct {
	width  int
	height int
	fail   map[string]bool
}

func (s *stubFetcher) FetchCardImage(_ context.Context, _ bool, artificialID string) ([]byte, error) {
	if s.fail[artificialID] {
		return nil, fmt.Errorf("art %s unavailable", artificialID)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func testBatch(n int) []*models.Card {
	batch := make([]*models.Card, n)
	for i := range batch {
		batch[i] = &models.Card{ID: fmt.Sprintf("%05d", i+1), Official: true}
	}
	return batch
}

func TestCompositor_RowLayout(t *testing.T) {
	c := NewCompositor(&stubFetcher{width: 30, height: 42})

	rows, truncated, err := c.Compose(context.Background(), testBatch(13))
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if truncated {
		t.Error("Compose() truncated a batch within capacity")
	}
	if len(rows) != 3 {
		t.Fatalf("Compose() = %d rows, want 3", len(rows))
	}

	wantWidths := []int{5, 5, 3}
	for i, row := range rows {
		wantName := fmt.Sprintf("Row %d.png", i+1)
		if row.Name != wantName {
			t.Errorf("rows[%d].Name = %q, want %q", i, row.Name, wantName)
		}

		img, err := png.Decode(bytes.NewReader(row.PNG))
		if err != nil {
			t.Fatalf("rows[%d] is not a PNG: %v", i, err)
		}
		if got := img.Bounds().Dx(); got != wantWidths[i]*utils.ImageWidth {
			t.Errorf("rows[%d] width = %d, want %d", i, got, wantWidths[i]*utils.ImageWidth)
		}
		if got := img.Bounds().Dy(); got != utils.ImageHeight {
			t.Errorf("rows[%d] height = %d, want %d", i, got, utils.ImageHeight)
		}
	}
}

func TestCompositor_TruncatesPastCapacity(t *testing.T) {
	c := NewCompositor(&stubFetcher{width: 30, height: 42})

	capacity := utils.ImagesPerRow * utils.MaxAttachments
	rows, truncated, err := c.Compose(context.Background(), testBatch(capacity+7))
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if !truncated {
		t.Error("Compose() did not report truncation")
	}
	if len(rows) != utils.MaxAttachments {
		t.Errorf("Compose() = %d rows, want %d", len(rows), utils.MaxAttachments)
	}
}

func TestCompositor_EmptyBatch(t *testing.T) {
	c := NewCompositor(&stubFetcher{width: 30, height: 42})

	rows, truncated, err := c.Compose(context.Background(), nil)
	if err != nil || truncated || rows != nil {
		t.Errorf("Compose(nil) = %v, %v, %v", rows, truncated, err)
	}
}

func TestCompositor_RowFailureFailsAll(t *testing.T) {
	c := NewCompositor(&stubFetcher{width: 30, height: 42, fail: map[string]bool{"00007": true}})

	rows, _, err := c.Compose(context.Background(), testBatch(13))
	if err == nil {
		t.Fatal("Compose() succeeded despite a failing tile")
	}
	if rows != nil {
		t.Error("Compose() returned partial rows on failure")
	}
}

func TestRotate270(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	a := color.RGBA{R: 255, A: 255}
	b := color.RGBA{B: 255, A: 255}
	src.Set(0, 0, a)
	src.Set(1, 0, b)

	got := rotate270(src)
	if got.Bounds().Dx() != 1 || got.Bounds().Dy() != 2 {
		t.Fatalf("rotate270 bounds = %v, want 1x2", got.Bounds())
	}
	if got.At(0, 0) != b || got.At(0, 1) != a {
		t.Errorf("rotate270 pixels = %v, %v, want %v, %v", got.At(0, 0), got.At(0, 1), b, a)
	}
}

func TestRenderTile_ScalesLandscape(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 60, 40))); err != nil {
		t.Fatal(err)
	}

	tile, err := renderTile(buf.Bytes())
	if err != nil {
		t.Fatalf("renderTile() error = %v", err)
	}
	if tile.Bounds().Dx() != utils.ImageWidth || tile.Bounds().Dy() != utils.ImageHeight {
		t.Errorf("tile bounds = %v, want %dx%d", tile.Bounds(), utils.ImageWidth, utils.ImageHeight)
	}
}
