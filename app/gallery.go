package app

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"

	"semisim/content"
)

// LoadSlides 依次读取并解码 n 张工艺图片，失败的图片只记录日志。
func LoadSlides(ctx context.Context, gallery content.Provider, n int, store func(i int, img image.Image)) {
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			return
		}
		data, err := gallery.Image(ctx, i)
		if err != nil {
			log.Println("gallery:", err)
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			log.Printf("gallery: image %d: %s", i, err)
			continue
		}
		store(i, img)
	}
}
