// Package content 提供 MOSFET 工艺说明的图片与说明文字。
// 模型计算不依赖这里的任何网络访问。
package content

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound 资源不存在
var ErrNotFound = errors.New("content: not found")

// Slide 单张说明图
type Slide struct {
	Caption     string `json:"caption"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Provider 说明内容提供者
type Provider interface {
	Gallery(ctx context.Context) ([]Slide, error)    // 全部说明
	Image(ctx context.Context, i int) ([]byte, error) // 第 i 张图片数据
}

// Static 静态说明列表，图片数据由 Fetch 读取。
type Static struct {
	Slides []Slide
	Fetch  func(ctx context.Context, url string) ([]byte, error)
}

// Gallery 全部说明
func (s *Static) Gallery(ctx context.Context) ([]Slide, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]Slide(nil), s.Slides...), nil
}

// Image 第 i 张图片数据
func (s *Static) Image(ctx context.Context, i int) ([]byte, error) {
	if i < 0 || i >= len(s.Slides) {
		return nil, fmt.Errorf("%w: slide %d", ErrNotFound, i)
	}
	if s.Fetch == nil {
		return nil, fmt.Errorf("%w: no fetcher for slide %d", ErrNotFound, i)
	}
	return s.Fetch(ctx, s.Slides[i].ImageURL)
}
