package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxImageSize 单张图片读取上限
const MaxImageSize = 8 << 20

// HTTPFetcher 远程图片读取
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher 创建带超时的读取器
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{Timeout: timeout}}
}

// Fetch 读取 url 指向的数据
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: %s", ErrNotFound, url, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, MaxImageSize))
}

// NewFabrication 带远程读取的工艺说明
func NewFabrication(timeout time.Duration) *Static {
	return &Static{Slides: FabricationSlides(), Fetch: NewHTTPFetcher(timeout).Fetch}
}
