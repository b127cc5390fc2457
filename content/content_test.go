package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFabricationSlides(t *testing.T) {
	slides := FabricationSlides()
	if len(slides) != 13 {
		t.Fatalf("说明数量 %d, 期望 13", len(slides))
	}
	if slides[0].Caption != "MOSFET structure 1" {
		t.Errorf("标题错误: %q", slides[0].Caption)
	}
	if !strings.HasSuffix(slides[12].ImageURL, "%2013.png") {
		t.Errorf("图片地址错误: %q", slides[12].ImageURL)
	}
}

func TestStaticImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("PNGDATA"))
	}))
	defer srv.Close()

	s := &Static{
		Slides: []Slide{{ImageURL: srv.URL + "/a.png"}, {ImageURL: srv.URL + "/missing.png"}},
		Fetch:  NewHTTPFetcher(time.Second).Fetch,
	}
	ctx := context.Background()
	data, err := s.Image(ctx, 0)
	if err != nil || string(data) != "PNGDATA" {
		t.Fatalf("读取图片失败: %q %v", data, err)
	}
	if _, err := s.Image(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("期望 ErrNotFound, 实际 %v", err)
	}
	if _, err := s.Image(ctx, 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("越界期望 ErrNotFound, 实际 %v", err)
	}
}

func TestGalleryCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &Static{Slides: FabricationSlides()}
	if _, err := s.Gallery(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("期望 context.Canceled, 实际 %v", err)
	}
	if _, err := s.Image(context.Background(), 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("无读取器时期望 ErrNotFound, 实际 %v", err)
	}
}
