package app

import (
	"image"
	"testing"

	"semisim/model"
	"semisim/scene"
)

func TestSection(t *testing.T) {
	sc := scene.MOSFET(model.MosfetParams{W: 2, L: 5, Vgs: 1, NConc: 1e17, PConc: 1e17}.Geometry())
	rects := Section(sc, image.Pt(300, 195))
	if len(rects) != len(sc.Boxes) {
		t.Fatalf("矩形数量 %d", len(rects))
	}
	// 场景范围 x∈[-1,1], y∈[-0.5,0.65]，缩放比例 150，纵向留白 11.25
	byName := map[string]SectionRect{}
	for _, r := range rects {
		byName[r.Name] = r
	}
	if got := byName[scene.BoxNType].Rect; got != image.Rect(0, 109, 300, 184) {
		t.Errorf("N 区矩形 %v", got)
	}
	if got := byName[scene.BoxGate].Rect; got != image.Rect(0, 11, 300, 41) {
		t.Errorf("栅极矩形 %v", got)
	}
	if a := byName[scene.BoxOxide].Color.A; a < 76 || a > 77 {
		t.Errorf("氧化层透明度 %d", a)
	}
	if a := byName[scene.BoxGate].Color.A; a != 255 {
		t.Errorf("栅极应不透明: %d", a)
	}
	// N 区位于 P 区下方
	if byName[scene.BoxNType].Rect.Min.Y <= byName[scene.BoxPType].Rect.Min.Y {
		t.Error("N 区应在 P 区下方")
	}
}

func TestSectionEmpty(t *testing.T) {
	if r := Section(scene.Scene{}, image.Pt(10, 10)); r != nil {
		t.Errorf("空场景应返回 nil: %v", r)
	}
}
