package server

import (
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"semisim/config"
	"semisim/content"
	"semisim/session"
)

func newTestServer(t *testing.T, policy string, gallery content.Provider) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.ResetPolicy = policy
	s, err := New(cfg, gallery)
	if err != nil {
		t.Fatalf("创建服务失败: %s", err)
	}
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("请求失败: %s", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("读取失败: %s", err)
	}
	return resp, string(body)
}

func TestPages(t *testing.T) {
	srv := newTestServer(t, "sticky", &content.Static{Slides: content.FabricationSlides()})
	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{"Semiconductor Simulator", "MOSFET 3D Simulator"}},
		{"/mosfet?w=4&vgs=2", []string{"3D MOSFET Structure", `name="w"`, "/chart/mosfet?", "w=4"}},
		{"/mosfet/about", []string{"About MOSFET", "MOSFET structure 13"}},
		{"/bjt", []string{"BJT Common-Base Configuration Simulator", `name="i_s"`, "Reset to Defaults"}},
	}
	for _, tt := range tests {
		resp, body := get(t, srv.URL+tt.path)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s 状态码 %d", tt.path, resp.StatusCode)
			continue
		}
		for _, want := range tt.want {
			if !strings.Contains(body, want) {
				t.Errorf("%s 缺少 %q", tt.path, want)
			}
		}
	}
}

func TestResetPolicies(t *testing.T) {
	sticky := newTestServer(t, "sticky", nil)
	_, body := get(t, sticky.URL+"/bjt?action=reset&v_t=0.04")
	if !strings.Contains(body, "Parameters reset to defaults") || !strings.Contains(body, `name="v_t"`) {
		t.Error("保持策略下复位后应显示提示与控件")
	}
	if !strings.Contains(body, "v_t=0.026") {
		t.Error("复位后应使用默认热电压")
	}

	perRender := newTestServer(t, "per-render", nil)
	_, body = get(t, perRender.URL+"/bjt?action=reset")
	if strings.Contains(body, `name="v_t"`) {
		t.Error("单周期策略下复位时应隐藏控件")
	}
	_, body = get(t, perRender.URL+"/bjt")
	if !strings.Contains(body, `name="v_t"`) {
		t.Error("下一次渲染应恢复控件")
	}
}

func TestAPI(t *testing.T) {
	srv := newTestServer(t, "sticky", nil)
	resp, body := get(t, srv.URL+"/api/mosfet?vgs=0.5")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("状态码 %d", resp.StatusCode)
	}
	var rec struct {
		Figures []struct {
			ID     string `json:"id"`
			Series []struct {
				X []float64 `json:"x"`
				Y []float64 `json:"y"`
			} `json:"series"`
		} `json:"figures"`
		Extra struct {
			Boxes []json.RawMessage `json:"boxes"`
		} `json:"extra"`
	}
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		t.Fatalf("JSON 解析失败: %s", err)
	}
	if len(rec.Figures) != 1 || len(rec.Figures[0].Series[0].Y) != 100 {
		t.Fatalf("记录错误: %s", body)
	}
	for _, y := range rec.Figures[0].Series[0].Y {
		if y != 0 {
			t.Fatalf("截止区电流应为0: %v", y)
		}
	}
	if len(rec.Extra.Boxes) != 6 {
		t.Errorf("场景图元数量 %d", len(rec.Extra.Boxes))
	}

	_, body = get(t, srv.URL+"/api/bjt")
	if !strings.Contains(body, `"V_CB - I_C Curve"`) {
		t.Error("BJT 记录缺少输出特性")
	}
	if resp, _ := get(t, srv.URL+"/api/diode"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("未知视图状态码 %d", resp.StatusCode)
	}
}

func TestPlot(t *testing.T) {
	srv := newTestServer(t, "sticky", nil)
	resp, err := http.Get(srv.URL + "/plot/bjt-input.png?i_s=1e-13")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if _, err := png.Decode(resp.Body); err != nil {
		t.Errorf("PNG 解码失败: %s", err)
	}
	if resp, _ := get(t, srv.URL+"/plot/mosfet.gif"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("不支持格式状态码 %d", resp.StatusCode)
	}
	if resp, _ := get(t, srv.URL+"/plot/unknown.png"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("未知图表状态码 %d", resp.StatusCode)
	}
}

func TestChartAndScene(t *testing.T) {
	srv := newTestServer(t, "sticky", nil)
	_, body := get(t, srv.URL+"/chart/bjt")
	if !strings.Contains(body, "V_BE - I_E Curve") || !strings.Contains(body, "V_CB - I_C Curve") {
		t.Error("BJT 图表页缺少曲线标题")
	}
	_, body = get(t, srv.URL+"/mosfet/scene?w=3")
	if !strings.Contains(body, `"width":3`) {
		t.Error("场景页缺少参数化宽度")
	}
}

func TestImageProxy(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("\x89PNG\r\n\x1a\n"))
	}))
	defer remote.Close()
	gallery := &content.Static{
		Slides: []content.Slide{{ImageURL: remote.URL + "/1.png"}},
		Fetch:  content.NewHTTPFetcher(0).Fetch,
	}
	srv := newTestServer(t, "sticky", gallery)
	resp, _ := get(t, srv.URL+"/mosfet/about/image/0")
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "image/png" {
		t.Errorf("图片代理错误: %d %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	if resp, _ := get(t, srv.URL+"/mosfet/about/image/3"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("越界状态码 %d", resp.StatusCode)
	}
	if resp, _ := get(t, srv.URL+"/mosfet/about/image/x"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("非法编号状态码 %d", resp.StatusCode)
	}
}

func TestSessionFromRequest(t *testing.T) {
	s, err := New(config.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	r := httptest.NewRequest(http.MethodGet, "/bjt?v_cb_max=8&i_e_max=0.5", nil)
	st := s.Session(r, session.ViewBJTSim)
	if st.View != session.ViewBJTSim || st.BJT.VCBMax != 8 || st.BJT.IEMax != 0.01 {
		t.Errorf("状态解析错误: %+v", st)
	}
}

func TestAboutPageUsesImageRoute(t *testing.T) {
	srv := newTestServer(t, "sticky", content.NewFabrication(0))
	_, body := get(t, srv.URL+"/mosfet/about")
	if !strings.Contains(body, `src="/mosfet/about/image/0"`) || !strings.Contains(body, `src="/mosfet/about/image/12"`) {
		t.Error("说明页应通过本地路由加载图片")
	}
	if strings.Contains(body, content.ImageBase) {
		t.Error("说明页不应直接引用远程图片地址")
	}
}

// serve 直接调用处理器，携带上一次响应的 cookie
func serve(h http.Handler, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestStickyResetAcrossNavigation(t *testing.T) {
	s, err := New(config.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	h := s.Handler()
	w := serve(h, "/bjt?action=reset", nil)
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "defaults" {
		t.Fatalf("复位后 cookie 错误: %v", cookies)
	}
	serve(h, "/mosfet", cookies)
	w = serve(h, "/bjt", cookies)
	if !strings.Contains(w.Body.String(), "Parameters reset to defaults") {
		t.Error("切换视图后应保持复位状态")
	}

	// 修改参数后回到 CUSTOM 并清除 cookie
	w = serve(h, "/bjt?v_t=0.03", cookies)
	if strings.Contains(w.Body.String(), "Parameters reset to defaults") {
		t.Error("修改参数后不应显示复位提示")
	}
	cleared := w.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("修改参数后应清除 cookie: %v", cleared)
	}
}

func TestPerRenderIgnoresStateCookie(t *testing.T) {
	cfg := config.Default()
	cfg.ResetPolicy = "per-render"
	s, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	w := serve(s.Handler(), "/bjt", []*http.Cookie{{Name: stateCookie, Value: "defaults"}})
	if strings.Contains(w.Body.String(), "Parameters reset to defaults") {
		t.Error("单周期策略不应读取 cookie")
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("单周期策略不应写入 cookie")
	}
}
