// Package server 通过网页发布模拟器界面。
// 每个请求从查询参数重建交互状态，服务端不保存会话。
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/plot/vg"

	"semisim"
	"semisim/chart"
	"semisim/config"
	"semisim/content"
	"semisim/param"
	"semisim/session"
)

// Server 网页服务
type Server struct {
	cfg     config.Config
	policy  session.ResetPolicy
	gallery content.Provider
	mux     *http.ServeMux
}

// New 创建网页服务
func New(cfg config.Config, gallery content.Provider) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, _ := cfg.Policy()
	s := &Server{cfg: cfg, policy: policy, gallery: gallery, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /mosfet", s.handleView(session.ViewMosfetSim))
	s.mux.HandleFunc("GET /mosfet/about", s.handleView(session.ViewMosfetAbout))
	s.mux.HandleFunc("GET /mosfet/about/image/{index}", s.handleImage)
	s.mux.HandleFunc("GET /mosfet/scene", s.handleScene)
	s.mux.HandleFunc("GET /bjt", s.handleView(session.ViewBJTSim))
	s.mux.HandleFunc("GET /chart/{view}", s.handleChart)
	s.mux.HandleFunc("GET /plot/{file}", s.handlePlot)
	s.mux.HandleFunc("GET /api/{view}", s.handleAPI)
	return s, nil
}

// Handler 带请求日志的处理器
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.mux.ServeHTTP(w, r)
		if s.cfg.Verbose {
			log.Printf("%s %s %s", r.Method, r.URL.RequestURI(), time.Since(start))
		}
	})
}

// ListenAndServe 运行服务直到 ctx 结束
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	log.Printf("serving on http://%s", s.cfg.Addr)
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Session 从请求重建交互状态
func (s *Server) Session(r *http.Request, view session.View) session.Session {
	st := session.New(s.policy).Apply(session.Navigate(view))
	q := r.URL.Query()
	switch view {
	case session.ViewMosfetSim:
		st = st.Apply(session.EditMosfet(param.Mosfet(param.MosfetSliders.Parse(q))))
	case session.ViewBJTSim:
		if q.Get("action") == "reset" {
			return st.Apply(session.Reset())
		}
		// 保持策略下，未修改参数时沿用 cookie 中的复位状态
		if s.policy == session.PolicySticky && !hasAny(q, param.BJTSliders) {
			if c, err := r.Cookie(stateCookie); err == nil && c.Value == session.StateDefaults.String() {
				return st.Apply(session.Reset())
			}
		}
		st = st.Apply(session.EditBJT(param.BJT(param.BJTSliders.Parse(q))))
	}
	return st
}

// stateCookie 保存 BJT 复位状态的 cookie 名称
const stateCookie = "bjt_state"

// hasAny 查询参数中是否带有任一滑块值
func hasAny(q url.Values, set param.Set) bool {
	for _, sl := range set {
		if q.Has(sl.Key) {
			return true
		}
	}
	return false
}

// saveState 在保持策略下记录或清除复位状态
func (s *Server) saveState(w http.ResponseWriter, st session.Session) {
	if s.policy != session.PolicySticky || st.View != session.ViewBJTSim {
		return
	}
	c := &http.Cookie{Name: stateCookie, Value: st.Reset.String(), Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode}
	if st.Reset != session.StateDefaults {
		c.Value, c.MaxAge = "", -1
	}
	http.SetCookie(w, c)
}

func (s *Server) error(w http.ResponseWriter, err error, code int) {
	log.Println(err)
	http.Error(w, err.Error(), code)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, session.ViewNone)
}

func (s *Server) handleView(view session.View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { s.writePage(w, r, view) }
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, view session.View) {
	st := s.Session(r, view)
	page := semisim.Render(r.Context(), st, s.gallery)
	s.saveState(w, st)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, newPageData(page, st, s.cfg)); err != nil {
		log.Println("render page:", err)
	}
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	page := semisim.Render(r.Context(), s.Session(r, session.ViewMosfetSim), nil)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Scene.WriteHTML(w, s.cfg.SceneWidth, s.cfg.SceneHeight); err != nil {
		log.Println("render scene:", err)
	}
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	if s.gallery == nil {
		s.error(w, content.ErrNotFound, http.StatusNotFound)
		return
	}
	i, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.error(w, fmt.Errorf("bad image index: %w", err), http.StatusBadRequest)
		return
	}
	data, err := s.gallery.Image(r.Context(), i)
	switch {
	case errors.Is(err, content.ErrNotFound):
		s.error(w, err, http.StatusNotFound)
		return
	case err != nil:
		s.error(w, err, http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Write(data)
}

// simView 图表接口使用的视图名称
func simView(name string) (session.View, bool) {
	switch name {
	case session.ViewMosfetSim.String():
		return session.ViewMosfetSim, true
	case session.ViewBJTSim.String():
		return session.ViewBJTSim, true
	}
	return session.ViewNone, false
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	view, ok := simView(r.PathValue("view"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	page := semisim.Render(r.Context(), s.Session(r, view), nil)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	out := &chart.Page{Title: page.Title, Figures: page.Figures}
	if err := out.Render(w); err != nil {
		log.Println("render chart:", err)
	}
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	view, ok := simView(r.PathValue("view"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	page := semisim.Render(r.Context(), s.Session(r, view), nil)
	rec := &chart.Record{Figures: page.Figures}
	if page.Scene != nil {
		rec.Extra = page.Scene
	}
	w.Header().Set("Content-Type", "application/json")
	if err := rec.Render(w); err != nil {
		log.Println("render record:", err)
	}
}

// figureView 图表编号所属的视图
var figureView = map[string]session.View{
	semisim.FigureMosfet:    session.ViewMosfetSim,
	semisim.FigureBJTInput:  session.ViewBJTSim,
	semisim.FigureBJTOutput: session.ViewBJTSim,
}

func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	id, format, ok := strings.Cut(r.PathValue("file"), ".")
	if !ok {
		format = s.cfg.PlotFormat
	}
	view, ok := figureView[id]
	if !ok {
		http.NotFound(w, r)
		return
	}
	ct, err := chart.ContentType(format)
	if err != nil {
		s.error(w, err, http.StatusBadRequest)
		return
	}
	page := semisim.Render(r.Context(), s.Session(r, view), nil)
	fig, _ := page.Figure(id)
	w.Header().Set("Content-Type", ct)
	width, height := vg.Length(s.cfg.PlotWidth)*vg.Inch, vg.Length(s.cfg.PlotHeight)*vg.Inch
	if err := chart.WritePlot(w, fig, format, width, height); err != nil {
		log.Println("render plot:", err)
	}
}
