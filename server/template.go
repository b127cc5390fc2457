package server

import (
	"html/template"
	"net/url"

	"semisim"
	"semisim/config"
	"semisim/param"
	"semisim/session"
)

type sliderData struct {
	param.Slider
	Value   float64
	Display string
}

type pageData struct {
	semisim.Page
	State       string
	Query       template.URL
	Sliders     []sliderData
	SceneWidth  int
	SceneHeight int
}

func newPageData(page semisim.Page, st session.Session, cfg config.Config) pageData {
	d := pageData{
		Page:        page,
		State:       st.Reset.String(),
		SceneWidth:  cfg.SceneWidth,
		SceneHeight: cfg.SceneHeight,
	}
	q := url.Values{}
	page.Sliders.Encode(page.Values, q)
	d.Query = template.URL(q.Encode())
	for _, s := range page.Sliders {
		v := page.Values.Float64(s.Key, s.Default)
		d.Sliders = append(d.Sliders, sliderData{Slider: s, Value: v, Display: s.Display(v)})
	}
	return d
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; display: flex; margin: 0; }
nav { width: 260px; padding: 16px; background: #f4f4f4; min-height: 100vh; }
nav a { display: block; margin: 6px 0; }
main { flex: 1; padding: 16px; }
h1 { text-align: center; color: #4CAF50; }
label { display: block; margin-top: 10px; font-size: 13px; }
iframe { border: none; }
figure img { max-width: 100%; }
</style>
</head>
<body>
<nav>
<h3>Menu</h3>
<a href="/mosfet">MOSFET 3D Simulator</a>
<a href="/mosfet/about">About MOSFET</a>
<a href="/bjt">BJT Simulator</a>
{{if eq .View.String "bjt"}}<hr><a href="/bjt?action=reset">Reset to Defaults</a>{{end}}
{{if .Controls}}{{if .Sliders}}
<hr>
<h3>Parameters</h3>
<form method="get">
{{range .Sliders}}
<label>{{.Label}}: <output>{{.Display}}</output>
<input type="range" name="{{.Key}}" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{.Value}}" onchange="this.form.submit()">
</label>
{{end}}
</form>
{{end}}{{end}}
</nav>
<main>
<h1>{{.Title}}</h1>
{{if eq .View.String "none"}}
<p style="text-align: center; color: #555;">Simulate MOSFET and BJT characteristics and view the MOSFET structure in 3D.</p>
{{end}}
{{if eq .View.String "mosfet"}}
<h3>3D MOSFET Structure</h3>
<p>The model shows the basic MOSFET structure: n-type, p-type, source, drain, gate and oxide.</p>
<iframe src="/mosfet/scene?{{.Query}}" width="{{.SceneWidth}}" height="{{.SceneHeight}}"></iframe>
<iframe src="/chart/mosfet?{{.Query}}" width="700" height="480"></iframe>
<figure><img src="/plot/mosfet.png?{{.Query}}" alt="MOSFET Output Characteristics"></figure>
{{end}}
{{if eq .View.String "bjt"}}
{{if eq .State "defaults"}}<p><strong>Parameters reset to defaults.</strong></p>{{end}}
<iframe src="/chart/bjt?{{.Query}}" width="700" height="960"></iframe>
{{end}}
{{if eq .View.String "mosfet-about"}}
{{range $i, $s := .Slides}}
<figure>
<img src="/mosfet/about/image/{{$i}}" alt="{{$s.Caption}}">
<figcaption>{{$s.Caption}}</figcaption>
</figure>
<p>&#9654; {{$s.Description}}</p>
{{end}}
{{end}}
</main>
</body>
</html>
`))
