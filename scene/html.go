package scene

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

// 场景页面使用 three.js 绘制，可用鼠标旋转观察。
var pageTemplate = template.Must(template.New("scene").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdnjs.cloudflare.com/ajax/libs/three.js/r128/three.min.js"></script>
<script src="https://cdn.jsdelivr.net/npm/three@0.128.0/examples/js/controls/OrbitControls.js"></script>
</head>
<body>
<div id="scene" style="width: {{.Width}}px; height: {{.Height}}px; margin: auto; border: 1px solid #ddd; border-radius: 10px;"></div>
<script>
const desc = {{.JSON}};
const scene = new THREE.Scene();
const camera = new THREE.PerspectiveCamera(75, {{.Width}} / {{.Height}}, 0.1, 1000);
camera.position.set(1, 1, 3);
camera.lookAt(0, 0, 0);
const renderer = new THREE.WebGLRenderer({ alpha: true });
renderer.setSize({{.Width}}, {{.Height}});
document.getElementById("scene").appendChild(renderer.domElement);
const controls = new THREE.OrbitControls(camera, renderer.domElement);
controls.enableDamping = true;
controls.dampingFactor = 0.05;
controls.enableZoom = true;
for (const b of desc.boxes) {
	const geometry = new THREE.BoxGeometry(b.width, b.height, b.depth);
	const material = new THREE.MeshBasicMaterial({ color: b.color, transparent: b.opacity < 1, opacity: b.opacity });
	const mesh = new THREE.Mesh(geometry, material);
	mesh.position.set(...b.position);
	scene.add(mesh);
	const edges = new THREE.LineSegments(new THREE.EdgesGeometry(geometry), new THREE.LineBasicMaterial({ color: 0x000000 }));
	edges.position.set(...b.position);
	scene.add(edges);
}
(function animate() {
	requestAnimationFrame(animate);
	controls.update();
	renderer.render(scene, camera);
})();
</script>
</body>
</html>
`))

// WriteHTML 输出可交互的三维场景页面
func (s Scene) WriteHTML(w io.Writer, width, height int) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	return pageTemplate.Execute(w, struct {
		Title         string
		Width, Height int
		JSON          template.JS
	}{s.Title, width, height, template.JS(raw)})
}
