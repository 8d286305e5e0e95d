package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hemispheric lighting: the normal blends between a sky and a ground color depending on how
// much it faces the light direction, plus a soft specular highlight.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec3 skyColor;
uniform vec3 groundColor;
uniform float specularPower;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float w = 0.5 + 0.5 * dot(N, L);
  vec3 hemi = mix(groundColor, skyColor, w);
  float spec = pow(max(dot(N, normalize(L + V)), 0.0), specularPower) * 0.25;
  finalColor = vec4(colDiffuse.rgb * hemi + vec3(spec), colDiffuse.a);
}
`
)

var (
	skyColor    = []float32{1.0, 0.98, 0.95}
	groundColor = []float32{0.18, 0.2, 0.24}
)

const specularPower = float32(32)

// lit is the shared material used for every entity mesh.
type lit struct {
	mtl        rl.Material
	viewPosLoc int32
	lightLoc   int32
	loaded     bool
	custom     bool
}

// load compiles the shader. It must run after the window exists; when the shader does not
// compile the default material is used unlit.
func (l *lit) load() {
	if l.loaded {
		return
	}
	l.loaded = true
	l.mtl = rl.LoadMaterialDefault()
	l.viewPosLoc, l.lightLoc = -1, -1
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(shader) {
		return
	}
	l.mtl.Shader = shader
	l.custom = true
	l.viewPosLoc = rl.GetShaderLocation(shader, "viewPos")
	l.lightLoc = rl.GetShaderLocation(shader, "lightDir")
	if loc := rl.GetShaderLocation(shader, "skyColor"); loc >= 0 {
		rl.SetShaderValue(shader, loc, skyColor, rl.ShaderUniformVec3)
	}
	if loc := rl.GetShaderLocation(shader, "groundColor"); loc >= 0 {
		rl.SetShaderValue(shader, loc, groundColor, rl.ShaderUniformVec3)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularPower}, rl.ShaderUniformFloat)
	}
}

// setView uploads the per-frame camera position and light direction.
func (l *lit) setView(viewPos, lightDir rl.Vector3) {
	if l.viewPosLoc >= 0 {
		rl.SetShaderValue(l.mtl.Shader, l.viewPosLoc, []float32{viewPos.X, viewPos.Y, viewPos.Z}, rl.ShaderUniformVec3)
	}
	if l.lightLoc >= 0 {
		rl.SetShaderValue(l.mtl.Shader, l.lightLoc, []float32{lightDir.X, lightDir.Y, lightDir.Z}, rl.ShaderUniformVec3)
	}
}

func (l *lit) setColor(c rl.Color) {
	if albedo := l.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = c
	}
}

func (l *lit) unload() {
	if l.loaded && l.custom {
		rl.UnloadShader(l.mtl.Shader)
	}
	l.loaded, l.custom = false, false
}
