package renderer

import _ "embed"

//go:embed shaders/pbr.glsl
var pbrShaderSource string

//go:embed shaders/skybox.glsl
var skyboxShaderSource string

//go:embed shaders/depth.glsl
var depthShaderSource string

//go:embed shaders/brightpass.glsl
var brightpassShaderSource string

//go:embed shaders/blur.glsl
var blurShaderSource string

//go:embed shaders/postprocess.glsl
var postprocessShaderSource string
