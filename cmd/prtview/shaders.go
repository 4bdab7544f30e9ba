package main

// Full-screen triangle; no vertex buffers needed.
const vertexShader = `#version 410 core
out vec2 vUV;
void main() {
	vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
	vUV = pos * 2.0 - 1.0;
	gl_Position = vec4(vUV, 0.0, 1.0);
}
`

// Shades a unit sphere impostor with radiance reconstructed from the packed
// per-channel SH matrices. Each mat3 is uploaded untransposed, so flat index
// i lives at column i/3, row i%3.
const fragmentShader = `#version 410 core
in vec2 vUV;
out vec4 fragColor;

uniform mat3 uPrecomputeL[3];
uniform float uAspect;

float coeff(mat3 m, int i) {
	return m[i / 3][i % 3];
}

void basis(vec3 n, out float y[9]) {
	y[0] = 0.2820947917738781;
	y[1] = -0.4886025119029199 * n.y;
	y[2] = 0.4886025119029199 * n.z;
	y[3] = -0.4886025119029199 * n.x;
	y[4] = 0.5462742152960395 * 2.0 * n.x * n.y;
	y[5] = -1.092548430592079 * n.z * n.y;
	y[6] = 0.9461746957575601 * n.z * n.z - 0.3153915652525201;
	y[7] = -1.092548430592079 * n.z * n.x;
	y[8] = 0.5462742152960395 * (n.x * n.x - n.y * n.y);
}

void main() {
	vec2 p = vUV * vec2(uAspect, 1.0) * 1.2;
	float r2 = dot(p, p);
	if (r2 > 1.0) {
		fragColor = vec4(0.05, 0.05, 0.07, 1.0);
		return;
	}
	vec3 n = vec3(p, sqrt(1.0 - r2));

	float y[9];
	basis(n, y);

	vec3 c = vec3(0.0);
	for (int i = 0; i < 9; i++) {
		c += vec3(coeff(uPrecomputeL[0], i), coeff(uPrecomputeL[1], i), coeff(uPrecomputeL[2], i)) * y[i];
	}
	fragColor = vec4(pow(max(c, vec3(0.0)), vec3(1.0 / 2.2)), 1.0);
}
`
