// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package render

// GLSL sources for the fixed program set. The TransformBlock and
// InstanceBuffer declarations are a byte layout contract with layout.go;
// the instance array length must equal MaxInstances.

const defaultVertexSource = `#version 410 core

layout (location = 0) in vec3 position;
layout (location = 1) in vec3 normal;
layout (location = 2) in vec3 tangent;
layout (location = 3) in vec2 texCoord;

layout (std140) uniform TransformBlock
{
	mat3x4 worldToView;
	mat4 projection;
};

uniform mat4x3 modelToWorld;

out VertexData
{
	vec2 uv;
	vec3 worldPos;
	mat3 tbn;
} vOut;

void main()
{
	vec3 worldPos = modelToWorld * vec4(position, 1.0);
	vec3 viewPos = vec4(worldPos, 1.0) * worldToView;

	vec3 n = normalize(mat3(modelToWorld) * normal);
	vec3 t = normalize(mat3(modelToWorld) * tangent);
	t = normalize(t - dot(t, n) * n);

	vOut.uv = texCoord;
	vOut.worldPos = worldPos;
	vOut.tbn = mat3(t, cross(n, t), n);

	gl_Position = projection * vec4(viewPos, 1.0);
}
`

const instancingVertexSource = `#version 410 core

#define MAX_INSTANCES 1024

layout (location = 0) in vec3 position;
layout (location = 1) in vec3 normal;
layout (location = 2) in vec3 tangent;
layout (location = 3) in vec2 texCoord;

layout (std140) uniform TransformBlock
{
	mat3x4 worldToView;
	mat4 projection;
};

layout (std140) uniform InstanceBuffer
{
	mat3x4 instanceTransforms[MAX_INSTANCES];
};

out VertexData
{
	vec2 uv;
	vec3 worldPos;
	mat3 tbn;
} vOut;

void main()
{
	mat3x4 modelToWorld = instanceTransforms[gl_InstanceID];

	vec3 worldPos = vec4(position, 1.0) * modelToWorld;
	vec3 viewPos = vec4(worldPos, 1.0) * worldToView;

	vec3 n = normalize(vec4(normal, 0.0) * modelToWorld);
	vec3 t = normalize(vec4(tangent, 0.0) * modelToWorld);
	t = normalize(t - dot(t, n) * n);

	vOut.uv = texCoord;
	vOut.worldPos = worldPos;
	vOut.tbn = mat3(t, cross(n, t), n);

	gl_Position = projection * vec4(viewPos, 1.0);
}
`

const litFragmentSource = `#version 410 core

uniform sampler2D Diffuse;
uniform sampler2D Normal;
uniform sampler2D Specular;
uniform sampler2D Occlusion;

uniform vec3 lightPosWS;
uniform vec4 viewPosWS;

in VertexData
{
	vec2 uv;
	vec3 worldPos;
	mat3 tbn;
} vIn;

out vec4 color;

void main()
{
	vec3 albedo = texture(Diffuse, vIn.uv).rgb;
	vec3 sampledNormal = texture(Normal, vIn.uv).rgb * 2.0 - 1.0;
	float specularity = texture(Specular, vIn.uv).r;
	float occlusion = texture(Occlusion, vIn.uv).r;

	vec3 n = normalize(vIn.tbn * sampledNormal);

	vec3 toLight = lightPosWS - vIn.worldPos;
	float distSq = max(dot(toLight, toLight), 1e-4);
	vec3 lightDir = toLight * inversesqrt(distSq);

	vec3 viewDir = normalize(viewPosWS.xyz - vIn.worldPos);
	vec3 halfDir = normalize(lightDir + viewDir);

	const vec3 lightIntensity = vec3(25.0);
	const vec3 ambient = vec3(0.05);

	float ndl = max(dot(n, lightDir), 0.0);
	float ndh = max(dot(n, halfDir), 0.0);

	vec3 direct = (albedo * ndl + vec3(specularity * pow(ndh, 64.0))) * lightIntensity / distSq;
	vec3 indirect = albedo * ambient * occlusion;

	color = vec4(direct + indirect, 1.0);
}
`

const pointVertexSource = `#version 410 core

layout (std140) uniform TransformBlock
{
	mat3x4 worldToView;
	mat4 projection;
};

uniform vec3 position;

void main()
{
	vec3 viewPos = vec4(position, 1.0) * worldToView;
	gl_Position = projection * vec4(viewPos, 1.0);
}
`

const pointFragmentSource = `#version 410 core

uniform vec3 color;

out vec4 fragColor;

void main()
{
	fragColor = vec4(color, 1.0);
}
`

const tonemapVertexSource = `#version 410 core

void main()
{
	const vec2 verts[6] = vec2[6](
		vec2(-1.0, -1.0), vec2(1.0, -1.0), vec2(1.0, 1.0),
		vec2(1.0, 1.0), vec2(-1.0, 1.0), vec2(-1.0, -1.0));
	gl_Position = vec4(verts[gl_VertexID], 0.0, 1.0);
}
`

const tonemapFragmentSource = `#version 410 core

uniform sampler2D HDRTexture;
uniform sampler2DMS HDRTextureMS;
uniform float MSAALevel;

out vec4 color;

vec3 tonemap(vec3 hdr)
{
	return hdr / (hdr + vec3(1.0));
}

void main()
{
	ivec2 coord = ivec2(gl_FragCoord.xy);
	int sampleCount = int(MSAALevel);

	vec3 hdr = vec3(0.0);
	if (sampleCount > 1)
	{
		for (int i = 0; i < sampleCount; ++i)
			hdr += texelFetch(HDRTextureMS, coord, i).rgb;
		hdr /= float(sampleCount);
	}
	else
	{
		hdr = texelFetch(HDRTexture, coord, 0).rgb;
	}

	color = vec4(tonemap(hdr), 1.0);
}
`
