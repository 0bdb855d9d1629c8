package shadegen

// Fixed WGSL text. The preamble defines every primitive the grammar can
// reference; entries the grammar does not pick for a given seed are
// harmless dead code in the compiled shader. The stage template carries
// the vertex stage (fullscreen quad from 6 hardcoded vertex/UV pairs),
// the 4-float uniform binding and the fragment stage with four insertion
// points: the three RGB channel expressions and the mask expression.

const functionPreamble = `
	
	// 1 input
	
	fn fInv(x: f32) -> f32
	{
		return 1.0f - x;
	}
	
	fn fSqr(x: f32) -> f32
	{
		return x * x;
	}
	
	fn fSqrt(x: f32) -> f32
	{
		return sqrt(x);
	}
	
	fn fSmooth(x: f32) -> f32
	{
		let x2: f32 = x * x;
		let x3: f32 = x2 * x;
		return x2 + x2 + x2 - x3 - x3;
	}

	fn fSharp(x: f32) -> f32
	{
		return x * (x * (x + x - 3.0f) + 2.0f);
	}
	
	// -------------------------------------
	// 2 inputs
	
	fn fAdd(x: f32, y: f32) -> f32
	{
		let res: f32 = x + y;
		if (res > 1.0f)
		{
			return 2.0f - res;
		}
		return res;
	}
	
	fn fSub(x: f32, y: f32) -> f32
	{
		let res: f32 = x - y;
		if (res < 0.0f)
		{
			return -res;
		}
		return res;
	}
	
	fn fMul(x: f32, y: f32) -> f32
	{
		return x * y;
	}
		
	fn fDiv(x: f32, y: f32) -> f32
	{
		var min: f32 = x;
		var max: f32 = y;
		
		if (x > y)
		{
			min = y;
			max = x;
		}
		if (max < 0.0001f)
		{
			max = 0.0001f;
		}
		return min / max;
	}
	
	fn fAvg(x: f32, y: f32) -> f32
	{
		return (x + y) * 0.5f;
	}
	
	fn fGeom(x: f32, y: f32) -> f32
	{
		return sqrt(x * y);
	}
	
	fn fHarm(x: f32, y: f32) -> f32
	{
		var den: f32 = x + y;
		if (den < 0.0001f)
		{
			den = 0.0001f;
		}
		return (2.0f * x * y) / den;
	}

	fn fHypo(x: f32, y: f32) -> f32
	{
		return 0.70710678f * sqrt(x * x + y * y); // Scale by 1 / sqrt(2)
	}	

	fn fMax(x: f32, y: f32) -> f32
	{
		return select(y, x, x > y);
	}
	
	fn fMin(x: f32, y: f32) -> f32
	{
		return select(y, x, x < y);
	}
	
	fn fPow(x: f32, y: f32) -> f32
	{
		let exp1: f32 = y + y - 1.0f;
		let exp2: f32 = pow(10.0f, exp1);
		return pow(x, exp2);
	}

	fn fBell(x: f32, y: f32) -> f32
	{
		let y2: f32 = y * y;
		return pow(4.0f * x * (1.0f - x), 20.0f * y2 * y2 + 0.3f);
	}
	
	fn fWave(x: f32, y: f32) -> f32
	{
		const MAX_FREQUENCY: f32 = 6.0f * 3.1415927f;
		return 0.5f + 0.5f * cos(MAX_FREQUENCY * x * y);
	}
	
	fn fBounce(x: f32, y: f32) -> f32
	{
		const FREQUENCY_FACTOR: f32 = 3.0f * 3.1415927f;
		return abs(cos(FREQUENCY_FACTOR * x * (y + 0.5f)) * exp2(-3.0f * x));
	}

	// -------------------------------------
	// 3 inputs
	
	fn fLerp(x: f32, y: f32, z: f32) -> f32
	{
		return (1.0f - z) * x + z * y;
	}
	
	fn fMlerp(x: f32, y: f32, z: f32) -> f32
	{
		let xMin = select(x, 0.0001f, x < 0.0001f);
		return xMin * pow(y / xMin, z);
	}
	
	fn fClamp(x: f32, y: f32, z: f32) -> f32
	{
		var min: f32 = x;
		var max: f32 = y;
		
		if (x > y)
		{
			min = y;
			max = x;
		}
		if (z < min)
		{
			return min;
		}
		else if (z > max)
		{
			return max;
		}
		return z;
	}
	
	// -------------------------------------
	// 4 inputs
		
	fn fDist(x: f32, y: f32, z: f32, w: f32) -> f32
	{
		let dx: f32 = x - z;
		let dy: f32 = y - w;
		return 0.70710678f * sqrt(dx * dx + dy * dy); // Scale by 1 / sqrt(2)
	}
	
	fn fDistLine(x: f32, y: f32, z: f32, w: f32) -> f32
	{
		if (z < 0.499f)
		{
			let m: f32 = tan(z * 3.1415927f);
			let n: f32 = (1.0f - w) * (1.0f + m) - m;
			let c: f32 = (x + y * m - m * n) / (m * m + 1.0f);
			let dx: f32 = c - x;
			let dy: f32 = m * c + n - y;
			return 0.70710678f * sqrt(dx * dx + dy * dy);
		}
		else if (z > 0.501f)
		{
			let m: f32 = tan(z * 3.1415927f);
			let n: f32 = w - m * w;
			let c: f32 = (x + y * m - m * n) / (m * m + 1.0f);
			let dx: f32 = c - x;
			let dy: f32 = m * c + n - y;
			return 0.70710678f * sqrt(dx * dx + dy * dy);
		}
		else
		{
			return 0.70710678f * abs(w - x);
		}
	}

	// -------------------------------------
	// Masks

	// Implement lerp since WGSL doesn't have it natively
	fn lerp(a: vec3f, b: vec3f, t: vec3f) -> vec3f
	{
		return a + t * (b - a);
	}

	fn fInv3(v: vec3f) -> vec3f
	{
		return vec3f(1.0f, 1.0f, 1.0f) - v;
	}

	fn fAdd3(v: vec3f, x: f32) -> vec3f
	{
		let res: vec3f = v + vec3f(x, x, x);
		return lerp(res, 2.0f - res, step(vec3f(1.0f, 1.0f, 1.0f), res));
	}
	
	fn fSub3(v: vec3f, x: f32) -> vec3f
	{
		let res: vec3f = v - vec3f(x, x, x);
		return lerp(-res, res, step(vec3f(0.0f, 0.0f, 0.0f), res));
	}
	
	`

const stageTemplate = `

	struct VertexOutput
	{
		@builtin(position) Position : vec4f,
		@location(0) uv : vec2f
	};

	@vertex
	fn vertexMain(@builtin(vertex_index) i : u32) -> VertexOutput
	{
		// Fullscreen quad
		const positions = array
		(
			vec2f(-1.0f, 1.0f), vec2f(1.0f, 1.0f), vec2f(-1.0f, -1.0f),
			vec2f(-1.0f, -1.0f), vec2f(1.0f, 1.0f), vec2f(1.0f, -1.0f)
		);

		// UV coordinates
		const uvs = array
		(
			vec2f(0.0f, 1.0f), vec2f(1.0f, 1.0f), vec2f(0.0f, 0.0f),
			vec2f(0.0f, 0.0f), vec2f(1.0f, 1.0f), vec2f(1.0f, 0.0f)
		);
		
		// Assemble output
		var output: VertexOutput;
		output.Position = vec4f(positions[i], 0.0f, 1.0f);
		output.uv = uvs[i];
		return output;
	}

	@group(0) @binding(0) var<uniform> buf : vec4f;

	@fragment
	fn fragmentMain(input: VertexOutput) -> @location(0) vec4f
	{
		let invX = 1.0f - input.uv.x;
		let invY = 1.0f - input.uv.y;
		let sinTime = buf.x;
		let cosTime = buf.y;

		let rgb: vec3f = vec3f(%s, %s, %s);
		let rgbMasked = %s;

		return vec4f(rgbMasked, 1.0f);
	}

	`
