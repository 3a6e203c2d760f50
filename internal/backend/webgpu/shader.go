package webgpu

import (
	"strconv"

	"github.com/born-ml/knapsack/internal/backend/gpu"
)

// knapsackShaderName keys the shader and pipeline caches.
const knapsackShaderName = "knapsack"

// knapsackShader solves one problem per invocation.
//
// Bindings: 0 capacities, 1 weights, 2 values (read-only storage), 3 results
// (read-write storage), 4 params (uniform: item count, launch max capacity,
// problem count). Each invocation owns a function-scope row of RowBound+1
// cells; the descending inner loop keeps every item to a single use.
var knapsackShader = `
const ROW_LEN: u32 = ` + strconv.Itoa(gpu.RowBound+1) + `u;

@group(0) @binding(0) var<storage, read> capacities: array<i32>;
@group(0) @binding(1) var<storage, read> weights: array<i32>;
@group(0) @binding(2) var<storage, read> values: array<i32>;
@group(0) @binding(3) var<storage, read_write> results: array<i32>;

struct Params {
    item_count: u32,
    max_capacity: u32,
    num_problems: u32,
    _pad: u32,
}
@group(0) @binding(4) var<uniform> params: Params;

@compute @workgroup_size(` + strconv.Itoa(gpu.WorkgroupSize) + `)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx >= params.num_problems) {
        return;
    }

    var row: array<i32, ROW_LEN>;
    for (var c: u32 = 0u; c <= params.max_capacity; c = c + 1u) {
        row[c] = 0;
    }

    let base = idx * params.item_count;
    for (var i: u32 = 0u; i < params.item_count; i = i + 1u) {
        let w = weights[base + i];
        let v = values[base + i];
        for (var c: i32 = i32(params.max_capacity); c >= w; c = c - 1) {
            row[c] = max(row[c], row[c - w] + v);
        }
    }

    results[idx] = row[capacities[idx]];
}
`
