// Package gen 提供压测用随机向量生成
package gen

import "math/rand"

// RandomVector 生成长度 n 的 [0,1) 均匀分布随机向量
func RandomVector(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()
	}
	return v
}

// RandomPair 生成一对等长随机向量，seed 固定时结果可复现
func RandomPair(n int, seed int64) (a, b []float64) {
	rng := rand.New(rand.NewSource(seed))
	return RandomVector(rng, n), RandomVector(rng, n)
}

// Lengths 从 min 开始按 factor 倍增直到超过 max，对应原始计时用例的数组长度序列
func Lengths(min, max, factor int) []int {
	if min <= 0 || factor <= 1 {
		return nil
	}
	var out []int
	for m := min; m <= max; m *= factor {
		out = append(out, m)
	}
	return out
}
