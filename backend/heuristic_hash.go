package main

import "math"

const fnv64Offset = 1469598103934665603
const fnv64Prime = 1099511628211

func resolvedHeuristicConfig(config Config) HeuristicConfig {
	heuristics := config.Heuristics
	if heuristics == (HeuristicConfig{}) {
		return DefaultConfig().Heuristics
	}
	return heuristics
}

// heuristicHash fingerprints the weight set so TT entries computed under one
// set of constants are never reused under another.
func heuristicHash(config HeuristicConfig) uint64 {
	hash := uint64(fnv64Offset)
	mix := func(value float64) {
		bits := math.Float64bits(value)
		for i := 0; i < 8; i++ {
			hash ^= uint64(byte(bits >> (8 * i)))
			hash *= fnv64Prime
		}
	}
	mix(float64(config.CenterOwnedBonus))
	mix(float64(config.WonBoardBonus))
	mix(config.CenterBoardWeight)
	mix(config.CornerBoardWeight)
	mix(config.EdgeBoardWeight)
	mix(float64(config.WinScore))
	mix(float64(config.PosCenterBoard))
	mix(float64(config.PosCornerBoard))
	mix(float64(config.PosEdgeBoard))
	mix(float64(config.PosCenterCell))
	mix(float64(config.PosCornerCell))
	mix(float64(config.PosFreeSend))
	return hash
}

func heuristicHashFromConfig(config Config) uint64 {
	return heuristicHash(resolvedHeuristicConfig(config))
}
