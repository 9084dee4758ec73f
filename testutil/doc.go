// Package testutil provides testing utilities for topicgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating synthetic corpora with controlled
// statistical structure.
//
// # Random Corpora
//
//	rng := testutil.NewRNG(seed)
//	c := rng.RandomCorpus(200, 500, 20, 80)   // Zipf term frequencies
//
// # Planted Structure (Ground Truth)
//
//	c := rng.PlantedCorpus(4, 100, 25, 60, 0.1)
//
// Documents draw from disjoint topic-vocabulary blocks, so a sampler
// should recover one dominant topic per block.
//
// # Builder Input
//
//	tokens := rng.Tokens(500, 40)
package testutil
