// Package cache provides a small generic LRU cache for values that are
// expensive to build and immutable once built, such as resampling plans
// and convolution kernels.
//
//	plans := cache.New[planKey, *plan](64)
//	p := plans.GetOrCreate(key, func() *plan { return newPlan(key) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
