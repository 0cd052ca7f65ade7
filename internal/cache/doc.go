// Package cache keeps a handful of values derived from one channel, such
// as previews keyed by their requested size:
//
//	c := cache.New[image.Point, *image.Alpha](4)
//	img := c.GetOrCreate(size, render)
//
// The owner clears the cache whenever the source pixels change. A Cache is
// not safe for concurrent use.
package cache
