// Command yaaacdbench compares the two broad-phase acceleration
// structures against brute force over increasing triangle counts.
package main

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"yaaacd"
	"yaaacd/trimesh"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(errors.Wrap(err, "yaaacdbench: failed to init logger"))
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	testCounts := []int{100, 1000, 5000, 20000}
	for _, count := range testCounts {
		runBench(sugar, count)
	}
}

func runBench(sugar *zap.SugaredLogger, count int) {
	rand.Seed(42)

	spawnSize := 50.0 + float64(count)/100.0
	a := randomTriangles(count, spawnSize)
	b := randomTriangles(count, spawnSize)

	octreeA, octreeB := yaaacd.NewOctree(a), yaaacd.NewOctree(b)
	hashA := yaaacd.NewSpatialHashMap(a, 3)

	octreeStart := time.Now()
	octreeResult := octreeA.Collides(octreeB, trimesh.Intersects)
	octreeTime := time.Since(octreeStart)

	hashStart := time.Now()
	hashResult := hashA.Collides(b, trimesh.Intersects)
	hashTime := time.Since(hashStart)

	var bruteResult bool
	var bruteTime time.Duration
	if count <= 2000 {
		bruteStart := time.Now()
		bruteResult = yaaacd.BruteforceCollides(a, b, trimesh.Intersects)
		bruteTime = time.Since(bruteStart)
	}

	sugar.Infow("collision bench",
		"triangles", count,
		"octree_time", octreeTime,
		"octree_collides", octreeResult,
		"hashmap_time", hashTime,
		"hashmap_collides", hashResult,
		"bruteforce_time", bruteTime,
		"bruteforce_collides", bruteResult,
		"bruteforce_skipped", count > 2000,
	)
}

// randomTriangles scatters count small triangles uniformly within
// [-spawnSize/2, spawnSize/2]^3.
func randomTriangles(count int, spawnSize float64) []yaaacd.Triangle {
	triangles := make([]yaaacd.Triangle, count)
	for i := range triangles {
		x := rand.Float64()*spawnSize - spawnSize/2
		y := rand.Float64()*spawnSize - spawnSize/2
		z := rand.Float64()*spawnSize - spawnSize/2
		triangles[i] = yaaacd.NewTriangle(
			yaaacd.NewVertex(x, y, z),
			yaaacd.NewVertex(x+0.5, y, z),
			yaaacd.NewVertex(x, y+0.5, z),
		)
	}
	return triangles
}
