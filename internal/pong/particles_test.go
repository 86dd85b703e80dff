package pong

import (
	"testing"

	"github.com/kaymed/picklepong/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnHitRanges(t *testing.T) {
	rng := core.NewRNG(1)
	at := core.Vec{X: 735, Y: 300}
	for _, dir := range []float64{1, -1} {
		ps := SpawnHit(rng, at, TagRight, dir)
		require.Len(t, ps, HitBurst)
		for _, p := range ps {
			assert.Equal(t, at, p.Pos)
			assert.GreaterOrEqual(t, p.Vel.X*dir, 0.0)
			assert.Less(t, p.Vel.X*dir, 3.0)
			assert.GreaterOrEqual(t, p.Vel.Y, -3.0)
			assert.Less(t, p.Vel.Y, 3.0)
			assert.GreaterOrEqual(t, p.Life, 10)
			assert.Less(t, p.Life, 30)
			assert.Equal(t, p.Life, p.MaxLife)
			assert.Equal(t, TagRight, p.Color)
		}
	}
}

func TestSpawnBounceStartsOnCrossedEdge(t *testing.T) {
	rng := core.NewRNG(2)
	b := Ball{X: 100, Y: -3, Size: 16, Color: TagBall}

	top := SpawnBounce(rng, b, TopEdge)
	require.Len(t, top, BounceBurst)
	for _, p := range top {
		assert.Equal(t, core.Vec{X: 108, Y: -3}, p.Pos)
		assert.GreaterOrEqual(t, p.Vel.Y, 0.0)
		assert.GreaterOrEqual(t, p.Life, 5)
		assert.Less(t, p.Life, 20)
		assert.Equal(t, TagBall, p.Color)
	}

	b.Y = 590
	bottom := SpawnBounce(rng, b, BottomEdge)
	for _, p := range bottom {
		assert.Equal(t, 606.0, p.Pos.Y)
		assert.LessOrEqual(t, p.Vel.Y, 0.0)
	}
}

func TestSpawnScoreCoversGoalLine(t *testing.T) {
	rng := core.NewRNG(3)
	for _, edge := range []float64{0, 800} {
		ps := SpawnScore(rng, edge, 600, TagLeft)
		require.Len(t, ps, ScoreBurst)
		for _, p := range ps {
			assert.Equal(t, edge, p.Pos.X)
			assert.GreaterOrEqual(t, p.Pos.Y, 0.0)
			assert.Less(t, p.Pos.Y, 600.0)
			assert.GreaterOrEqual(t, p.Life, 20)
			assert.Less(t, p.Life, 50)
			if edge == 0 {
				assert.GreaterOrEqual(t, p.Vel.X, 0.0)
			} else {
				assert.LessOrEqual(t, p.Vel.X, 0.0)
			}
		}
	}
}

func TestAgeParticles(t *testing.T) {
	ps := []Particle{
		{Pos: core.Vec{X: 1, Y: 1}, Vel: core.Vec{X: 2, Y: -1}, Life: 3},
		{Life: 1},
		{Pos: core.Vec{X: 5}, Vel: core.Vec{X: 1}, Life: 2},
	}
	kept, removed := AgeParticles(ps, 1)
	assert.Equal(t, 1, removed)
	require.Len(t, kept, 2)
	assert.Equal(t, core.Vec{X: 3, Y: 0}, kept[0].Pos)
	assert.Equal(t, 2, kept[0].Life)
	assert.Equal(t, core.Vec{X: 6}, kept[1].Pos)

	kept, removed = AgeParticles(kept, 0.5)
	assert.Equal(t, 1, removed)
	require.Len(t, kept, 1)
	assert.Equal(t, core.Vec{X: 4, Y: -0.5}, kept[0].Pos)

	kept, removed = AgeParticles(nil, 1)
	assert.Empty(t, kept)
	assert.Zero(t, removed)
}
