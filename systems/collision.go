package systems

import (
	"image/color"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePigHits resolves the flying bird against every pig, last placed
// first, so a pig removed mid-pass never shifts one still to be visited.
// Each overlapping pig takes fixed damage and part of the bird's velocity;
// the bird is slowed once per pig hit.
func UpdatePigHits(ecs *ecs.ECS) {
	birdEntry, ok := flyingBird(ecs)
	if !ok {
		return
	}
	re, _ := roundEntry(ecs)
	round := components.Round.Get(re)
	structure := components.Structure.Get(re)
	bird := components.Bird.Get(birdEntry)
	birdBody := components.Physics.Get(birdEntry)
	candidates := broadphase(ecs, birdEntry, tags.ResolvPig)

	for i := len(structure.Pigs) - 1; i >= 0; i-- {
		pigEntry := structure.Pigs[i]
		if candidates != nil && !candidates[pigEntry] {
			continue
		}
		pig := components.Pig.Get(pigEntry)
		body := components.Physics.Get(pigEntry)
		if !gamemath.CircleCircle(birdBody.X, birdBody.Y, bird.Radius, body.X, body.Y, pig.Radius) {
			continue
		}

		health := components.Health.Get(pigEntry)
		health.Current -= cfg.Damage.PigHitDamage
		body.SpeedX += birdBody.SpeedX * cfg.Damage.PigKnockback
		body.SpeedY += birdBody.SpeedY * cfg.Damage.PigKnockback
		knock(pigEntry)
		factory.SpawnParticles(ecs, body.X, body.Y, cfg.Particles.PigHit, cfg.Particles.PigColor)

		birdBody.SpeedX *= cfg.Damage.BirdDampOnPig
		birdBody.SpeedY *= cfg.Damage.BirdDampOnPig

		if health.Current <= 0 {
			factory.SpawnParticles(ecs, body.X, body.Y, cfg.Particles.PigKill, cfg.Particles.KillColor)
			structure.RemovePig(pigEntry)
			removeBody(ecs, pigEntry)
			round.Score += cfg.Score.Pig
		}
	}
}

// UpdateBlockHits resolves the flying bird against every block in the same
// reverse order. Damage scales with the bird's speed; the bird bounces back
// horizontally and is pushed out of the block it hit.
func UpdateBlockHits(ecs *ecs.ECS) {
	birdEntry, ok := flyingBird(ecs)
	if !ok {
		return
	}
	re, _ := roundEntry(ecs)
	round := components.Round.Get(re)
	structure := components.Structure.Get(re)
	bird := components.Bird.Get(birdEntry)
	birdBody := components.Physics.Get(birdEntry)
	candidates := broadphase(ecs, birdEntry, tags.ResolvBlock)

	for i := len(structure.Blocks) - 1; i >= 0; i-- {
		blockEntry := structure.Blocks[i]
		if candidates != nil && !candidates[blockEntry] {
			continue
		}
		block := components.Block.Get(blockEntry)
		body := components.Physics.Get(blockEntry)
		if !gamemath.CircleRect(birdBody.X, birdBody.Y, bird.Radius, body.X, body.Y, block.HalfW, block.HalfH) {
			continue
		}

		speed := gamemath.Length(birdBody.SpeedX, birdBody.SpeedY)
		health := components.Health.Get(blockEntry)
		health.Current -= speed * cfg.Damage.BlockDamageScale
		body.SpeedX += birdBody.SpeedX * cfg.Damage.BlockKnockback
		body.SpeedY += birdBody.SpeedY * cfg.Damage.BlockKnockback
		knock(blockEntry)
		factory.SpawnParticles(ecs, body.X, body.Y, cfg.Particles.BlockHit, materialColor(block.Material))

		birdBody.SpeedX *= cfg.Damage.BirdBounceX
		birdBody.SpeedY *= cfg.Damage.BirdDampY
		birdBody.X, birdBody.Y = gamemath.SeparateCircleRect(birdBody.X, birdBody.Y, bird.Radius,
			body.X, body.Y, block.HalfW, block.HalfH)
		syncObject(birdEntry)

		if health.Current <= 0 {
			factory.SpawnParticles(ecs, body.X, body.Y, cfg.Particles.BlockKill, cfg.Particles.KillColor)
			structure.RemoveBlock(blockEntry)
			removeBody(ecs, blockEntry)
			round.Score += cfg.Score.Block
		}
	}
}

func flyingBird(ecs *ecs.ECS) (*donburi.Entry, bool) {
	if _, ok := roundEntry(ecs); !ok {
		return nil, false
	}
	birdEntry, ok := tags.Bird.First(ecs.World)
	if !ok || components.Bird.Get(birdEntry).State != components.BirdFlying {
		return nil, false
	}
	return birdEntry, true
}

// broadphasePad widens the bird's query box. resolv drops the last pixel of
// every box when mapping it to cells, so contacts thinner than a pixel across
// a cell edge would otherwise share no cell.
const broadphasePad = 1.0

// broadphase returns the entries carrying tag that share a grid cell with the
// bird's padded box. It returns nil, meaning every body must be tested, when
// that box reaches outside the grid.
func broadphase(ecs *ecs.ECS, birdEntry *donburi.Entry, tag string) map[*donburi.Entry]bool {
	re, _ := roundEntry(ecs)
	rules := components.Rules.Get(re)
	obj := components.Object.Get(birdEntry)

	x, y, w, h := obj.X, obj.Y, obj.W, obj.H
	obj.X, obj.Y = x-broadphasePad, y-broadphasePad
	obj.W, obj.H = w+2*broadphasePad, h+2*broadphasePad
	defer func() { obj.X, obj.Y, obj.W, obj.H = x, y, w, h }()

	if obj.X < 0 || obj.Y < 0 || obj.X+obj.W > rules.Width || obj.Y+obj.H > rules.Height {
		return nil
	}

	candidates := map[*donburi.Entry]bool{}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return candidates
	}
	for _, o := range check.ObjectsByTags(tag) {
		if e, ok := o.Data.(*donburi.Entry); ok {
			candidates[e] = true
		}
	}
	return candidates
}

// knock releases a placed body from its resting position and flashes it.
func knock(e *donburi.Entry) {
	components.Support.Get(e).Resting = false
	components.Flash.Get(e).Duration = hitFlashFrames
}

func materialColor(m leveldata.Material) color.RGBA {
	if m == leveldata.MaterialStone {
		return cfg.Particles.StoneColor
	}
	return cfg.Particles.WoodColor
}
