package leveldata

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

// TMXExt is the extension of Tiled level files.
const TMXExt = ".tmx"

// Object group names read from TMX levels.
const (
	groupObstacles   = "Obstacles"
	groupCoins       = "Coins"
	groupDoors       = "Doors"
	groupPlayerSpawn = "PlayerSpawn"
)

// ReadTMX parses a Tiled map whose object groups hold the same placements as
// the line format. Object coordinates are legacy canvas pixels.
func ReadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{Path: tmxPath}
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			pos := math.Vec2{X: o.X, Y: o.Y}
			size := math.Vec2{X: o.Width, Y: o.Height}

			switch og.Name {
			case groupObstacles, groupDoors:
				if size.X < 0 || size.Y < 0 {
					log.Printf("[LOADER] Warning: %s: object %d in %s has negative size", tmxPath, o.ID, og.Name)
					continue
				}
				kind := KindObstacle
				if og.Name == groupDoors {
					kind = KindDoor
				}
				level.Objects = append(level.Objects, Object{
					Kind: kind,
					Pos:  Transform(pos, size),
					Size: scaled(size),
				})
			case groupCoins:
				level.Objects = append(level.Objects, Object{
					Kind: KindCoin,
					Pos:  Transform(pos, math.Vec2{X: CoinRadius, Y: CoinRadius}),
					Size: math.Vec2{X: 2 * CoinRadius, Y: 2 * CoinRadius},
				})
			case groupPlayerSpawn:
				level.Objects = append(level.Objects, Object{
					Kind: KindPlayerSpawn,
					Pos:  Transform(pos, math.Vec2{X: PlayerExtent, Y: PlayerExtent}),
				})
			default:
				log.Printf("[LOADER] Warning: %s: unknown object group %q", tmxPath, og.Name)
			}
		}
	}

	return level, nil
}
