package leveldata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"strconv"
	"strings"

	"github.com/yohamta/donburi/features/math"
)

// Transform converts a legacy top-left position and size into a world-space
// center.
func Transform(pos, size math.Vec2) math.Vec2 {
	return math.Vec2{
		X: LegacyScale * (pos.X + size.X/2),
		Y: -LegacyScale*(pos.Y+size.Y/2) + WorldHeight,
	}
}

// ParseLine parses a single directive. line is used for log messages only.
// Unknown, redundant and malformed directives return false.
func ParseLine(text string, line int) (Object, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Object{}, false
	}

	switch fields[0] {
	case "BARRIER", "OBSTACLE":
		pos, size, ok := parseRect(fields, line)
		if !ok {
			return Object{}, false
		}
		return Object{
			Kind: KindObstacle,
			Pos:  Transform(pos, size),
			Size: scaled(size),
		}, true
	case "COIN":
		pos, ok := parsePoint(fields, line)
		if !ok {
			return Object{}, false
		}
		return Object{
			Kind: KindCoin,
			Pos:  Transform(pos, math.Vec2{X: CoinRadius, Y: CoinRadius}),
			Size: math.Vec2{X: 2 * CoinRadius, Y: 2 * CoinRadius},
		}, true
	case "DOOR":
		pos, size, ok := parseRect(fields, line)
		if !ok {
			return Object{}, false
		}
		return Object{
			Kind: KindDoor,
			Pos:  Transform(pos, size),
			Size: scaled(size),
		}, true
	case "PLAYER_POS":
		pos, ok := parsePoint(fields, line)
		if !ok {
			return Object{}, false
		}
		return Object{
			Kind: KindPlayerSpawn,
			Pos:  Transform(pos, math.Vec2{X: PlayerExtent, Y: PlayerExtent}),
		}, true
	case "PLAYER_SIZE", "COIN_SIZE":
		log.Printf("[LOADER] line %d: %s is redundant, ignoring", line, fields[0])
		return Object{}, false
	}

	log.Printf("[LOADER] Warning: line %d: unknown directive %q", line, fields[0])
	return Object{}, false
}

func scaled(size math.Vec2) math.Vec2 {
	return math.Vec2{X: LegacyScale * size.X, Y: LegacyScale * size.Y}
}

func parseRect(fields []string, line int) (pos, size math.Vec2, ok bool) {
	nums, ok := parseArgs(fields, 4, line)
	if !ok {
		return pos, size, false
	}
	if nums[2] < 0 || nums[3] < 0 {
		log.Printf("[LOADER] Warning: line %d: %s has negative size", line, fields[0])
		return pos, size, false
	}
	return math.Vec2{X: nums[0], Y: nums[1]}, math.Vec2{X: nums[2], Y: nums[3]}, true
}

func parsePoint(fields []string, line int) (math.Vec2, bool) {
	nums, ok := parseArgs(fields, 2, line)
	if !ok {
		return math.Vec2{}, false
	}
	return math.Vec2{X: nums[0], Y: nums[1]}, true
}

// parseArgs reads the first n numeric arguments after the directive. Extra
// tokens are ignored.
func parseArgs(fields []string, n, line int) ([]float64, bool) {
	if len(fields)-1 < n {
		log.Printf("[LOADER] Warning: line %d: %s expects %d arguments, got %d", line, fields[0], n, len(fields)-1)
		return nil, false
	}
	nums := make([]float64, n)
	for i := range nums {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			log.Printf("[LOADER] Warning: line %d: %s argument %d: %v", line, fields[0], i+1, err)
			return nil, false
		}
		nums[i] = v
	}
	return nums, true
}

// Parse reads every directive from r. Inputs of one line or fewer produce no
// objects.
func Parse(r io.Reader, source string) ([]Object, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	if len(lines) <= 1 {
		log.Printf("[LOADER] Warning: %s has %d lines, nothing to load", source, len(lines))
		return nil, nil
	}

	var objects []Object
	for i, text := range lines {
		if obj, ok := ParseLine(text, i+1); ok {
			objects = append(objects, obj)
		}
	}
	return objects, nil
}

// readLines splits r into lines of any length. A final line without a
// newline is kept.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Read loads the level at path. When no plain file exists, path+".tmx" is
// tried instead.
func Read(fsys fs.FS, path string) (*Level, error) {
	f, err := fsys.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if _, statErr := fs.Stat(fsys, path+TMXExt); statErr == nil {
			return ReadTMX(fsys, path+TMXExt)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	objects, err := Parse(f, path)
	if err != nil {
		return nil, err
	}
	return &Level{Path: path, Objects: objects}, nil
}

// Load is Read that never fails: errors are logged and an empty level is
// returned.
func Load(fsys fs.FS, path string) *Level {
	level, err := Read(fsys, path)
	if err != nil {
		log.Printf("[LOADER] Warning: %v", err)
		return &Level{Path: path}
	}
	log.Printf("[LOADER] Loaded %d objects from %s", len(level.Objects), path)
	return level
}
