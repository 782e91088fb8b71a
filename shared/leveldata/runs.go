package leveldata

import (
	"bufio"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strconv"
	"strings"
)

// InfoFile is the name of the per-run description file.
const InfoFile = "info"

// LevelPath returns the path of level index inside a run directory.
func LevelPath(dir string, index int) string {
	return path.Join(dir, strconv.Itoa(index))
}

// ReadInfo reads dir/info. The first line is "<marker> <name>" and only the
// first token after the marker names the run. An optional "AUTHOR <name>"
// line follows. Amount is the number of level files found.
func ReadInfo(fsys fs.FS, dir string) (Info, error) {
	f, err := fsys.Open(path.Join(dir, InfoFile))
	if err != nil {
		return Info{}, fmt.Errorf("open info for %s: %w", dir, err)
	}
	defer f.Close()

	info := Info{Dir: dir}
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if first {
			first = false
			if len(fields) < 2 {
				return Info{}, fmt.Errorf("info for %s: first line needs a marker and a name", dir)
			}
			info.Name = fields[1]
			continue
		}
		if len(fields) >= 2 && fields[0] == "AUTHOR" {
			info.Author = strings.Join(fields[1:], " ")
		}
	}
	if err := scanner.Err(); err != nil {
		return Info{}, fmt.Errorf("read info for %s: %w", dir, err)
	}
	if first {
		return Info{}, fmt.Errorf("info for %s is empty", dir)
	}

	info.Amount = CountLevels(fsys, dir)
	return info, nil
}

// CountLevels counts consecutive level files 0, 1, 2, ... in dir. A level
// may be a plain file or a .tmx file.
func CountLevels(fsys fs.FS, dir string) int {
	n := 0
	for {
		p := LevelPath(dir, n)
		if _, err := fs.Stat(fsys, p); err != nil {
			if _, err := fs.Stat(fsys, p+TMXExt); err != nil {
				return n
			}
		}
		n++
	}
}

// ListRuns returns the info of every run directory under root, sorted by
// directory name. Directories without a readable info file are skipped.
func ListRuns(fsys fs.FS, root string) ([]Info, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("list runs in %s: %w", root, err)
	}

	var runs []Info
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := ReadInfo(fsys, path.Join(root, entry.Name()))
		if err != nil {
			log.Printf("[LOADER] Warning: skipping run %s: %v", entry.Name(), err)
			continue
		}
		runs = append(runs, info)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Dir < runs[j].Dir
	})
	return runs, nil
}
