package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"voxedit.ai/internal/catalog"
	"voxedit.ai/internal/edit"
	"voxedit.ai/internal/persistence/journal"
	"voxedit.ai/internal/persistence/worlddb"
	"voxedit.ai/internal/region"
	"voxedit.ai/internal/tuning"
	"voxedit.ai/internal/voxel"
)

const usage = `usage: voxedit [flags] <op> <args...>

ops:
  set         x1 y1 z1 x2 y2 z2 BLOCK
  replace     x1 y1 z1 x2 y2 z2 FROM|non-air TO
  faces       x1 y1 z1 x2 y2 z2 BLOCK
  overlay     x1 y1 z1 x2 y2 z2 BLOCK
  stack       x1 y1 z1 x2 y2 z2 xm ym zm count copyair
  fill        x y z BLOCK radius depth
  removeabove x y z size height
  removebelow x y z size height
`

func main() {
	var (
		configDir  = flag.String("configs", "./configs", "config directory")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
		dbPath     = flag.String("db", "", "world db path (default from tuning)")
		limit      = flag.Int("limit", 0, "block change limit override (-1 unlimited, 0 = use tuning)")
		queue      = flag.Bool("queue", true, "defer support-dependent blocks until the batch commits")
		atomic     = flag.Bool("atomic", false, "undo the whole batch when the change limit aborts it")
		noJournal  = flag.Bool("no_journal", false, "skip writing the changeset journal")
	)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stdout, "[voxedit] ", log.LstdFlags)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	tp := *tuningPath
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}
	tn, err := tuning.Load(tp)
	if err != nil {
		logger.Fatalf("load tuning: %v", err)
	}

	cats, err := catalog.Load(*configDir)
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}

	path := *dbPath
	if path == "" {
		path = tn.WorldDB
	}
	store, err := worlddb.Open(path)
	if err != nil {
		logger.Fatalf("open world db: %v", err)
	}
	defer store.Close()

	maxBlocks := tn.DefaultBlockChangeLimit
	if *limit != 0 {
		maxBlocks = *limit
	}
	session, err := edit.NewSession(edit.Config{
		Store:     store,
		MaxBlocks: maxBlocks,
		FloorY:    tn.WorldFloorY,
		CeilY:     tn.WorldCeilingY,
	})
	if err != nil {
		logger.Fatalf("session: %v", err)
	}
	if *queue {
		session.EnableQueue()
	}

	affected, runErr := run(session, cats, args[0], args[1:])
	session.FlushQueue()

	if runErr != nil {
		var capErr *edit.MaxChangedBlocksError
		if errors.As(runErr, &capErr) && *atomic {
			session.Undo()
			logger.Fatalf("%s: %v; batch undone", args[0], runErr)
		}
		logger.Fatalf("%s: %v", args[0], runErr)
	}
	if err := store.Err(); err != nil {
		logger.Fatalf("world db: %v", err)
	}

	logger.Printf("%s: %d block(s) affected, %d touched", args[0], affected, session.Size())

	if !*noJournal {
		jpath := filepath.Join(tn.JournalDir, "edits.jsonl.zst")
		w, err := journal.NewWriter(jpath)
		if err != nil {
			logger.Fatalf("open journal: %v", err)
		}
		rec := journal.Record{
			ID:      fmt.Sprintf("%s_%d", args[0], time.Now().UnixNano()),
			At:      time.Now().UTC(),
			Op:      args[0],
			Changes: session.Changes(),
		}
		if err := w.Write(rec); err != nil {
			logger.Fatalf("journal write: %v", err)
		}
		if err := w.Close(); err != nil {
			logger.Fatalf("journal close: %v", err)
		}
	}
}

func run(s *edit.Session, cats *catalog.Catalog, op string, args []string) (int, error) {
	switch op {
	case "set", "replace", "faces", "overlay", "stack":
		if len(args) < 6 {
			return 0, fmt.Errorf("%s needs two corners", op)
		}
		a, err := parseVec(args[0:3])
		if err != nil {
			return 0, err
		}
		b, err := parseVec(args[3:6])
		if err != nil {
			return 0, err
		}
		r := region.NewCuboid(a, b)
		rest := args[6:]

		switch op {
		case "set":
			block, err := parseBlock(cats, arg(rest, 0))
			if err != nil {
				return 0, err
			}
			return s.SetBlocks(r, block)
		case "replace":
			if len(rest) < 2 {
				return 0, fmt.Errorf("replace needs FROM and TO")
			}
			from := voxel.MatchNonAir
			if rest[0] != "non-air" {
				from, err = parseBlock(cats, rest[0])
				if err != nil {
					return 0, err
				}
			}
			to, err := parseBlock(cats, rest[1])
			if err != nil {
				return 0, err
			}
			return s.ReplaceBlocks(r, from, to)
		case "faces":
			block, err := parseBlock(cats, arg(rest, 0))
			if err != nil {
				return 0, err
			}
			return s.MakeCuboidFaces(r, block)
		case "overlay":
			block, err := parseBlock(cats, arg(rest, 0))
			if err != nil {
				return 0, err
			}
			return s.OverlayCuboidBlocks(r, block)
		default: // stack
			if len(rest) < 5 {
				return 0, fmt.Errorf("stack needs xm ym zm count copyair")
			}
			xm, err1 := strconv.Atoi(rest[0])
			ym, err2 := strconv.Atoi(rest[1])
			zm, err3 := strconv.Atoi(rest[2])
			count, err4 := strconv.Atoi(rest[3])
			copyAir, err5 := strconv.ParseBool(rest[4])
			for _, err := range []error{err1, err2, err3, err4, err5} {
				if err != nil {
					return 0, err
				}
			}
			return s.StackCuboidRegion(r, xm, ym, zm, count, copyAir)
		}

	case "fill":
		if len(args) != 6 {
			return 0, fmt.Errorf("fill needs x y z BLOCK radius depth")
		}
		origin, err := parseVec(args[0:3])
		if err != nil {
			return 0, err
		}
		block, err := parseBlock(cats, args[3])
		if err != nil {
			return 0, err
		}
		radius, err1 := strconv.Atoi(args[4])
		depth, err2 := strconv.Atoi(args[5])
		if err1 != nil || err2 != nil {
			return 0, fmt.Errorf("fill: bad radius/depth")
		}
		return s.FillXZ(origin.X, origin.Z, origin, block, radius, depth)

	case "removeabove", "removebelow":
		if len(args) != 5 {
			return 0, fmt.Errorf("%s needs x y z size height", op)
		}
		pos, err := parseVec(args[0:3])
		if err != nil {
			return 0, err
		}
		size, err1 := strconv.Atoi(args[3])
		height, err2 := strconv.Atoi(args[4])
		if err1 != nil || err2 != nil {
			return 0, fmt.Errorf("%s: bad size/height", op)
		}
		if op == "removeabove" {
			return s.RemoveAbove(pos, size, height)
		}
		return s.RemoveBelow(pos, size, height)
	}

	return 0, fmt.Errorf("unknown op %q", op)
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func parseVec(args []string) (voxel.Vec3i, error) {
	var v voxel.Vec3i
	for i, dst := range []*int{&v.X, &v.Y, &v.Z} {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return v, fmt.Errorf("bad coordinate %q", args[i])
		}
		*dst = n
	}
	return v, nil
}

func parseBlock(cats *catalog.Catalog, name string) (voxel.BlockID, error) {
	if name == "" {
		return 0, fmt.Errorf("missing block name")
	}
	if id, ok := cats.IDByName(name); ok {
		return id, nil
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n < 0xFFFF {
		return voxel.BlockID(n), nil
	}
	return 0, fmt.Errorf("unknown block %q", name)
}
