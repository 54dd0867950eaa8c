package cx

import (
	"maps"
	"strings"
)

// maxPragmaWords is the longest directive name in words, like "parallel for simd".
const maxPragmaWords = 3

func newKnownPragmas(custom map[string]StmtClass) map[string]StmtClass {
	predefined := map[string]StmtClass{
		"parallel":     StmtClassOMPParallelDirective,
		"for":          StmtClassOMPForDirective,
		"parallel for": StmtClassOMPParallelForDirective,
		"sections":     StmtClassOMPSectionsDirective,
		"section":      StmtClassOMPSectionDirective,
		"single":       StmtClassOMPSingleDirective,
		"master":       StmtClassOMPMasterDirective,
		"critical":     StmtClassOMPCriticalDirective,
		"task":         StmtClassOMPTaskDirective,
		"taskyield":    StmtClassOMPTaskyieldDirective,
		"barrier":      StmtClassOMPBarrierDirective,
		"taskwait":     StmtClassOMPTaskwaitDirective,
		"taskgroup":    StmtClassOMPTaskgroupDirective,
		"flush":        StmtClassOMPFlushDirective,
		"atomic":       StmtClassOMPAtomicDirective,
		"ordered":      StmtClassOMPOrderedDirective,
	}

	res := maps.Clone(predefined)
	if custom != nil {
		maps.Insert(res, maps.All(custom))
	}

	return res
}

// isStandaloneDirective reports directives that do not own the statement that
// follows them.
func isStandaloneDirective(class StmtClass) bool {
	switch class {
	case StmtClassOMPBarrierDirective,
		StmtClassOMPTaskwaitDirective,
		StmtClassOMPTaskyieldDirective,
		StmtClassOMPFlushDirective:
		return true
	default:
		return false
	}
}

// matchPragma finds the directive of a "#pragma" argument like
// "omp parallel for num_threads(4)". The longest known directive name wins;
// whatever follows it is a clause list and is ignored.
func matchPragma(known map[string]StmtClass, arg string) (StmtClass, bool) {
	words := strings.Fields(arg)
	if len(words) < 2 || words[0] != "omp" {
		return StmtClassNone, false
	}
	words = words[1:]

	for n := min(len(words), maxPragmaWords); n > 0; n-- {
		name := strings.Join(words[:n], " ")
		if i := strings.IndexByte(name, '('); i >= 0 {
			// A clause glued to the name, like "critical(lock)".
			name = name[:i]
		}
		if class, ok := known[name]; ok {
			return class, true
		}
	}

	return StmtClassNone, false
}
