package clang

import (
	"fmt"

	"github.com/sirkon/cxcursor/internal/cx"
	"github.com/sirkon/cxcursor/internal/cxrules"
	"github.com/sirkon/cxcursor/internal/report"
)

// Verify walks the tree and reports nodes whose discriminants disagree with
// their cursors and cursors of native kinds nobody knows. It returns the
// number of reported issues. Walking stops at the first handle error.
func Verify(root Node, sink *report.PhaseReporter) (int, error) {
	var issues int
	err := Walk(root, func(n Node, depth int) error {
		cur := n.Handle()

		kind, err := cur.Kind()
		if err != nil {
			sink.Report(cxrules.InvalidHandle(), err.Error(), cx.SourceLocation{})
			issues++
			return err
		}
		class, err := cur.StmtClass()
		if err != nil {
			return err
		}

		want := cx.StmtClassNone
		if s, ok := n.(Stmt); ok {
			want = s.StmtClass()
		}
		if kind != n.CursorKind() || class != want {
			sink.Report(
				cxrules.KindMismatch(),
				fmt.Sprintf("%T is %s/%s, its cursor is %s/%s", n, n.CursorKind(), want, kind, class),
				location(cur),
			)
			issues++
		}

		if !kind.IsUnexposed() {
			return nil
		}
		native, err := cur.NativeKind()
		if err != nil {
			return err
		}
		if _, _, ok := cx.Classify(native, ""); !ok {
			sink.Report(cxrules.UnknownNativeKind(), fmt.Sprintf("%s exposed as %s", native, kind), location(cur))
			issues++
		}

		return nil
	})

	return issues, err
}
