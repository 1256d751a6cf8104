package dispatch

import (
	"sort"

	"github.com/dshills/keybind/internal/diagnostics"
	"github.com/dshills/keybind/internal/document"
)

// scopedDispatch walks the ancestor chain from ev.Target() up to and
// including ev.CurrentTarget(), invoking the first enabled handler among
// candidates whose selector matches the visited node: highest
// specificity first, ties broken by registry (first-registered) order.
// It returns true if some handler consumed the event, in which case it
// has already called PreventDefault and StopPropagation on ev.
func scopedDispatch(candidates []*normalizedBinding, sel SelectorEngine, sink diagnostics.Sink, ev document.Event) bool {
	currentTarget := ev.CurrentTarget()

	for node := ev.Target(); node != nil; node = node.Parent() {
		survivors := make([]*normalizedBinding, 0, len(candidates))
		for _, c := range candidates {
			if sel.Matches(node, c.selector) {
				survivors = append(survivors, c)
			}
		}
		sort.SliceStable(survivors, func(i, j int) bool {
			return survivors[i].specificity > survivors[j].specificity
		})

		for _, c := range survivors {
			if invokeHandler(c, sink) {
				ev.PreventDefault()
				ev.StopPropagation()
				return true
			}
		}

		if node == currentTarget {
			break
		}
	}
	return false
}

// selectorLiveOnPath reports whether any candidate's selector matches some
// node between ev.Target() and ev.CurrentTarget(), inclusive. It is used
// to decide whether a partial match is actually reachable before the
// engine commits to suppressing the event that produced it.
func selectorLiveOnPath(candidates []*normalizedBinding, sel SelectorEngine, ev document.Event) bool {
	currentTarget := ev.CurrentTarget()

	for node := ev.Target(); node != nil; node = node.Parent() {
		for _, c := range candidates {
			if sel.Matches(node, c.selector) {
				return true
			}
		}
		if node == currentTarget {
			break
		}
	}
	return false
}

func invokeHandler(b *normalizedBinding, sink diagnostics.Sink) (consumed bool) {
	if b.handler == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			sink.Log(diagnostics.LevelWarn, "binding handler panicked", map[string]any{"recover": r})
			consumed = false
		}
	}()
	return b.handler(b.args)
}
