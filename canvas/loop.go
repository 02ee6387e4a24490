//go:build js

package canvas

import "syscall/js"

// AnimationLoop schedules frame through requestAnimationFrame, rescheduling
// after each call until frame returns false. The callback is released when
// the loop stops. Returns immediately; the loop runs on the browser's
// animation-frame scheduler.
//
// Parameters:
//   - frame: per-frame function; return false to stop the loop
func AnimationLoop(frame func() bool) {
	var f js.Func
	f = js.FuncOf(func(this js.Value, args []js.Value) any {
		if !frame() {
			f.Release()
			return nil
		}
		js.Global().Call("requestAnimationFrame", f)
		return nil
	})
	js.Global().Call("requestAnimationFrame", f)
}
