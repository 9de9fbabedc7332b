// Package tui provides immediate-mode helpers on top of terminal.Region.
//
// Helpers draw directly through the region they are given and keep no
// retained widget state; the application owns the render loop and redraws
// on every resize.
//
// Usage pattern:
//
//	root, _ := console.FullScreen()
//	body, status := tui.SplitBottom(root, 1)
//	scroll.SetVisible(body.Height())
//	tui.StatusBar(status, sections, tui.DefaultBarOpts())
package tui
