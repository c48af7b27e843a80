// Command flattree prints directory hierarchies as trees.
//
// Usage:
//
//	flattree walk [dir] --format text|color|dot|html [--hidden] [--max-depth N]
//	flattree stats [dir]
package main

func main() {
	execute()
}
